package shelfx

import "fmt"

// ReadCells loads an interval-by-cell Sv export: Interval, Layer,
// Sv_mean, Date_S, Time_S, Date_E, Time_E, Lat_M, Lon_M. As with
// ReadTrack, sentinels pass through untouched.
func ReadCells(fp string) ([]Cell, error) {
	tbl, err := readTable(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadCells: %v", err)
	}

	cs := make([]Cell, 0, len(tbl.rows))
	for k, row := range tbl.rows {
		iv, err := tbl.i(row, "Interval")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		ly, err := tbl.i(row, "Layer")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		sv, err := tbl.f64(row, "Sv_mean")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}

		ds, err := tbl.s(row, "Date_S")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		ts, err := tbl.s(row, "Time_S")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		t0, err := parseDateTime(ds, ts)
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		de, err := tbl.s(row, "Date_E")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		te, err := tbl.s(row, "Time_E")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		t1, err := parseDateTime(de, te)
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		if t1.Before(t0) {
			return nil, fmt.Errorf("ReadCells row %d: interval %d ends before it starts", k+1, iv)
		}

		lat, err := tbl.f64(row, "Lat_M")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}
		lng, err := tbl.f64(row, "Lon_M")
		if err != nil {
			return nil, fmt.Errorf("ReadCells row %d: %v", k+1, err)
		}

		cs = append(cs, Cell{Interval: iv, Layer: ly, Sv: sv, Ts: t0, Te: t1, Lat: lat, Lng: lng})
	}
	return cs, nil
}
