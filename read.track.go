package shelfx

import (
	"fmt"
	"time"
)

// ReadTrack loads a bathymetry line export: Ping_date, Ping_time,
// Ping_milliseconds, Latitude, Longitude, Position_status, Depth.
// Sentinel rows are NOT screened here; cleaning is a separate step so
// dropped-row accounting stays inspectable.
func ReadTrack(fp string) (Track, error) {
	tbl, err := readTable(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadTrack: %v", err)
	}

	trk := make(Track, 0, len(tbl.rows))
	for k, row := range tbl.rows {
		d, err := tbl.s(row, "Ping_date")
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}
		tm, err := tbl.s(row, "Ping_time")
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}
		t, err := parseDateTime(d, tm)
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}
		if _, ok := tbl.col["Ping_milliseconds"]; ok {
			ms, err := tbl.f64(row, "Ping_milliseconds")
			if err != nil {
				return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
			}
			t = t.Add(time.Duration(ms) * time.Millisecond)
		}

		lat, err := tbl.f64(row, "Latitude")
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}
		lng, err := tbl.f64(row, "Longitude")
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}
		stat, err := tbl.i(row, "Position_status")
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}
		z, err := tbl.f64(row, "Depth")
		if err != nil {
			return nil, fmt.Errorf("ReadTrack row %d: %v", k+1, err)
		}

		trk = append(trk, Ping{T: t, Lat: lat, Lng: lng, Status: stat, Depth: z})
	}
	return trk, nil
}
