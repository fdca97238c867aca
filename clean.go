package shelfx

// CleanTrack screens the GPS and depth sentinels from a line export:
// pings with a bad position status, 999-coded or out-of-domain
// coordinates, or a 999/-999/non-positive depth are dropped. Returns
// the retained pings and the dropped count.
func CleanTrack(trk Track) (Track, int) {
	o := make(Track, 0, len(trk))
	for _, p := range trk {
		switch {
		case p.Status != 1:
		case isSentinel(p.Lat) || isSentinel(p.Lng):
		case p.Lat < -90. || p.Lat > 90. || p.Lng < -180. || p.Lng > 180.:
		case isSentinel(p.Depth) || p.Depth <= 0.:
		default:
			o = append(o, p)
		}
	}
	return o, len(trk) - len(o)
}

// CleanCells drops no-data (999) and empty-water (-999) cells, and
// cells with 999-coded midpoint coordinates.
func CleanCells(cs []Cell) ([]Cell, int) {
	o := make([]Cell, 0, len(cs))
	for _, c := range cs {
		switch {
		case isSentinel(c.Sv):
		case isSentinel(c.Lat) || isSentinel(c.Lng):
		default:
			o = append(o, c)
		}
	}
	return o, len(cs) - len(o)
}

func isSentinel(v float64) bool { return v == sentinel || v == -sentinel }
