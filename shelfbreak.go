package shelfx

import "math"

// Locate finds the shelf break, approximated as the interval whose
// mean depth lies nearest breakDepth, and re-centres the profile about
// it: Xb = 0 at the break, onshore (shallow side) negative, offshore
// positive. If the transect was run from the deep side the signed
// distances are flipped (first-interval depth vs breakDepth), keeping
// the onshore-negative convention regardless of heading. Intervals in
// the returned profile ascend in Xb.
func Locate(ints []Interval, breakDepth float64) Profile {
	if len(ints) == 0 {
		return Profile{}
	}

	ib, dmin := 0, math.MaxFloat64
	for i, v := range ints {
		if d := math.Abs(v.Depth - breakDepth); d < dmin {
			ib, dmin = i, d
		}
	}

	o := make([]Interval, len(ints))
	copy(o, ints)
	for i := range o {
		o[i].Xb = o[i].Dist - ints[ib].Dist
	}

	if ints[0].Depth > breakDepth { // started offshore; flip so onshore stays negative
		for i := range o {
			o[i].Xb = -o[i].Xb
		}
		for i, j := 0, len(o)-1; i < j; i, j = i+1, j-1 {
			o[i], o[j] = o[j], o[i]
		}
		ib = len(o) - 1 - ib
	}

	return Profile{Ints: o, Ibrk: ib, Dbrk: o[ib].Depth}
}
