// Package shelfx aligns ship-track bathymetry with gridded acoustic
// backscatter (Sv) across a continental shelf-break crossing: sentinel
// filtering, along-track distance accumulation, temporal-interval
// joining, shelf-break location and even-station resampling.
package shelfx

import "math"

const (
	earthRadius = 6371. // [km]
	sentinel    = 999.
)

// decibel-linear conversions; Sv must be averaged and interpolated in
// the linear domain
func svlin(db float64) float64 { return math.Pow(10., db/10.) }
func svdb(lin float64) float64 { return 10. * math.Log10(lin) }
