package shelfx

import "time"

// Cell is one interval-by-layer bin from the Sv export.
type Cell struct {
	Interval, Layer int
	Sv              float64 // mean volume backscattering strength [dB re 1/m]
	Ts, Te          time.Time
	Lat, Lng        float64 // interval midpoint position
}

// Interval is a horizontal bin after collapsing layers, carrying the
// statistics of the pings joined to it.
type Interval struct {
	ID       int
	Sv       float64 // linear-domain layer average, reported in dB
	Ts, Te   time.Time
	T        time.Time // mean time of joined pings
	Lat, Lng float64
	Depth    float64 // mean depth of joined pings [m]
	Dist     float64 // mean along-track distance of joined pings [km]
	Xb       float64 // signed distance from shelf break [km], onshore negative
	n        int     // joined pings
}

// Profile is the aligned transect: intervals ordered by signed
// distance with a located shelf break.
type Profile struct {
	Ints []Interval
	Ibrk int     // index of the break interval
	Dbrk float64 // depth at the break [m]
}

// Station is one resampled point on the even along-track grid.
type Station struct {
	Xb    float64 // signed distance from shelf break [km]
	Depth float64 // [m]
	Sv    float64 // [dB]
}
