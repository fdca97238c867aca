package shelfx

import "time"

// Ping is a single ship-track bathymetry fix from the echosounder line
// export: a GPS position with its status code and the picked bottom
// depth (m, positive down).
type Ping struct {
	T        time.Time
	Lat, Lng float64
	Status   int
	Depth    float64
	Dist     float64 // cumulative along-track distance [km], set by Accumulate
}

// Track is a time-ordered set of pings.
type Track []Ping
