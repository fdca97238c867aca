package shelfx

import "math"

// Haversine returns the great-circle distance [km] between two
// geographic positions on a 6371 km sphere.
func Haversine(lat0, lng0, lat1, lng1 float64) float64 {
	const d2r = math.Pi / 180.
	p0, p1 := lat0*d2r, lat1*d2r
	dp, dl := (lat1-lat0)*d2r, (lng1-lng0)*d2r
	a := math.Sin(dp/2.)*math.Sin(dp/2.) + math.Cos(p0)*math.Cos(p1)*math.Sin(dl/2.)*math.Sin(dl/2.)
	return 2. * earthRadius * math.Asin(math.Sqrt(a))
}

// Accumulate sets the cumulative along-track distance [km], first ping
// at zero, single forward pass.
func (trk Track) Accumulate() {
	if len(trk) == 0 {
		return
	}
	trk[0].Dist = 0.
	for i := 1; i < len(trk); i++ {
		trk[i].Dist = trk[i-1].Dist + Haversine(trk[i-1].Lat, trk[i-1].Lng, trk[i].Lat, trk[i].Lng)
	}
}
