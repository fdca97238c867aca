package shelfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	assert.Zero(t, Haversine(41.1, -71.2, 41.1, -71.2))

	// one degree of longitude at the equator: 2*pi*6371/360 km
	assert.InDelta(t, 111.1949, Haversine(0., 0., 0., 1.), .001)
	// one degree of latitude anywhere
	assert.InDelta(t, 111.1949, Haversine(40., -71., 41., -71.), .001)
	// direction-independent
	assert.Equal(t, Haversine(40., -71., 41., -72.), Haversine(41., -72., 40., -71.))
}

func TestAccumulate(t *testing.T) {
	trk := Track{
		{Lat: 0., Lng: 0., Depth: 10.},
		{Lat: 0., Lng: 1., Depth: 20.},
		{Lat: 0., Lng: 2., Depth: 30.},
	}
	trk.Accumulate()
	assert.Zero(t, trk[0].Dist)
	assert.InDelta(t, 111.1949, trk[1].Dist, .001)
	assert.InDelta(t, 222.3899, trk[2].Dist, .001)

	// monotone non-decreasing
	for i := 1; i < len(trk); i++ {
		assert.GreaterOrEqual(t, trk[i].Dist, trk[i-1].Dist)
	}
}
