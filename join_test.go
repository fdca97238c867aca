package shelfx

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapse(t *testing.T) {
	t0 := time.Date(2015, 8, 24, 9, 0, 0, 0, time.UTC)
	cs := []Cell{
		// second interval listed first; Collapse must time-order
		{Interval: 2, Layer: 1, Sv: -50., Ts: t0.Add(time.Minute), Te: t0.Add(2 * time.Minute), Lat: 41.2, Lng: -71.3},
		{Interval: 1, Layer: 1, Sv: -60., Ts: t0, Te: t0.Add(30 * time.Second), Lat: 41.1, Lng: -71.2},
		{Interval: 1, Layer: 2, Sv: -40., Ts: t0.Add(30 * time.Second), Te: t0.Add(time.Minute), Lat: 41.1, Lng: -71.2},
	}
	ints := Collapse(cs)
	require.Len(t, ints, 2)

	assert.Equal(t, 1, ints[0].ID)
	assert.Equal(t, 2, ints[1].ID)

	// layers average in the linear domain: 10log10((1e-6+1e-4)/2) ~ -42.97,
	// NOT the -50 an arithmetic mean of decibels would give
	assert.InDelta(t, 10.*math.Log10((1e-6+1e-4)/2.), ints[0].Sv, 1e-9)
	assert.InDelta(t, -50., ints[1].Sv, 1e-9)

	// window spans the layers
	assert.Equal(t, t0, ints[0].Ts)
	assert.Equal(t, t0.Add(time.Minute), ints[0].Te)
}

func TestJoinPings(t *testing.T) {
	t0 := time.Date(2015, 8, 24, 9, 0, 0, 0, time.UTC)
	ints := []Interval{
		{ID: 1, Sv: -60., Ts: t0, Te: t0.Add(10 * time.Second)},                    // midpoint +5s
		{ID: 2, Sv: -55., Ts: t0.Add(20 * time.Second), Te: t0.Add(30 * time.Second)}, // midpoint +25s
		{ID: 3, Sv: -50., Ts: t0.Add(30 * time.Second), Te: t0.Add(40 * time.Second)}, // attracts nothing
	}
	trk := Track{
		{T: t0.Add(2 * time.Second), Depth: 100., Dist: 0.},
		{T: t0.Add(8 * time.Second), Depth: 120., Dist: 1.},
		{T: t0.Add(12 * time.Second), Depth: 140., Dist: 2.},  // gap: nearer midpoint +5s than +25s
		{T: t0.Add(19 * time.Second), Depth: 200., Dist: 3.},  // gap: nearer midpoint +25s
		{T: t0.Add(25 * time.Second), Depth: 220., Dist: 4.},  // contained
	}

	njoined := 0
	o := JoinPings(ints, trk, func() { njoined++ })
	assert.Equal(t, len(trk), njoined)

	require.Len(t, o, 2) // interval 3 dropped
	assert.Equal(t, 1, o[0].ID)
	assert.Equal(t, 2, o[1].ID)

	assert.Equal(t, 3, o[0].n)
	assert.InDelta(t, (100.+120.+140.)/3., o[0].Depth, 1e-9)
	assert.InDelta(t, 1., o[0].Dist, 1e-9)

	assert.Equal(t, 2, o[1].n)
	assert.InDelta(t, 210., o[1].Depth, 1e-9)
	assert.InDelta(t, 3.5, o[1].Dist, 1e-9)

	// ordered by along-track distance
	assert.Less(t, o[0].Dist, o[1].Dist)
}

func TestJoinPingsOutsideAllWindows(t *testing.T) {
	t0 := time.Date(2015, 8, 24, 9, 0, 0, 0, time.UTC)
	ints := []Interval{
		{ID: 1, Ts: t0.Add(10 * time.Second), Te: t0.Add(20 * time.Second)},
		{ID: 2, Ts: t0.Add(20 * time.Second), Te: t0.Add(30 * time.Second)},
	}
	trk := Track{
		{T: t0, Depth: 50., Dist: 0.},                       // before every window -> first
		{T: t0.Add(45 * time.Second), Depth: 90., Dist: 5.}, // after every window -> last
	}
	o := JoinPings(ints, trk, nil)
	require.Len(t, o, 2)
	assert.Equal(t, 50., o[0].Depth)
	assert.Equal(t, 90., o[1].Depth)
}
