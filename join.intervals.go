package shelfx

import (
	"sort"
	"time"
)

// Collapse groups an Sv export by horizontal interval, averaging the
// vertical layers in the linear domain (an arithmetic mean of decibels
// biases low). Interval windows span the earliest layer start to the
// latest layer end. Returned intervals are time-ordered.
func Collapse(cs []Cell) []Interval {
	m := make(map[int]*Interval, len(cs))
	sum := make(map[int]float64, len(cs))
	for _, c := range cs {
		v, ok := m[c.Interval]
		if !ok {
			m[c.Interval] = &Interval{ID: c.Interval, Ts: c.Ts, Te: c.Te, Lat: c.Lat, Lng: c.Lng, n: 1}
			sum[c.Interval] = svlin(c.Sv)
			continue
		}
		if c.Ts.Before(v.Ts) {
			v.Ts = c.Ts
		}
		if c.Te.After(v.Te) {
			v.Te = c.Te
		}
		sum[c.Interval] += svlin(c.Sv)
		v.n++
	}

	o := make([]Interval, 0, len(m))
	for id, v := range m {
		v.Sv = svdb(sum[id] / float64(v.n))
		v.n = 0 // reset for the ping join
		o = append(o, *v)
	}
	sort.Slice(o, func(i, j int) bool { return o[i].Ts.Before(o[j].Ts) })
	return o
}

// JoinPings associates every ping with a backscatter interval: the
// interval whose time window contains the ping, otherwise the interval
// with the nearest window midpoint. Per-interval ping statistics (mean
// depth, time and along-track distance) are accumulated and intervals
// that attract no pings are dropped. Both inputs must be time-ordered;
// incr, if non-nil, is called once per ping (progress reporting).
// The returned intervals are ordered by along-track distance.
func JoinPings(ints []Interval, trk Track, incr func()) []Interval {
	if len(ints) == 0 || len(trk) == 0 {
		return nil
	}

	mid := make([]time.Time, len(ints))
	for i, v := range ints {
		mid[i] = v.Ts.Add(v.Te.Sub(v.Ts) / 2)
	}

	sz, st, sx := make([]float64, len(ints)), make([]int64, len(ints)), make([]float64, len(ints))
	n := make([]int, len(ints))
	j := 0
	for _, p := range trk {
		if incr != nil {
			incr()
		}
		for j < len(ints)-1 && p.T.After(ints[j].Te) {
			j++
		}
		k := j
		if p.T.Before(ints[j].Ts) && j > 0 {
			// ping fell in a gap (or before the first window): nearest midpoint
			if p.T.Sub(mid[j-1]) < mid[j].Sub(p.T) {
				k = j - 1
			}
		}
		sz[k] += p.Depth
		st[k] += p.T.Unix()
		sx[k] += p.Dist
		n[k]++
	}

	o := make([]Interval, 0, len(ints))
	for i, v := range ints {
		if n[i] == 0 {
			continue
		}
		fn := float64(n[i])
		v.Depth = sz[i] / fn
		v.Dist = sx[i] / fn
		v.T = time.Unix(st[i]/int64(n[i]), 0).UTC()
		v.n = n[i]
		o = append(o, v)
	}
	sort.Slice(o, func(i, j int) bool { return o[i].Dist < o[j].Dist })
	return o
}
