package shelfx

import (
	"sort"

	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
	"gonum.org/v1/gonum/floats"
)

// Resample interpolates the profile onto evenly spaced stations about
// the shelf break, the onshore (Xb < 0) and offshore (Xb > 0) limbs
// resampled independently and both anchored at the break (a station at
// exactly zero; Locate pins the break interval there). Depth
// interpolates piecewise-linearly in natural units; Sv converts dB to
// the linear domain, interpolates, and converts back. Stations are
// never extrapolated beyond a limb's data span.
func (p *Profile) Resample(spacing float64) []Station {
	if len(p.Ints) < 2 || spacing <= 0. {
		return nil
	}

	limb := func(lo, hi int) (xb, zz, sv []float64) {
		for _, v := range p.Ints[lo:hi] {
			xb = append(xb, v.Xb)
			zz = append(zz, v.Depth)
			sv = append(sv, svlin(v.Sv))
		}
		return
	}
	xon, zon, son := limb(0, p.Ibrk+1)    // onshore limb, break inclusive
	xof, zof, sof := limb(p.Ibrk, len(p.Ints)) // offshore limb, break inclusive

	var o []Station
	if fn := float64(int(-floats.Min(xon) / spacing)); fn > 0. {
		for i := int(fn); i > 0; i-- {
			x := -mmaths.LinearTransform(0., fn*spacing, float64(i)/fn)
			o = append(o, Station{Xb: x, Depth: interp(xon, zon, x), Sv: svdb(interp(xon, son, x))})
		}
	}
	o = append(o, Station{Xb: 0., Depth: p.Ints[p.Ibrk].Depth, Sv: p.Ints[p.Ibrk].Sv})
	if ff := float64(int(floats.Max(xof) / spacing)); ff > 0. {
		for i := 1; i <= int(ff); i++ {
			x := mmaths.LinearTransform(0., ff*spacing, float64(i)/ff)
			o = append(o, Station{Xb: x, Depth: interp(xof, zof, x), Sv: svdb(interp(xof, sof, x))})
		}
	}
	return o
}

// Fidelity re-interpolates the resampled stations back onto the source
// interval distances and reports the round-trip agreement of the Sv
// profile (bias and Nash-Sutcliffe efficiency, in dB), returning the
// obs/sim pairs for plotting.
func Fidelity(p *Profile, sta []Station) (bias, nse float64, obs, sim []float64) {
	if len(sta) < 2 {
		return 0., 0., nil, nil
	}
	xs := make([]float64, len(sta))
	ss := make([]float64, len(sta))
	for i, s := range sta {
		xs[i], ss[i] = s.Xb, svlin(s.Sv)
	}
	for _, v := range p.Ints {
		if v.Xb < xs[0] || v.Xb > xs[len(xs)-1] {
			continue // beyond the station span; nothing to compare
		}
		obs = append(obs, v.Sv)
		sim = append(sim, svdb(interp(xs, ss, v.Xb)))
	}
	return objfunc.Bias(obs, sim), objfunc.NSE(obs, sim), obs, sim
}

// piecewise-linear interpolation over ascending x; clamps at the ends
// (callers keep stations within the data span)
func interp(x, y []float64, xi float64) float64 {
	j := sort.SearchFloat64s(x, xi)
	switch {
	case j == 0:
		return y[0]
	case j == len(x):
		return y[len(y)-1]
	case x[j] == xi:
		return y[j]
	}
	w := (xi - x[j-1]) / (x[j] - x[j-1])
	return y[j-1] + w*(y[j]-y[j-1])
}
