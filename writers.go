package shelfx

import (
	"log"
	"time"

	"github.com/maseology/mmio"
)

func writeTrack(fp string, trk Track) {
	n := len(trk)
	dts := make([]time.Time, n)
	lat, lng, z, d := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, p := range trk {
		dts[i], lat[i], lng[i], z[i], d[i] = p.T, p.Lat, p.Lng, p.Depth, p.Dist
	}
	mmio.WriteCsvDateFloats(fp, "date,lat,lng,depth,dist", dts, lat, lng, z, d)
}

func writeProfile(fp string, p *Profile) {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("interval,xb,dist,depth,sv,npings"); err != nil {
		log.Fatalf("%v", err)
	}
	for _, v := range p.Ints {
		csvw.WriteLine(float64(v.ID), v.Xb, v.Dist, v.Depth, v.Sv, float64(v.n))
	}
}

func writeStations(fp string, sta []Station) {
	n := len(sta)
	xb, z, sv := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, s := range sta {
		xb[i], z[i], sv[i] = s.Xb, s.Depth, s.Sv
	}
	mmio.WriteCSV(fp, "xb,depth,sv", xb, z, sv)
}
