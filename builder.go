package shelfx

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"

	"github.com/maseology/shelfx/plt"
	"github.com/maseology/shelfx/trackmap"
)

// BuildTransect runs the full alignment from a .shelfx control file:
//
//	trackfp:    bathymetry line export (csv)
//	svfp:       interval-by-cell Sv export (csv)
//	outdir:     product directory
//	breakdepth: shelf-break depth threshold [m] (optional, 200)
//	spacing:    resampling station spacing [km] (optional, 0.5)
func BuildTransect(controlFP string) {

	///////////////////////////////////////////////////////
	println("load .shelfx file")
	var trackFP, svFP, outdir string
	breakDepth, spacing := 200., .5
	func(fp string) {
		ins := mmio.NewInstruct(fp)
		trackFP = ins.Param["trackfp"][0]
		svFP = ins.Param["svfp"][0]
		outdir = ins.Param["outdir"][0]

		var err error
		if v, ok := ins.Param["breakdepth"]; ok {
			if breakDepth, err = strconv.ParseFloat(v[0], 64); err != nil {
				panic(err)
			}
		}
		if v, ok := ins.Param["spacing"]; ok {
			if spacing, err = strconv.ParseFloat(v[0], 64); err != nil {
				panic(err)
			}
		}
	}(controlFP)
	if !strings.HasSuffix(outdir, "/") {
		outdir += "/"
	}

	///////////////////////////////////////////////////////
	println("ingest and clean")
	tt := mmio.NewTimer()
	trk, err := ReadTrack(trackFP)
	if err != nil {
		log.Fatalf("BuildTransect: %v", err)
	}
	cells, err := ReadCells(svFP)
	if err != nil {
		log.Fatalf("BuildTransect: %v", err)
	}

	trk, ndp := CleanTrack(trk)
	cells, ndc := CleanCells(cells)
	fmt.Printf("  %s: %d pings retained (%d dropped)\n", mmio.FileName(trackFP, true), len(trk), ndp)
	fmt.Printf("  %s: %d cells retained (%d dropped)\n", mmio.FileName(svFP, true), len(cells), ndc)
	if len(trk) == 0 || len(cells) == 0 {
		log.Fatalln("BuildTransect: nothing survived the sentinel screens")
	}
	trk.Accumulate()
	tt.Lap("ingestion complete")

	///////////////////////////////////////////////////////
	println("align")
	ints := Collapse(cells)
	uiprogress.Start()
	bar := uiprogress.AddBar(len(trk)).AppendCompleted()
	ints = JoinPings(ints, trk, func() { bar.Incr() })
	uiprogress.Stop()
	if len(ints) < 2 {
		log.Fatalln("BuildTransect: fewer than two intervals attracted pings; check export time ranges")
	}

	prf := Locate(ints, breakDepth)
	brk := prf.Ints[prf.Ibrk]
	fmt.Printf("  shelf break nearest %.0f m: interval %d, %.1f m at %.2f km along track\n", breakDepth, brk.ID, brk.Depth, brk.Dist)
	tt.Lap("alignment complete")

	///////////////////////////////////////////////////////
	println("resample")
	sta := prf.Resample(spacing)
	bias, nse, obs, sim := Fidelity(&prf, sta)
	fmt.Printf("  %d stations at %.2f km spacing; round-trip bias %.2f dB, NSE %.3f\n", len(sta), spacing, bias, nse)

	///////////////////////////////////////////////////////
	println("write products")
	mmio.MakeDir(outdir)
	writeTrack(outdir+"track.csv", trk)
	writeProfile(outdir+"profile.csv", &prf)
	writeStations(outdir+"stations.csv", sta)
	if len(obs) > 0 {
		mmio.ObsSim(outdir+"sv-roundtrip.png", obs, sim)
	}

	xb, zz, sv := make([]float64, len(prf.Ints)), make([]float64, len(prf.Ints)), make([]float64, len(prf.Ints))
	for i, v := range prf.Ints {
		xb[i], zz[i], sv[i] = v.Xb, v.Depth, v.Sv
	}
	sx, sz, ssv := make([]float64, len(sta)), make([]float64, len(sta)), make([]float64, len(sta))
	for i, s := range sta {
		sx[i], sz[i], ssv[i] = s.Xb, s.Depth, s.Sv
	}
	if err := plt.Profile(outdir+"profile.png", xb, zz, sx, sz); err != nil {
		log.Fatalf("BuildTransect: %v", err)
	}
	if err := plt.SvDistance(outdir+"sv-distance.png", xb, sv, sx, ssv); err != nil {
		log.Fatalf("BuildTransect: %v", err)
	}

	lat, lng, z, d := make([]float64, len(trk)), make([]float64, len(trk)), make([]float64, len(trk)), make([]float64, len(trk))
	for i, p := range trk {
		lat[i], lng[i], z[i], d[i] = p.Lat, p.Lng, p.Depth, p.Dist
	}
	if err := trackmap.WriteGeoJSON(outdir+"track.geojson", lat, lng, brk.Lat, brk.Lng, brk.Depth, brk.Dist); err != nil {
		log.Fatalf("BuildTransect: %v", err)
	}
	zone, err := trackmap.WriteUTM(outdir+"track-utm.csv", lat, lng, z, d)
	if err != nil {
		log.Fatalf("BuildTransect: %v", err)
	}
	fmt.Printf("  track projected to UTM zone %s\n", zone)
	tt.Lap("build complete, see " + outdir)
}
