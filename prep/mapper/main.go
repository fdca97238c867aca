package main

// standalone map build: re-reads the cleaned track table
// (date,lat,lng,depth,dist) and aligned profile
// (interval,xb,dist,depth,sv,npings) written by a previous
// BuildTransect and re-issues the GeoJSON/UTM map products without
// re-running the alignment.

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/maseology/shelfx/trackmap"
)

func main() {

	dir := "M:/shelf/out/"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	tt := mmio.NewTimer()
	defer tt.Print("map build complete")

	// track table carries a date column; split lines by hand
	lns, err := mmio.ReadTextLines(dir + "track.csv")
	if err != nil {
		log.Fatalf("mapper: %v", err)
	}
	lat, lng, z, d := make([]float64, 0, len(lns)), make([]float64, 0, len(lns)), make([]float64, 0, len(lns)), make([]float64, 0, len(lns))
	for _, ln := range lns[1:] { // date,lat,lng,depth,dist
		sp := strings.Split(ln, ",")
		if len(sp) != 5 {
			continue
		}
		f := func(s string) float64 {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				log.Fatalf("mapper: %v", err)
			}
			return v
		}
		lat = append(lat, f(sp[1]))
		lng = append(lng, f(sp[2]))
		z = append(z, f(sp[3]))
		d = append(d, f(sp[4]))
	}
	if len(lat) == 0 {
		log.Fatalln("mapper: no fixes read from " + dir + "track.csv")
	}

	// the break sits at xb=0 in the aligned profile; snap it to the
	// nearest track fix by along-track distance
	prf, err := mmio.ReadCSV(dir + "profile.csv") // interval,xb,dist,depth,sv,npings
	if err != nil {
		log.Fatalf("mapper: %v", err)
	}
	bdist, bdepth, xmin := 0., 0., math.MaxFloat64
	for _, r := range prf {
		if x := math.Abs(r[1]); x < xmin {
			xmin, bdist, bdepth = x, r[2], r[3]
		}
	}
	ib, dmin := 0, math.MaxFloat64
	for i := range d {
		if dd := math.Abs(d[i] - bdist); dd < dmin {
			ib, dmin = i, dd
		}
	}

	if err := trackmap.WriteGeoJSON(dir+"track.geojson", lat, lng, lat[ib], lng[ib], bdepth, bdist); err != nil {
		log.Fatalf("mapper: %v", err)
	}
	zone, err := trackmap.WriteUTM(dir+"track-utm.csv", lat, lng, z, d)
	if err != nil {
		log.Fatalf("mapper: %v", err)
	}
	fmt.Printf("  %d fixes mapped, UTM zone %s\n", len(lat), zone)
}
