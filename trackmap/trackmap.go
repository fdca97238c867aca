// Package trackmap writes the map products of a cleaned transect: a
// GeoJSON feature collection of the ship track with the shelf-break
// position, and a UTM-projected companion CSV for GIS work in
// projected coordinates.
package trackmap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ctessum/geom"
	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
)

type geometry struct {
	Type   string      `json:"type"`
	Coords interface{} `json:"coordinates"`
}

type feature struct {
	Type  string                 `json:"type"`
	Geom  geometry               `json:"geometry"`
	Props map[string]interface{} `json:"properties"`
}

type collection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

// Line assembles the track fixes as a geometry line (x easting-ward as
// longitude, y as latitude).
func Line(lat, lng []float64) geom.LineString {
	ls := make(geom.LineString, len(lat))
	for i := range lat {
		ls[i] = geom.Point{X: lng[i], Y: lat[i]}
	}
	return ls
}

// WriteGeoJSON writes the cleaned ship track as a LineString feature
// and the shelf break as a Point feature carrying its depth [m] and
// the along-track distance [km] at which it was crossed.
func WriteGeoJSON(fp string, lat, lng []float64, blat, blng, bdepth, bdist float64) error {
	if len(lat) != len(lng) {
		return fmt.Errorf("trackmap.WriteGeoJSON: %d latitudes to %d longitudes", len(lat), len(lng))
	}

	ls := Line(lat, lng)
	cc := make([][]float64, len(ls))
	for i, p := range ls {
		cc[i] = []float64{p.X, p.Y}
	}

	col := collection{
		Type: "FeatureCollection",
		Features: []feature{
			{
				Type: "Feature",
				Geom: geometry{Type: "LineString", Coords: cc},
				Props: map[string]interface{}{
					"name":   "ship track",
					"npings": len(ls),
				},
			},
			{
				Type: "Feature",
				Geom: geometry{Type: "Point", Coords: []float64{blng, blat}},
				Props: map[string]interface{}{
					"name":  "shelf break",
					"depth": bdepth,
					"dist":  bdist,
				},
			},
		},
	}

	b, err := json.MarshalIndent(col, "", " ")
	if err != nil {
		return fmt.Errorf("trackmap.WriteGeoJSON: %v", err)
	}
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf("trackmap.WriteGeoJSON: %v", err)
	}
	return nil
}

// WriteUTM projects the track to UTM and writes an
// easting,northing,depth,dist table, returning the grid zone label
// (e.g. "19T") of the first fix. A transect short enough to cross one
// shelf break is assumed not to straddle zones.
func WriteUTM(fp string, lat, lng, depth, dist []float64) (string, error) {
	n := len(lat)
	es, ns := make([]float64, n), make([]float64, n)
	var zone string
	for i := range lat {
		e, nn, zn, zl, err := UTM.FromLatLon(lat[i], lng[i])
		if err != nil {
			return "", fmt.Errorf("trackmap.WriteUTM fix %d: %v", i, err)
		}
		if zone == "" {
			zone = fmt.Sprintf("%d%s", zn, zl)
		}
		es[i], ns[i] = e, nn
	}
	mmio.WriteCSV(fp, "easting,northing,depth,dist", es, ns, depth, dist)
	return zone, nil
}
