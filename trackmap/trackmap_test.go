package trackmap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	ls := Line([]float64{41.1, 41.2}, []float64{-71.2, -71.3})
	require.Len(t, ls, 2)
	assert.Equal(t, -71.2, ls[0].X) // x carries longitude
	assert.Equal(t, 41.1, ls[0].Y)
}

func TestWriteGeoJSON(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "track.geojson")
	lat := []float64{41.10, 41.12, 41.15}
	lng := []float64{-71.20, -71.22, -71.25}
	require.NoError(t, WriteGeoJSON(fp, lat, lng, 41.12, -71.22, 198.6, 12.3))

	b, err := os.ReadFile(fp)
	require.NoError(t, err)

	var col struct {
		Type     string `json:"type"`
		Features []struct {
			Type string `json:"type"`
			Geom struct {
				Type   string          `json:"type"`
				Coords json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
			Props map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(b, &col))

	assert.Equal(t, "FeatureCollection", col.Type)
	require.Len(t, col.Features, 2)

	assert.Equal(t, "LineString", col.Features[0].Geom.Type)
	var cc [][]float64
	require.NoError(t, json.Unmarshal(col.Features[0].Geom.Coords, &cc))
	require.Len(t, cc, 3)
	assert.Equal(t, []float64{-71.20, 41.10}, cc[0])

	assert.Equal(t, "Point", col.Features[1].Geom.Type)
	assert.Equal(t, 198.6, col.Features[1].Props["depth"])
	assert.Equal(t, 12.3, col.Features[1].Props["dist"])
}

func TestWriteGeoJSONMismatch(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "track.geojson")
	assert.Error(t, WriteGeoJSON(fp, []float64{41.1}, []float64{-71.2, -71.3}, 0., 0., 0., 0.))
}

func TestWriteUTM(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "track-utm.csv")
	lat := []float64{41.10, 41.12}
	lng := []float64{-71.20, -71.22}
	zone, err := WriteUTM(fp, lat, lng, []float64{120., 130.}, []float64{0., 1.5})
	require.NoError(t, err)
	assert.Equal(t, "19T", zone) // southern New England shelf

	_, err = os.Stat(fp)
	assert.NoError(t, err)
}
