package shelfx

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/maseology/mmio"
)

// table is a header-addressed CSV export. mmio.ReadCSV is numeric-only
// and cannot carry the date/time and status columns these exports lead
// with, so the raw cells are kept as strings and converted per column.
type table struct {
	col  map[string]int
	rows [][]string
}

func readTable(fp string) (*table, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf("readTable: file not found: %s", fp)
	}
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("readTable %s: %v", fp, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("readTable %s: %v", fp, err)
	}
	if len(recs) < 2 {
		return nil, fmt.Errorf("readTable %s: no data rows", fp)
	}

	col := make(map[string]int, len(recs[0]))
	for j, h := range recs[0] {
		col[strings.TrimSpace(h)] = j
	}
	return &table{col: col, rows: recs[1:]}, nil
}

func (t *table) f64(row []string, name string) (float64, error) {
	j, ok := t.col[name]
	if !ok {
		return 0., fmt.Errorf("column %s not found", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
	if err != nil {
		return 0., fmt.Errorf("column %s: %v", name, err)
	}
	return v, nil
}

func (t *table) i(row []string, name string) (int, error) {
	j, ok := t.col[name]
	if !ok {
		return 0, fmt.Errorf("column %s not found", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(row[j]))
	if err != nil {
		return 0, fmt.Errorf("column %s: %v", name, err)
	}
	return v, nil
}

func (t *table) s(row []string, name string) (string, error) {
	j, ok := t.col[name]
	if !ok {
		return "", fmt.Errorf("column %s not found", name)
	}
	return strings.TrimSpace(row[j]), nil
}

// export timestamps arrive as a date column and a time column
// (fractional seconds tolerated), both UTC
func parseDateTime(d, tm string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", d+" "+tm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parseDateTime %s %s: %v", d, tm, err)
	}
	return t, nil
}
