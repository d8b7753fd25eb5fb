// Package glottolog resolves glottocodes against a local Glottolog
// languoid export. The export is a CSV file with at least the columns
// ID, Name, ISO639P3code, Macroareas, Latitude and Longitude; Macroareas
// holds zero or more names joined by ";".
package glottolog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cldf-datasets/antipassives/internal/adapter/spreadsheet"
	"github.com/cldf-datasets/antipassives/internal/domain"
)

// LanguoidsFile is the file looked for when Open is given a directory.
const LanguoidsFile = "languoids.csv"

// Catalog is an in-memory index over a languoid export.
type Catalog struct {
	languoids map[string]domain.Languoid
}

// Open loads a languoid export from path, which may be the CSV file itself
// or a directory containing languoids.csv. The whole export is read once;
// lookups never touch the disk again.
func Open(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("glottolog: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, LanguoidsFile)
	}

	rows, err := spreadsheet.ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("glottolog: %w", err)
	}

	languoids := make(map[string]domain.Languoid, len(rows))
	for i, row := range rows {
		row = domain.NormalizeRow(row)
		id := row["ID"]
		if id == "" {
			continue
		}

		languoid := domain.Languoid{
			ID:           id,
			Name:         row["Name"],
			ISO639P3code: row["ISO639P3code"],
			Macroareas:   splitMacroareas(row["Macroareas"]),
		}
		if languoid.Latitude, err = parseCoordinate(row["Latitude"]); err != nil {
			return nil, fmt.Errorf("glottolog: %s line %d: latitude: %w", id, i+2, err)
		}
		if languoid.Longitude, err = parseCoordinate(row["Longitude"]); err != nil {
			return nil, fmt.Errorf("glottolog: %s line %d: longitude: %w", id, i+2, err)
		}
		languoids[id] = languoid
	}

	return &Catalog{languoids: languoids}, nil
}

// Resolve looks up a glottocode. The second return value reports whether
// the export contains it.
func (c *Catalog) Resolve(glottocode string) (domain.Languoid, bool) {
	languoid, ok := c.languoids[glottocode]
	return languoid, ok
}

// Len returns the number of languoids loaded.
func (c *Catalog) Len() int {
	return len(c.languoids)
}

func splitMacroareas(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	areas := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			areas = append(areas, part)
		}
	}
	return areas
}

func parseCoordinate(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
