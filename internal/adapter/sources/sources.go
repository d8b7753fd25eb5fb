// Package sources handles the dataset's bibliographic side tables: the
// BibTeX bibliography itself and the citation-string-to-BibTeX-key index.
package sources

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nickng/bibtex"

	"github.com/cldf-datasets/antipassives/internal/adapter/spreadsheet"
)

// Bibliography wraps a parsed BibTeX file.
type Bibliography struct {
	bib  *bibtex.BibTex
	keys map[string]struct{}
}

// Load parses a BibTeX file.
func Load(path string) (*Bibliography, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bibliography: %w", err)
	}
	defer f.Close()

	bib, err := bibtex.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("bibliography: parse %s: %w", path, err)
	}

	keys := make(map[string]struct{}, len(bib.Entries))
	for _, entry := range bib.Entries {
		keys[entry.CiteName] = struct{}{}
	}
	return &Bibliography{bib: bib, keys: keys}, nil
}

// Has reports whether the bibliography contains an entry with the given key.
func (b *Bibliography) Has(key string) bool {
	_, ok := b.keys[key]
	return ok
}

// Keys returns all entry keys in sorted order.
func (b *Bibliography) Keys() []string {
	keys := make([]string, 0, len(b.keys))
	for key := range b.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Write serializes the bibliography in BibTeX format.
func (b *Bibliography) Write(w io.Writer) error {
	if _, err := io.WriteString(w, b.bib.PrettyString()); err != nil {
		return fmt.Errorf("bibliography: write: %w", err)
	}
	return nil
}

// LoadCitationIndex reads the two-column (key, citation) CSV that maps
// free-text citation strings to bibliography keys. The file has no header.
// Records with fewer than two cells or an empty key or citation are skipped.
func LoadCitationIndex(path string) (map[string]string, error) {
	records, err := spreadsheet.ReadRecords(path)
	if err != nil {
		return nil, fmt.Errorf("citation index: %w", err)
	}

	index := make(map[string]string, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		key := strings.TrimSpace(record[0])
		citation := strings.TrimSpace(record[1])
		if key == "" || citation == "" {
			continue
		}
		index[citation] = key
	}
	return index, nil
}
