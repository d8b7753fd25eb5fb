// Package cldf writes a CLDF StructureDataset: a csvw metadata file, the
// component tables (languages, parameters, codes, values) and the dataset's
// custom construction tables, plus the BibTeX source file.
package cldf

import (
	"fmt"
	"io"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

// File names of the dataset's parts, as declared in the metadata.
const (
	MetadataFile      = "cldf-metadata.json"
	LanguagesFile     = "languages.csv"
	ParametersFile    = "parameters.csv"
	CodesFile         = "codes.csv"
	ValuesFile        = "values.csv"
	ConstructionsFile = "constructions.csv"
	CValuesFile       = "cvalues.csv"
	SourcesFile       = "sources.bib"
)

// SourceWriter serializes a bibliography in BibTeX format.
type SourceWriter interface {
	Write(w io.Writer) error
}

// Dataset holds everything that goes into one StructureDataset release.
// The ValueTable component stays empty: the dataset codes constructions,
// not languages, so all values live in the cvalues table.
type Dataset struct {
	ID            string
	Title         string
	Languages     []domain.Language
	Parameters    []domain.Parameter
	Codes         []domain.Code
	Constructions []domain.Construction
	Values        []domain.ConstructionValue
	Sources       SourceWriter
}

// Validate checks referential integrity across the dataset's tables:
// unique primary keys and resolvable foreign keys. It must pass before
// anything is written, so a broken dataset never reaches the disk.
func (ds *Dataset) Validate() error {
	languages, err := idSet("language", len(ds.Languages), func(i int) string { return ds.Languages[i].ID })
	if err != nil {
		return err
	}
	parameters, err := idSet("parameter", len(ds.Parameters), func(i int) string { return ds.Parameters[i].ID })
	if err != nil {
		return err
	}
	codes, err := idSet("code", len(ds.Codes), func(i int) string { return ds.Codes[i].ID })
	if err != nil {
		return err
	}
	constructions, err := idSet("construction", len(ds.Constructions), func(i int) string { return ds.Constructions[i].ID })
	if err != nil {
		return err
	}
	if _, err := idSet("value", len(ds.Values), func(i int) string { return ds.Values[i].ID }); err != nil {
		return err
	}

	for _, code := range ds.Codes {
		if !parameters[code.ParameterID] {
			return fmt.Errorf("code %s: unknown parameter %s", code.ID, code.ParameterID)
		}
	}
	for _, constr := range ds.Constructions {
		if !languages[constr.LanguageID] {
			return fmt.Errorf("construction %s: unknown language %s", constr.ID, constr.LanguageID)
		}
	}
	for _, value := range ds.Values {
		if !constructions[value.ConstructionID] {
			return fmt.Errorf("value %s: unknown construction %s", value.ID, value.ConstructionID)
		}
		if !parameters[value.ParameterID] {
			return fmt.Errorf("value %s: unknown parameter %s", value.ID, value.ParameterID)
		}
		if value.CodeID != "" && !codes[value.CodeID] {
			return fmt.Errorf("value %s: unknown code %s", value.ID, value.CodeID)
		}
	}
	return nil
}

func idSet(kind string, n int, id func(i int) string) (map[string]bool, error) {
	set := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return nil, fmt.Errorf("%s %d: empty ID", kind, i)
		}
		if set[v] {
			return nil, fmt.Errorf("%s %s: duplicate ID", kind, v)
		}
		set[v] = true
	}
	return set, nil
}
