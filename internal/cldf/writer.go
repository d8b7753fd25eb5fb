package cldf

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

// Write validates the dataset and serializes it into dir. csvw requires
// CRLF line endings, so every table is written with them. Nothing is
// written when validation fails.
func Write(dir string, ds *Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("cldf: validate: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cldf: %w", err)
	}

	if err := writeMetadata(filepath.Join(dir, MetadataFile), ds); err != nil {
		return err
	}

	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{ValuesFile,
			[]string{"ID", "Language_ID", "Parameter_ID", "Value", "Code_ID", "Comment", "Source"},
			nil},
		{LanguagesFile,
			[]string{"ID", "Name", "Macroarea", "Latitude", "Longitude", "Glottocode", "ISO639P3code", "SubBranch", "Family"},
			languageRows(ds.Languages)},
		{ParametersFile,
			[]string{"ID", "Name", "Description"},
			parameterRows(ds.Parameters)},
		{CodesFile,
			[]string{"ID", "Parameter_ID", "Name", "Description"},
			codeRows(ds.Codes)},
		{ConstructionsFile,
			[]string{"ID", "Name", "Description", "Language_ID", "Source"},
			constructionRows(ds.Constructions)},
		{CValuesFile,
			[]string{"ID", "Construction_ID", "Parameter_ID", "Value", "Code_ID", "Comment"},
			cvalueRows(ds.Values)},
	}
	for _, tbl := range tables {
		if err := writeTable(filepath.Join(dir, tbl.name), tbl.header, tbl.rows); err != nil {
			return err
		}
	}

	if ds.Sources != nil {
		if err := writeSources(filepath.Join(dir, SourcesFile), ds.Sources); err != nil {
			return err
		}
	}
	return nil
}

func writeMetadata(path string, ds *Dataset) error {
	data, err := json.MarshalIndent(metadata(ds), "", "    ")
	if err != nil {
		return fmt.Errorf("cldf: marshal metadata: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cldf: %w", err)
	}
	return nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cldf: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(header); err != nil {
		return fmt.Errorf("cldf: write %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("cldf: write %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cldf: write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func writeSources(path string, sources SourceWriter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cldf: %w", err)
	}
	defer f.Close()

	if err := sources.Write(f); err != nil {
		return fmt.Errorf("cldf: %w", err)
	}
	return f.Close()
}

func languageRows(languages []domain.Language) [][]string {
	rows := make([][]string, 0, len(languages))
	for _, l := range languages {
		rows = append(rows, []string{
			l.ID, l.Name, l.Macroarea,
			formatCoordinate(l.Latitude), formatCoordinate(l.Longitude),
			l.Glottocode, l.ISO639P3code, l.SubBranch, l.Family,
		})
	}
	return rows
}

func parameterRows(parameters []domain.Parameter) [][]string {
	rows := make([][]string, 0, len(parameters))
	for _, p := range parameters {
		rows = append(rows, []string{p.ID, p.Name, p.Description})
	}
	return rows
}

func codeRows(codes []domain.Code) [][]string {
	rows := make([][]string, 0, len(codes))
	for _, c := range codes {
		rows = append(rows, []string{c.ID, c.ParameterID, c.Name, c.Description})
	}
	return rows
}

func constructionRows(constructions []domain.Construction) [][]string {
	rows := make([][]string, 0, len(constructions))
	for _, c := range constructions {
		rows = append(rows, []string{
			c.ID, c.Name, c.Description, c.LanguageID, strings.Join(c.Source, ";"),
		})
	}
	return rows
}

func cvalueRows(values []domain.ConstructionValue) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{
			v.ID, v.ConstructionID, v.ParameterID, v.Value, v.CodeID, "",
		})
	}
	return rows
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
