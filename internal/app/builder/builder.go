// Package builder turns the raw antipassive survey into a CLDF
// StructureDataset. The steps run strictly forward: normalized rows feed
// the language and code tables, which feed the construction tables, which
// feed the writer. Nothing is mutated after it is built.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cldf-datasets/antipassives/internal/adapter/sources"
	"github.com/cldf-datasets/antipassives/internal/adapter/spreadsheet"
	"github.com/cldf-datasets/antipassives/internal/cldf"
	"github.com/cldf-datasets/antipassives/internal/config"
	"github.com/cldf-datasets/antipassives/internal/domain"
)

// Side tables maintained by hand in the etc/ directory.
const (
	parametersFile = "parameters.csv"
	citationsFile  = "citations-to-bibtex.csv"
)

// Catalog resolves glottocodes to Glottolog languoid records. Tests
// substitute an in-memory map.
type Catalog interface {
	Resolve(glottocode string) (domain.Languoid, bool)
}

// UnknownCitation records one citation string that the citation index
// could not resolve. Line is the 1-based spreadsheet line, header included.
type UnknownCitation struct {
	Line     int
	Citation string
}

// Result holds table sizes and soft failures of a completed run.
type Result struct {
	Rows             int
	Languages        int
	Codes            int
	Constructions    int
	Values           int
	UnknownCitations []UnknownCitation
}

// Pipeline is the one-shot dataset build.
type Pipeline struct {
	log     *slog.Logger
	catalog Catalog
	cfg     config.DatasetConfig
	result  Result
}

// New creates a Pipeline.
func New(log *slog.Logger, catalog Catalog, cfg config.DatasetConfig) *Pipeline {
	return &Pipeline{log: log, catalog: catalog, cfg: cfg}
}

// Result returns table sizes and soft failures after Run completes.
func (p *Pipeline) Result() Result {
	return p.result
}

// Run executes the build. A language missing from the catalog, unreadable
// inputs and broken referential integrity are fatal: the error is returned
// and no output is written. Unresolvable citations are only logged.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := spreadsheet.ReadTable(filepath.Join(p.cfg.RawDir, p.cfg.DataFile))
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}
	rows = domain.NormalizeTable(rows)
	p.result.Rows = len(rows)
	p.log.Info("read raw data", slog.Int("rows", len(rows)))

	parameters, err := loadParameters(filepath.Join(p.cfg.EtcDir, parametersFile))
	if err != nil {
		return fmt.Errorf("read parameters: %w", err)
	}

	citationIndex, err := sources.LoadCitationIndex(filepath.Join(p.cfg.EtcDir, citationsFile))
	if err != nil {
		return fmt.Errorf("read citation index: %w", err)
	}

	bibliography, err := sources.Load(filepath.Join(p.cfg.RawDir, p.cfg.SourcesFile))
	if err != nil {
		return fmt.Errorf("read bibliography: %w", err)
	}
	p.checkCitationIndex(citationIndex, bibliography)

	languages, err := buildLanguages(rows, p.catalog)
	if err != nil {
		return err
	}
	p.result.Languages = len(languages)

	codes, codeIndex := buildCodes(rows)
	p.result.Codes = len(codes)

	constructions, values, unknown := assemble(rows, languages, codeIndex, citationIndex)
	p.result.Constructions = len(constructions)
	p.result.Values = len(values)
	p.result.UnknownCitations = unknown
	for _, uc := range unknown {
		p.log.Warn("unknown citation",
			slog.Int("row", uc.Line),
			slog.String("citation", uc.Citation))
	}

	dataset := &cldf.Dataset{
		ID:            p.cfg.ID,
		Title:         p.cfg.Title,
		Languages:     languages,
		Parameters:    parameters,
		Codes:         codes,
		Constructions: constructions,
		Values:        values,
		Sources:       bibliography,
	}
	if err := cldf.Write(p.cfg.CLDFDir, dataset); err != nil {
		return err
	}

	p.log.Info("dataset written",
		slog.String("dir", p.cfg.CLDFDir),
		slog.Int("languages", len(languages)),
		slog.Int("codes", len(codes)),
		slog.Int("constructions", len(constructions)),
		slog.Int("values", len(values)))
	return nil
}

// checkCitationIndex warns about index entries pointing at bibliography
// keys that do not exist. Soft: the dataset still builds, but a source
// reference produced through such an entry would dangle.
func (p *Pipeline) checkCitationIndex(index map[string]string, bib *sources.Bibliography) {
	for citation, key := range index {
		if !bib.Has(key) {
			p.log.Warn("citation index key missing from bibliography",
				slog.String("key", key),
				slog.String("citation", citation))
		}
	}
}

// loadParameters reads the parameter side table verbatim, keeping file order.
func loadParameters(path string) ([]domain.Parameter, error) {
	rows, err := spreadsheet.ReadTable(path)
	if err != nil {
		return nil, err
	}
	parameters := make([]domain.Parameter, 0, len(rows))
	for i, row := range rows {
		row = domain.NormalizeRow(row)
		if row["ID"] == "" {
			return nil, fmt.Errorf("%s line %d: %w: missing ID", parametersFile, i+2, domain.ErrInvalidData)
		}
		parameters = append(parameters, domain.Parameter{
			ID:          row["ID"],
			Name:        row["Name"],
			Description: row["Description"],
		})
	}
	return parameters, nil
}
