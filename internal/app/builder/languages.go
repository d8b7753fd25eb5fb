package builder

import (
	"fmt"
	"sort"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

// localInfo is the language information carried by the survey sheet itself.
// When a language has several rows, the last row wins.
type localInfo struct {
	Name      string
	SubBranch string
	Family    string
}

// buildLanguages produces one language record per distinct glottocode in
// the rows, enriched from the catalog. Catalog values win for Name,
// Macroarea and the coordinates; SubBranch and Family only exist in the
// sheet. A glottocode missing from the catalog is fatal.
func buildLanguages(rows []domain.Row, catalog Catalog) ([]domain.Language, error) {
	local := make(map[string]localInfo)
	for i, row := range rows {
		glottocode := row[domain.ColGlottocode]
		if glottocode == "" {
			return nil, fmt.Errorf("row %d: %w: missing %s", i+2, domain.ErrInvalidData, domain.ColGlottocode)
		}
		local[glottocode] = localInfo{
			Name:      domain.TitleCase(row[domain.ColLanguage]),
			SubBranch: domain.TitleCase(row[domain.ColSubBranch]),
			Family:    domain.TitleCase(row[domain.ColFamily]),
		}
	}

	glottocodes := make([]string, 0, len(local))
	for glottocode := range local {
		glottocodes = append(glottocodes, glottocode)
	}
	sort.Strings(glottocodes)

	languages := make([]domain.Language, 0, len(glottocodes))
	for _, glottocode := range glottocodes {
		languoid, ok := catalog.Resolve(glottocode)
		if !ok {
			return nil, fmt.Errorf("glottocode %s: %w in catalog", glottocode, domain.ErrNotFound)
		}

		lang := domain.Language{
			ID:           glottocode,
			Glottocode:   glottocode,
			ISO639P3code: languoid.ISO639P3code,
			Name:         languoid.Name,
			Macroarea:    languoid.PrimaryMacroarea(),
			Latitude:     languoid.Latitude,
			Longitude:    languoid.Longitude,
			SubBranch:    local[glottocode].SubBranch,
			Family:       local[glottocode].Family,
		}
		if lang.Name == "" {
			lang.Name = local[glottocode].Name
		}
		languages = append(languages, lang)
	}
	return languages, nil
}
