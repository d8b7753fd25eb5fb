package builder

import (
	"fmt"
	"strings"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

// assemble emits one construction per row and one value per coded cell,
// in row order. Construction identifiers carry a per-language ordinal
// counted from 1 in encounter order; rows of different languages may
// interleave without disturbing each other's numbering.
//
// Citations resolve through the citation index; a line with no index
// entry is collected as an UnknownCitation and dropped from the
// construction's sources. Values pick up the code built for their
// (parameter, value) pair; marker values never have one.
func assemble(
	rows []domain.Row,
	languages []domain.Language,
	codeIndex map[codeKey]string,
	citationIndex map[string]string,
) ([]domain.Construction, []domain.ConstructionValue, []UnknownCitation) {
	names := make(map[string]string, len(languages))
	for _, lang := range languages {
		names[lang.ID] = lang.Name
	}

	var (
		constructions []domain.Construction
		values        []domain.ConstructionValue
		unknown       []UnknownCitation
	)
	ordinals := make(map[string]int)

	for i, row := range rows {
		glottocode := row[domain.ColGlottocode]
		ordinals[glottocode]++
		ordinal := ordinals[glottocode]
		constrID := fmt.Sprintf("%s-ap%d", glottocode, ordinal)

		var citations []string
		for _, line := range strings.Split(row[domain.ColSource], "\n") {
			citation := strings.TrimSpace(line)
			if citation == "" {
				continue
			}
			key, ok := citationIndex[citation]
			if !ok {
				unknown = append(unknown, UnknownCitation{Line: i + 2, Citation: citation})
				continue
			}
			citations = append(citations, key)
		}

		constructions = append(constructions, domain.Construction{
			ID:         constrID,
			Name:       fmt.Sprintf("%s Antipassive Construction %d", names[glottocode], ordinal),
			LanguageID: glottocode,
			Source:     citations,
		})

		for _, pc := range domain.ParameterColumns {
			raw, ok := row[pc.Column]
			if !ok || raw == "" {
				continue
			}
			value := domain.UnifyNA(raw)
			values = append(values, domain.ConstructionValue{
				ID:             fmt.Sprintf("%s-%s", constrID, pc.ParameterID),
				ConstructionID: constrID,
				ParameterID:    pc.ParameterID,
				Value:          value,
				CodeID:         codeIndex[codeKey{ParameterID: pc.ParameterID, Value: value}],
			})
		}
	}
	return constructions, values, unknown
}
