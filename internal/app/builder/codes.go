package builder

import (
	"fmt"
	"sort"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

// codeKey identifies one code within one parameter's vocabulary. Codes are
// scoped per parameter: the same value observed under two parameters yields
// two distinct codes.
type codeKey struct {
	ParameterID string
	Value       string
}

// buildCodes derives the closed vocabulary of every coded parameter from
// the observed values. The free-text marker parameter has no vocabulary and
// is skipped. Within a parameter, distinct NA-unified values are sorted
// lexicographically and numbered from 1, so code identifiers are stable for
// a given input set.
func buildCodes(rows []domain.Row) ([]domain.Code, map[codeKey]string) {
	var codes []domain.Code
	index := make(map[codeKey]string)

	for _, pc := range domain.ParameterColumns {
		if pc.ParameterID == domain.MarkerParameterID {
			continue
		}

		seen := make(map[string]bool)
		for _, row := range rows {
			if value := row[pc.Column]; value != "" {
				seen[domain.UnifyNA(value)] = true
			}
		}

		values := make([]string, 0, len(seen))
		for value := range seen {
			values = append(values, value)
		}
		sort.Strings(values)

		for i, value := range values {
			id := fmt.Sprintf("%s-c%d", pc.ParameterID, i+1)
			codes = append(codes, domain.Code{
				ID:          id,
				ParameterID: pc.ParameterID,
				Name:        value,
			})
			index[codeKey{ParameterID: pc.ParameterID, Value: value}] = id
		}
	}
	return codes, index
}
