package builder

import (
	"testing"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

func TestBuildCodes_LexicographicNumbering(t *testing.T) {
	t.Parallel()

	rows := []domain.Row{
		{"Polysemy": "b"},
		{"Polysemy": "a"},
		{"Polysemy": "c"},
		{"Polysemy": "a"},
	}

	codes, index := buildCodes(rows)

	want := map[string]string{"a": "polysemy-c1", "b": "polysemy-c2", "c": "polysemy-c3"}
	var got int
	for _, code := range codes {
		if code.ParameterID != "polysemy" {
			continue
		}
		got++
		if want[code.Name] != code.ID {
			t.Errorf("code %q has ID %s, want %s", code.Name, code.ID, want[code.Name])
		}
	}
	if got != 3 {
		t.Errorf("polysemy code count = %d, want 3", got)
	}
	if index[codeKey{ParameterID: "polysemy", Value: "a"}] != "polysemy-c1" {
		t.Errorf("index[a] = %q", index[codeKey{ParameterID: "polysemy", Value: "a"}])
	}
}

func TestBuildCodes_ScopedPerParameter(t *testing.T) {
	t.Parallel()

	rows := []domain.Row{
		{"Polysemy": "reflexive", "FunctionAP": "reflexive"},
	}

	codes, index := buildCodes(rows)
	if len(codes) != 2 {
		t.Fatalf("len(codes) = %d, want 2", len(codes))
	}
	if index[codeKey{ParameterID: "polysemy", Value: "reflexive"}] == "" ||
		index[codeKey{ParameterID: "functions", Value: "reflexive"}] == "" {
		t.Error("same value under two parameters must yield two codes")
	}
	if index[codeKey{ParameterID: "polysemy", Value: "reflexive"}] ==
		index[codeKey{ParameterID: "functions", Value: "reflexive"}] {
		t.Error("codes of different parameters must have distinct IDs")
	}
}

func TestBuildCodes_MarkerColumnExcluded(t *testing.T) {
	t.Parallel()

	rows := []domain.Row{
		{"AP marker": "-ine", "Polysemy": "no"},
	}

	codes, index := buildCodes(rows)
	for _, code := range codes {
		if code.ParameterID == domain.MarkerParameterID {
			t.Errorf("marker parameter got code %s", code.ID)
		}
	}
	if _, ok := index[codeKey{ParameterID: domain.MarkerParameterID, Value: "-ine"}]; ok {
		t.Error("marker value must not be indexed")
	}
}

func TestBuildCodes_NASynonymsCollapse(t *testing.T) {
	t.Parallel()

	rows := []domain.Row{
		{"Polysemy": "NI"},
		{"Polysemy": "NA"},
		{"Polysemy": "_inapplicable"},
		{"Polysemy": "n/a"},
	}

	codes, _ := buildCodes(rows)
	var polysemy []domain.Code
	for _, code := range codes {
		if code.ParameterID == "polysemy" {
			polysemy = append(polysemy, code)
		}
	}
	if len(polysemy) != 1 {
		t.Fatalf("polysemy code count = %d, want 1", len(polysemy))
	}
	if polysemy[0].Name != domain.NotApplicable || polysemy[0].ID != "polysemy-c1" {
		t.Errorf("code = %+v", polysemy[0])
	}
}

func TestBuildCodes_EmptyInput(t *testing.T) {
	t.Parallel()

	codes, index := buildCodes(nil)
	if len(codes) != 0 || len(index) != 0 {
		t.Errorf("codes = %v, index = %v, want empty", codes, index)
	}
}
