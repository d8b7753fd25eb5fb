package domain

import "testing"

func TestMarkerParameterListedOnce(t *testing.T) {
	t.Parallel()

	var matches int
	for _, pc := range ParameterColumns {
		if pc.ParameterID == MarkerParameterID {
			matches++
			if pc.Column != "AP marker" {
				t.Errorf("marker parameter bound to column %q, want %q", pc.Column, "AP marker")
			}
		}
	}
	if matches != 1 {
		t.Errorf("marker parameter appears %d times in ParameterColumns, want 1", matches)
	}
}

func TestParameterColumnsDistinct(t *testing.T) {
	t.Parallel()

	columns := make(map[string]bool, len(ParameterColumns))
	ids := make(map[string]bool, len(ParameterColumns))
	for _, pc := range ParameterColumns {
		if columns[pc.Column] {
			t.Errorf("duplicate column %q", pc.Column)
		}
		if ids[pc.ParameterID] {
			t.Errorf("duplicate parameter ID %q", pc.ParameterID)
		}
		columns[pc.Column] = true
		ids[pc.ParameterID] = true
	}
}
