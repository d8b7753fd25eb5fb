package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Row
		want  Row
	}{
		{
			name:  "strips keys and values",
			input: Row{" Language ": "  Chukchi  "},
			want:  Row{"Language": "Chukchi"},
		},
		{
			name:  "drops empty values",
			input: Row{"Language": "Chukchi", "Polysemy": "   "},
			want:  Row{"Language": "Chukchi"},
		},
		{
			name:  "drops empty keys",
			input: Row{"  ": "orphan", "Family": "Chukotkan"},
			want:  Row{"Family": "Chukotkan"},
		},
		{
			name:  "everything dropped",
			input: Row{"": "", " ": "\t"},
			want:  Row{},
		},
		{
			name:  "interior whitespace kept",
			input: Row{"AP marker": " -ine/-ena "},
			want:  Row{"AP marker": "-ine/-ena"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeRow(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeRow(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTable(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{"Language": " Chukchi "},
		{"": "", "Source": "  "},
		{"Language": "Ute"},
	}
	got := NormalizeTable(rows)

	want := []Row{
		{"Language": "Chukchi"},
		{"Language": "Ute"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTable() = %v, want %v", got, want)
	}
}

func TestNormalizeTableKeepsOrder(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{"Language": "c"},
		{"Language": "a"},
		{"Language": "b"},
	}
	got := NormalizeTable(rows)
	if len(got) != 3 {
		t.Fatalf("NormalizeTable() returned %d rows, want 3", len(got))
	}
	for i, want := range []string{"c", "a", "b"} {
		if got[i]["Language"] != want {
			t.Errorf("row %d = %q, want %q", i, got[i]["Language"], want)
		}
	}
}
