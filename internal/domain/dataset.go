package domain

// Language is one row of the output language table. Name, Macroarea and
// the coordinates come from the Glottolog catalog when it has them;
// SubBranch and Family are carried over from the survey sheet.
type Language struct {
	ID           string
	Name         string
	Macroarea    string
	Latitude     *float64
	Longitude    *float64
	Glottocode   string
	ISO639P3code string
	SubBranch    string
	Family       string
}

// Parameter is a surveyed feature, loaded verbatim from etc/parameters.csv.
type Parameter struct {
	ID          string
	Name        string
	Description string
}

// Code is one admissible value of a parameter's controlled vocabulary.
type Code struct {
	ID          string
	ParameterID string
	Name        string
	Description string
}

// Construction is a single antipassive construction of one language.
// Source holds bibliography keys, not raw citation strings.
type Construction struct {
	ID          string
	Name        string
	Description string
	LanguageID  string
	Source      []string
}

// ConstructionValue is the value one construction takes for one parameter.
// CodeID is empty for parameters without a controlled vocabulary.
type ConstructionValue struct {
	ID             string
	ConstructionID string
	ParameterID    string
	Value          string
	CodeID         string
}
