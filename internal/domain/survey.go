package domain

// Column headers of the raw survey table that the pipeline reads directly.
// Feature columns are listed in ParameterColumns.
const (
	ColGlottocode = "Glottolog.Name"
	ColLanguage   = "Language"
	ColSubBranch  = "Sub-branch"
	ColFamily     = "Family"
	ColSource     = "Source"
)

// MarkerParameterID is the free-text marker-form parameter. It is the one
// surveyed feature without a controlled vocabulary: no codes are built for
// it and its values never carry a code reference.
const MarkerParameterID = "ap-marker"

// ParameterColumn ties a raw survey column to the parameter it encodes.
type ParameterColumn struct {
	Column      string
	ParameterID string
}

// ParameterColumns lists the surveyed antipassive features in the order
// their values appear on each construction. The order is part of the
// output format and must not change.
var ParameterColumns = []ParameterColumn{
	{Column: "AP marker", ParameterID: "ap-marker"},
	{Column: "Type of AP Marker", ParameterID: "marker-type"},
	{Column: "FunctionAP", ParameterID: "functions"},
	{Column: "Polysemy", ParameterID: "polysemy"},
	{Column: "Productivity of AP", ParameterID: "productivity"},
	{Column: "Obligatoriness of P", ParameterID: "p-obligatoriness"},
	{Column: "Definiteness P", ParameterID: "p-definiteness"},
}
