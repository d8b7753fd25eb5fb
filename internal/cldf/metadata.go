package cldf

// csvw metadata model, restricted to what a StructureDataset needs.

const (
	termsPrefix      = "http://cldf.clld.org/v1.0/terms.rdf#"
	structureDataset = termsPrefix + "StructureDataset"
)

type tableGroup struct {
	Context    []any   `json:"@context"`
	ConformsTo string  `json:"dc:conformsTo"`
	Source     string  `json:"dc:source"`
	Title      string  `json:"dc:title,omitempty"`
	ID         string  `json:"rdf:ID"`
	Type       string  `json:"rdf:type"`
	Tables     []table `json:"tables"`
}

type table struct {
	URL        string      `json:"url"`
	ConformsTo string      `json:"dc:conformsTo,omitempty"`
	Schema     tableSchema `json:"tableSchema"`
}

type tableSchema struct {
	Columns     []column     `json:"columns"`
	PrimaryKey  []string     `json:"primaryKey,omitempty"`
	ForeignKeys []foreignKey `json:"foreignKeys,omitempty"`
}

type column struct {
	Name        string `json:"name"`
	PropertyURL string `json:"propertyUrl,omitempty"`
	Datatype    any    `json:"datatype,omitempty"`
	Separator   string `json:"separator,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

type foreignKey struct {
	ColumnReference []string    `json:"columnReference"`
	Reference       fkReference `json:"reference"`
}

type fkReference struct {
	Resource        string   `json:"resource"`
	ColumnReference []string `json:"columnReference"`
}

type decimalType struct {
	Base    string   `json:"base"`
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

func fk(columns []string, resource string, target ...string) foreignKey {
	if len(target) == 0 {
		target = []string{"ID"}
	}
	return foreignKey{
		ColumnReference: columns,
		Reference:       fkReference{Resource: resource, ColumnReference: target},
	}
}

func coordinate(limit float64) decimalType {
	lo, hi := -limit, limit
	return decimalType{Base: "decimal", Minimum: &lo, Maximum: &hi}
}

// metadata declares the full dataset schema. Column names and property
// terms follow the CLDF ontology; the two construction tables are custom
// tables linked by an explicit foreign key from cvalues to constructions.
func metadata(ds *Dataset) tableGroup {
	return tableGroup{
		Context:    []any{"http://www.w3.org/ns/csvw", map[string]string{"@language": "en"}},
		ConformsTo: structureDataset,
		Source:     SourcesFile,
		Title:      ds.Title,
		ID:         ds.ID,
		Type:       "http://www.w3.org/ns/dcat#Distribution",
		Tables: []table{
			{
				URL:        ValuesFile,
				ConformsTo: termsPrefix + "ValueTable",
				Schema: tableSchema{
					Columns: []column{
						{Name: "ID", PropertyURL: termsPrefix + "id", Datatype: "string", Required: true},
						{Name: "Language_ID", PropertyURL: termsPrefix + "languageReference", Datatype: "string", Required: true},
						{Name: "Parameter_ID", PropertyURL: termsPrefix + "parameterReference", Datatype: "string", Required: true},
						{Name: "Value", PropertyURL: termsPrefix + "value", Datatype: "string"},
						{Name: "Code_ID", PropertyURL: termsPrefix + "codeReference", Datatype: "string"},
						{Name: "Comment", PropertyURL: termsPrefix + "comment", Datatype: "string"},
						{Name: "Source", PropertyURL: termsPrefix + "source", Datatype: "string", Separator: ";"},
					},
					PrimaryKey: []string{"ID"},
					ForeignKeys: []foreignKey{
						fk([]string{"Language_ID"}, LanguagesFile),
						fk([]string{"Parameter_ID"}, ParametersFile),
						fk([]string{"Code_ID"}, CodesFile),
					},
				},
			},
			{
				URL:        LanguagesFile,
				ConformsTo: termsPrefix + "LanguageTable",
				Schema: tableSchema{
					Columns: []column{
						{Name: "ID", PropertyURL: termsPrefix + "id", Datatype: "string", Required: true},
						{Name: "Name", PropertyURL: termsPrefix + "name", Datatype: "string"},
						{Name: "Macroarea", PropertyURL: termsPrefix + "macroarea", Datatype: "string"},
						{Name: "Latitude", PropertyURL: termsPrefix + "latitude", Datatype: coordinate(90)},
						{Name: "Longitude", PropertyURL: termsPrefix + "longitude", Datatype: coordinate(180)},
						{Name: "Glottocode", PropertyURL: termsPrefix + "glottocode", Datatype: "string"},
						{Name: "ISO639P3code", PropertyURL: termsPrefix + "iso639P3code", Datatype: "string"},
						{Name: "SubBranch", Datatype: "string"},
						{Name: "Family", Datatype: "string"},
					},
					PrimaryKey: []string{"ID"},
				},
			},
			{
				URL:        ParametersFile,
				ConformsTo: termsPrefix + "ParameterTable",
				Schema: tableSchema{
					Columns: []column{
						{Name: "ID", PropertyURL: termsPrefix + "id", Datatype: "string", Required: true},
						{Name: "Name", PropertyURL: termsPrefix + "name", Datatype: "string"},
						{Name: "Description", PropertyURL: termsPrefix + "description", Datatype: "string"},
					},
					PrimaryKey: []string{"ID"},
				},
			},
			{
				URL:        CodesFile,
				ConformsTo: termsPrefix + "CodeTable",
				Schema: tableSchema{
					Columns: []column{
						{Name: "ID", PropertyURL: termsPrefix + "id", Datatype: "string", Required: true},
						{Name: "Parameter_ID", PropertyURL: termsPrefix + "parameterReference", Datatype: "string", Required: true},
						{Name: "Name", PropertyURL: termsPrefix + "name", Datatype: "string"},
						{Name: "Description", PropertyURL: termsPrefix + "description", Datatype: "string"},
					},
					PrimaryKey: []string{"ID"},
					ForeignKeys: []foreignKey{
						fk([]string{"Parameter_ID"}, ParametersFile),
					},
				},
			},
			{
				URL: ConstructionsFile,
				Schema: tableSchema{
					Columns: []column{
						{Name: "ID", PropertyURL: termsPrefix + "id", Datatype: "string", Required: true},
						{Name: "Name", PropertyURL: termsPrefix + "name", Datatype: "string"},
						{Name: "Description", PropertyURL: termsPrefix + "description", Datatype: "string"},
						{Name: "Language_ID", PropertyURL: termsPrefix + "languageReference", Datatype: "string"},
						{Name: "Source", PropertyURL: termsPrefix + "source", Datatype: "string", Separator: ";"},
					},
					PrimaryKey: []string{"ID"},
					ForeignKeys: []foreignKey{
						fk([]string{"Language_ID"}, LanguagesFile),
					},
				},
			},
			{
				URL: CValuesFile,
				Schema: tableSchema{
					Columns: []column{
						{Name: "ID", PropertyURL: termsPrefix + "id", Datatype: "string", Required: true},
						{Name: "Construction_ID", Datatype: "string"},
						{Name: "Parameter_ID", PropertyURL: termsPrefix + "parameterReference", Datatype: "string"},
						{Name: "Value", PropertyURL: termsPrefix + "value", Datatype: "string"},
						{Name: "Code_ID", PropertyURL: termsPrefix + "codeReference", Datatype: "string"},
						{Name: "Comment", PropertyURL: termsPrefix + "comment", Datatype: "string"},
					},
					PrimaryKey: []string{"ID"},
					ForeignKeys: []foreignKey{
						fk([]string{"Construction_ID"}, ConstructionsFile),
						fk([]string{"Parameter_ID"}, ParametersFile),
						fk([]string{"Code_ID"}, CodesFile),
					},
				},
			},
		},
	}
}
