package domain

// Languoid is a language-level record from a Glottolog languoid export.
type Languoid struct {
	ID           string
	Name         string
	ISO639P3code string
	Macroareas   []string
	Latitude     *float64
	Longitude    *float64
}

// PrimaryMacroarea returns the first recorded macro-area, or "" when
// Glottolog records none.
func (l Languoid) PrimaryMacroarea() string {
	if len(l.Macroareas) == 0 {
		return ""
	}
	return l.Macroareas[0]
}
