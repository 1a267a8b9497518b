package models

// CatalogFilter is the set of optional, independently combinable catalog
// constraints. Empty fields mean "no constraint"; combining none of them
// yields every AVAILABLE car.
type CatalogFilter struct {
	// Search matches brand, model or plate as a case-insensitive substring,
	// OR year by exact equality. Year is intentionally exact-match while the
	// text fields are substring; catalog consumers rely on "2023" not
	// matching a brand like "20234 Motors" unless it literally contains the
	// text.
	Search string

	// Brand is a case-insensitive substring match on brand.
	Brand string

	// YearMin/YearMax are inclusive bounds compared against the stored text
	// representation. Years are fixed 4-digit strings, so lexicographic
	// ordering coincides with numeric ordering. If the year format is ever
	// relaxed this comparison breaks silently.
	YearMin string
	YearMax string

	// PriceMin/PriceMax are inclusive bounds; zero means unset.
	PriceMin float64
	PriceMax float64
}

// IsZero reports whether no constraint is set.
func (f CatalogFilter) IsZero() bool {
	return f.Search == "" && f.Brand == "" &&
		f.YearMin == "" && f.YearMax == "" &&
		f.PriceMin == 0 && f.PriceMax == 0
}
