package domain

// SearchFilter is the structured filter map for one collection search.
// Field names come from the collection registry; empty field names mean
// the collection does not support that filter.
type SearchFilter struct {
	GeneField string
	Gene      string
	YearField string
	YearMin   int // 0 = unbounded
	YearMax   int // 0 = unbounded
}

// IsZero reports whether no filter condition is set.
func (f SearchFilter) IsZero() bool {
	return (f.GeneField == "" || f.Gene == "") &&
		(f.YearField == "" || (f.YearMin == 0 && f.YearMax == 0))
}

// StoreHit is one raw nearest-neighbor hit from the vector store, before
// weighting and provenance tagging.
type StoreHit struct {
	ID       string
	Score    float64 // raw similarity, 0..1
	Content  string
	Metadata map[string]string
}
