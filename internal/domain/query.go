package domain

// Query is one retrieval request: free text plus optional structured
// filters. Immutable once constructed.
type Query struct {
	Text        string
	Genes       []string // extracted gene symbols, first is the filter entity
	CancerTypes []string
	Strategy    Strategy
	Collections []string // restrict to these collection names, nil = all
	YearMin     int      // 0 = unbounded
	YearMax     int      // 0 = unbounded
	TopK        int
}

// Gene returns the primary gene filter entity, or "" when none was extracted.
func (q Query) Gene() string {
	if len(q.Genes) == 0 {
		return ""
	}
	return q.Genes[0]
}
