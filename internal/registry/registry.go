// Package registry holds the static table of searchable oncology
// collections: per-collection ranking weight, display label, and which
// structured fields the collection supports as search filters.
package registry

// Collection names. One logically distinct store of embedded records
// per semantic type.
const (
	Variants   = "onco_variants"
	Literature = "onco_literature"
	Therapies  = "onco_therapies"
	Guidelines = "onco_guidelines"
	Trials     = "onco_trials"
	Biomarkers = "onco_biomarkers"
	Resistance = "onco_resistance"
	Pathways   = "onco_pathways"
	Outcomes   = "onco_outcomes"
	Cases      = "onco_cases"
	Genomic    = "genomic_evidence"
)

// CollectionConfig describes one searchable collection.
// GeneField / YearField are empty when the collection does not support
// that filter.
type CollectionConfig struct {
	Name      string
	Weight    float64
	Label     string
	GeneField string
	YearField string
}

// Registry is the read-only collection table. Safe for unsynchronized
// concurrent reads after construction.
type Registry struct {
	order   []string
	entries map[string]CollectionConfig
}

// New builds a registry from configs, preserving order.
func New(configs ...CollectionConfig) *Registry {
	r := &Registry{entries: make(map[string]CollectionConfig, len(configs))}
	for _, c := range configs {
		if _, dup := r.entries[c.Name]; dup {
			continue
		}
		r.order = append(r.order, c.Name)
		r.entries[c.Name] = c
	}
	return r
}

// Default returns the production collection table. Weights sum to ~1.0
// across the table; this is advisory and not enforced.
func Default() *Registry {
	return New(
		CollectionConfig{Name: Variants, Weight: 0.18, Label: "Variant", GeneField: "gene"},
		CollectionConfig{Name: Literature, Weight: 0.16, Label: "Literature", GeneField: "gene", YearField: "year"},
		CollectionConfig{Name: Therapies, Weight: 0.14, Label: "Therapy"},
		CollectionConfig{Name: Guidelines, Weight: 0.12, Label: "Guideline", YearField: "year"},
		CollectionConfig{Name: Trials, Weight: 0.10, Label: "Trial", YearField: "start_year"},
		CollectionConfig{Name: Biomarkers, Weight: 0.08, Label: "Biomarker"},
		CollectionConfig{Name: Resistance, Weight: 0.07, Label: "Resistance", GeneField: "gene"},
		CollectionConfig{Name: Pathways, Weight: 0.06, Label: "Pathway"},
		CollectionConfig{Name: Outcomes, Weight: 0.04, Label: "Outcome"},
		CollectionConfig{Name: Cases, Weight: 0.02, Label: "Case"},
		CollectionConfig{Name: Genomic, Weight: 0.03, Label: "Genomic"},
	)
}

// Get returns the config for a collection name.
func (r *Registry) Get(name string) (CollectionConfig, bool) {
	c, ok := r.entries[name]
	return c, ok
}

// Names returns all collection names in table order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Targets intersects an explicit filter with the known table, preserving
// filter order and dropping unknown names. A nil or empty filter selects
// the full table.
func (r *Registry) Targets(filter []string) []string {
	if len(filter) == 0 {
		return r.Names()
	}
	out := make([]string, 0, len(filter))
	for _, name := range filter {
		if _, ok := r.entries[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of configured collections.
func (r *Registry) Len() int { return len(r.order) }

// WithWeight returns a copy of the registry with one collection's weight
// replaced. Used by config overrides and tests.
func (r *Registry) WithWeight(name string, weight float64) *Registry {
	configs := make([]CollectionConfig, 0, len(r.order))
	for _, n := range r.order {
		c := r.entries[n]
		if n == name {
			c.Weight = weight
		}
		configs = append(configs, c)
	}
	return New(configs...)
}
