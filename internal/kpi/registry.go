// Package kpi holds the KPI formula library: pure numeric functions keyed
// by id, each declaring the record fields it consumes and the benchmark
// input it expects.
package kpi

// FormulaFunc computes a raw annual impact from named record inputs plus
// one scenario benchmark value. Implementations validate their own value
// domain and return an error on violations; they never panic.
type FormulaFunc func(inputs map[string]float64, benchmark float64) (float64, error)

// Definition is a reusable KPI entry in the library.
type Definition struct {
	ID             string
	Label          string
	Description    string
	RequiredInputs []string // CompanyRecord field keys
	BenchmarkInput string   // name the benchmark value is bound to
	Formula        FormulaFunc
	Unit           string
	Category       string
}

// Registry is an indexed, constructed-once collection of KPI definitions.
// Build it with NewRegistry (or DefaultRegistry) and pass it explicitly
// into the calculation engine; there is no process-global registration.
type Registry struct {
	byID map[string]Definition
	ids  []string
}

// NewRegistry indexes the given definitions. Later duplicates of an id
// replace earlier ones.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{byID: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, exists := r.byID[d.ID]; !exists {
			r.ids = append(r.ids, d.ID)
		}
		r.byID[d.ID] = d
	}
	return r
}

// Get looks up a definition by id.
func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Has reports whether an id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// IDs returns all registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
