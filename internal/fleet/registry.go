package fleet

import "github.com/guttosm/aquapulse/internal/domain/models"

// Registry resolves a station id to its effective financial configuration
// and membership entry. It is built once from the manifest and read-only
// afterwards, so class assignment can never drift with id naming schemes.
type Registry struct {
	classes  map[models.StationClass]models.StationConfig
	stations map[string]Station
	order    []string
}

// NewRegistry indexes a loaded manifest.
func NewRegistry(m *Manifest) *Registry {
	r := &Registry{
		classes:  m.Classes,
		stations: make(map[string]Station, len(m.Stations)),
		order:    m.IDs(),
	}
	for _, s := range m.Stations {
		r.stations[s.ID] = s
	}
	return r
}

// Resolve returns the effective configuration for a station id.
//
// Registered stations get their class configuration; any other id degrades
// to the standard default. Resolve never fails: the repository must be able
// to produce a valid record for any string id, including units added to a
// fleet without pre-seeded history.
func (r *Registry) Resolve(id string) models.StationConfig {
	if s, ok := r.stations[id]; ok {
		return r.classes[s.Class]
	}
	return r.classes[models.ClassStandard]
}

// Lookup returns the membership entry for a registered id. Unregistered ids
// report ok=false and a zero Station.
func (r *Registry) Lookup(id string) (Station, bool) {
	s, ok := r.stations[id]
	return s, ok
}

// IDs returns the registered station ids in manifest order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
