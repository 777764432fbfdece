package fleet

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/guttosm/aquapulse/internal/domain/models"
)

//go:embed data/fleet.json
var manifestJSON []byte

// Station is one fleet-membership entry from the manifest: identity, the
// financial class it was registered under, and its operational status.
type Station struct {
	ID               string               `json:"id"`
	Class            models.StationClass  `json:"class"`
	Status           models.StationStatus `json:"status"`
	Curated          bool                 `json:"curated"`
	BaseTemperatureC float64              `json:"base_temperature_c"`
}

// Manifest is the fleet-registration document: the class -> config table
// plus the list of registered stations. It is the only place a station id
// is bound to a configuration; nothing is inferred from id naming.
type Manifest struct {
	Classes  map[models.StationClass]models.StationConfig `json:"classes"`
	Stations []Station                                    `json:"stations"`
}

// LoadManifest parses the embedded fleet manifest and validates that every
// station references a declared class.
func LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(manifestJSON, &m); err != nil {
		return nil, fmt.Errorf("parse fleet manifest: %w", err)
	}
	if _, ok := m.Classes[models.ClassStandard]; !ok {
		return nil, fmt.Errorf("fleet manifest: missing %q class", models.ClassStandard)
	}
	for _, s := range m.Stations {
		if s.ID == "" {
			return nil, fmt.Errorf("fleet manifest: station with empty id")
		}
		if _, ok := m.Classes[s.Class]; !ok {
			return nil, fmt.Errorf("fleet manifest: station %s references unknown class %q", s.ID, s.Class)
		}
	}
	return &m, nil
}

// IDs returns every registered station id, in manifest order. This is the
// baseline set used to prime the repository on first fleet-wide queries.
func (m *Manifest) IDs() []string {
	out := make([]string, 0, len(m.Stations))
	for _, s := range m.Stations {
		out = append(out, s.ID)
	}
	return out
}
