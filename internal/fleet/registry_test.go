package fleet

import (
	"testing"

	"github.com/guttosm/aquapulse/internal/domain/models"
)

func testManifest() *Manifest {
	return &Manifest{
		Classes: map[models.StationClass]models.StationConfig{
			models.ClassStandard: {PricePerLiter: 1.2, Currency: "ILS", TargetDailyYield: 870, VATRate: 0.17},
			models.ClassRegional: {PricePerLiter: 0.32, Currency: "EUR", TargetDailyYield: 800, VATRate: 0.19},
			models.ClassPartner:  {PricePerLiter: 0.35, Currency: "USD", TargetDailyYield: 900},
		},
		Stations: []Station{
			{ID: "ST-001", Class: models.ClassStandard, Status: models.StatusActive, Curated: true},
			{ID: "ST-NICOSIA-01", Class: models.ClassRegional, Status: models.StatusActive},
			{ID: "PX-201", Class: models.ClassPartner, Status: models.StatusActive},
		},
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry(testManifest())

	cases := []struct {
		name     string
		id       string
		currency string
	}{
		{name: "standard", id: "ST-001", currency: "ILS"},
		{name: "regional special case", id: "ST-NICOSIA-01", currency: "EUR"},
		{name: "partner", id: "PX-201", currency: "USD"},
		{name: "unknown id degrades to standard", id: "ST-999", currency: "ILS"},
		{name: "ambiguous-looking id still explicit", id: "PX-NICOSIA-99", currency: "ILS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := reg.Resolve(tc.id)
			if cfg.Currency != tc.currency {
				t.Fatalf("Resolve(%q).Currency = %q, want %q", tc.id, cfg.Currency, tc.currency)
			}
		})
	}
}

func TestRegistry_LookupAndIDs(t *testing.T) {
	reg := NewRegistry(testManifest())

	if _, ok := reg.Lookup("ST-999"); ok {
		t.Fatalf("Lookup of unregistered id reported ok")
	}
	st, ok := reg.Lookup("ST-001")
	if !ok || !st.Curated {
		t.Fatalf("Lookup(ST-001) = %+v, %v", st, ok)
	}

	ids := reg.IDs()
	want := []string{"ST-001", "ST-NICOSIA-01", "PX-201"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs()[%d] = %q, want %q (manifest order)", i, ids[i], want[i])
		}
	}
}

func TestLoadManifest_Embedded(t *testing.T) {
	m, err := LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Stations) == 0 {
		t.Fatalf("embedded manifest has no stations")
	}
	if _, ok := m.Classes[models.ClassStandard]; !ok {
		t.Fatalf("embedded manifest missing standard class")
	}
	for _, s := range m.Stations {
		if _, ok := m.Classes[s.Class]; !ok {
			t.Fatalf("station %s references unknown class %q", s.ID, s.Class)
		}
	}
}
