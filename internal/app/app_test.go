package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/aquapulse/config"
	"github.com/guttosm/aquapulse/internal/domain/models"
)

func testConfig() {
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Telemetry: config.TelemetryConfig{
			BaseCurrency:   "ILS",
			CutoffDate:     time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			SyntheticStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testConfig()

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp error: %v", err)
	}
	defer cleanup()

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s returned %d", path, w.Code)
		}
	}

	// A registered station must be served with a populated record.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stations/ST-007", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("station endpoint returned %d: %s", w.Code, w.Body.String())
	}
}

// fakeRepo counts Get calls so PrimeFleet's fan-out can be observed.
type fakeRepo struct {
	mu   sync.Mutex
	gets []string
}

func (f *fakeRepo) Get(id string) *models.StationRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, id)
	return &models.StationRecord{ID: id}
}

func (f *fakeRepo) UpdateConfig(id string, patch models.ConfigPatch) *models.StationRecord {
	return f.Get(id)
}
func (f *fakeRepo) Has(string) bool     { return false }
func (f *fakeRepo) Len() int            { return 0 }
func (f *fakeRepo) IDs() []string       { return nil }
func (f *fakeRepo) OnInvalidate(func()) {}

func TestPrimeFleet_BuildsEveryStation(t *testing.T) {
	repo := &fakeRepo{}
	ids := []string{"A", "B", "C", "D", "E", "F"}

	if err := PrimeFleet(context.Background(), repo, ids); err != nil {
		t.Fatalf("PrimeFleet error: %v", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	got := append([]string(nil), repo.gets...)
	sort.Strings(got)
	if len(got) != len(ids) {
		t.Fatalf("expected %d builds, got %d", len(ids), len(got))
	}
	for i, id := range ids {
		if got[i] != id {
			t.Fatalf("station %s not primed (got %v)", id, got)
		}
	}
}

func TestPrimeFleet_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &fakeRepo{}
	if err := PrimeFleet(ctx, repo, []string{"A", "B"}); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
