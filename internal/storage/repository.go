package storage

import (
	"sort"
	"sync"

	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/logger"
	"github.com/guttosm/aquapulse/internal/series"
)

// ConfigResolver yields the effective financial configuration for an id.
type ConfigResolver interface {
	Resolve(id string) models.StationConfig
}

// RecordBuilder produces a station's daily and hourly series.
type RecordBuilder interface {
	Build(id string, cfg models.StationConfig) ([]models.DailyRecord, []models.HourlyRecord)
}

// StationRepository is the memoizing store for extended station records.
//
// Get is lazy and idempotent: the first call for an id resolves config,
// builds the series and caches the record; every later call returns that
// same record until UpdateConfig replaces its derived slices.
type StationRepository interface {
	Get(id string) *models.StationRecord
	UpdateConfig(id string, patch models.ConfigPatch) *models.StationRecord
	Has(id string) bool
	Len() int
	IDs() []string
	OnInvalidate(fn func())
}

type stationRepository struct {
	mu       sync.Mutex
	records  map[string]*models.StationRecord
	resolver ConfigResolver
	builder  RecordBuilder

	// invalidate is notified under mu whenever a record is created or
	// updated, so the dirty signal and the map write stay atomic.
	invalidate func()
}

// NewStationRepository builds an empty repository over the given resolver
// and builder.
func NewStationRepository(resolver ConfigResolver, builder RecordBuilder) StationRepository {
	return &stationRepository{
		records:  make(map[string]*models.StationRecord),
		resolver: resolver,
		builder:  builder,
	}
}

// OnInvalidate registers the listener told about data changes. The fleet
// aggregation cache uses this as its dirty bit.
func (r *stationRepository) OnInvalidate(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidate = fn
}

// Get returns the cached record for id, building it on first touch.
func (r *stationRepository) Get(id string) *models.StationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.records[id]; ok {
		cacheHits.Inc()
		return rec
	}

	cfg := r.resolver.Resolve(id)
	daily, hourly := r.builder.Build(id, cfg)
	rec := &models.StationRecord{
		ID:      id,
		Config:  cfg,
		Hourly:  hourly,
		Daily:   daily,
		Monthly: series.AggregateMonthly(daily),
	}
	r.records[id] = rec

	stationBuilds.Inc()
	cachedStations.Set(float64(len(r.records)))
	logger.L().Debug().Str("station", id).Int("daily", len(daily)).Msg("station record built")

	r.notifyLocked()
	return rec
}

// UpdateConfig merges the patch into the stored config and rebuilds every
// derived monetary field.
//
// The daily and monthly slices are replaced, not mutated in place: callers
// holding references from before the update keep a stale but safe view.
func (r *stationRepository) UpdateConfig(id string, patch models.ConfigPatch) *models.StationRecord {
	rec := r.Get(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Config = patch.Apply(rec.Config)

	daily := make([]models.DailyRecord, len(rec.Daily))
	copy(daily, rec.Daily)
	for i := range daily {
		daily[i].SalesAmount = daily[i].RecoveredLiters * rec.Config.PricePerLiter
	}
	rec.Daily = daily
	rec.Monthly = series.AggregateMonthly(daily)

	configUpdates.Inc()
	logger.L().Info().Str("station", id).Float64("price_per_liter", rec.Config.PricePerLiter).Msg("station config updated")

	r.notifyLocked()
	return rec
}

// Has reports whether a record for id has already been built.
func (r *stationRepository) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[id]
	return ok
}

// Len returns the number of cached records.
func (r *stationRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// IDs returns every id with a built record, sorted for stable iteration.
func (r *stationRepository) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.records))
	for id := range r.records {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *stationRepository) notifyLocked() {
	if r.invalidate != nil {
		r.invalidate()
	}
}
