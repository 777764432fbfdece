package history

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/fleet"
)

// Outage reasons attached to zero-output daily records.
const (
	ReasonPendingInstall = "pending installation"
	ReasonPending        = "pending"
	ReasonMaintenance    = "maintenance stop"
)

// defaultBaseTemperature is used for ids the manifest doesn't know.
const defaultBaseTemperature = 24.0

// Builder assembles a station's full daily and hourly series.
//
// Strategy selection:
//   - Registered stations with curated history tables replay those tables
//     (monthly totals distributed into exact-sum daily values).
//   - Registered pre-installation stations get an all-zero series with a
//     fixed pending-installation reason on every row.
//   - Other registered stations get a synthetic series from the configured
//     start date through the cutoff.
//   - Unknown ids get a minimal one-row placeholder. No id ever fails: a
//     string id may be a unit added to a fleet without pre-seeded history.
//
// Hourly generation is always synthetic and independent of the daily
// strategy; it is regenerated fresh on every build.
type Builder struct {
	registry *fleet.Registry
	curated  CuratedTables
	cutoff   time.Time
	start    time.Time

	// now anchors the hourly rolling window; overridable in tests.
	now func() time.Time
}

// NewBuilder loads the curated tables and returns a builder bounded by the
// global cutoff date and the synthetic-series start date.
func NewBuilder(registry *fleet.Registry, cutoff, syntheticStart time.Time) (*Builder, error) {
	tables, err := LoadCuratedTables()
	if err != nil {
		return nil, err
	}
	return &Builder{
		registry: registry,
		curated:  tables,
		cutoff:   cutoff,
		start:    syntheticStart,
		now:      time.Now,
	}, nil
}

// Build produces the daily and hourly series for one station id.
//
// The per-station RNG is seeded from the id, so repeated builds of the same
// station produce the same series.
func (b *Builder) Build(id string, cfg models.StationConfig) ([]models.DailyRecord, []models.HourlyRecord) {
	rng := rand.New(rand.NewSource(seed(id)))

	st, registered := b.registry.Lookup(id)
	baseTemp := defaultBaseTemperature
	if registered && st.BaseTemperatureC != 0 {
		baseTemp = st.BaseTemperatureC
	}

	var daily []models.DailyRecord
	switch {
	case !registered:
		daily = []models.DailyRecord{{
			Date:         b.cutoff.Format(models.DateLayout),
			OutageReason: ReasonPending,
		}}
	case st.Status == models.StatusPreinstall:
		daily = b.buildPreinstall(baseTemp, rng)
	case st.Curated && b.curated[id] != nil:
		daily = b.buildCurated(b.curated[id], cfg, baseTemp, rng)
	default:
		daily = b.buildSynthetic(cfg, baseTemp, rng)
	}

	offline := registered && st.Status != models.StatusActive
	hourly := b.buildHourly(cfg, baseTemp, offline, rng)
	return daily, hourly
}

// dailyRecord assembles one record: seasonal temperature around the station
// base, sales at the current liter price, efficiency against class target.
func (b *Builder) dailyRecord(date time.Time, liters float64, cfg models.StationConfig, baseTemp float64, rng *rand.Rand, reason string) models.DailyRecord {
	seasonal := 6 * math.Sin(2*math.Pi*float64(date.YearDay()-105)/365)
	temp := baseTemp + seasonal + (rng.Float64()-0.5)*3

	eff := 0.0
	if cfg.TargetDailyYield > 0 {
		eff = liters / cfg.TargetDailyYield
		if eff > 1 {
			eff = 1
		}
	}

	return models.DailyRecord{
		Date:            date.Format(models.DateLayout),
		RecoveredLiters: liters,
		AvgTemperatureC: round1(temp),
		SalesAmount:     liters * cfg.PricePerLiter,
		Efficiency:      round2(eff),
		OutageReason:    reason,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// seed derives a stable RNG seed from a station id.
func seed(id string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return int64(h.Sum64())
}
