package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/logger"
	"github.com/guttosm/aquapulse/internal/storage"
)

var yearWindow = regexp.MustCompile(`^\d{4}$`)

// FleetService computes fleet-wide, currency-normalized financial summaries
// per calendar date.
type FleetService interface {
	// Aggregate folds every contributing station's daily records inside
	// the window into per-date totals. ids is an optional explicit fleet
	// subset; when empty the whole repository contributes.
	Aggregate(ctx context.Context, window string, ids []string) ([]models.FleetRow, error)
}

type fleetService struct {
	repo     storage.StationRepository
	baseline []string
	base     string

	// cache holds results for the unscoped query shape only, keyed by
	// window. Explicit-subset queries never read or write it, so a caller
	// asking about two stations cannot poison the fleet-wide totals.
	mu    sync.Mutex
	cache map[string][]models.FleetRow
	dirty bool
}

// NewFleetService wires the aggregator to the repository and registers its
// cache with the repository's invalidation signal.
//
// Parameters:
//   - repo: the memoizing station repository.
//   - baseline: station ids used to prime an empty repository on the first
//     unscoped call (fleet membership from the manifest).
//   - baseCurrency: the currency every monetary sum is normalized into.
func NewFleetService(repo storage.StationRepository, baseline []string, baseCurrency string) FleetService {
	s := &fleetService{
		repo:     repo,
		baseline: baseline,
		base:     baseCurrency,
		cache:    make(map[string][]models.FleetRow),
	}
	repo.OnInvalidate(s.invalidate)
	return s
}

// invalidate is the dirty bit: it is called by the repository whenever a
// station record is created or updated.
func (s *fleetService) invalidate() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
	fleetCacheInvalidations.Inc()
}

func (s *fleetService) Aggregate(_ context.Context, window string, ids []string) ([]models.FleetRow, error) {
	if window != models.WindowAll && !yearWindow.MatchString(window) {
		return nil, fmt.Errorf("invalid window %q: want %q or a four-digit year", window, models.WindowAll)
	}

	// Explicit subsets are always recomputed fresh.
	if len(ids) > 0 {
		return s.compute(window, ids), nil
	}

	// First unscoped touch of an empty repository primes the baseline
	// fleet so the first dashboard load sees the whole fleet.
	if s.repo.Len() == 0 {
		for _, id := range s.baseline {
			s.repo.Get(id)
		}
	}

	s.mu.Lock()
	if s.dirty {
		s.cache = make(map[string][]models.FleetRow)
		s.dirty = false
	}
	if rows, ok := s.cache[window]; ok {
		s.mu.Unlock()
		fleetCacheHits.Inc()
		return rows, nil
	}
	s.mu.Unlock()
	contributing := s.repo.IDs()

	fleetCacheMisses.Inc()
	rows := s.compute(window, contributing)

	s.mu.Lock()
	// A build triggered by compute marks the cache dirty again; storing
	// the rows we just derived from that exact state is still correct.
	s.dirty = false
	s.cache[window] = rows
	s.mu.Unlock()

	logger.L().Debug().Str("window", window).Int("rows", len(rows)).Msg("fleet aggregate computed")
	return rows, nil
}

// compute folds the requested stations into per-date totals, normalizing
// revenue and expenses into the base currency before accumulation.
//
// Expenses per record: the VAT portion of its revenue plus electricity,
// liters x kWh-per-liter x cost-per-kWh, both in the station's currency.
// Profit is derived once per date after every station has been folded in.
func (s *fleetService) compute(window string, ids []string) []models.FleetRow {
	type totals struct {
		liters   float64
		revenue  float64
		expenses float64
	}
	acc := make(map[string]*totals)

	// A station listed twice must not double-count.
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		rec := s.repo.Get(id)
		cfg := rec.Config
		for _, d := range rec.Daily {
			if !inWindow(d.Date, window) {
				continue
			}
			t, ok := acc[d.Date]
			if !ok {
				t = &totals{}
				acc[d.Date] = t
			}
			t.liters += d.RecoveredLiters

			revenueLocal := d.SalesAmount
			expensesLocal := revenueLocal*cfg.VATRate +
				d.RecoveredLiters*cfg.ElectricityKwPerLiter*cfg.ElectricityCostPerKw
			t.revenue += normalize(revenueLocal, cfg.Currency, s.base)
			t.expenses += normalize(expensesLocal, cfg.Currency, s.base)
		}
	}

	rows := make([]models.FleetRow, 0, len(acc))
	for date, t := range acc {
		rows = append(rows, models.FleetRow{
			Date:            date,
			RecoveredLiters: t.liters,
			Revenue:         t.revenue,
			Expenses:        t.expenses,
			Profit:          t.revenue - t.expenses,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// inWindow matches a daily record date against the requested window: a
// four-digit year prefix, or everything for WindowAll. Generated dates are
// already bounded by the global cutoff.
func inWindow(date, window string) bool {
	if window == models.WindowAll {
		return true
	}
	return len(date) >= 4 && date[:4] == window
}
