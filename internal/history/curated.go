package history

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/series"
)

//go:embed data/history.json
var historyJSON []byte

// CuratedTables holds the hand-specified monthly totals:
// station id -> year ("2024") -> month ("03") -> liters for that month.
//
// Totals are expanded into per-day values with series.Distribute at build
// time, so the January entry summed across January's daily records is the
// January total exactly.
type CuratedTables map[string]map[string]map[string]int

// LoadCuratedTables parses the embedded history tables.
func LoadCuratedTables() (CuratedTables, error) {
	var t CuratedTables
	if err := json.Unmarshal(historyJSON, &t); err != nil {
		return nil, fmt.Errorf("parse curated history: %w", err)
	}
	return t, nil
}

// buildCurated emits one DailyRecord per calendar day of every year the
// table knows about for this station.
//
// Rules:
//   - A month absent from a known year contributes zero-liter days.
//   - Dates strictly after the cutoff are skipped.
//   - A date already emitted is skipped, never double-inserted. Well-formed
//     tables cannot trigger this; it guards the no-duplicate invariant.
func (b *Builder) buildCurated(table map[string]map[string]int, cfg models.StationConfig, baseTemp float64, rng *rand.Rand) []models.DailyRecord {
	years := make([]string, 0, len(table))
	for y := range table {
		years = append(years, y)
	}
	sort.Strings(years)

	var out []models.DailyRecord
	seen := make(map[string]struct{})

	for _, y := range years {
		year, err := time.Parse("2006", y)
		if err != nil {
			continue
		}
		for m := time.January; m <= time.December; m++ {
			days := daysInMonth(year.Year(), m)
			var values []int
			if total, ok := table[y][fmt.Sprintf("%02d", int(m))]; ok {
				values = series.Distribute(total, days)
			}
			for day := 1; day <= days; day++ {
				date := time.Date(year.Year(), m, day, 0, 0, 0, 0, time.UTC)
				if date.After(b.cutoff) {
					continue
				}
				key := date.Format(models.DateLayout)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				liters := 0.0
				if values != nil {
					liters = float64(values[day-1])
				}
				out = append(out, b.dailyRecord(date, liters, cfg, baseTemp, rng, ""))
			}
		}
	}
	return out
}

// daysInMonth returns the number of calendar days in the given month.
func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
