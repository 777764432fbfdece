package history

import (
	"math/rand"

	"github.com/guttosm/aquapulse/internal/domain/models"
)

// Synthetic daily generation knobs.
const (
	syntheticJitter = 0.30 // +/-30% around the class target
	outageChance    = 0.02 // rare full-stop day
)

// buildSynthetic generates a contiguous daily series from the configured
// start date through the cutoff for stations without curated history.
//
// Each day's volume is the class target with +/-30% jitter, floored at 0.
// A small fraction of days are forced to zero output with a maintenance
// reason, matching what real units report.
func (b *Builder) buildSynthetic(cfg models.StationConfig, baseTemp float64, rng *rand.Rand) []models.DailyRecord {
	var out []models.DailyRecord
	for d := b.start; !d.After(b.cutoff); d = d.AddDate(0, 0, 1) {
		if rng.Float64() < outageChance {
			out = append(out, b.dailyRecord(d, 0, cfg, baseTemp, rng, ReasonMaintenance))
			continue
		}
		liters := cfg.TargetDailyYield * (1 + (rng.Float64()*2-1)*syntheticJitter)
		if liters < 0 {
			liters = 0
		}
		out = append(out, b.dailyRecord(d, round1(liters), cfg, baseTemp, rng, ""))
	}
	return out
}

// buildPreinstall emits a strict all-zero series: the unit is registered in
// the fleet but not yet producing.
func (b *Builder) buildPreinstall(baseTemp float64, rng *rand.Rand) []models.DailyRecord {
	var out []models.DailyRecord
	for d := b.start; !d.After(b.cutoff); d = d.AddDate(0, 0, 1) {
		out = append(out, b.dailyRecord(d, 0, models.StationConfig{}, baseTemp, rng, ReasonPendingInstall))
	}
	return out
}
