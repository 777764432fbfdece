package history

import (
	"math"
	"math/rand"
	"time"

	"github.com/guttosm/aquapulse/internal/domain/models"
)

// Hourly window shape: 49 points at 30-minute spacing, i.e. the last 24h.
const (
	hourlyPoints = 49
	hourlyStep   = 30 * time.Minute
)

const (
	peakFlowFactor  = 1.25
	nightFlowFactor = 0.45
	fullStopChance  = 0.03
)

// buildHourly generates the short live-feel window: a diurnal sine-shaped
// temperature curve around the station base, a time-of-day flow multiplier
// (raised during the two daily peak bands, lowered at night), small
// additive noise, and an occasional random full stop.
//
// Offline stations report zero flow on every point.
func (b *Builder) buildHourly(cfg models.StationConfig, baseTemp float64, offline bool, rng *rand.Rand) []models.HourlyRecord {
	end := b.now().UTC().Truncate(hourlyStep)
	start := end.Add(-time.Duration(hourlyPoints-1) * hourlyStep)

	// Nominal flow for one 30-minute slot at target output.
	slotTarget := cfg.TargetDailyYield / float64(2*24)

	out := make([]models.HourlyRecord, 0, hourlyPoints)
	for i := 0; i < hourlyPoints; i++ {
		ts := start.Add(time.Duration(i) * hourlyStep)
		hour := float64(ts.Hour()) + float64(ts.Minute())/60

		temp := baseTemp + 7*math.Sin(2*math.Pi*(hour-9)/24) + (rng.Float64()-0.5)*1.2

		if offline {
			out = append(out, models.HourlyRecord{
				Timestamp:    ts,
				TemperatureC: round1(temp),
			})
			continue
		}

		flow := slotTarget * flowFactor(ts.Hour()) * (1 + (rng.Float64()-0.5)*0.2)
		eff := 1.0
		if rng.Float64() < fullStopChance {
			flow = 0
			eff = 0
		}
		if flow < 0 {
			flow = 0
		}
		if flow > 0 && slotTarget > 0 {
			eff = flow / (slotTarget * peakFlowFactor)
			if eff > 1 {
				eff = 1
			}
		}

		pressure := 0.0
		if flow > 0 {
			pressure = 112 + 10*eff + (rng.Float64()-0.5)*4
		}

		out = append(out, models.HourlyRecord{
			Timestamp:       ts,
			RecoveredLiters: round1(flow),
			TemperatureC:    round1(temp),
			PressurePSI:     round1(pressure),
			Efficiency:      round2(eff),
		})
	}
	return out
}

// flowFactor models the two daily peak demand bands and the overnight lull.
func flowFactor(hour int) float64 {
	switch {
	case hour >= 6 && hour < 9:
		return peakFlowFactor
	case hour >= 17 && hour < 21:
		return peakFlowFactor
	case hour >= 22 || hour < 5:
		return nightFlowFactor
	default:
		return 1.0
	}
}
