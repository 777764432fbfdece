package series

import (
	"sort"

	"github.com/guttosm/aquapulse/internal/domain/models"
)

// AggregateMonthly folds a station's daily series into one record per
// year-month: liters and sales are summed, temperature is averaged.
//
// The fold is pure and cheap, so it is recomputed whenever the daily series
// changes instead of being cached. Output is sorted by month ascending.
func AggregateMonthly(daily []models.DailyRecord) []models.MonthlyRecord {
	type bucket struct {
		liters float64
		sales  float64
		temp   float64
		days   int
	}
	buckets := make(map[string]*bucket)

	for _, d := range daily {
		if len(d.Date) < len(models.MonthLayout) {
			continue
		}
		month := d.Date[:len(models.MonthLayout)]
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.liters += d.RecoveredLiters
		b.sales += d.SalesAmount
		b.temp += d.AvgTemperatureC
		b.days++
	}

	out := make([]models.MonthlyRecord, 0, len(buckets))
	for month, b := range buckets {
		avg := 0.0
		if b.days > 0 {
			avg = b.temp / float64(b.days)
		}
		out = append(out, models.MonthlyRecord{
			Month:           month,
			RecoveredLiters: b.liters,
			SalesAmount:     b.sales,
			AvgTemperatureC: avg,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
