package series

import (
	"math"
	"testing"

	"github.com/guttosm/aquapulse/internal/domain/models"
)

func TestAggregateMonthly_GroupsAndSorts(t *testing.T) {
	daily := []models.DailyRecord{
		{Date: "2024-02-01", RecoveredLiters: 100, SalesAmount: 120, AvgTemperatureC: 20},
		{Date: "2024-01-15", RecoveredLiters: 300, SalesAmount: 360, AvgTemperatureC: 18},
		{Date: "2024-01-16", RecoveredLiters: 500, SalesAmount: 600, AvgTemperatureC: 22},
	}

	out := AggregateMonthly(daily)
	if len(out) != 2 {
		t.Fatalf("expected 2 months, got %d", len(out))
	}
	if out[0].Month != "2024-01" || out[1].Month != "2024-02" {
		t.Fatalf("months not sorted ascending: %+v", out)
	}

	jan := out[0]
	if jan.RecoveredLiters != 800 || jan.SalesAmount != 960 {
		t.Fatalf("january sums wrong: %+v", jan)
	}
	if math.Abs(jan.AvgTemperatureC-20) > 1e-9 {
		t.Fatalf("january avg temp = %v, want 20", jan.AvgTemperatureC)
	}
}

func TestAggregateMonthly_Empty(t *testing.T) {
	if out := AggregateMonthly(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d rows", len(out))
	}
}

func TestAggregateMonthly_SkipsMalformedDates(t *testing.T) {
	daily := []models.DailyRecord{
		{Date: "2024", RecoveredLiters: 10},
		{Date: "2024-03-01", RecoveredLiters: 5},
	}
	out := AggregateMonthly(daily)
	if len(out) != 1 || out[0].Month != "2024-03" {
		t.Fatalf("unexpected output: %+v", out)
	}
}
