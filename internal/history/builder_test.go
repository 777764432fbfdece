package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/fleet"
)

var testConfig = models.StationConfig{
	PricePerLiter:         1.2,
	Currency:              "ILS",
	TargetDailyYield:      870,
	VATRate:               0.17,
	ElectricityKwPerLiter: 0.35,
	ElectricityCostPerKw:  0.53,
}

func testBuilder(t *testing.T) *Builder {
	t.Helper()

	manifest := &fleet.Manifest{
		Classes: map[models.StationClass]models.StationConfig{
			models.ClassStandard: testConfig,
		},
		Stations: []fleet.Station{
			{ID: "CUR-1", Class: models.ClassStandard, Status: models.StatusActive, Curated: true, BaseTemperatureC: 25},
			{ID: "SYN-1", Class: models.ClassStandard, Status: models.StatusActive, BaseTemperatureC: 24},
			{ID: "PRE-1", Class: models.ClassStandard, Status: models.StatusPreinstall, BaseTemperatureC: 24},
			{ID: "OFF-1", Class: models.ClassStandard, Status: models.StatusOffline, BaseTemperatureC: 24},
		},
	}

	return &Builder{
		registry: fleet.NewRegistry(manifest),
		curated: CuratedTables{
			"CUR-1": {"2024": {"01": 487, "02": 300}},
		},
		cutoff: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		now:    func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func monthTotal(daily []models.DailyRecord, month string) float64 {
	total := 0.0
	for _, d := range daily {
		if len(d.Date) >= 7 && d.Date[:7] == month {
			total += d.RecoveredLiters
		}
	}
	return total
}

func TestBuild_CuratedExactMonthlyTotals(t *testing.T) {
	b := testBuilder(t)
	daily, _ := b.Build("CUR-1", testConfig)
	require.NotEmpty(t, daily)

	// Distributed totals must survive the expansion exactly.
	assert.Equal(t, 487.0, monthTotal(daily, "2024-01"))
	assert.Equal(t, 300.0, monthTotal(daily, "2024-02"))

	// March is a known year but an absent month: zero-liter days only.
	assert.Equal(t, 0.0, monthTotal(daily, "2024-03"))

	for _, d := range daily {
		assert.InDelta(t, d.RecoveredLiters*testConfig.PricePerLiter, d.SalesAmount, 1e-9)
	}
}

func TestBuild_NoDuplicatesAndCutoffRespected(t *testing.T) {
	b := testBuilder(t)

	for _, id := range []string{"CUR-1", "SYN-1", "PRE-1"} {
		daily, _ := b.Build(id, testConfig)
		seen := make(map[string]struct{})
		for _, d := range daily {
			_, dup := seen[d.Date]
			require.False(t, dup, "station %s has duplicate date %s", id, d.Date)
			seen[d.Date] = struct{}{}
			require.LessOrEqual(t, d.Date, "2024-03-15", "station %s has date past cutoff", id)
		}
	}
}

func TestBuild_PreinstallAllZero(t *testing.T) {
	b := testBuilder(t)
	daily, _ := b.Build("PRE-1", testConfig)

	// Strict contiguous series from start through cutoff.
	require.Len(t, daily, 31+29+15)
	for _, d := range daily {
		assert.Zero(t, d.RecoveredLiters)
		assert.Zero(t, d.SalesAmount)
		assert.Equal(t, ReasonPendingInstall, d.OutageReason)
	}
}

func TestBuild_UnknownIDPlaceholder(t *testing.T) {
	b := testBuilder(t)
	daily, hourly := b.Build("ZZ-404", testConfig)

	require.Len(t, daily, 1)
	assert.Equal(t, "2024-03-15", daily[0].Date)
	assert.Zero(t, daily[0].RecoveredLiters)
	assert.Equal(t, ReasonPending, daily[0].OutageReason)
	assert.Len(t, hourly, 49)
}

func TestBuild_SyntheticBounds(t *testing.T) {
	b := testBuilder(t)
	daily, _ := b.Build("SYN-1", testConfig)

	require.Len(t, daily, 31+29+15)
	for _, d := range daily {
		require.GreaterOrEqual(t, d.RecoveredLiters, 0.0)
		if d.OutageReason == "" {
			// +/-30% around the class target.
			assert.InDelta(t, testConfig.TargetDailyYield, d.RecoveredLiters, testConfig.TargetDailyYield*0.31)
		} else {
			assert.Zero(t, d.RecoveredLiters)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := testBuilder(t)
	first, _ := b.Build("SYN-1", testConfig)
	second, _ := b.Build("SYN-1", testConfig)
	require.Equal(t, first, second, "same id must rebuild the same series")
}

func TestBuildHourly_WindowAndOffline(t *testing.T) {
	b := testBuilder(t)

	_, hourly := b.Build("SYN-1", testConfig)
	require.Len(t, hourly, 49)
	for i := 1; i < len(hourly); i++ {
		assert.Equal(t, 30*time.Minute, hourly[i].Timestamp.Sub(hourly[i-1].Timestamp))
	}

	_, offline := b.Build("OFF-1", testConfig)
	require.Len(t, offline, 49)
	for _, h := range offline {
		assert.Zero(t, h.RecoveredLiters, "offline stations report zero flow")
		assert.Zero(t, h.Efficiency)
	}
}
