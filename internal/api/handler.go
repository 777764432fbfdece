package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aquapulse/internal/domain/dto"
	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/service"
)

// Handler provides HTTP handlers for the station repository and the fleet
// aggregation endpoints.
//
// Responsibilities:
//   - Validate incoming path/query/body parameters
//   - Call the service layer
//   - Translate records into response DTOs with appropriate status codes
type Handler struct {
	stations service.StationService
	fleet    service.FleetService
	base     string
}

// NewHandler constructs a Handler over the two service interfaces.
//
// Parameters:
//   - stations: per-station reads and config updates.
//   - fleet: fleet-wide aggregation.
//   - baseCurrency: echoed in fleet responses so consumers know the unit.
func NewHandler(stations service.StationService, fleet service.FleetService, baseCurrency string) *Handler {
	return &Handler{stations: stations, fleet: fleet, base: baseCurrency}
}

// GetStation handles GET /api/v1/stations/:id.
//
// Any id yields a record: unknown ids degrade to a placeholder series, so
// this endpoint never returns 404.
//
// GetStation godoc
// @Summary      Get a station's extended record
// @Description  Returns config, hourly window, daily series and monthly fold for one station
// @Tags         stations
// @Produce      json
// @Param        id   path      string  true  "Station id"  example(ST-001)
// @Success      200  {object}  dto.StationResponse    "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Router       /api/v1/stations/{id} [get]
func (h *Handler) GetStation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("station id is required", nil))
		return
	}

	rec := h.stations.GetStation(c.Request.Context(), id)
	c.JSON(http.StatusOK, dto.NewStationResponse(rec))
}

// UpdateStationConfig handles PATCH /api/v1/stations/:id/config.
//
// The body is a partial config; absent fields keep their stored value. On
// success the returned record already carries recomputed sales and monthly
// figures.
//
// UpdateStationConfig godoc
// @Summary      Update a station's financial configuration
// @Description  Merges a partial config, recomputes derived monetary fields and returns the updated record
// @Tags         stations
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Station id"  example(ST-001)
// @Param        patch  body      models.ConfigPatch  true  "Partial configuration"
// @Success      200    {object}  dto.StationResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse    "Bad Request"
// @Router       /api/v1/stations/{id}/config [patch]
func (h *Handler) UpdateStationConfig(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("station id is required", nil))
		return
	}

	var patch models.ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid config patch body", err))
		return
	}
	if err := validatePatch(patch); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid config patch", err))
		return
	}

	rec := h.stations.UpdateStationConfig(c.Request.Context(), id, patch)
	c.JSON(http.StatusOK, dto.NewStationResponse(rec))
}

// GetFleetAggregate handles GET /api/v1/fleet/aggregate.
//
// Query Parameters:
//   - window (string, optional): "all" (default) or a four-digit year.
//   - ids (string, optional): comma-separated explicit fleet subset.
//
// GetFleetAggregate godoc
// @Summary      Get fleet-wide financial aggregate
// @Description  Per-date liters, revenue, expenses and profit across the fleet, normalized into the base currency
// @Tags         fleet
// @Produce      json
// @Param        window  query     string  false  "Aggregation window: all or a year"  example(2024)
// @Param        ids     query     string  false  "Comma-separated station ids"        example(ST-001,ST-002)
// @Success      200     {object}  dto.FleetAggregateResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse           "Bad Request"
// @Router       /api/v1/fleet/aggregate [get]
func (h *Handler) GetFleetAggregate(c *gin.Context) {
	window := strings.TrimSpace(c.Query("window"))
	if window == "" {
		window = models.WindowAll
	}

	var ids []string
	if raw := strings.TrimSpace(c.Query("ids")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	rows, err := h.fleet.Aggregate(c.Request.Context(), window, ids)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid aggregation window", err))
		return
	}

	c.JSON(http.StatusOK, dto.FleetAggregateResponse{
		Window:       window,
		BaseCurrency: h.base,
		Rows:         rows,
	})
}

// validatePatch rejects values no configuration may carry. Absent (nil)
// fields are always acceptable.
func validatePatch(p models.ConfigPatch) error {
	if p.PricePerLiter != nil && *p.PricePerLiter < 0 {
		return errNegative("price_per_liter")
	}
	if p.TargetDailyYield != nil && *p.TargetDailyYield < 0 {
		return errNegative("target_daily_yield")
	}
	if p.VATRate != nil && (*p.VATRate < 0 || *p.VATRate >= 1) {
		return errRange("vat_rate")
	}
	if p.ElectricityKwPerLiter != nil && *p.ElectricityKwPerLiter < 0 {
		return errNegative("electricity_kw_per_liter")
	}
	if p.ElectricityCostPerKw != nil && *p.ElectricityCostPerKw < 0 {
		return errNegative("electricity_cost_per_kw")
	}
	if p.Currency != nil && !service.KnownCurrency(*p.Currency) {
		return errUnknownCurrency(*p.Currency)
	}
	return nil
}

type fieldError string

func (e fieldError) Error() string { return string(e) }

func errNegative(field string) error { return fieldError(field + " must be >= 0") }
func errRange(field string) error    { return fieldError(field + " must be in [0,1)") }
func errUnknownCurrency(code string) error {
	return fieldError("currency " + code + " has no exchange rate")
}
