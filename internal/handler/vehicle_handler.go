package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

type vehicleSummaryService interface {
	Summary(ctx context.Context, id int64) (*models.VehicleSummary, error)
}

type vehicleRecordService interface {
	VehicleDistances(ctx context.Context, vehicleID int64) ([]models.Distance, error)
	VehicleRefuels(ctx context.Context, vehicleID int64) ([]models.Refuel, error)
	Logbook(ctx context.Context, vehicleID int64, format string) (*service.ExportResult, error)
}

// VehicleHandler serves the per-vehicle reports.
type VehicleHandler struct {
	summary vehicleSummaryService
	records vehicleRecordService
}

// NewVehicleHandler constructs the handler.
func NewVehicleHandler(summary vehicleSummaryService, records vehicleRecordService) *VehicleHandler {
	return &VehicleHandler{summary: summary, records: records}
}

// Summary godoc
// @Summary Vehicle totals
// @Description Total kilometres driven, fuel and fuel cost of a vehicle
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api2/vehicles/{id}/summary [get]
func (h *VehicleHandler) Summary(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.summary.Summary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Distances godoc
// @Summary Vehicle distance records
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Envelope
// @Router /api2/vehicles/{id}/distances [get]
func (h *VehicleHandler) Distances(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.records.VehicleDistances(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Refuels godoc
// @Summary Vehicle refuel records
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Envelope
// @Router /api2/vehicles/{id}/refuels [get]
func (h *VehicleHandler) Refuels(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.records.VehicleRefuels(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Logbook godoc
// @Summary Export vehicle logbook
// @Tags Vehicles
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Vehicle ID"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /api2/vehicles/{id}/logbook [get]
func (h *VehicleHandler) Logbook(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.records.Logbook(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
