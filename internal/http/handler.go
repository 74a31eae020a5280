package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/ingest"
	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/service"
)

type Handler struct {
	uploadService   *service.UploadService
	analysisService *service.AnalysisService
	vehicleService  *service.VehicleService
	statsService    *service.StatsService
	log             zerolog.Logger
}

func NewHandler(
	uploadService *service.UploadService,
	analysisService *service.AnalysisService,
	vehicleService *service.VehicleService,
	statsService *service.StatsService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		uploadService:   uploadService,
		analysisService: analysisService,
		vehicleService:  vehicleService,
		statsService:    statsService,
		log:             log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/uploads", h.uploadSheet)
		api.POST("/analysis", h.analyzeVehicles)
		api.POST("/accounting", h.analyzeExpenses)
		api.GET("/stats", h.getStats)
		api.GET("/plates", h.listPlates)

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", h.listVehicles)
			vehicles.POST("", h.addVehicle)
			vehicles.PUT("/bulk/owner", h.bulkSetOwner)
			vehicles.PUT("/bulk/active", h.bulkSetActive)
			vehicles.DELETE("/bulk", h.bulkDeleteVehicles)
			vehicles.POST("/bulk-import", h.bulkImportVehicles)
			vehicles.PUT("/:plate", h.updateVehicle)
			vehicles.DELETE("/:plate", h.deleteVehicle)
		}
	}
}

func (h *Handler) uploadSheet(c *gin.Context) {
	kind := c.PostForm("type")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("failed to open uploaded file"))
		return
	}
	defer file.Close()

	rows, err := ingest.ParseSheet(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFile) {
			c.JSON(http.StatusBadRequest, errorResponse("only .xlsx, .xls and .csv files are supported"))
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse("failed to parse file: "+err.Error()))
		return
	}

	result, err := h.uploadService.Upload(c.Request.Context(), kind, rows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().
		Str("type", kind).
		Int("total", result.Total).
		Int("inserted", result.Inserted).
		Int("duplicates", result.Duplicates).
		Int("skipped", result.Skipped).
		Msg("sheet upload finished")

	c.JSON(http.StatusOK, successResponse(result))
}

type analysisRequest struct {
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
	Plate       string `json:"plate"`
	VehicleType string `json:"vehicle_type"`
}

func (h *Handler) analyzeVehicles(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicleType := model.VehicleTypeCargo
	if req.VehicleType != "" {
		vehicleType = model.VehicleType(strings.ToUpper(strings.TrimSpace(req.VehicleType)))
	}

	result, err := h.analysisService.VehicleEfficiency(c.Request.Context(), service.AnalysisInput{
		DateFrom:    optional(req.DateFrom),
		DateTo:      optional(req.DateTo),
		Plate:       optional(req.Plate),
		VehicleType: vehicleType,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) analyzeExpenses(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.analysisService.FuelExpense(c.Request.Context(), service.AccountingInput{
		DateFrom: optional(req.DateFrom),
		DateTo:   optional(req.DateTo),
		Plate:    optional(req.Plate),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(h.statsService.Collect(c.Request.Context())))
}

func (h *Handler) listPlates(c *gin.Context) {
	vehicleType := model.VehicleTypeCargo
	if raw := c.Query("type"); raw != "" {
		vehicleType = model.VehicleType(strings.ToUpper(strings.TrimSpace(raw)))
	}

	plates, err := h.vehicleService.ActivePlates(c.Request.Context(), vehicleType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"plates": plates}))
}

func (h *Handler) listVehicles(c *gin.Context) {
	result, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) addVehicle(c *gin.Context) {
	var req struct {
		Plate       string `json:"plate" binding:"required"`
		Owner       string `json:"owner" binding:"required"`
		VehicleType string `json:"vehicle_type" binding:"required"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Add(c.Request.Context(), service.AddVehicleInput{
		Plate:       req.Plate,
		Owner:       model.VehicleOwner(strings.ToUpper(req.Owner)),
		VehicleType: model.VehicleType(strings.ToUpper(req.VehicleType)),
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	var req struct {
		Owner       string `json:"owner" binding:"required"`
		VehicleType string `json:"vehicle_type" binding:"required"`
		Active      *bool  `json:"active" binding:"required"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), c.Param("plate"), service.UpdateVehicleInput{
		Owner:       model.VehicleOwner(strings.ToUpper(req.Owner)),
		VehicleType: model.VehicleType(strings.ToUpper(req.VehicleType)),
		Active:      *req.Active,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	if err := h.vehicleService.Delete(c.Request.Context(), c.Param("plate")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"deleted": 1}))
}

func (h *Handler) bulkDeleteVehicles(c *gin.Context) {
	var req struct {
		Plates []string `json:"plates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	deleted, err := h.vehicleService.BulkDelete(c.Request.Context(), req.Plates)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) bulkSetOwner(c *gin.Context) {
	var req struct {
		Plates []string `json:"plates" binding:"required"`
		Owner  string   `json:"owner" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.vehicleService.BulkSetOwner(c.Request.Context(), req.Plates, model.VehicleOwner(strings.ToUpper(req.Owner)))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"updated": updated}))
}

func (h *Handler) bulkSetActive(c *gin.Context) {
	var req struct {
		Plates []string `json:"plates" binding:"required"`
		Active *bool    `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.vehicleService.BulkSetActive(c.Request.Context(), req.Plates, *req.Active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"updated": updated}))
}

func (h *Handler) bulkImportVehicles(c *gin.Context) {
	result, err := h.vehicleService.BulkImport(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func optional(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}
