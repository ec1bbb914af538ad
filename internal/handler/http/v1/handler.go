package v1

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sfdatalab/incident_analytics/internal/config"
	"github.com/sfdatalab/incident_analytics/internal/models"
	"github.com/sfdatalab/incident_analytics/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	analyticsService service.AnalyticsService
	forecastService  service.ForecastService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(analyticsService service.AnalyticsService, forecastService service.ForecastService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		analyticsService: analyticsService,
		forecastService:  forecastService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bindFilter binds and validates the dashboard filter from the query
// string. On failure it writes the 400 response and returns nil.
func (h *Handler) bindFilter(c *gin.Context, log *logrus.Entry) *models.Filter {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind filter query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return nil
	}
	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Filter validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}
	return QueryToFilter(q)
}

// @Summary Summary row for the current filter
// @Description Total incidents, date span, average per day and distinct neighborhoods for the filtered view.
// @Tags Analytics
// @Produce json
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, ModelToSummaryResponse(summary))
}

// @Summary Monthly incident trend
// @Description Incident counts per month for the filtered view, ordered by month.
// @Tags Analytics
// @Produce json
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {array} MonthlyCountResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/monthly [get]
func (h *Handler) getMonthlyTrend(c *gin.Context) {
	log := h.logger.WithField("method", "getMonthlyTrend")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}

	counts, err := h.analyticsService.MonthlyTrend(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute monthly trend")
		return
	}
	c.JSON(http.StatusOK, ModelsToMonthlyResponses(counts))
}

// @Summary Top neighborhoods by incident count
// @Tags Analytics
// @Produce json
// @Param limit query int false "Number of neighborhoods to return" default(10)
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {array} LabelCountResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/neighborhoods [get]
func (h *Handler) getTopNeighborhoods(c *gin.Context) {
	log := h.logger.WithField("method", "getTopNeighborhoods")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	counts, err := h.analyticsService.TopNeighborhoods(c.Request.Context(), filter, limit)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute top neighborhoods")
		return
	}
	c.JSON(http.StatusOK, ModelsToLabelResponses(counts))
}

// @Summary Top categories by incident count
// @Tags Analytics
// @Produce json
// @Param limit query int false "Number of categories to return" default(10)
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {array} LabelCountResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/categories [get]
func (h *Handler) getTopCategories(c *gin.Context) {
	log := h.logger.WithField("method", "getTopCategories")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	counts, err := h.analyticsService.TopCategories(c.Request.Context(), filter, limit)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute top categories")
		return
	}
	c.JSON(http.StatusOK, ModelsToLabelResponses(counts))
}

// @Summary Incidents by hour of day
// @Description Counts for all 24 hours, zero-filled.
// @Tags Analytics
// @Produce json
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {array} HourlyCountResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/hourly [get]
func (h *Handler) getHourlyPattern(c *gin.Context) {
	log := h.logger.WithField("method", "getHourlyPattern")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}

	counts, err := h.analyticsService.HourlyPattern(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute hourly pattern")
		return
	}
	c.JSON(http.StatusOK, ModelsToHourlyResponses(counts))
}

// @Summary Incidents by weekday
// @Description Counts for all seven weekdays in Monday-first order, zero-filled.
// @Tags Analytics
// @Produce json
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {array} LabelCountResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/weekdays [get]
func (h *Handler) getWeekdayPattern(c *gin.Context) {
	log := h.logger.WithField("method", "getWeekdayPattern")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}

	counts, err := h.analyticsService.WeekdayPattern(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute weekday pattern")
		return
	}
	c.JSON(http.StatusOK, ModelsToLabelResponses(counts))
}

// @Summary Weekday by hour heatmap
// @Description Full 7x24 grid of incident counts, zero-filled, Monday first.
// @Tags Analytics
// @Produce json
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {array} HeatmapCellResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	log := h.logger.WithField("method", "getHeatmap")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}

	cells, err := h.analyticsService.Heatmap(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to compute heatmap")
		return
	}
	c.JSON(http.StatusOK, ModelsToHeatmapResponses(cells))
}

// @Summary Available filter values
// @Description Distinct years, neighborhoods and categories present in the loaded dataset.
// @Tags Analytics
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/filters [get]
func (h *Handler) getFilterOptions(c *gin.Context) {
	log := h.logger.WithField("method", "getFilterOptions")

	opts, err := h.analyticsService.FilterOptions(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to list filter options")
		return
	}
	c.JSON(http.StatusOK, ModelToFilterOptionsResponse(opts))
}

var exportHeader = []string{
	"id", "source_id", "occurred_at", "year", "month", "hour", "weekday",
	"category", "neighborhood", "latitude", "longitude", "resolution",
}

// @Summary Export the filtered view as CSV
// @Description Streams the filtered incident rows as a CSV attachment. Requires API key when keys are configured.
// @Tags Analytics
// @Produce text/csv
// @Security ApiKeyAuth
// @Param year_from query int false "First year of the range"
// @Param year_to query int false "Last year of the range"
// @Param neighborhood query []string false "Neighborhood filter, repeatable"
// @Param category query []string false "Category filter, repeatable"
// @Param weekday query []string false "Weekday filter, repeatable"
// @Param hour_from query int false "First hour of the range" default(0)
// @Param hour_to query int false "Last hour of the range" default(23)
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/export [get]
func (h *Handler) exportCSV(c *gin.Context) {
	log := h.logger.WithField("method", "exportCSV")
	filter := h.bindFilter(c, log)
	if filter == nil {
		return
	}

	incidents, err := h.analyticsService.Export(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to export incidents")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="sf_crime_filtered.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		log.WithError(err).Error("Failed to write CSV header")
		return
	}
	for _, inc := range incidents {
		record := []string{
			inc.ID.String(),
			inc.SourceID,
			inc.OccurredAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(inc.Year),
			inc.Month.Format("2006-01"),
			strconv.Itoa(inc.Hour),
			inc.Weekday,
			inc.Category,
			inc.Neighborhood,
			strconv.FormatFloat(inc.Latitude, 'f', -1, 64),
			strconv.FormatFloat(inc.Longitude, 'f', -1, 64),
			inc.Resolution,
		}
		if err := w.Write(record); err != nil {
			log.WithError(err).Error("Failed to write CSV row")
			return
		}
	}
	w.Flush()
}

// @Summary Citywide monthly forecast
// @Description SARIMA forecast of citywide monthly incident counts with 95% intervals. Filters do not apply.
// @Tags Forecast
// @Produce json
// @Param steps query int false "Months to forecast" default(6)
// @Success 200 {object} ForecastResponse
// @Failure 422 {object} map[string]string "Not enough data to fit the model"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /forecast [get]
func (h *Handler) getForecast(c *gin.Context) {
	log := h.logger.WithField("method", "getForecast")
	steps, _ := strconv.Atoi(c.DefaultQuery("steps", "0"))

	forecast, err := h.forecastService.Forecast(c.Request.Context(), steps)
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughData) {
			log.WithError(err).Warn("Forecast requested with too little data")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.respondServiceError(c, log, err, "Failed to compute forecast")
		return
	}
	c.JSON(http.StatusOK, ModelToForecastResponse(forecast))
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	if errors.Is(err, service.ErrInvalidFilter) {
		log.WithError(err).Warn("Rejected invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
