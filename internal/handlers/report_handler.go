package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	apperrors "github.com/Sojagracesaju/pocketkash/internal/errors"
	"github.com/Sojagracesaju/pocketkash/internal/services"
)

// ReportHandler handles derived reports: summary, insights, budget windows,
// and AI advice.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the finance summary
// @Summary     Get the finance summary
// @Description Get income, expense, and balance totals with the per-category breakdown and behaviour classification
// @Tags        reports
// @Accept      json
// @Produce     json
// @Success     200 {object} engine.FinanceSummary "Finance summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetInsights handles the insight feed
// @Summary     Get insights
// @Description Get the ordered list of textual insights for the current snapshot
// @Tags        reports
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string][]engine.Insight "Insights"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *ReportHandler) GetInsights(c *gin.Context) {
	insights, err := h.reportService.Insights()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GetOverview handles the budget window evaluation
// @Summary     Get a budget window overview
// @Description Evaluate spending in the current day, week, or month against the configured limit
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       window path string true "Window (daily, weekly, monthly)"
// @Success     200 {object} engine.WindowStatus "Window status"
// @Failure     400 {object} ErrorResponse "Unknown window"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /overview/{window} [get]
func (h *ReportHandler) GetOverview(c *gin.Context) {
	var kind engine.WindowKind
	switch c.Param("window") {
	case "daily":
		kind = engine.WindowDay
	case "weekly":
		kind = engine.WindowWeek
	case "monthly":
		kind = engine.WindowMonth
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrUnknownWindow, "window must be daily, weekly, or monthly"))
		return
	}

	status, err := h.reportService.Window(kind, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"overview": status})
}

// GetAdvice handles the AI advice endpoint
// @Summary     Get spending advice
// @Description Get 2-3 bullet points of personalised advice for the current snapshot
// @Tags        reports
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]string "Advice text"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advice [get]
func (h *ReportHandler) GetAdvice(c *gin.Context) {
	advice, err := h.reportService.Advice(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
