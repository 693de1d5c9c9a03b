package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes wires the report endpoints into the business group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cash-flow", h.getCashFlow)
	}
}

// parseAsOf reads the asOf query parameter, defaulting to now.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return time.Now(), true
	}
	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be a date in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	return asOf, true
}

// parsePeriod reads the from/to query parameters. Both are required.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a date in YYYY-MM-DD format"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a date in YYYY-MM-DD format"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), businessID, asOf)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetProfitAndLoss(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetBalanceSheet(c.Request.Context(), businessID, asOf)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetCashFlow(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
