package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for monthly report forms.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/blank", h.blankReport)
		reports.POST("/summary", h.summarizeReport)
		reports.GET("/:year/:month", h.getReport)
		reports.PUT("/:year/:month", h.saveReport)
		reports.DELETE("/:year/:month", h.deleteReport)
		reports.POST("/:year/:month/prefill", h.prefillReport)
	}
}

// listReports godoc
// @Summary List saved reports
// @Description Newest period first
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ReportListItem
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportListItems(reports))
}

// blankReport godoc
// @Summary Blank report form
// @Tags reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/blank [get]
func (h *reportHandler) blankReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, yErr := strconv.Atoi(c.Query("year"))
	month, mErr := strconv.Atoi(c.Query("month"))
	if yErr != nil || mErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be numbers"})
		return
	}

	report, err := h.reportService.BlankReport(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// summarizeReport godoc
// @Summary Live summary of a form
// @Description Recomputes the report totals from the submitted form without storing it
// @Tags reports
// @Accept json
// @Produce json
// @Param form body dto.SummarizeReportRequest true "Form data"
// @Success 200 {object} domain.FormSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [post]
func (h *reportHandler) summarizeReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SummarizeReportRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	c.JSON(http.StatusOK, h.reportService.SummarizeReport(req.FormData))
}

// getReport godoc
// @Summary Load a saved report
// @Tags reports
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{year}/{month} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "Failed to load report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// saveReport godoc
// @Summary Save a report
// @Description An existing report for the period is only replaced when overwrite is true
// @Tags reports
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param report body dto.SaveMonthlyReportRequest true "Form data"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{year}/{month} [put]
func (h *reportHandler) saveReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	var req dto.SaveMonthlyReportRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	req.SavedBy, _ = middleware.GetUserIDFromContext(c)

	report, err := h.reportService.SaveReport(c.Request.Context(), year, month, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save report")
		return
	}

	logger.Info("Report saved", slog.String("report_id", report.ID))
	c.JSON(http.StatusOK, report)
}

// deleteReport godoc
// @Summary Delete a saved report
// @Tags reports
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{year}/{month} [delete]
func (h *reportHandler) deleteReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	if err := h.reportService.DeleteReport(c.Request.Context(), year, month); err != nil {
		respondError(c, logger, err, "Failed to delete report")
		return
	}
	c.Status(http.StatusNoContent)
}

// prefillReport godoc
// @Summary Prefill a report from the month's weeks
// @Description Writes the derived fields into the submitted form (or a blank one). A month without weeks answers 200 with empty=true
// @Tags reports
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param form body dto.PrefillReportRequest false "Form being edited"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{year}/{month}/prefill [post]
func (h *reportHandler) prefillReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	var req dto.PrefillReportRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, logger, &req) {
		return
	}

	report, err := h.reportService.PrefillReport(c.Request.Context(), year, month, req.FormData)
	if errors.Is(err, apperrors.ErrEmptyPeriod) {
		c.JSON(http.StatusOK, gin.H{"empty": true})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to prefill report")
		return
	}
	c.JSON(http.StatusOK, report)
}
