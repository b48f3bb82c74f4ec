package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// monthHandler serves monthly aggregates over weekly records.
type monthHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

func newMonthHandler(ls portssvc.LedgerReaderSvc) *monthHandler {
	return &monthHandler{ledgerService: ls}
}

func registerMonthRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := newMonthHandler(ledgerService)

	months := rg.Group("/months/:year/:month")
	{
		months.GET("/summary", h.monthlySummary)
		months.GET("/weeks", h.monthWeeks)
	}
}

// parsePeriod reads the :year and :month path parameters, answering 400 when they are not numbers.
func parsePeriod(c *gin.Context) (year, month int, ok bool) {
	year, yErr := strconv.Atoi(c.Param("year"))
	month, mErr := strconv.Atoi(c.Param("month"))
	if yErr != nil || mErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be numbers"})
		return 0, 0, false
	}
	return year, month, true
}

// monthlySummary godoc
// @Summary Monthly aggregates
// @Description Sums every week of the month using each week's own formulas. A month without weeks answers empty=true
// @Tags months
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /months/{year}/{month}/summary [get]
func (h *monthHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.MonthlySummary(c.Request.Context(), year, month)
	if errors.Is(err, apperrors.ErrEmptyPeriod) {
		c.JSON(http.StatusOK, dto.MonthlySummaryResponse{Empty: true})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to compute monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.MonthlySummaryResponse{Summary: summary})
}

// monthWeeks godoc
// @Summary Weekly records of a month
// @Tags months
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} dto.WeeklyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /months/{year}/{month}/weeks [get]
func (h *monthHandler) monthWeeks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	records, err := h.ledgerService.ListRecordsForMonth(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "Failed to list weekly records")
		return
	}
	c.JSON(http.StatusOK, dto.ToWeeklyRecordResponses(records))
}
