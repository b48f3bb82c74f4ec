package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// weekHandler handles HTTP requests for weekly records and their donations.
type weekHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newWeekHandler(ls portssvc.LedgerSvcFacade) *weekHandler {
	return &weekHandler{ledgerService: ls}
}

func registerWeekRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newWeekHandler(ledgerService)

	weeks := rg.Group("/weeks")
	{
		weeks.GET("", h.listWeeks)
		weeks.POST("", h.createWeek)
		weeks.GET("/index", h.weekIndex)
		weeks.GET("/:recordID", h.getWeek)
		weeks.PUT("/:recordID", h.saveWeek)
		weeks.DELETE("/:recordID", h.deleteWeek)
		weeks.GET("/:recordID/summary", h.weeklySummary)
		weeks.POST("/:recordID/donations", h.addDonation)
		weeks.DELETE("/:recordID/donations/:donationID", h.removeDonation)
	}
}

// listWeeks godoc
// @Summary List weekly records
// @Description Newest first. With year and month only that month's records are returned, in entry order
// @Tags weeks
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {array} dto.WeeklyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks [get]
func (h *weekHandler) listWeeks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		records []domain.WeeklyRecord
		err     error
	)
	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr != "" || monthStr != "" {
		year, yErr := strconv.Atoi(yearStr)
		month, mErr := strconv.Atoi(monthStr)
		if yErr != nil || mErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must both be numbers"})
			return
		}
		records, err = h.ledgerService.ListRecordsForMonth(c.Request.Context(), year, month)
	} else {
		records, err = h.ledgerService.ListRecords(c.Request.Context())
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list weekly records")
		return
	}
	c.JSON(http.StatusOK, dto.ToWeeklyRecordResponses(records))
}

// weekIndex godoc
// @Summary Week index
// @Description One line per weekly record with its week number, date range and tithe-bearing total, oldest first
// @Tags weeks
// @Produce json
// @Success 200 {array} domain.WeekIndexEntry
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks/index [get]
func (h *weekHandler) weekIndex(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entries, err := h.ledgerService.WeekIndex(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load week index")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// createWeek godoc
// @Summary Open a weekly record
// @Description Snapshots the current formulas. Answers 409 with the clashing record ids when the date is already used, unless allowDuplicateDate is set
// @Tags weeks
// @Accept json
// @Produce json
// @Param week body dto.CreateWeeklyRecordRequest true "Week date and minister"
// @Success 201 {object} dto.WeeklyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} dto.DuplicateDateResponse
// @Security BearerAuth
// @Router /weeks [post]
func (h *weekHandler) createWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWeeklyRecordRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	record, err := h.ledgerService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create weekly record")
		return
	}

	logger.Info("Weekly record created", slog.String("record_id", record.ID))
	c.JSON(http.StatusCreated, dto.ToWeeklyRecordResponse(*record))
}

// getWeek godoc
// @Summary Get a weekly record
// @Tags weeks
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.WeeklyRecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks/{recordID} [get]
func (h *weekHandler) getWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.ledgerService.GetRecord(c.Request.Context(), c.Param("recordID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve weekly record")
		return
	}
	c.JSON(http.StatusOK, dto.ToWeeklyRecordResponse(*record))
}

// saveWeek godoc
// @Summary Save a weekly record
// @Description Replaces the record's date, minister and donations, creating it when the id is new. The formula snapshot is never taken from the request
// @Tags weeks
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param week body dto.SaveWeeklyRecordRequest true "Record contents"
// @Success 200 {object} dto.WeeklyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} dto.DuplicateDateResponse
// @Security BearerAuth
// @Router /weeks/{recordID} [put]
func (h *weekHandler) saveWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveWeeklyRecordRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	saved, err := h.ledgerService.SaveRecord(c.Request.Context(), c.Param("recordID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to save weekly record")
		return
	}
	c.JSON(http.StatusOK, dto.ToWeeklyRecordResponse(*saved))
}

// deleteWeek godoc
// @Summary Delete a weekly record
// @Tags weeks
// @Param recordID path string true "Record ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks/{recordID} [delete]
func (h *weekHandler) deleteWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledgerService.DeleteRecord(c.Request.Context(), c.Param("recordID")); err != nil {
		respondError(c, logger, err, "Failed to delete weekly record")
		return
	}
	c.Status(http.StatusNoContent)
}

// weeklySummary godoc
// @Summary Weekly aggregates
// @Description Subtotals per category, tithe of tithe, remainder and minister net for one week
// @Tags weeks
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} domain.WeeklySummary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks/{recordID}/summary [get]
func (h *weekHandler) weeklySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.ledgerService.WeeklySummary(c.Request.Context(), c.Param("recordID"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute weekly summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// addDonation godoc
// @Summary Add a donation
// @Tags weeks
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param donation body dto.AddDonationRequest true "Member, category and amount"
// @Success 201 {object} dto.WeeklyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks/{recordID}/donations [post]
func (h *weekHandler) addDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddDonationRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	record, err := h.ledgerService.AddDonation(c.Request.Context(), c.Param("recordID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add donation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWeeklyRecordResponse(*record))
}

// removeDonation godoc
// @Summary Remove a donation
// @Tags weeks
// @Produce json
// @Param recordID path string true "Record ID"
// @Param donationID path string true "Donation ID"
// @Success 200 {object} dto.WeeklyRecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /weeks/{recordID}/donations/{donationID} [delete]
func (h *weekHandler) removeDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.ledgerService.RemoveDonation(c.Request.Context(), c.Param("recordID"), c.Param("donationID"))
	if err != nil {
		respondError(c, logger, err, "Failed to remove donation")
		return
	}
	c.JSON(http.StatusOK, dto.ToWeeklyRecordResponse(*record))
}
