package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// formulaHandler handles HTTP requests for the formula configuration.
type formulaHandler struct {
	formulaService portssvc.FormulaSvcFacade
}

func newFormulaHandler(fs portssvc.FormulaSvcFacade) *formulaHandler {
	return &formulaHandler{formulaService: fs}
}

func registerFormulaRoutes(rg *gin.RouterGroup, formulaService portssvc.FormulaSvcFacade) {
	h := newFormulaHandler(formulaService)

	formulas := rg.Group("/formulas")
	{
		formulas.GET("", h.getFormulas)
		formulas.PUT("", h.updateFormulas)
	}
}

// getFormulas godoc
// @Summary Get the current formulas
// @Description Returns the tithe-of-tithe percentage and remainder threshold applied to new weeks
// @Tags formulas
// @Produce json
// @Success 200 {object} domain.Formulas
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /formulas [get]
func (h *formulaHandler) getFormulas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	formulas, err := h.formulaService.GetFormulas(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve formulas")
		return
	}
	c.JSON(http.StatusOK, formulas)
}

// updateFormulas godoc
// @Summary Replace the formulas
// @Description Existing weeks keep the formulas they were created with
// @Tags formulas
// @Accept json
// @Produce json
// @Param formulas body dto.UpdateFormulasRequest true "New formulas"
// @Success 200 {object} domain.Formulas
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /formulas [put]
func (h *formulaHandler) updateFormulas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFormulasRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	formulas, err := h.formulaService.SetFormulas(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update formulas")
		return
	}

	logger.Info("Formulas updated", slog.String("diezmo_percentage", formulas.DiezmoPercentage.String()))
	c.JSON(http.StatusOK, formulas)
}
