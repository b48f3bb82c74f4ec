package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to donation categories.
type categoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newCategoryHandler(ds portssvc.DirectorySvcFacade) *categoryHandler {
	return &categoryHandler{directoryService: ds}
}

func registerCategoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := newCategoryHandler(directoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.addCategory)
		categories.PUT("/:name", h.renameCategory)
		categories.DELETE("/:name", h.removeCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.directoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// addCategory godoc
// @Summary Add a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category name"
// @Success 201 {object} dto.CategoriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) addCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	categories, err := h.directoryService.AddCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add category")
		return
	}
	c.JSON(http.StatusCreated, dto.CategoriesResponse{Categories: categories})
}

// renameCategory godoc
// @Summary Rename a category
// @Description Recorded donations keep the old category name
// @Tags categories
// @Accept json
// @Produce json
// @Param name path string true "Current category name"
// @Param category body dto.CategoryRequest true "New name"
// @Success 200 {object} dto.CategoriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{name} [put]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	categories, err := h.directoryService.RenameCategory(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to rename category")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// removeCategory godoc
// @Summary Remove a category
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{name} [delete]
func (h *categoryHandler) removeCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.directoryService.RemoveCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, logger, err, "Failed to remove category")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}
