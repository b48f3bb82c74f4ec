package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to members.
type memberHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newMemberHandler(ds portssvc.DirectorySvcFacade) *memberHandler {
	return &memberHandler{directoryService: ds}
}

func registerMemberRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := newMemberHandler(directoryService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.POST("", h.addMember)
		members.GET("/:memberID", h.getMember)
		members.PUT("/:memberID", h.renameMember)
		members.DELETE("/:memberID", h.removeMember)
	}
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} domain.Member
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	members, err := h.directoryService.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// addMember godoc
// @Summary Add a member
// @Description Names are unique ignoring case and surrounding spaces
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.MemberRequest true "Member name"
// @Success 201 {object} domain.Member
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MemberRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	member, err := h.directoryService.AddMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add member")
		return
	}

	logger.Info("Member created", slog.String("member_id", member.ID))
	c.JSON(http.StatusCreated, member)
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{memberID} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.directoryService.GetMember(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// renameMember godoc
// @Summary Rename a member
// @Description Donations already recorded keep the name they were recorded with
// @Tags members
// @Accept json
// @Produce json
// @Param memberID path string true "Member ID"
// @Param member body dto.MemberRequest true "New name"
// @Success 200 {object} domain.Member
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{memberID} [put]
func (h *memberHandler) renameMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MemberRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	member, err := h.directoryService.RenameMember(c.Request.Context(), c.Param("memberID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to rename member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// removeMember godoc
// @Summary Remove a member
// @Tags members
// @Param memberID path string true "Member ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{memberID} [delete]
func (h *memberHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.directoryService.RemoveMember(c.Request.Context(), c.Param("memberID")); err != nil {
		respondError(c, logger, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
