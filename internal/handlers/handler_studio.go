package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// studioHandler handles HTTP requests related to studios.
type studioHandler struct {
	studioService portssvc.StudioSvcFacade
}

// registerStudioRoutes registers routes for studios and nests the
// statement, payment, and reconciliation routes under a specific studio.
func registerStudioRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &studioHandler{studioService: services.Studio}

	studiosTopLevel := rg.Group("/studios")
	{
		studiosTopLevel.POST("", h.createStudio)
		studiosTopLevel.GET("", h.listUserStudios)
	}

	studioSpecific := rg.Group("/studios/:studio_id")
	{
		studioSpecific.GET("", h.getStudio)
		studioSpecific.DELETE("", h.deactivateStudio)

		studioUsers := studioSpecific.Group("/users")
		{
			studioUsers.POST("", h.addUserToStudio)
			studioUsers.GET("", h.listStudioUsers)
		}

		RegisterStatementRoutes(studioSpecific, services.Statement)
		registerPaymentRoutes(studioSpecific, services.Payment)
		RegisterReconciliationRoutes(studioSpecific, services.Reconciliation)
	}
}

// respondStudioError maps common service errors to HTTP responses.
func respondStudioError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Studio not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// createStudio godoc
// @Summary Create a new studio
// @Description Creates a new studio and assigns the creator as admin.
// @Tags studios
// @Accept  json
// @Produce  json
// @Param   studio body dto.CreateStudioRequest true "Studio details"
// @Success 201 {object} dto.StudioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios [post]
func (h *studioHandler) createStudio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newStudio, err := h.studioService.CreateStudio(c.Request.Context(), req.Name, req.Description, creatorUserID)
	if err != nil {
		logger.Error("Failed to create studio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create studio"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudioResponse(newStudio))
}

// listUserStudios godoc
// @Summary List studios for current user
// @Description Retrieves the studios the authenticated user belongs to.
// @Tags studios
// @Produce  json
// @Param includeDisabled query bool false "Include inactive studios"
// @Success 200 {object} dto.ListStudiosResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios [get]
func (h *studioHandler) listUserStudios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	includeDisabled := c.Query("includeDisabled") == "true"

	studios, err := h.studioService.ListUserStudios(c.Request.Context(), userID, includeDisabled)
	if err != nil {
		logger.Error("Failed to list studios", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list studios"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStudiosResponse(studios))
}

// getStudio godoc
// @Summary Get a studio
// @Description Retrieves a studio by ID.
// @Tags studios
// @Produce  json
// @Param   studio_id path string true "Studio ID"
// @Success 200 {object} dto.StudioResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id} [get]
func (h *studioHandler) getStudio(c *gin.Context) {
	studioID := c.Param("studio_id")

	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	studio, err := h.studioService.FindStudioByID(c.Request.Context(), studioID)
	if err != nil {
		respondStudioError(c, err, "Failed to get studio")
		return
	}

	c.JSON(http.StatusOK, dto.ToStudioResponse(studio))
}

// deactivateStudio godoc
// @Summary Deactivate a studio
// @Description Marks a studio as inactive (requires admin permission).
// @Tags studios
// @Produce  json
// @Param   studio_id path string true "Studio ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id} [delete]
func (h *studioHandler) deactivateStudio(c *gin.Context) {
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.studioService.DeactivateStudio(c.Request.Context(), studioID, requestingUserID); err != nil {
		respondStudioError(c, err, "Failed to deactivate studio")
		return
	}

	c.Status(http.StatusNoContent)
}

// addUserToStudio godoc
// @Summary Add a user to a studio
// @Description Adds a user to a studio with a given role (requires admin permission).
// @Tags studios
// @Accept  json
// @Produce  json
// @Param   studio_id path string true "Studio ID"
// @Param   membership body dto.AddUserToStudioRequest true "User ID and Role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/users [post]
func (h *studioHandler) addUserToStudio(c *gin.Context) {
	studioID := c.Param("studio_id")

	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddUserToStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.studioService.AddUserToStudio(c.Request.Context(), addingUserID, req.UserID, studioID, req.Role); err != nil {
		respondStudioError(c, err, "Failed to add user to studio")
		return
	}

	c.Status(http.StatusNoContent)
}

// listStudioUsers godoc
// @Summary List studio members
// @Description Retrieves all members of a studio with their roles.
// @Tags studios
// @Produce  json
// @Param   studio_id path string true "Studio ID"
// @Success 200 {array} dto.UserStudioResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/users [get]
func (h *studioHandler) listStudioUsers(c *gin.Context) {
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	memberships, err := h.studioService.ListStudioUsers(c.Request.Context(), studioID, requestingUserID)
	if err != nil {
		respondStudioError(c, err, "Failed to list studio users")
		return
	}

	list := make([]dto.UserStudioResponse, len(memberships))
	for i := range memberships {
		list[i] = dto.ToUserStudioResponse(&memberships[i])
	}
	c.JSON(http.StatusOK, list)
}
