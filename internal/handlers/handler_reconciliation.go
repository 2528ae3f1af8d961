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

// reconciliationHandler serves the reconciliation report for a studio.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// RegisterReconciliationRoutes registers the reconciliation route nested under a studio.
func RegisterReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}
	rg.GET("/reconciliation", h.getReconciliation)
}

// getReconciliation godoc
// @Summary Reconcile bank transactions against payments
// @Description Matches the studio's stored bank credits against recorded payments and returns per-transaction matches with confidence tiers plus a summary. Debits are excluded.
// @Tags reconciliation
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/reconciliation [get]
func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	matches, summary, err := h.reconciliationService.Reconcile(c.Request.Context(), studioID, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Studio not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		default:
			logger.Error("Reconciliation failed", slog.String("error", err.Error()), slog.String("studio_id", studioID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reconcile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(matches, summary))
}
