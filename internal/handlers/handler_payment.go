package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// paymentHandler handles HTTP requests for recorded payments within a studio.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// registerPaymentRoutes registers payment routes nested under a studio.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:payment_id", h.getPayment)
		payments.PUT("/:payment_id", h.updatePayment)
		payments.DELETE("/:payment_id", h.deletePayment)
	}
}

func (h *paymentHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a new client payment for the studio.
// @Tags payments
// @Accept  json
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	studioID := c.Param("studio_id")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), studioID, req, creatorUserID)
	if err != nil {
		h.respondError(c, err, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves a paginated list of payments for the studio.
// @Tags payments
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   limit query int false "Max results" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), studioID, params.Limit, params.Offset, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// getPayment godoc
// @Summary Get a payment
// @Description Retrieves a payment by ID.
// @Tags payments
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   payment_id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/payments/{payment_id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	studioID := c.Param("studio_id")
	paymentID := c.Param("payment_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), studioID, paymentID, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to get payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a payment
// @Description Updates an existing payment's details.
// @Tags payments
// @Accept  json
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   payment_id path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/payments/{payment_id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	studioID := c.Param("studio_id")
	paymentID := c.Param("payment_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), studioID, paymentID, req, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment from the studio.
// @Tags payments
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   payment_id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/payments/{payment_id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	studioID := c.Param("studio_id")
	paymentID := c.Param("payment_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), studioID, paymentID, requestingUserID); err != nil {
		h.respondError(c, err, "Failed to delete payment")
		return
	}

	c.Status(http.StatusNoContent)
}
