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

// statementHandler handles statement uploads and transaction listing for a studio.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// RegisterStatementRoutes registers statement routes nested under a studio.
func RegisterStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := &statementHandler{statementService: statementService}

	statements := rg.Group("/statements")
	{
		statements.POST("", h.uploadStatement)
		statements.POST("/feed", h.ingestFeed)
	}
	rg.GET("/transactions", h.listTransactions)
	rg.GET("/transactions/:transaction_id", h.getTransaction)
}

// uploadStatement godoc
// @Summary Upload a CSV bank statement
// @Description Ingests a CSV statement export (Date,Description,Debit,Credit) for the studio. Rows already stored are skipped; malformed rows are reported as warnings.
// @Tags statements
// @Accept  multipart/form-data
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   file formData file true "CSV statement file"
// @Success 200 {object} dto.StatementUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/statements [post]
func (h *statementHandler) uploadStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Statement file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	resp, err := h.statementService.IngestCSV(c.Request.Context(), studioID, file, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to ingest statement")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ingestFeed godoc
// @Summary Ingest bank transactions from a feed
// @Description Stores bank transactions pushed as JSON rows, e.g. from a provider feed. Duplicate rows are skipped.
// @Tags statements
// @Accept  json
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   feed body dto.StatementFeedRequest true "Feed transactions"
// @Success 200 {object} dto.StatementUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/statements/feed [post]
func (h *statementHandler) ingestFeed(c *gin.Context) {
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.StatementFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.statementService.IngestFeed(c.Request.Context(), studioID, req.Transactions, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to ingest feed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listTransactions godoc
// @Summary List stored bank transactions
// @Description Retrieves a page of stored transactions for the studio, ordered by date.
// @Tags statements
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   limit query int false "Max results" default(50)
// @Param   nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListBankTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/transactions [get]
func (h *statementHandler) listTransactions(c *gin.Context) {
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListBankTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	txns, nextToken, err := h.statementService.ListTransactions(c.Request.Context(), studioID, params.Limit, params.NextToken, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBankTransactionsResponse(txns, nextToken))
}

// getTransaction godoc
// @Summary Get a stored bank transaction
// @Description Retrieves a single stored transaction by its ID.
// @Tags statements
// @Produce json
// @Param   studio_id path string true "Studio ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.BankTransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /studios/{studio_id}/transactions/{transaction_id} [get]
func (h *statementHandler) getTransaction(c *gin.Context) {
	studioID := c.Param("studio_id")
	transactionID := c.Param("transaction_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.statementService.GetTransaction(c.Request.Context(), studioID, transactionID, requestingUserID)
	if err != nil {
		h.respondError(c, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankTransactionResponse(txn))
}

func (h *statementHandler) respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Studio not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
