package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/DesignDeskHQ/design_desk_app/internal/ingest"
)

// StatementFeedRequest carries bank transactions pushed as JSON instead of a
// CSV upload, e.g. from a provider feed.
type StatementFeedRequest struct {
	Transactions []ingest.FeedRow `json:"transactions" binding:"required,min=1,dive"`
}

// StatementUploadResponse summarizes the outcome of a statement ingestion.
// Duplicates counts rows already present for the studio; Warnings lists rows
// that were skipped as malformed.
type StatementUploadResponse struct {
	Received   int      `json:"received"`
	Inserted   int      `json:"inserted"`
	Duplicates int      `json:"duplicates"`
	Warnings   []string `json:"warnings,omitempty"`
}

// BankTransactionResponse defines the data returned for a bank transaction.
type BankTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	ReferenceID   *string         `json:"referenceID,omitempty"`
}

// ToBankTransactionResponse converts a domain.BankTransaction to DTO.
func ToBankTransactionResponse(t *domain.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		ReferenceID:   t.ReferenceID,
	}
}

// ListBankTransactionsParams defines query parameters for listing transactions.
type ListBankTransactionsParams struct {
	Limit     int     `form:"limit,default=50"`
	NextToken *string `form:"nextToken"`
}

// ListBankTransactionsResponse wraps a page of bank transactions.
type ListBankTransactionsResponse struct {
	Transactions []BankTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToListBankTransactionsResponse converts domain transactions plus an optional
// continuation token to DTO.
func ToListBankTransactionsResponse(txns []domain.BankTransaction, nextToken *string) ListBankTransactionsResponse {
	list := make([]BankTransactionResponse, len(txns))
	for i, t := range txns {
		list[i] = ToBankTransactionResponse(&t)
	}
	return ListBankTransactionsResponse{Transactions: list, NextToken: nextToken}
}
