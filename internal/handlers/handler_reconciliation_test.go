package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/dto"
	"github.com/DesignDeskHQ/design_desk_app/internal/handlers"
	"github.com/DesignDeskHQ/design_desk_app/internal/ingest"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) Reconcile(ctx context.Context, studioID string, requestingUserID string) ([]domain.ReconciliationMatch, domain.ReconciliationSummary, error) {
	args := m.Called(ctx, studioID, requestingUserID)
	if args.Get(0) == nil {
		return nil, domain.ReconciliationSummary{}, args.Error(2)
	}
	return args.Get(0).([]domain.ReconciliationMatch), args.Get(1).(domain.ReconciliationSummary), args.Error(2)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) IngestCSV(ctx context.Context, studioID string, csv io.Reader, requestingUserID string) (*dto.StatementUploadResponse, error) {
	args := m.Called(ctx, studioID, csv, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatementUploadResponse), args.Error(1)
}

func (m *MockStatementService) IngestFeed(ctx context.Context, studioID string, rows []ingest.FeedRow, requestingUserID string) (*dto.StatementUploadResponse, error) {
	args := m.Called(ctx, studioID, rows, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatementUploadResponse), args.Error(1)
}

func (m *MockStatementService) ListTransactions(ctx context.Context, studioID string, limit int, nextToken *string, requestingUserID string) ([]domain.BankTransaction, *string, error) {
	args := m.Called(ctx, studioID, limit, nextToken, requestingUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.BankTransaction), token, args.Error(2)
}

func (m *MockStatementService) GetTransaction(ctx context.Context, studioID, transactionID, requestingUserID string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, studioID, transactionID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankTransaction), args.Error(1)
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Test Suite ---
type ReconciliationHandlerTestSuite struct {
	suite.Suite
	router                    *gin.Engine
	mockReconciliationService *MockReconciliationService
	mockStatementService      *MockStatementService
	jwtSecret                 string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReconciliationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ddk-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *ReconciliationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReconciliationService = new(MockReconciliationService)
	suite.mockStatementService = new(MockStatementService)

	studioGroup := suite.router.Group("/api/v1/studios/:studio_id")
	handlers.RegisterReconciliationRoutes(studioGroup, suite.mockReconciliationService)
	handlers.RegisterStatementRoutes(studioGroup, suite.mockStatementService)
}

func (suite *ReconciliationHandlerTestSuite) doRequest(req *http.Request, userID string) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReconciliationHandlerTestSuite) TestGetReconciliation_Success() {
	studioID := uuid.NewString()
	requestingUserID := uuid.NewString()

	txnDate := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		StudioID:    studioID,
		Amount:      decimal.NewFromFloat(1500.00),
		QuoteNumber: "1042",
	}
	matches := []domain.ReconciliationMatch{
		{
			Transaction: domain.BankTransaction{
				TransactionID: uuid.NewString(),
				StudioID:      studioID,
				Date:          txnDate,
				Description:   "E-TRANSFER Q-1042",
				Amount:        decimal.NewFromFloat(1500.00),
			},
			Payment:         &payment,
			MatchConfidence: domain.ConfidenceHigh,
			MatchReason:     "Amount matches payment for quote #1042",
		},
		{
			Transaction: domain.BankTransaction{
				TransactionID: uuid.NewString(),
				StudioID:      studioID,
				Date:          txnDate,
				Description:   "DEPOSIT",
				Amount:        decimal.NewFromFloat(99.99),
			},
			MatchConfidence: domain.ConfidenceNone,
			MatchReason:     "No matching payment found",
		},
	}
	summary := domain.ReconciliationSummary{
		TotalTransactions: 2,
		Matched:           domain.MatchCounts{High: 1},
		Unmatched:         1,
		TotalCredits:      decimal.NewFromFloat(1599.99),
		MatchedAmount:     decimal.NewFromFloat(1500.00),
		UnmatchedAmount:   decimal.NewFromFloat(99.99),
	}

	suite.mockReconciliationService.On("Reconcile",
		mock.Anything,
		studioID,
		requestingUserID,
	).Return(matches, summary, nil).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/reconciliation", studioID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := suite.doRequest(req, requestingUserID)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ReconciliationResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody.Matches, 2)
	suite.Equal("high", responseBody.Matches[0].MatchConfidence)
	suite.NotNil(responseBody.Matches[0].Payment)
	suite.Equal(payment.PaymentID, responseBody.Matches[0].Payment.PaymentID)
	suite.Equal("none", responseBody.Matches[1].MatchConfidence)
	suite.Nil(responseBody.Matches[1].Payment)
	suite.Equal(2, responseBody.Summary.TotalTransactions)
	suite.Equal(1, responseBody.Summary.Matched.High)
	suite.True(responseBody.Summary.UnmatchedAmount.Equal(decimal.NewFromFloat(99.99)))

	suite.mockReconciliationService.AssertExpectations(suite.T())
}

func (suite *ReconciliationHandlerTestSuite) TestGetReconciliation_Forbidden() {
	studioID := uuid.NewString()
	requestingUserID := uuid.NewString()

	suite.mockReconciliationService.On("Reconcile",
		mock.Anything,
		studioID,
		requestingUserID,
	).Return(nil, domain.ReconciliationSummary{}, apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/reconciliation", studioID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := suite.doRequest(req, requestingUserID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockReconciliationService.AssertExpectations(suite.T())
}

func (suite *ReconciliationHandlerTestSuite) TestGetReconciliation_Unauthenticated() {
	studioID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/studios/%s/reconciliation", studioID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReconciliationService.AssertNotCalled(suite.T(), "Reconcile")
}

func (suite *ReconciliationHandlerTestSuite) TestUploadStatement_Success() {
	studioID := uuid.NewString()
	requestingUserID := uuid.NewString()

	expectedResponse := &dto.StatementUploadResponse{
		Received:   3,
		Inserted:   2,
		Duplicates: 1,
	}

	suite.mockStatementService.On("IngestCSV",
		mock.Anything,
		studioID,
		mock.Anything,
		requestingUserID,
	).Return(expectedResponse, nil).Once()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "statement.csv")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("Date,Description,Debit,Credit\n03/12/2024,E-TRANSFER Q-1042,,1500.00\n"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	url := fmt.Sprintf("/api/v1/studios/%s/statements", studioID)
	req, _ := http.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := suite.doRequest(req, requestingUserID)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.StatementUploadResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(2, responseBody.Inserted)
	suite.Equal(1, responseBody.Duplicates)

	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *ReconciliationHandlerTestSuite) TestUploadStatement_MissingFile() {
	studioID := uuid.NewString()
	requestingUserID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/studios/%s/statements", studioID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	w := suite.doRequest(req, requestingUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "IngestCSV")
}

func (suite *ReconciliationHandlerTestSuite) TestListTransactions_Success() {
	studioID := uuid.NewString()
	requestingUserID := uuid.NewString()
	limit := 10

	txns := []domain.BankTransaction{
		{
			TransactionID: uuid.NewString(),
			StudioID:      studioID,
			Date:          time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			Description:   "E-TRANSFER Q-1042",
			Amount:        decimal.NewFromFloat(1500.00),
		},
	}
	nextToken := "opaque-token"

	suite.mockStatementService.On("ListTransactions",
		mock.Anything,
		studioID,
		limit,
		(*string)(nil),
		requestingUserID,
	).Return(txns, &nextToken, nil).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/transactions?limit=%d", studioID, limit)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := suite.doRequest(req, requestingUserID)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListBankTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody.Transactions, 1)
	suite.Equal(txns[0].TransactionID, responseBody.Transactions[0].TransactionID)
	suite.Require().NotNil(responseBody.NextToken)
	suite.Equal(nextToken, *responseBody.NextToken)

	suite.mockStatementService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestReconciliationHandler(t *testing.T) {
	suite.Run(t, new(ReconciliationHandlerTestSuite))
}
