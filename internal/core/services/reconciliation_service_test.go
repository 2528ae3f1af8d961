package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/services"
)

// --- Mock BankTransactionRepository ---
type MockBankTransactionRepository struct {
	mock.Mock
}

func (m *MockBankTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.BankTransaction) (int, error) {
	args := m.Called(ctx, transactions)
	return args.Int(0), args.Error(1)
}

func (m *MockBankTransactionRepository) FindTransactionByID(ctx context.Context, studioID, transactionID string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, studioID, transactionID)
	var txn *domain.BankTransaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.BankTransaction)
	}
	return txn, args.Error(1)
}

func (m *MockBankTransactionRepository) ListTransactionsByStudio(ctx context.Context, studioID string, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	args := m.Called(ctx, studioID, limit, nextToken)
	var txns []domain.BankTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.BankTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockBankTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockBankTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBankTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBankTransactionRepository) FindAllTransactionsByStudio(ctx context.Context, studioID string) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, studioID)
	var txns []domain.BankTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.BankTransaction)
	}
	return txns, args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, studioID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, studioID, paymentID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByStudio(ctx context.Context, studioID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, studioID, limit, offset)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) FindAllPaymentsByStudio(ctx context.Context, studioID string) ([]domain.Payment, error) {
	args := m.Called(ctx, studioID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, studioID, paymentID string) error {
	args := m.Called(ctx, studioID, paymentID)
	return args.Error(0)
}

// --- Mock StudioAuthorizer ---
type MockStudioAuthorizer struct {
	mock.Mock
}

func (m *MockStudioAuthorizer) AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error {
	args := m.Called(ctx, userID, studioID, requiredRole)
	return args.Error(0)
}

// --- Test Suite ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockBankTransactionRepository
	mockPaymentRepo *MockPaymentRepository
	mockAuthorizer  *MockStudioAuthorizer
	service         portssvc.ReconciliationSvcFacade
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockBankTransactionRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAuthorizer = new(MockStudioAuthorizer)
	suite.service = services.NewReconciliationService(suite.mockTxnRepo, suite.mockPaymentRepo, suite.mockAuthorizer)
}

func reconDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_Success() {
	ctx := context.Background()
	studioID := "studio-1"
	userID := "user-1"

	paidAt := reconDay(2025, 3, 14)
	txns := []domain.BankTransaction{
		{TransactionID: "t1", StudioID: studioID, Date: reconDay(2025, 3, 14), Description: "E-TRANSFER Q-1042", Amount: decimal.NewFromFloat(1500.00)},
		{TransactionID: "t2", StudioID: studioID, Date: reconDay(2025, 3, 15), Description: "MONTHLY FEE", Amount: decimal.NewFromFloat(-45.00)},
		{TransactionID: "t3", StudioID: studioID, Date: reconDay(2025, 3, 16), Description: "DEPOSIT", Amount: decimal.NewFromFloat(99.99)},
	}
	payments := []domain.Payment{
		{PaymentID: "p1", StudioID: studioID, Amount: decimal.NewFromFloat(1500.00), QuoteNumber: "1042", PaidAt: &paidAt},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, studioID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockTxnRepo.On("FindAllTransactionsByStudio", ctx, studioID).Return(txns, nil).Once()
	suite.mockPaymentRepo.On("FindAllPaymentsByStudio", ctx, studioID).Return(payments, nil).Once()

	matches, summary, err := suite.service.Reconcile(ctx, studioID, userID)

	assert.NoError(suite.T(), err)
	// The debit is excluded, so only the two credits appear.
	assert.Len(suite.T(), matches, 2)
	assert.Equal(suite.T(), "t1", matches[0].Transaction.TransactionID)
	assert.NotNil(suite.T(), matches[0].Payment)
	assert.Equal(suite.T(), domain.ConfidenceHigh, matches[0].MatchConfidence)
	assert.Nil(suite.T(), matches[1].Payment)
	assert.Equal(suite.T(), domain.ConfidenceNone, matches[1].MatchConfidence)

	assert.Equal(suite.T(), 2, summary.TotalTransactions)
	assert.Equal(suite.T(), 1, summary.Matched.High)
	assert.Equal(suite.T(), 1, summary.Unmatched)
	assert.True(suite.T(), summary.MatchedAmount.Equal(decimal.NewFromFloat(1500.00)))
	assert.True(suite.T(), summary.UnmatchedAmount.Equal(decimal.NewFromFloat(99.99)))

	suite.mockAuthorizer.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_Unauthorized() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, "outsider", "studio-1", domain.RoleReadOnly).Return(apperrors.ErrNotFound).Once()

	matches, _, err := suite.service.Reconcile(ctx, "studio-1", "outsider")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.Nil(suite.T(), matches)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindAllTransactionsByStudio", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_TransactionRepoError() {
	ctx := context.Background()
	expectedErr := errors.New("database down")

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, "user-1", "studio-1", domain.RoleReadOnly).Return(nil).Once()
	suite.mockTxnRepo.On("FindAllTransactionsByStudio", ctx, "studio-1").Return(nil, expectedErr).Once()

	_, _, err := suite.service.Reconcile(ctx, "studio-1", "user-1")

	assert.ErrorIs(suite.T(), err, expectedErr)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindAllPaymentsByStudio", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_EmptyStudio() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, "user-1", "studio-1", domain.RoleReadOnly).Return(nil).Once()
	suite.mockTxnRepo.On("FindAllTransactionsByStudio", ctx, "studio-1").Return([]domain.BankTransaction{}, nil).Once()
	suite.mockPaymentRepo.On("FindAllPaymentsByStudio", ctx, "studio-1").Return([]domain.Payment{}, nil).Once()

	matches, summary, err := suite.service.Reconcile(ctx, "studio-1", "user-1")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matches)
	assert.Equal(suite.T(), 0, summary.TotalTransactions)
	assert.True(suite.T(), summary.TotalCredits.IsZero())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
