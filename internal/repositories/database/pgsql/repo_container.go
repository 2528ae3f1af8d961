package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	studioRepo := newPgxStudioRepository(dbPool)
	bankTransactionRepo := newPgxBankTransactionRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:            userRepo,
		StudioRepo:          studioRepo,
		BankTransactionRepo: bankTransactionRepo,
		PaymentRepo:         paymentRepo,
	}
}
