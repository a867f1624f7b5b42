package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		OrderRepo:       newPgxOrderRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
