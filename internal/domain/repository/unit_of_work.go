package repository

import "context"

//go:generate mockgen -source=unit_of_work.go -destination=mocks/unit_of_work.go -package=mocks

// UnitOfWork scopes repository access. The root instance reads without
// locks; Begin returns a transactional instance whose ForUpdate reads hold
// row locks until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	Accounts() AccountRepository
	Reservations() ReservationRepository
	Entries() EntryRepository
	Transactions() TransactionRepository
	Auctions() AuctionRepository
	Idempotency() IdempotencyRepository
}

// InTx runs fn inside a new unit of work, committing when fn returns nil.
func InTx(ctx context.Context, uow UnitOfWork, fn func(tx UnitOfWork) error) error {
	tx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
