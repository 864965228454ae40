package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	UpdateBalance(ctx context.Context, account *entity.Account) error
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	UpdateStatus(ctx context.Context, reservation *entity.Reservation) error
}

type EntryRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	// FindByReference returns nil, nil when no entry exists.
	FindByReference(ctx context.Context, reference string, kind entity.EntryKind) (*entity.LedgerEntry, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.LedgerEntry, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	ListUnsettled(ctx context.Context, createdBefore time.Time, limit int) ([]*entity.Transaction, error)
}

type AuctionRepository interface {
	Create(ctx context.Context, state *entity.AuctionState) error
	FindByListingID(ctx context.Context, listingID string) (*entity.AuctionState, error)
	FindByListingIDForUpdate(ctx context.Context, listingID string) (*entity.AuctionState, error)
	// Update persists state if its stored version still equals expectedVersion,
	// otherwise it returns entity.ErrStaleAuctionState.
	Update(ctx context.Context, state *entity.AuctionState, expectedVersion int64) error
	AddDeposit(ctx context.Context, listingID string, accountID, reservationID uuid.UUID) error
	// AppendBid stores bid as the leading bid and demotes every earlier bid.
	AppendBid(ctx context.Context, bid *entity.Bid) error
	ListBids(ctx context.Context, listingID string, limit int) ([]entity.Bid, error)
}

type IdempotencyRepository interface {
	// Find returns nil, nil when the key is unknown.
	Find(ctx context.Context, key string) (*entity.IdempotencyRecord, error)
	Save(ctx context.Context, record *entity.IdempotencyRecord) error
	Lock(ctx context.Context, key string) error
}
