package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
)

type accountRow struct {
	available int64
	locked    int64
}

type auctionRow struct {
	params     entity.AuctionParams
	currentBid *int64
	status     entity.AuctionStatus
	version    int64
	deposits   map[uuid.UUID]uuid.UUID
	bids       []entity.Bid // most recent first
}

// Store is an in-process implementation of the repositories. ForUpdate reads
// take a per-key lock that is held until the unit of work ends, which gives
// the same per-account and per-listing serialization as row locks.
type Store struct {
	mu           sync.Mutex
	locks        *keyLocks
	accounts     map[uuid.UUID]accountRow
	reservations map[uuid.UUID]*entity.Reservation
	entries      []*entity.LedgerEntry
	entryRefs    map[string]*entity.LedgerEntry
	transactions map[uuid.UUID]entity.TransactionSnapshot
	auctions     map[string]*auctionRow
	idempotency  map[string]*entity.IdempotencyRecord
}

func NewStore() *Store {
	return &Store{
		locks:        newKeyLocks(),
		accounts:     make(map[uuid.UUID]accountRow),
		reservations: make(map[uuid.UUID]*entity.Reservation),
		entryRefs:    make(map[string]*entity.LedgerEntry),
		transactions: make(map[uuid.UUID]entity.TransactionSnapshot),
		auctions:     make(map[string]*auctionRow),
		idempotency:  make(map[string]*entity.IdempotencyRecord),
	}
}

type txState struct {
	held   map[string]struct{}
	order  []string
	undo   []func()
	closed bool
}

type UnitOfWork struct {
	store *Store
	tx    *txState
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(_ context.Context) (repository.UnitOfWork, error) {
	return &UnitOfWork{
		store: u.store,
		tx:    &txState{held: make(map[string]struct{})},
	}, nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil || u.tx.closed {
		return nil
	}
	u.tx.closed = true
	u.tx.undo = nil
	u.releaseLocks()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil || u.tx.closed {
		return nil
	}
	u.tx.closed = true

	u.store.mu.Lock()
	for i := len(u.tx.undo) - 1; i >= 0; i-- {
		u.tx.undo[i]()
	}
	u.store.mu.Unlock()

	u.tx.undo = nil
	u.releaseLocks()
	return nil
}

func (u *UnitOfWork) Accounts() repository.AccountRepository {
	return &accountRepo{uow: u}
}

func (u *UnitOfWork) Reservations() repository.ReservationRepository {
	return &reservationRepo{uow: u}
}

func (u *UnitOfWork) Entries() repository.EntryRepository {
	return &entryRepo{uow: u}
}

func (u *UnitOfWork) Transactions() repository.TransactionRepository {
	return &transactionRepo{uow: u}
}

func (u *UnitOfWork) Auctions() repository.AuctionRepository {
	return &auctionRepo{uow: u}
}

func (u *UnitOfWork) Idempotency() repository.IdempotencyRepository {
	return &idempotencyRepo{uow: u}
}

// lock takes key for the rest of the unit of work. Outside a unit of work
// there is nothing to hold the lock for, so it is a no-op.
func (u *UnitOfWork) lock(key string) {
	if u.tx == nil {
		return
	}
	if _, ok := u.tx.held[key]; ok {
		return
	}
	u.store.locks.lock(key)
	u.tx.held[key] = struct{}{}
	u.tx.order = append(u.tx.order, key)
}

func (u *UnitOfWork) releaseLocks() {
	for i := len(u.tx.order) - 1; i >= 0; i-- {
		u.store.locks.unlock(u.tx.order[i])
	}
	u.tx.held = nil
	u.tx.order = nil
}

// mutate applies a write under the store mutex and keeps its inverse for
// Rollback.
func (u *UnitOfWork) mutate(apply, undo func()) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	apply()
	if u.tx != nil {
		u.tx.undo = append(u.tx.undo, undo)
	}
}

func (u *UnitOfWork) read(fn func()) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	fn()
}

type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (k *keyLocks) lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

func (k *keyLocks) unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}
