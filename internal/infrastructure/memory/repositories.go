package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
)

type accountRepo struct {
	uow *UnitOfWork
}

func (r *accountRepo) Create(_ context.Context, account *entity.Account) error {
	s := r.uow.store
	var err error
	r.uow.mutate(func() {
		if _, ok := s.accounts[account.ID()]; ok {
			err = fmt.Errorf("account %s: %w", account.ID(), repository.ErrAlreadyExists)
			return
		}
		s.accounts[account.ID()] = accountRow{available: account.Available(), locked: account.Locked()}
	}, func() {
		if err == nil {
			delete(s.accounts, account.ID())
		}
	})
	return err
}

func (r *accountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	var (
		row accountRow
		ok  bool
	)
	r.uow.read(func() { row, ok = r.uow.store.accounts[id] })
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, repository.ErrNotFound)
	}
	return entity.ReconstructAccount(id, row.available, row.locked), nil
}

func (r *accountRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	r.uow.lock("account:" + id.String())
	return r.FindByID(ctx, id)
}

func (r *accountRepo) UpdateBalance(_ context.Context, account *entity.Account) error {
	s := r.uow.store
	var (
		prev accountRow
		err  error
	)
	r.uow.mutate(func() {
		var ok bool
		if prev, ok = s.accounts[account.ID()]; !ok {
			err = fmt.Errorf("account %s: %w", account.ID(), repository.ErrNotFound)
			return
		}
		s.accounts[account.ID()] = accountRow{available: account.Available(), locked: account.Locked()}
	}, func() {
		if err == nil {
			s.accounts[account.ID()] = prev
		}
	})
	return err
}

type reservationRepo struct {
	uow *UnitOfWork
}

func copyReservation(r *entity.Reservation) *entity.Reservation {
	return entity.ReconstructReservation(r.ID(), r.AccountID(), r.Amount(), r.Reference(), r.Status(), r.CreatedAt())
}

func (r *reservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	s := r.uow.store
	var err error
	r.uow.mutate(func() {
		if _, ok := s.reservations[reservation.ID()]; ok {
			err = fmt.Errorf("reservation %s: %w", reservation.ID(), repository.ErrAlreadyExists)
			return
		}
		s.reservations[reservation.ID()] = copyReservation(reservation)
	}, func() {
		if err == nil {
			delete(s.reservations, reservation.ID())
		}
	})
	return err
}

func (r *reservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	r.uow.lock("reservation:" + id.String())

	var found *entity.Reservation
	r.uow.read(func() {
		if res, ok := r.uow.store.reservations[id]; ok {
			found = copyReservation(res)
		}
	})
	if found == nil {
		return nil, fmt.Errorf("reservation %s: %w", id, repository.ErrNotFound)
	}
	return found, nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, reservation *entity.Reservation) error {
	s := r.uow.store
	var (
		prev *entity.Reservation
		err  error
	)
	r.uow.mutate(func() {
		var ok bool
		if prev, ok = s.reservations[reservation.ID()]; !ok {
			err = fmt.Errorf("reservation %s: %w", reservation.ID(), repository.ErrNotFound)
			return
		}
		s.reservations[reservation.ID()] = copyReservation(reservation)
	}, func() {
		if err == nil {
			s.reservations[reservation.ID()] = prev
		}
	})
	return err
}

type entryRepo struct {
	uow *UnitOfWork
}

func entryKey(reference string, kind entity.EntryKind) string {
	return string(kind) + "|" + reference
}

func (r *entryRepo) Append(_ context.Context, entry *entity.LedgerEntry) error {
	s := r.uow.store
	key := entryKey(entry.Reference(), entry.Kind())
	var err error
	r.uow.mutate(func() {
		if _, ok := s.entryRefs[key]; ok {
			err = fmt.Errorf("ledger entry %s: %w", key, repository.ErrAlreadyExists)
			return
		}
		s.entryRefs[key] = entry
		s.entries = append(s.entries, entry)
	}, func() {
		if err != nil {
			return
		}
		delete(s.entryRefs, key)
		for i := len(s.entries) - 1; i >= 0; i-- {
			if s.entries[i] == entry {
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
				break
			}
		}
	})
	return err
}

func (r *entryRepo) FindByReference(_ context.Context, reference string, kind entity.EntryKind) (*entity.LedgerEntry, error) {
	var found *entity.LedgerEntry
	r.uow.read(func() { found = r.uow.store.entryRefs[entryKey(reference, kind)] })
	return found, nil
}

func (r *entryRepo) ListByAccount(_ context.Context, accountID uuid.UUID, limit int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	r.uow.read(func() {
		entries := r.uow.store.entries
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].AccountID() != accountID {
				continue
			}
			out = append(out, entries[i])
			if limit > 0 && len(out) == limit {
				return
			}
		}
	})
	return out, nil
}

type transactionRepo struct {
	uow *UnitOfWork
}

func (r *transactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	s := r.uow.store
	var err error
	r.uow.mutate(func() {
		if _, ok := s.transactions[tx.ID()]; ok {
			err = fmt.Errorf("transaction %s: %w", tx.ID(), repository.ErrAlreadyExists)
			return
		}
		s.transactions[tx.ID()] = tx.Snapshot()
	}, func() {
		if err == nil {
			delete(s.transactions, tx.ID())
		}
	})
	return err
}

func (r *transactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var (
		snap entity.TransactionSnapshot
		ok   bool
	)
	r.uow.read(func() { snap, ok = r.uow.store.transactions[id] })
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, repository.ErrNotFound)
	}
	return entity.ReconstructTransaction(snap), nil
}

func (r *transactionRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.uow.lock("transaction:" + id.String())
	return r.FindByID(ctx, id)
}

func (r *transactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	s := r.uow.store
	var (
		prev entity.TransactionSnapshot
		err  error
	)
	r.uow.mutate(func() {
		var ok bool
		if prev, ok = s.transactions[tx.ID()]; !ok {
			err = fmt.Errorf("transaction %s: %w", tx.ID(), repository.ErrNotFound)
			return
		}
		s.transactions[tx.ID()] = tx.Snapshot()
	}, func() {
		if err == nil {
			s.transactions[tx.ID()] = prev
		}
	})
	return err
}

func (r *transactionRepo) ListUnsettled(_ context.Context, createdBefore time.Time, limit int) ([]*entity.Transaction, error) {
	var snaps []entity.TransactionSnapshot
	r.uow.read(func() {
		for _, snap := range r.uow.store.transactions {
			if snap.Status.IsTerminal() || !snap.CreatedAt.Before(createdBefore) {
				continue
			}
			snaps = append(snaps, snap)
		}
	})
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].CreatedAt.Before(snaps[j].CreatedAt)
	})
	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}

	out := make([]*entity.Transaction, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, entity.ReconstructTransaction(snap))
	}
	return out, nil
}

type auctionRepo struct {
	uow *UnitOfWork
}

func (r *auctionRepo) Create(_ context.Context, state *entity.AuctionState) error {
	s := r.uow.store
	snap := state.Snapshot()
	var err error
	r.uow.mutate(func() {
		if _, ok := s.auctions[snap.Params.ListingID]; ok {
			err = fmt.Errorf("auction %s: %w", snap.Params.ListingID, repository.ErrAlreadyExists)
			return
		}
		s.auctions[snap.Params.ListingID] = &auctionRow{
			params:     snap.Params,
			currentBid: snap.CurrentBid,
			status:     snap.Status,
			version:    snap.Version,
			deposits:   snap.Deposits,
		}
	}, func() {
		if err == nil {
			delete(s.auctions, snap.Params.ListingID)
		}
	})
	return err
}

func (r *auctionRepo) FindByListingID(_ context.Context, listingID string) (*entity.AuctionState, error) {
	var (
		snap entity.AuctionSnapshot
		ok   bool
	)
	r.uow.read(func() {
		var row *auctionRow
		if row, ok = r.uow.store.auctions[listingID]; ok {
			snap = row.snapshot()
		}
	})
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", listingID, repository.ErrNotFound)
	}
	return entity.ReconstructAuctionState(snap), nil
}

func (r *auctionRepo) FindByListingIDForUpdate(ctx context.Context, listingID string) (*entity.AuctionState, error) {
	r.uow.lock("listing:" + listingID)
	return r.FindByListingID(ctx, listingID)
}

func (r *auctionRepo) Update(_ context.Context, state *entity.AuctionState, expectedVersion int64) error {
	s := r.uow.store
	snap := state.Snapshot()
	var (
		prev auctionRow
		row  *auctionRow
		err  error
	)
	r.uow.mutate(func() {
		var ok bool
		if row, ok = s.auctions[snap.Params.ListingID]; !ok {
			err = fmt.Errorf("auction %s: %w", snap.Params.ListingID, repository.ErrNotFound)
			return
		}
		if row.version != expectedVersion {
			err = entity.ErrStaleAuctionState
			return
		}
		prev = *row
		row.currentBid = snap.CurrentBid
		row.status = snap.Status
		row.version = expectedVersion + 1
	}, func() {
		if err == nil {
			row.currentBid = prev.currentBid
			row.status = prev.status
			row.version = prev.version
		}
	})
	return err
}

func (r *auctionRepo) AddDeposit(_ context.Context, listingID string, accountID, reservationID uuid.UUID) error {
	s := r.uow.store
	var (
		row *auctionRow
		err error
	)
	r.uow.mutate(func() {
		var ok bool
		if row, ok = s.auctions[listingID]; !ok {
			err = fmt.Errorf("auction %s: %w", listingID, repository.ErrNotFound)
			return
		}
		if _, ok = row.deposits[accountID]; ok {
			err = fmt.Errorf("deposit %s/%s: %w", listingID, accountID, repository.ErrAlreadyExists)
			return
		}
		row.deposits[accountID] = reservationID
	}, func() {
		if err == nil {
			delete(row.deposits, accountID)
		}
	})
	return err
}

func (r *auctionRepo) AppendBid(_ context.Context, bid *entity.Bid) error {
	s := r.uow.store
	var (
		row  *auctionRow
		prev []entity.Bid
		err  error
	)
	r.uow.mutate(func() {
		var ok bool
		if row, ok = s.auctions[bid.ListingID]; !ok {
			err = fmt.Errorf("auction %s: %w", bid.ListingID, repository.ErrNotFound)
			return
		}
		prev = row.bids
		bids := make([]entity.Bid, 0, len(prev)+1)
		leading := *bid
		leading.IsLeading = true
		bids = append(bids, leading)
		for _, b := range prev {
			b.IsLeading = false
			bids = append(bids, b)
		}
		row.bids = bids
	}, func() {
		if err == nil {
			row.bids = prev
		}
	})
	return err
}

func (r *auctionRepo) ListBids(_ context.Context, listingID string, limit int) ([]entity.Bid, error) {
	var (
		out []entity.Bid
		ok  bool
	)
	r.uow.read(func() {
		var row *auctionRow
		if row, ok = r.uow.store.auctions[listingID]; !ok {
			return
		}
		n := len(row.bids)
		if limit > 0 && n > limit {
			n = limit
		}
		out = make([]entity.Bid, n)
		copy(out, row.bids[:n])
	})
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", listingID, repository.ErrNotFound)
	}
	return out, nil
}

func (row *auctionRow) snapshot() entity.AuctionSnapshot {
	deposits := make(map[uuid.UUID]uuid.UUID, len(row.deposits))
	for acc, res := range row.deposits {
		deposits[acc] = res
	}
	bidders := make([]uuid.UUID, 0, len(row.bids))
	seen := make(map[uuid.UUID]struct{}, len(row.bids))
	for _, b := range row.bids {
		if _, ok := seen[b.AccountID]; ok {
			continue
		}
		seen[b.AccountID] = struct{}{}
		bidders = append(bidders, b.AccountID)
	}
	var current *int64
	if row.currentBid != nil {
		v := *row.currentBid
		current = &v
	}
	var leading *entity.Bid
	if len(row.bids) > 0 {
		b := row.bids[0]
		leading = &b
	}
	return entity.AuctionSnapshot{
		Params:     row.params,
		CurrentBid: current,
		Deposits:   deposits,
		Bidders:    bidders,
		Leading:    leading,
		Status:     row.status,
		Version:    row.version,
	}
}

type idempotencyRepo struct {
	uow *UnitOfWork
}

func (r *idempotencyRepo) Find(_ context.Context, key string) (*entity.IdempotencyRecord, error) {
	var rec *entity.IdempotencyRecord
	r.uow.read(func() { rec = r.uow.store.idempotency[key] })
	return rec, nil
}

func (r *idempotencyRepo) Save(_ context.Context, record *entity.IdempotencyRecord) error {
	s := r.uow.store
	var err error
	r.uow.mutate(func() {
		if _, ok := s.idempotency[record.Key()]; ok {
			err = fmt.Errorf("idempotency key %s: %w", record.Key(), repository.ErrAlreadyExists)
			return
		}
		s.idempotency[record.Key()] = record
	}, func() {
		if err == nil {
			delete(s.idempotency, record.Key())
		}
	})
	return err
}

func (r *idempotencyRepo) Lock(_ context.Context, key string) error {
	r.uow.lock("idem:" + key)
	return nil
}
