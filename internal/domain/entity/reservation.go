package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationHeld     ReservationStatus = "HELD"
	ReservationReleased ReservationStatus = "RELEASED"
)

type Reservation struct {
	id        uuid.UUID
	accountID uuid.UUID
	amount    int64
	reference string
	status    ReservationStatus
	createdAt time.Time
}

func NewReservation(accountID uuid.UUID, amount int64, reference string) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		accountID: accountID,
		amount:    amount,
		reference: reference,
		status:    ReservationHeld,
		createdAt: time.Now(),
	}
}

func ReconstructReservation(
	id, accountID uuid.UUID,
	amount int64,
	reference string,
	status ReservationStatus,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		accountID: accountID,
		amount:    amount,
		reference: reference,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID {
	return r.id
}

func (r *Reservation) AccountID() uuid.UUID {
	return r.accountID
}

func (r *Reservation) Amount() int64 {
	return r.amount
}

func (r *Reservation) Reference() string {
	return r.reference
}

func (r *Reservation) Status() ReservationStatus {
	return r.status
}

func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reservation) MarkReleased() error {
	if r.status == ReservationReleased {
		return ErrReservationReleased
	}
	r.status = ReservationReleased
	return nil
}

type EntryKind string

const (
	EntryDebit   EntryKind = "DEBIT"
	EntryCredit  EntryKind = "CREDIT"
	EntryReserve EntryKind = "RESERVE"
	EntryRelease EntryKind = "RELEASE"
)

// LedgerEntry is an append-only journal line. (reference, kind) is unique.
type LedgerEntry struct {
	id        uuid.UUID
	accountID uuid.UUID
	kind      EntryKind
	amount    int64
	reference string
	createdAt time.Time
}

func NewLedgerEntry(accountID uuid.UUID, kind EntryKind, amount int64, reference string) *LedgerEntry {
	return &LedgerEntry{
		id:        uuid.New(),
		accountID: accountID,
		kind:      kind,
		amount:    amount,
		reference: reference,
		createdAt: time.Now(),
	}
}

func ReconstructLedgerEntry(
	id, accountID uuid.UUID,
	kind EntryKind,
	amount int64,
	reference string,
	createdAt time.Time,
) *LedgerEntry {
	return &LedgerEntry{
		id:        id,
		accountID: accountID,
		kind:      kind,
		amount:    amount,
		reference: reference,
		createdAt: createdAt,
	}
}

func (e *LedgerEntry) ID() uuid.UUID {
	return e.id
}

func (e *LedgerEntry) AccountID() uuid.UUID {
	return e.accountID
}

func (e *LedgerEntry) Kind() EntryKind {
	return e.kind
}

func (e *LedgerEntry) Amount() int64 {
	return e.amount
}

func (e *LedgerEntry) Reference() string {
	return e.reference
}

func (e *LedgerEntry) CreatedAt() time.Time {
	return e.createdAt
}
