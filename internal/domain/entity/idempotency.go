package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrIdempotencyConflict = errors.New("idempotency key reused with a different request")

// IdempotencyRecord binds a client supplied key to the transaction the first
// request with that key created. The fingerprint catches keys reused for a
// different request.
type IdempotencyRecord struct {
	key           string
	fingerprint   string
	transactionID uuid.UUID
	createdAt     time.Time
}

func NewIdempotencyRecord(key, fingerprint string, transactionID uuid.UUID) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:           key,
		fingerprint:   fingerprint,
		transactionID: transactionID,
		createdAt:     time.Now(),
	}
}

func ReconstructIdempotencyRecord(
	key, fingerprint string,
	transactionID uuid.UUID,
	createdAt time.Time,
) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:           key,
		fingerprint:   fingerprint,
		transactionID: transactionID,
		createdAt:     createdAt,
	}
}

func (r *IdempotencyRecord) Key() string {
	return r.key
}

func (r *IdempotencyRecord) Fingerprint() string {
	return r.fingerprint
}

func (r *IdempotencyRecord) TransactionID() uuid.UUID {
	return r.transactionID
}

func (r *IdempotencyRecord) CreatedAt() time.Time {
	return r.createdAt
}

// Matches reports whether a replayed request is the one the key was first
// used for.
func (r *IdempotencyRecord) Matches(fingerprint string) error {
	if r.fingerprint != fingerprint {
		return ErrIdempotencyConflict
	}
	return nil
}
