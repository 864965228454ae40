package postgres

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

type IdempotencyRepo struct {
	q querier
}

func (r *IdempotencyRepo) Find(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	var (
		fingerprint   string
		transactionID uuid.UUID
		createdAt     time.Time
	)
	err := r.q.QueryRow(ctx,
		`SELECT fingerprint, transaction_id, created_at FROM idempotency_keys WHERE key = $1`,
		key,
	).Scan(&fingerprint, &transactionID, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructIdempotencyRecord(key, fingerprint, transactionID, createdAt), nil
}

func (r *IdempotencyRepo) Save(ctx context.Context, record *entity.IdempotencyRecord) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO idempotency_keys (key, fingerprint, transaction_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		record.Key(), record.Fingerprint(), record.TransactionID(), record.CreatedAt(),
	)
	return translate(err, "idempotency key "+record.Key())
}

// Lock serializes requests sharing key until the surrounding transaction ends.
func (r *IdempotencyRepo) Lock(ctx context.Context, key string) error {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(h.Sum64()))
	return err
}
