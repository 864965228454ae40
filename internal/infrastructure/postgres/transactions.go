package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

const transactionColumns = `id, kind, listing_id, listing_type, account_id, amount, method, status,
	failure_reason, retryable, gateway_reference, pending_payment, created_at, updated_at`

type TransactionRepo struct {
	q querier
}

func pendingJSON(p *entity.PendingPayment) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	s := t.Snapshot()
	pending, err := pendingJSON(s.Pending)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, string(s.Kind), s.ListingID, string(s.ListingType), s.AccountID, s.Amount, string(s.Method),
		string(s.Status), string(s.FailureReason), s.Retryable, s.GatewayReference, pending, s.CreatedAt, s.UpdatedAt,
	)
	return translate(err, "transaction "+s.ID.String())
}

func (r *TransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

func (r *TransactionRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
}

func (r *TransactionRepo) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, "transaction "+id.String())
	}
	return t, nil
}

func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	s := t.Snapshot()
	pending, err := pendingJSON(s.Pending)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx,
		`UPDATE transactions
		 SET status = $1, failure_reason = $2, retryable = $3, gateway_reference = $4,
		     pending_payment = $5, updated_at = $6
		 WHERE id = $7`,
		string(s.Status), string(s.FailureReason), s.Retryable, s.GatewayReference, pending, s.UpdatedAt, s.ID,
	)
	return err
}

func (r *TransactionRepo) ListUnsettled(ctx context.Context, createdBefore time.Time, limit int) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE status IN ('PENDING', 'PROCESSING') AND created_at < $1
		 ORDER BY created_at
		 LIMIT $2`,
		createdBefore, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		s                                          entity.TransactionSnapshot
		kind, listingType, method, status, failure string
		pending                                    []byte
	)
	err := row.Scan(
		&s.ID, &kind, &s.ListingID, &listingType, &s.AccountID, &s.Amount, &method, &status,
		&failure, &s.Retryable, &s.GatewayReference, &pending, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Kind = entity.TransactionKind(kind)
	s.ListingType = entity.ListingType(listingType)
	s.Method = entity.PaymentMethod(method)
	s.Status = entity.TransactionStatus(status)
	s.FailureReason = entity.FailureReason(failure)
	if len(pending) > 0 {
		var p entity.PendingPayment
		if err := json.Unmarshal(pending, &p); err != nil {
			return nil, err
		}
		s.Pending = &p
	}
	return entity.ReconstructTransaction(s), nil
}
