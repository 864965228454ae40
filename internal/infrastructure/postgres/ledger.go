package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

type AccountRepo struct {
	q querier
}

func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO accounts (id, available, locked) VALUES ($1, $2, $3)`,
		account.ID(), account.Available(), account.Locked(),
	)
	return translate(err, "account "+account.ID().String())
}

func (r *AccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.find(ctx, `SELECT available, locked FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.find(ctx, `SELECT available, locked FROM accounts WHERE id = $1 FOR UPDATE`, id)
}

func (r *AccountRepo) find(ctx context.Context, query string, id uuid.UUID) (*entity.Account, error) {
	var available, locked int64
	if err := r.q.QueryRow(ctx, query, id).Scan(&available, &locked); err != nil {
		return nil, translate(err, "account "+id.String())
	}
	return entity.ReconstructAccount(id, available, locked), nil
}

func (r *AccountRepo) UpdateBalance(ctx context.Context, account *entity.Account) error {
	_, err := r.q.Exec(ctx,
		`UPDATE accounts SET available = $1, locked = $2 WHERE id = $3`,
		account.Available(), account.Locked(), account.ID(),
	)
	return err
}

type ReservationRepo struct {
	q querier
}

func (r *ReservationRepo) Create(ctx context.Context, res *entity.Reservation) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO reservations (id, account_id, amount, reference, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID(), res.AccountID(), res.Amount(), res.Reference(), string(res.Status()), res.CreatedAt(),
	)
	return translate(err, "reservation "+res.ID().String())
}

func (r *ReservationRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var (
		accountID uuid.UUID
		amount    int64
		reference string
		status    string
		createdAt time.Time
	)
	err := r.q.QueryRow(ctx,
		`SELECT account_id, amount, reference, status, created_at
		 FROM reservations WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&accountID, &amount, &reference, &status, &createdAt)
	if err != nil {
		return nil, translate(err, "reservation "+id.String())
	}
	return entity.ReconstructReservation(id, accountID, amount, reference, entity.ReservationStatus(status), createdAt), nil
}

func (r *ReservationRepo) UpdateStatus(ctx context.Context, res *entity.Reservation) error {
	_, err := r.q.Exec(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2`,
		string(res.Status()), res.ID(),
	)
	return err
}

type EntryRepo struct {
	q querier
}

func (r *EntryRepo) Append(ctx context.Context, e *entity.LedgerEntry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO ledger_entries (id, account_id, kind, amount, reference, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID(), e.AccountID(), string(e.Kind()), e.Amount(), e.Reference(), e.CreatedAt(),
	)
	return translate(err, "ledger entry "+e.Reference())
}

func (r *EntryRepo) FindByReference(ctx context.Context, reference string, kind entity.EntryKind) (*entity.LedgerEntry, error) {
	var (
		id        uuid.UUID
		accountID uuid.UUID
		amount    int64
		createdAt time.Time
	)
	err := r.q.QueryRow(ctx,
		`SELECT id, account_id, amount, created_at
		 FROM ledger_entries WHERE reference = $1 AND kind = $2`,
		reference, string(kind),
	).Scan(&id, &accountID, &amount, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructLedgerEntry(id, accountID, kind, amount, reference, createdAt), nil
}

func (r *EntryRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.LedgerEntry, error) {
	query := `SELECT id, kind, amount, reference, created_at
		 FROM ledger_entries WHERE account_id = $1
		 ORDER BY created_at DESC, id`
	args := []any{accountID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.LedgerEntry
	for rows.Next() {
		var (
			id        uuid.UUID
			kind      string
			amount    int64
			reference string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &kind, &amount, &reference, &createdAt); err != nil {
			return nil, err
		}
		out = append(out, entity.ReconstructLedgerEntry(id, accountID, entity.EntryKind(kind), amount, reference, createdAt))
	}
	return out, rows.Err()
}
