package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
)

type AuctionRepo struct {
	q querier
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *AuctionRepo) Create(ctx context.Context, state *entity.AuctionState) error {
	s := state.Snapshot()
	_, err := r.q.Exec(ctx,
		`INSERT INTO auctions (listing_id, listing_type, starting_price, current_bid, bid_increment,
		                       deposit_amount, starts_at, ends_at, status, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.Params.ListingID, string(s.Params.ListingType), s.Params.StartingPrice, s.CurrentBid,
		s.Params.BidIncrement, s.Params.DepositAmount, nullableTime(s.Params.StartsAt),
		nullableTime(s.Params.EndsAt), string(s.Status), s.Version,
	)
	return translate(err, "auction "+s.Params.ListingID)
}

func (r *AuctionRepo) FindByListingID(ctx context.Context, listingID string) (*entity.AuctionState, error) {
	return r.find(ctx, listingID, "")
}

func (r *AuctionRepo) FindByListingIDForUpdate(ctx context.Context, listingID string) (*entity.AuctionState, error) {
	return r.find(ctx, listingID, " FOR UPDATE")
}

func (r *AuctionRepo) find(ctx context.Context, listingID, suffix string) (*entity.AuctionState, error) {
	var (
		s                   entity.AuctionSnapshot
		listingType, status string
		startsAt, endsAt    *time.Time
	)
	err := r.q.QueryRow(ctx,
		`SELECT listing_type, starting_price, current_bid, bid_increment, deposit_amount,
		        starts_at, ends_at, status, version
		 FROM auctions WHERE listing_id = $1`+suffix,
		listingID,
	).Scan(
		&listingType, &s.Params.StartingPrice, &s.CurrentBid, &s.Params.BidIncrement,
		&s.Params.DepositAmount, &startsAt, &endsAt, &status, &s.Version,
	)
	if err != nil {
		return nil, translate(err, "auction "+listingID)
	}
	s.Params.ListingID = listingID
	s.Params.ListingType = entity.ListingType(listingType)
	s.Status = entity.AuctionStatus(status)
	if startsAt != nil {
		s.Params.StartsAt = *startsAt
	}
	if endsAt != nil {
		s.Params.EndsAt = *endsAt
	}

	if s.Deposits, err = r.deposits(ctx, listingID); err != nil {
		return nil, err
	}
	if s.Bidders, err = r.bidders(ctx, listingID); err != nil {
		return nil, err
	}

	leading, err := r.ListBids(ctx, listingID, 1)
	if err != nil {
		return nil, err
	}
	if len(leading) == 1 && leading[0].IsLeading {
		s.Leading = &leading[0]
	}
	return entity.ReconstructAuctionState(s), nil
}

func (r *AuctionRepo) deposits(ctx context.Context, listingID string) (map[uuid.UUID]uuid.UUID, error) {
	rows, err := r.q.Query(ctx,
		`SELECT account_id, reservation_id FROM auction_deposits WHERE listing_id = $1`,
		listingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]uuid.UUID)
	for rows.Next() {
		var accountID, reservationID uuid.UUID
		if err := rows.Scan(&accountID, &reservationID); err != nil {
			return nil, err
		}
		out[accountID] = reservationID
	}
	return out, rows.Err()
}

func (r *AuctionRepo) bidders(ctx context.Context, listingID string) ([]uuid.UUID, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT account_id FROM bids WHERE listing_id = $1`,
		listingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var accountID uuid.UUID
		if err := rows.Scan(&accountID); err != nil {
			return nil, err
		}
		out = append(out, accountID)
	}
	return out, rows.Err()
}

func (r *AuctionRepo) Update(ctx context.Context, state *entity.AuctionState, expectedVersion int64) error {
	s := state.Snapshot()
	tag, err := r.q.Exec(ctx,
		`UPDATE auctions SET current_bid = $1, status = $2, version = version + 1
		 WHERE listing_id = $3 AND version = $4`,
		s.CurrentBid, string(s.Status), s.Params.ListingID, expectedVersion,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrStaleAuctionState
	}
	return nil
}

func (r *AuctionRepo) AddDeposit(ctx context.Context, listingID string, accountID, reservationID uuid.UUID) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO auction_deposits (listing_id, account_id, reservation_id) VALUES ($1, $2, $3)`,
		listingID, accountID, reservationID,
	)
	return translate(err, "deposit "+listingID+"/"+accountID.String())
}

func (r *AuctionRepo) AppendBid(ctx context.Context, bid *entity.Bid) error {
	if _, err := r.q.Exec(ctx,
		`UPDATE bids SET is_leading = FALSE WHERE listing_id = $1 AND is_leading`,
		bid.ListingID,
	); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO bids (id, listing_id, account_id, amount, is_leading, created_at)
		 VALUES ($1, $2, $3, $4, TRUE, $5)`,
		bid.ID, bid.ListingID, bid.AccountID, bid.Amount, bid.Timestamp,
	)
	return translate(err, "bid "+bid.ID.String())
}

func (r *AuctionRepo) ListBids(ctx context.Context, listingID string, limit int) ([]entity.Bid, error) {
	var exists bool
	if err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM auctions WHERE listing_id = $1)`, listingID,
	).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("auction %s: %w", listingID, repository.ErrNotFound)
	}

	query := `SELECT id, account_id, amount, is_leading, created_at
		 FROM bids WHERE listing_id = $1
		 ORDER BY is_leading DESC, created_at DESC`
	args := []any{listingID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Bid, 0)
	for rows.Next() {
		b := entity.Bid{ListingID: listingID}
		if err := rows.Scan(&b.ID, &b.AccountID, &b.Amount, &b.IsLeading, &b.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
