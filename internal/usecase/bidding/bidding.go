package bidding

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
)

type Listing struct {
	ID            string
	Type          entity.ListingType
	StartingPrice int64
	BidIncrement  int64
	DepositAmount int64
	StartsAt      time.Time
	EndsAt        time.Time
}

type DepositOutcome struct {
	ListingID        string
	AccountID        uuid.UUID
	ReservationID    uuid.UUID
	Amount           int64
	AlreadyDeposited bool
}

type BidOutcome struct {
	Bid            entity.Bid
	CurrentBid     int64
	MinimumNextBid int64
}

type StateView struct {
	ListingID           string
	ListingType         entity.ListingType
	Status              entity.AuctionStatus
	StartingPrice       int64
	CurrentBid          int64
	HasBids             bool
	MinimumNextBid      int64
	BidIncrement        int64
	DepositRequired     bool
	DepositAmount       int64
	CallerDeposited     bool
	CallerEligibleToBid bool
	Leading             *entity.Bid
	StartsAt            time.Time
	EndsAt              time.Time
}

type CloseOutcome struct {
	ListingID        string
	Winner           *entity.Bid
	ReleasedDeposits int
	AlreadyClosed    bool
}

type UseCase struct {
	uow    repository.UnitOfWork
	ledger *ledger.UseCase
	logger *slog.Logger
}

func NewUseCase(uow repository.UnitOfWork, ledger *ledger.UseCase, logger *slog.Logger) *UseCase {
	return &UseCase{uow: uow, ledger: ledger, logger: logger}
}

func depositReference(listingID string, accountID uuid.UUID) string {
	return "deposit:" + listingID + ":" + accountID.String()
}

func (uc *UseCase) OpenAuction(ctx context.Context, l Listing) (*StateView, error) {
	state, err := entity.NewAuctionState(entity.AuctionParams{
		ListingID:     l.ID,
		ListingType:   l.Type,
		StartingPrice: l.StartingPrice,
		BidIncrement:  l.BidIncrement,
		DepositAmount: l.DepositAmount,
		StartsAt:      l.StartsAt,
		EndsAt:        l.EndsAt,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.uow.Auctions().Create(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Info("auction opened",
		"listing_id", l.ID,
		"starting_price", l.StartingPrice,
		"bid_increment", l.BidIncrement,
		"deposit_amount", l.DepositAmount,
	)
	return viewOf(state, uuid.Nil), nil
}

// PlaceDeposit reserves the auction deposit from the bidder's wallet. The
// reservation and the deposit record commit together or not at all.
func (uc *UseCase) PlaceDeposit(ctx context.Context, listingID string, accountID uuid.UUID) (*DepositOutcome, error) {
	var out *DepositOutcome
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		state, err := tx.Auctions().FindByListingIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if !state.DepositRequired() {
			return entity.ErrDepositNotRequired
		}
		if resID, ok := state.DepositReservation(accountID); ok {
			out = &DepositOutcome{
				ListingID:        listingID,
				AccountID:        accountID,
				ReservationID:    resID,
				Amount:           state.DepositAmount(),
				AlreadyDeposited: true,
			}
			return nil
		}
		if !state.AcceptsDeposits(time.Now()) {
			return entity.ErrAuctionClosed
		}

		res, err := uc.ledger.ReserveTx(ctx, tx, accountID, state.DepositAmount(), depositReference(listingID, accountID))
		if err != nil {
			return err
		}
		if err := state.RecordDeposit(accountID, res.ID()); err != nil {
			return err
		}
		if err := tx.Auctions().AddDeposit(ctx, listingID, accountID, res.ID()); err != nil {
			return err
		}

		out = &DepositOutcome{
			ListingID:     listingID,
			AccountID:     accountID,
			ReservationID: res.ID(),
			Amount:        res.Amount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !out.AlreadyDeposited {
		uc.logger.Info("deposit placed", "listing_id", listingID, "account_id", accountID, "amount", out.Amount)
	}
	return out, nil
}

// PlaceBid validates and records a bid under the listing lock. Rejected bids
// leave the auction untouched.
func (uc *UseCase) PlaceBid(ctx context.Context, listingID string, accountID uuid.UUID, amount int64) (*BidOutcome, error) {
	var out *BidOutcome
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		state, err := tx.Auctions().FindByListingIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}

		expected := state.Version()
		bid, err := state.PlaceBid(accountID, amount, time.Now())
		if err != nil {
			return err
		}
		if err := tx.Auctions().Update(ctx, state, expected); err != nil {
			if errors.Is(err, entity.ErrStaleAuctionState) {
				uc.logger.Error("auction state changed under listing lock",
					"listing_id", listingID,
					"expected_version", expected,
				)
			}
			return err
		}
		if err := tx.Auctions().AppendBid(ctx, bid); err != nil {
			return err
		}

		out = &BidOutcome{
			Bid:            *bid,
			CurrentBid:     state.CurrentBid(),
			MinimumNextBid: state.MinimumNextBid(),
		}
		return nil
	})
	if err != nil {
		var rejected *entity.BidRejectedError
		if errors.As(err, &rejected) {
			uc.logger.Info("bid rejected",
				"listing_id", listingID,
				"account_id", accountID,
				"amount", amount,
				"reason", rejected.Reason,
			)
		}
		return nil, err
	}

	uc.logger.Info("bid accepted", "listing_id", listingID, "account_id", accountID, "amount", amount)
	return out, nil
}

// State is the auction as the given caller sees it. callerID may be
// uuid.Nil for anonymous reads.
func (uc *UseCase) State(ctx context.Context, listingID string, callerID uuid.UUID) (*StateView, error) {
	state, err := uc.uow.Auctions().FindByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return viewOf(state, callerID), nil
}

func (uc *UseCase) Bids(ctx context.Context, listingID string, limit int) ([]entity.Bid, error) {
	return uc.uow.Auctions().ListBids(ctx, listingID, limit)
}

// CloseAuction stops bidding and releases every deposit, the winner's
// included. Closing twice is a no-op.
func (uc *UseCase) CloseAuction(ctx context.Context, listingID string) (*CloseOutcome, error) {
	var out *CloseOutcome
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		state, err := tx.Auctions().FindByListingIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if state.Status() == entity.AuctionClosed {
			out = &CloseOutcome{ListingID: listingID, Winner: state.Leading(), AlreadyClosed: true}
			return nil
		}

		expected := state.Version()
		state.Close()
		if err := tx.Auctions().Update(ctx, state, expected); err != nil {
			return err
		}

		reservations := state.DepositReservations()
		for _, resID := range reservations {
			if err := uc.ledger.ReleaseTx(ctx, tx, resID); err != nil {
				return err
			}
		}

		out = &CloseOutcome{
			ListingID:        listingID,
			Winner:           state.Leading(),
			ReleasedDeposits: len(reservations),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !out.AlreadyClosed {
		uc.logger.Info("auction closed", "listing_id", listingID, "released_deposits", out.ReleasedDeposits)
	}
	return out, nil
}

func viewOf(state *entity.AuctionState, callerID uuid.UUID) *StateView {
	v := &StateView{
		ListingID:       state.ListingID(),
		ListingType:     state.ListingType(),
		Status:          state.Status(),
		StartingPrice:   state.StartingPrice(),
		CurrentBid:      state.CurrentBid(),
		HasBids:         state.HasBids(),
		MinimumNextBid:  state.MinimumNextBid(),
		BidIncrement:    state.BidIncrement(),
		DepositRequired: state.DepositRequired(),
		DepositAmount:   state.DepositAmount(),
		Leading:         state.Leading(),
		StartsAt:        state.StartsAt(),
		EndsAt:          state.EndsAt(),
	}
	if callerID != uuid.Nil {
		v.CallerDeposited = state.HasDeposited(callerID)
		v.CallerEligibleToBid = state.EligibleToBid(callerID)
	}
	return v
}
