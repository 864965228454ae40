package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/bidding"
)

func (h *Handler) OpenAuction(ctx context.Context, req *checkoutv1.OpenAuctionRequest) (*checkoutv1.AuctionState, error) {
	l := bidding.Listing{
		ID:            req.ListingID,
		Type:          entity.ListingType(req.ListingType),
		StartingPrice: req.StartingPrice,
		BidIncrement:  req.BidIncrement,
		DepositAmount: req.DepositAmount,
	}
	if req.StartsAt != nil {
		l.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		l.EndsAt = *req.EndsAt
	}

	view, err := h.biddingUC.OpenAuction(ctx, l)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAuctionState(view), nil
}

func (h *Handler) PlaceDeposit(ctx context.Context, req *checkoutv1.DepositRequest) (*checkoutv1.DepositResponse, error) {
	if req.ListingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}

	out, err := h.biddingUC.PlaceDeposit(ctx, req.ListingID, accountID)
	if err != nil {
		code, ok := auctionErrorCode(err)
		if !ok {
			return nil, toStatus(err)
		}
		return &checkoutv1.DepositResponse{
			ListingID:    req.ListingID,
			AccountID:    req.AccountID,
			ErrorCode:    code,
			ErrorMessage: err.Error(),
		}, nil
	}

	return &checkoutv1.DepositResponse{
		ListingID:        out.ListingID,
		AccountID:        out.AccountID.String(),
		ReservationID:    out.ReservationID.String(),
		Amount:           out.Amount,
		AlreadyDeposited: out.AlreadyDeposited,
	}, nil
}

func (h *Handler) PlaceBid(ctx context.Context, req *checkoutv1.BidRequest) (*checkoutv1.BidResponse, error) {
	if req.ListingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	out, err := h.biddingUC.PlaceBid(ctx, req.ListingID, accountID, req.Amount)
	if err != nil {
		code, ok := auctionErrorCode(err)
		if !ok {
			return nil, toStatus(err)
		}
		resp := &checkoutv1.BidResponse{ErrorCode: code, ErrorMessage: err.Error()}
		var rejected *entity.BidRejectedError
		if errors.As(err, &rejected) {
			resp.MinimumNextBid = rejected.Minimum
		}
		return resp, nil
	}

	return &checkoutv1.BidResponse{
		Bid:            toBid(&out.Bid),
		CurrentBid:     out.CurrentBid,
		MinimumNextBid: out.MinimumNextBid,
	}, nil
}

func (h *Handler) GetAuctionState(ctx context.Context, req *checkoutv1.AuctionStateRequest) (*checkoutv1.AuctionState, error) {
	if req.ListingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}
	callerID := uuid.Nil
	if req.AccountID != "" {
		var err error
		if callerID, err = parseID(req.AccountID, "account_id"); err != nil {
			return nil, err
		}
	}

	view, err := h.biddingUC.State(ctx, req.ListingID, callerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAuctionState(view), nil
}

func (h *Handler) ListBids(ctx context.Context, req *checkoutv1.ListBidsRequest) (*checkoutv1.ListBidsResponse, error) {
	if req.ListingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}

	bids, err := h.biddingUC.Bids(ctx, req.ListingID, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &checkoutv1.ListBidsResponse{Bids: make([]checkoutv1.Bid, 0, len(bids))}
	for i := range bids {
		resp.Bids = append(resp.Bids, *toBid(&bids[i]))
	}
	return resp, nil
}

func (h *Handler) CloseAuction(ctx context.Context, req *checkoutv1.CloseAuctionRequest) (*checkoutv1.CloseAuctionResponse, error) {
	if req.ListingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}

	out, err := h.biddingUC.CloseAuction(ctx, req.ListingID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &checkoutv1.CloseAuctionResponse{
		ListingID:        out.ListingID,
		Winner:           toBid(out.Winner),
		ReleasedDeposits: out.ReleasedDeposits,
		AlreadyClosed:    out.AlreadyClosed,
	}, nil
}

// auctionErrorCode maps the recoverable auction outcomes to response codes.
func auctionErrorCode(err error) (string, bool) {
	var rejected *entity.BidRejectedError
	switch {
	case errors.As(err, &rejected):
		return string(rejected.Reason), true
	case errors.Is(err, entity.ErrInsufficientFunds):
		return checkoutv1.ErrorInsufficientFunds, true
	case errors.Is(err, entity.ErrAuctionClosed):
		return checkoutv1.ErrorAuctionClosed, true
	case errors.Is(err, entity.ErrDepositNotRequired):
		return checkoutv1.ErrorDepositNotRequired, true
	default:
		return "", false
	}
}
