package grpc

import (
	"time"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/bidding"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/checkout"
)

func toTransaction(v *checkout.View) *checkoutv1.Transaction {
	t := &checkoutv1.Transaction{
		TransactionID:    v.ID.String(),
		Kind:             string(v.Kind),
		Status:           string(v.Status),
		AccountID:        v.AccountID.String(),
		ListingID:        v.ListingID,
		ListingType:      string(v.ListingType),
		Amount:           v.Amount,
		PaymentMethod:    string(v.Method),
		FailureReason:    string(v.FailureReason),
		Retryable:        v.Retryable,
		GatewayReference: v.GatewayReference,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.Pending != nil {
		t.Pending = &checkoutv1.PendingPayment{
			QRPayload:   v.Pending.QRPayload,
			Deeplink:    v.Pending.Deeplink,
			FallbackURL: v.Pending.FallbackURL,
		}
	}
	return t
}

func toBid(b *entity.Bid) *checkoutv1.Bid {
	if b == nil {
		return nil
	}
	return &checkoutv1.Bid{
		ID:        b.ID.String(),
		AccountID: b.AccountID.String(),
		Amount:    b.Amount,
		Timestamp: b.Timestamp,
		IsLeading: b.IsLeading,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toAuctionState(v *bidding.StateView) *checkoutv1.AuctionState {
	return &checkoutv1.AuctionState{
		ListingID:           v.ListingID,
		ListingType:         string(v.ListingType),
		Status:              string(v.Status),
		StartingPrice:       v.StartingPrice,
		CurrentBid:          v.CurrentBid,
		HasBids:             v.HasBids,
		MinimumNextBid:      v.MinimumNextBid,
		BidIncrement:        v.BidIncrement,
		DepositRequired:     v.DepositRequired,
		DepositAmount:       v.DepositAmount,
		CallerDeposited:     v.CallerDeposited,
		CallerEligibleToBid: v.CallerEligibleToBid,
		Leading:             toBid(v.Leading),
		StartsAt:            optionalTime(v.StartsAt),
		EndsAt:              optionalTime(v.EndsAt),
	}
}
