package entity

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrBidRejected              = errors.New("bid rejected")
	ErrGatewayUnavailable       = errors.New("payment gateway unavailable")
	ErrAlreadyTerminal          = errors.New("transaction already in terminal state")
	ErrInvalidTransition        = errors.New("invalid transaction status transition")
	ErrStaleAuctionState        = errors.New("stale auction state")
	ErrDepositNotRequired       = errors.New("auction does not require a deposit")
	ErrAuctionClosed            = errors.New("auction is not open for bidding")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrReservationReleased      = errors.New("reservation already released")
	ErrInvalidListing           = errors.New("listing id and type are required")
	ErrAmountOverflow           = errors.New("amount out of range")
	ErrPendingAlreadyAttached   = errors.New("transaction already has a provider order")
)

type RejectReason string

const (
	ReasonBelowMinimum    RejectReason = "BELOW_MINIMUM"
	ReasonDepositRequired RejectReason = "DEPOSIT_REQUIRED"
)

// BidRejectedError is returned for bids that fail eligibility or amount
// rules. State is never mutated when it is returned.
type BidRejectedError struct {
	Reason  RejectReason
	Minimum int64
}

func (e *BidRejectedError) Error() string {
	if e.Reason == ReasonBelowMinimum {
		return fmt.Sprintf("bid rejected: %s (minimum %d)", e.Reason, e.Minimum)
	}
	return fmt.Sprintf("bid rejected: %s", e.Reason)
}

func (e *BidRejectedError) Is(target error) bool {
	return target == ErrBidRejected
}

// addAmount returns a+b, or ErrAmountOverflow when the sum does not fit in
// an int64. Both operands are non-negative.
func addAmount(a, b int64) (int64, error) {
	if b > math.MaxInt64-a {
		return 0, ErrAmountOverflow
	}
	return a + b, nil
}

// IsRetryable reports whether the caller may retry the same attempt later.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable)
}
