package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

// View is the read model callers get for a transaction.
type View struct {
	ID               uuid.UUID
	Kind             entity.TransactionKind
	Status           entity.TransactionStatus
	AccountID        uuid.UUID
	ListingID        string
	ListingType      entity.ListingType
	Amount           int64
	Method           entity.PaymentMethod
	FailureReason    entity.FailureReason
	Retryable        bool
	GatewayReference string
	Pending          *entity.PendingPayment
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (v *View) InsufficientBalance() bool {
	return v.FailureReason == entity.FailureInsufficientFunds
}

// AwaitingConfirmation is true while an external payment handle is out and
// no outcome is known yet.
func (v *View) AwaitingConfirmation() bool {
	return v.Status == entity.StatusProcessing && v.Pending != nil
}

func viewOf(txn *entity.Transaction) *View {
	var pending *entity.PendingPayment
	if p := txn.Pending(); p != nil {
		cp := *p
		pending = &cp
	}
	return &View{
		ID:               txn.ID(),
		Kind:             txn.Kind(),
		Status:           txn.Status(),
		AccountID:        txn.AccountID(),
		ListingID:        txn.ListingID(),
		ListingType:      txn.ListingType(),
		Amount:           txn.Amount(),
		Method:           txn.Method(),
		FailureReason:    txn.FailureReason(),
		Retryable:        txn.Retryable(),
		GatewayReference: txn.GatewayReference(),
		Pending:          pending,
		CreatedAt:        txn.CreatedAt(),
		UpdatedAt:        txn.UpdatedAt(),
	}
}
