package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

//go:generate mockgen -source=payment.go -destination=mocks/payment.go -package=mocks

type Request struct {
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	Amount        int64
	Description   string
}

// Result is either settled, or pending with a handle the buyer uses to pay
// out of band.
type Result struct {
	Settled   bool
	Reference string
	Pending   *entity.PendingPayment
}

// Gateway is the capability the orchestrator drives for every payment method.
type Gateway interface {
	Pay(ctx context.Context, req Request) (*Result, error)
}

type OrderStatus string

const (
	OrderPending  OrderStatus = "PENDING"
	OrderPaid     OrderStatus = "PAID"
	OrderDeclined OrderStatus = "DECLINED"
)

type Order struct {
	TransactionID uuid.UUID
	Amount        int64
	Description   string
}

type CreatedOrder struct {
	Reference string
	PayURL    string
	Deeplink  string
}

// Provider is the external payment provider. Errors from either method are
// transport failures; a declined payment is an OrderStatus, not an error.
type Provider interface {
	CreateOrder(ctx context.Context, order Order) (*CreatedOrder, error)
	QueryOrder(ctx context.Context, reference string) (OrderStatus, error)
}
