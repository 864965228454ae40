package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnavailable   = errors.New("provider unavailable")
	ErrOrderSettled  = errors.New("order already settled")
)

type order struct {
	reference     string
	transactionID uuid.UUID
	amount        int64
	description   string
	status        payment.OrderStatus
}

// Provider is an in-process payment provider. Orders stay PENDING until
// MarkPaid or Decline is called, which stands in for the buyer paying in
// their banking app.
type Provider struct {
	mu          sync.Mutex
	baseURL     string
	orders      map[string]*order
	byTx        map[uuid.UUID]string
	unavailable bool
}

func NewProvider(baseURL string) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		orders:  make(map[string]*order),
		byTx:    make(map[uuid.UUID]string),
	}
}

// SetAvailable switches the provider between answering and failing every
// call with ErrUnavailable.
func (p *Provider) SetAvailable(available bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unavailable = !available
}

// CreateOrder returns the existing order when one was already opened for the
// transaction.
func (p *Provider) CreateOrder(_ context.Context, o payment.Order) (*payment.CreatedOrder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unavailable {
		return nil, ErrUnavailable
	}
	if o.Amount <= 0 {
		return nil, fmt.Errorf("invalid amount %d", o.Amount)
	}

	ref, ok := p.byTx[o.TransactionID]
	if !ok {
		ref = "sbx-" + uuid.NewString()
		p.orders[ref] = &order{
			reference:     ref,
			transactionID: o.TransactionID,
			amount:        o.Amount,
			description:   o.Description,
			status:        payment.OrderPending,
		}
		p.byTx[o.TransactionID] = ref
	}
	return p.created(ref), nil
}

func (p *Provider) created(ref string) *payment.CreatedOrder {
	return &payment.CreatedOrder{
		Reference: ref,
		PayURL:    p.baseURL + "/pay/" + ref,
		Deeplink:  "sandboxpay://pay?ref=" + ref,
	}
}

func (p *Provider) QueryOrder(_ context.Context, reference string) (payment.OrderStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unavailable {
		return "", ErrUnavailable
	}
	o, ok := p.orders[reference]
	if !ok {
		return "", fmt.Errorf("%s: %w", reference, ErrOrderNotFound)
	}
	return o.status, nil
}

func (p *Provider) MarkPaid(reference string) error {
	return p.settle(reference, payment.OrderPaid)
}

func (p *Provider) Decline(reference string) error {
	return p.settle(reference, payment.OrderDeclined)
}

// ReferenceFor returns the order reference opened for a transaction.
func (p *Provider) ReferenceFor(txID uuid.UUID) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ref, ok := p.byTx[txID]
	return ref, ok
}

func (p *Provider) settle(reference string, status payment.OrderStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.orders[reference]
	if !ok {
		return fmt.Errorf("%s: %w", reference, ErrOrderNotFound)
	}
	if o.status != payment.OrderPending {
		if o.status == status {
			return nil
		}
		return ErrOrderSettled
	}
	o.status = status
	return nil
}
