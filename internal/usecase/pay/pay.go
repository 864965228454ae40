package pay

import (
	"context"
	"fmt"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/qrcode"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
)

// WalletGateway settles synchronously against the internal wallet. The
// transaction id is the ledger reference, so paying twice debits once.
type WalletGateway struct {
	ledger *ledger.UseCase
}

func NewWalletGateway(ledger *ledger.UseCase) *WalletGateway {
	return &WalletGateway{ledger: ledger}
}

func (g *WalletGateway) Pay(ctx context.Context, req payment.Request) (*payment.Result, error) {
	reference := req.TransactionID.String()
	if err := g.ledger.Settle(ctx, req.AccountID, req.Amount, reference); err != nil {
		return nil, err
	}
	return &payment.Result{Settled: true, Reference: reference}, nil
}

// QRGateway opens an order with the external provider and hands back the QR
// payload the buyer scans. It never moves funds.
type QRGateway struct {
	provider  payment.Provider
	generator qrcode.Generator
	partner   string
}

func NewQRGateway(provider payment.Provider, generator qrcode.Generator, partner string) *QRGateway {
	return &QRGateway{provider: provider, generator: generator, partner: partner}
}

func (g *QRGateway) Pay(ctx context.Context, req payment.Request) (*payment.Result, error) {
	order, err := g.provider.CreateOrder(ctx, payment.Order{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGatewayUnavailable, err)
	}

	payload, err := g.generator.Payload(qrcode.QRData{
		TransactionID: req.TransactionID.String(),
		Reference:     order.Reference,
		Partner:       g.partner,
		Amount:        req.Amount,
	})
	if err != nil {
		return nil, err
	}

	return &payment.Result{
		Reference: order.Reference,
		Pending: &entity.PendingPayment{
			QRPayload:   payload,
			Deeplink:    order.Deeplink,
			FallbackURL: order.PayURL,
		},
	}, nil
}
