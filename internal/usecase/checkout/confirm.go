package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
)

// Confirm handles the buyer's "I have paid". The provider is asked before
// anything is completed; a transaction that is already terminal returns its
// stored outcome and changes nothing.
func (uc *UseCase) Confirm(ctx context.Context, txID uuid.UUID) (*View, error) {
	if cached, ok := uc.terminal.Get(txID); ok {
		v := *cached
		return &v, nil
	}

	txn, err := uc.uow.Transactions().FindByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if txn.Status().IsTerminal() {
		view := viewOf(txn)
		uc.terminal.Add(txID, view)
		v := *view
		return &v, nil
	}
	if txn.Method() != entity.MethodExternalGateway || txn.GatewayReference() == "" {
		return uc.Resume(ctx, txID)
	}
	return uc.refresh(ctx, txn)
}

// Poll performs a single status check against the provider.
func (uc *UseCase) Poll(ctx context.Context, txID uuid.UUID) (entity.TransactionStatus, error) {
	view, err := uc.Confirm(ctx, txID)
	if err != nil {
		return "", err
	}
	return view.Status, nil
}

// Watch polls until the transaction is terminal, the attempts run out or ctx
// is done. It returns the last view it saw.
func (uc *UseCase) Watch(ctx context.Context, txID uuid.UUID) (*View, error) {
	ticker := time.NewTicker(uc.cfg.PollInterval)
	defer ticker.Stop()

	var last *View
	for attempt := 1; ; attempt++ {
		view, err := uc.Confirm(ctx, txID)
		switch {
		case err == nil:
			last = view
			if view.Status.IsTerminal() {
				return view, nil
			}
		case errors.Is(err, entity.ErrGatewayUnavailable):
			uc.logger.Warn("confirmation poll failed", "transaction_id", txID, "attempt", attempt, "error", err)
		default:
			return nil, err
		}

		if attempt >= uc.cfg.PollAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}
	}

	if last == nil {
		return nil, fmt.Errorf("%w: no answer after %d attempts", entity.ErrGatewayUnavailable, uc.cfg.PollAttempts)
	}
	return last, nil
}

// refresh asks the provider for the order status outside any lock and
// applies a decided outcome.
func (uc *UseCase) refresh(ctx context.Context, txn *entity.Transaction) (*View, error) {
	status, err := uc.provider.QueryOrder(ctx, txn.GatewayReference())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGatewayUnavailable, err)
	}
	return uc.applyOrderStatus(ctx, txn, status)
}

func (uc *UseCase) applyOrderStatus(ctx context.Context, txn *entity.Transaction, status payment.OrderStatus) (*View, error) {
	switch status {
	case payment.OrderPaid:
		return uc.finalize(ctx, txn.ID(), (*entity.Transaction).Complete)
	case payment.OrderDeclined:
		return uc.finalize(ctx, txn.ID(), func(t *entity.Transaction) error {
			return t.Fail(entity.FailurePaymentDeclined, false)
		})
	default:
		return viewOf(txn), nil
	}
}
