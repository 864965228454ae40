package checkout

import (
	"context"
	"time"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
)

type SweepResult struct {
	Completed int
	Failed    int
	Cancelled int
	Resumed   int
	Skipped   int
}

// ExpireStale settles transactions that have been unsettled for longer than
// olderThan. External payments get one last provider check: paid completes,
// declined fails, anything else is cancelled as expired. Wallet payments are
// resumed. A provider that cannot be reached leaves the transaction for the
// next sweep.
func (uc *UseCase) ExpireStale(ctx context.Context, olderThan time.Duration) (*SweepResult, error) {
	stale, err := uc.uow.Transactions().ListUnsettled(ctx, time.Now().Add(-olderThan), uc.cfg.SweepBatch)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	for _, txn := range stale {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		view, err := uc.expire(ctx, txn)
		if err != nil {
			uc.logger.Warn("expiry sweep skipped transaction", "transaction_id", txn.ID(), "error", err)
			result.Skipped++
			continue
		}

		switch {
		case txn.Method() == entity.MethodWallet:
			result.Resumed++
		case view.Status == entity.StatusCompleted:
			result.Completed++
		case view.Status == entity.StatusFailed:
			result.Failed++
		case view.Status == entity.StatusCancelled:
			result.Cancelled++
		default:
			result.Skipped++
		}
	}

	if len(stale) > 0 {
		uc.logger.Info("expiry sweep finished",
			"checked", len(stale),
			"completed", result.Completed,
			"failed", result.Failed,
			"cancelled", result.Cancelled,
			"resumed", result.Resumed,
			"skipped", result.Skipped,
		)
	}
	return result, nil
}

func (uc *UseCase) expire(ctx context.Context, txn *entity.Transaction) (*View, error) {
	if txn.Method() == entity.MethodWallet {
		return uc.process(ctx, txn.ID(), true)
	}

	cancel := func(t *entity.Transaction) error {
		return t.Cancel(entity.FailureExpired)
	}
	if txn.GatewayReference() == "" {
		return uc.finalize(ctx, txn.ID(), cancel)
	}

	status, err := uc.provider.QueryOrder(ctx, txn.GatewayReference())
	if err != nil {
		return nil, err
	}
	if status == payment.OrderPending {
		return uc.finalize(ctx, txn.ID(), cancel)
	}
	return uc.applyOrderStatus(ctx, txn, status)
}
