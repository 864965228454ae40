package generateqr

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/qrcode"
)

var ErrNoPendingPayment = errors.New("transaction has no pending payment")

type Request struct {
	TransactionID uuid.UUID
}

// PendingSource looks up the pending payment handle of a transaction.
type PendingSource interface {
	PendingPayment(ctx context.Context, txID uuid.UUID) (*entity.PendingPayment, error)
}

type UseCase struct {
	source    PendingSource
	generator qrcode.Generator
}

func NewUseCase(source PendingSource, generator qrcode.Generator) *UseCase {
	return &UseCase{source: source, generator: generator}
}

// Execute renders the QR image of a transaction that is waiting for an
// external payment.
func (uc *UseCase) Execute(ctx context.Context, req Request) ([]byte, error) {
	pending, err := uc.source.PendingPayment(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if pending == nil || pending.QRPayload == "" {
		return nil, ErrNoPendingPayment
	}
	return uc.generator.Encode(pending.QRPayload)
}
