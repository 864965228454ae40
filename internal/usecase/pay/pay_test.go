package pay_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	paymentmocks "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment/mocks"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/qrcode"
	qrmocks "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/qrcode/mocks"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/memory"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/pay"
)

func TestWalletGateway_Pay(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewUseCase(memory.NewUnitOfWork(memory.NewStore()), slog.New(slog.NewTextHandler(io.Discard, nil)))
	gw := pay.NewWalletGateway(l)

	accountID := uuid.New()
	_, err := l.OpenAccount(ctx, accountID, 1_000_000)
	require.NoError(t, err)

	req := payment.Request{TransactionID: uuid.New(), AccountID: accountID, Amount: 520_000}

	res, err := gw.Pay(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Settled)
	assert.Nil(t, res.Pending)
	assert.Equal(t, req.TransactionID.String(), res.Reference)

	_, err = gw.Pay(ctx, req)
	require.NoError(t, err)

	bal, err := l.Balance(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(480_000), bal.Available)

	_, err = gw.Pay(ctx, payment.Request{TransactionID: uuid.New(), AccountID: accountID, Amount: 520_000})
	assert.ErrorIs(t, err, entity.ErrInsufficientFunds)
}

func TestQRGateway_Pay_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := paymentmocks.NewMockProvider(ctrl)
	generator := qrmocks.NewMockGenerator(ctrl)
	gw := pay.NewQRGateway(provider, generator, "EVMARKET")

	txID := uuid.New()
	provider.EXPECT().CreateOrder(gomock.Any(), payment.Order{TransactionID: txID, Amount: 520_000, Description: "listing"}).
		Return(&payment.CreatedOrder{Reference: "ord-1", PayURL: "https://pay.example/ord-1", Deeplink: "pay://ord-1"}, nil)
	generator.EXPECT().Payload(qrcode.QRData{
		TransactionID: txID.String(),
		Reference:     "ord-1",
		Partner:       "EVMARKET",
		Amount:        520_000,
	}).Return(`{"reference":"ord-1"}`, nil)

	res, err := gw.Pay(context.Background(), payment.Request{
		TransactionID: txID,
		AccountID:     uuid.New(),
		Amount:        520_000,
		Description:   "listing",
	})
	require.NoError(t, err)
	assert.False(t, res.Settled)
	assert.Equal(t, "ord-1", res.Reference)
	require.NotNil(t, res.Pending)
	assert.Equal(t, `{"reference":"ord-1"}`, res.Pending.QRPayload)
	assert.Equal(t, "pay://ord-1", res.Pending.Deeplink)
	assert.Equal(t, "https://pay.example/ord-1", res.Pending.FallbackURL)
}

func TestQRGateway_Pay_ProviderDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := paymentmocks.NewMockProvider(ctrl)
	generator := qrmocks.NewMockGenerator(ctrl)
	gw := pay.NewQRGateway(provider, generator, "EVMARKET")

	provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := gw.Pay(context.Background(), payment.Request{TransactionID: uuid.New(), Amount: 10})
	assert.ErrorIs(t, err, entity.ErrGatewayUnavailable)
	assert.True(t, entity.IsRetryable(err))
}
