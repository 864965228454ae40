package checkout_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	paymentmocks "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment/mocks"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository/mocks"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/memory"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/provider/sandbox"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/qrgenerator"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/checkout"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/pay"
)

type fixture struct {
	uow      *memory.UnitOfWork
	ledger   *ledger.UseCase
	provider *sandbox.Provider
	checkout *checkout.UseCase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := discardLogger()
	uow := memory.NewUnitOfWork(memory.NewStore())
	l := ledger.NewUseCase(uow, logger)
	provider := sandbox.NewProvider("http://sandbox.local")

	gateways := map[entity.PaymentMethod]payment.Gateway{
		entity.MethodWallet:          pay.NewWalletGateway(l),
		entity.MethodExternalGateway: pay.NewQRGateway(provider, qrgenerator.NewGenerator(256), "EVMARKET"),
	}
	uc, err := checkout.NewUseCase(uow, l, gateways, provider, checkout.Config{
		PollInterval: 10 * time.Millisecond,
		PollAttempts: 5,
		CacheSize:    16,
	}, logger)
	require.NoError(t, err)

	return &fixture{uow: uow, ledger: l, provider: provider, checkout: uc}
}

func (f *fixture) account(t *testing.T, opening int64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := f.ledger.OpenAccount(context.Background(), id, opening)
	require.NoError(t, err)
	return id
}

func (f *fixture) available(t *testing.T, id uuid.UUID) int64 {
	t.Helper()
	bal, err := f.ledger.Balance(context.Background(), id)
	require.NoError(t, err)
	return bal.Available
}

func purchase(accountID uuid.UUID, amount int64, method entity.PaymentMethod) checkout.CheckoutRequest {
	return checkout.CheckoutRequest{
		AccountID:   accountID,
		ListingID:   "listing-" + uuid.NewString(),
		ListingType: entity.ListingBattery,
		Amount:      amount,
		Method:      method,
	}
}

func TestCheckoutUseCase_Initiate_WalletSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 1_000_000)

	view, err := f.checkout.Initiate(ctx, purchase(buyer, 520_000, entity.MethodWallet))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, view.Status)
	assert.Equal(t, entity.KindPurchase, view.Kind)
	assert.Nil(t, view.Pending)
	assert.Equal(t, int64(480_000), f.available(t, buyer))

	stored, err := f.checkout.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)
}

func TestCheckoutUseCase_Initiate_InsufficientFundsCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := mocks.NewMockUnitOfWork(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	idempotencyRepo := mocks.NewMockIdempotencyRepository(ctrl)
	walletGateway := paymentmocks.NewMockGateway(ctrl)

	logger := discardLogger()
	uc, err := checkout.NewUseCase(uow, ledger.NewUseCase(uow, logger),
		map[entity.PaymentMethod]payment.Gateway{entity.MethodWallet: walletGateway},
		nil, checkout.Config{}, logger)
	require.NoError(t, err)

	buyer := uuid.New()
	uow.EXPECT().Idempotency().Return(idempotencyRepo)
	idempotencyRepo.EXPECT().Find(gomock.Any(), "poor-key").Return(nil, nil)
	uow.EXPECT().Accounts().Return(accountRepo)
	accountRepo.EXPECT().FindByID(gomock.Any(), buyer).Return(entity.NewAccount(buyer, 400_000), nil)

	req := purchase(buyer, 520_000, entity.MethodWallet)
	req.IdempotencyKey = "poor-key"

	_, err = uc.Initiate(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrInsufficientFunds)
}

func TestCheckoutUseCase_Initiate_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 1_000)

	tests := []struct {
		name    string
		mutate  func(*checkout.CheckoutRequest)
		wantErr error
	}{
		{"zero amount", func(r *checkout.CheckoutRequest) { r.Amount = 0 }, entity.ErrInvalidAmount},
		{"missing listing", func(r *checkout.CheckoutRequest) { r.ListingID = "" }, entity.ErrInvalidListing},
		{"unknown listing type", func(r *checkout.CheckoutRequest) { r.ListingType = "BOAT" }, entity.ErrInvalidListing},
		{"unknown method", func(r *checkout.CheckoutRequest) { r.Method = "CASH" }, entity.ErrUnsupportedPaymentMethod},
		{"unknown account", func(r *checkout.CheckoutRequest) { r.AccountID = uuid.New() }, repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := purchase(buyer, 100, entity.MethodWallet)
			tt.mutate(&req)
			_, err := f.checkout.Initiate(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	unsettled, err := f.uow.Transactions().ListUnsettled(ctx, time.Now().Add(time.Hour), 0)
	require.NoError(t, err)
	assert.Empty(t, unsettled)
	assert.Equal(t, int64(1_000), f.available(t, buyer))
}

func TestCheckoutUseCase_ExternalConfirmIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 0)

	view, err := f.checkout.Initiate(ctx, purchase(buyer, 520_000, entity.MethodExternalGateway))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, view.Status)
	assert.True(t, view.AwaitingConfirmation())
	require.NotNil(t, view.Pending)
	assert.Contains(t, view.Pending.QRPayload, view.GatewayReference)

	pending, err := f.checkout.Confirm(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, pending.Status)

	require.NoError(t, f.provider.MarkPaid(view.GatewayReference))

	first, err := f.checkout.Confirm(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, first.Status)

	second, err := f.checkout.Confirm(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, second.Status)
	assert.Equal(t, int64(0), f.available(t, buyer))

	status, err := f.checkout.Poll(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, status)
}

func TestCheckoutUseCase_TopUpCreditsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.account(t, 1_000)

	view, err := f.checkout.TopUp(ctx, checkout.TopUpRequest{AccountID: owner, Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, entity.KindTopUp, view.Kind)
	assert.True(t, view.AwaitingConfirmation())
	assert.Equal(t, int64(1_000), f.available(t, owner))

	require.NoError(t, f.provider.MarkPaid(view.GatewayReference))

	const callers = 20
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var status entity.TransactionStatus
			if i%2 == 0 {
				v, err := f.checkout.Confirm(ctx, view.ID)
				if !assert.NoError(t, err) {
					return
				}
				status = v.Status
			} else {
				s, err := f.checkout.Poll(ctx, view.ID)
				if !assert.NoError(t, err) {
					return
				}
				status = s
			}
			assert.Equal(t, entity.StatusCompleted, status)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1_250), f.available(t, owner))

	history, err := f.ledger.History(ctx, owner, 0)
	require.NoError(t, err)
	credits := 0
	for _, e := range history {
		if e.Kind() == entity.EntryCredit && e.Reference() == view.ID.String() {
			credits++
		}
	}
	assert.Equal(t, 1, credits)
}

func TestCheckoutUseCase_ExternalDeclined(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 0)

	view, err := f.checkout.Initiate(ctx, purchase(buyer, 300, entity.MethodExternalGateway))
	require.NoError(t, err)
	require.NoError(t, f.provider.Decline(view.GatewayReference))

	declined, err := f.checkout.Confirm(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, declined.Status)
	assert.Equal(t, entity.FailurePaymentDeclined, declined.FailureReason)
	assert.False(t, declined.Retryable)
}

func TestCheckoutUseCase_ProviderUnavailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 0)

	f.provider.SetAvailable(false)
	failed, err := f.checkout.Initiate(ctx, purchase(buyer, 300, entity.MethodExternalGateway))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, failed.Status)
	assert.Equal(t, entity.FailureGatewayUnavailable, failed.FailureReason)
	assert.True(t, failed.Retryable)

	f.provider.SetAvailable(true)
	view, err := f.checkout.Initiate(ctx, purchase(buyer, 300, entity.MethodExternalGateway))
	require.NoError(t, err)

	f.provider.SetAvailable(false)
	_, err = f.checkout.Confirm(ctx, view.ID)
	assert.ErrorIs(t, err, entity.ErrGatewayUnavailable)
	assert.True(t, entity.IsRetryable(err))

	stored, err := f.checkout.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, stored.Status)
}

func TestCheckoutUseCase_IdempotencyKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 1_000)

	req := purchase(buyer, 400, entity.MethodWallet)
	req.IdempotencyKey = "checkout-1"

	const callers = 20
	ids := make([]uuid.UUID, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			view, err := f.checkout.Initiate(ctx, req)
			if assert.NoError(t, err) {
				ids[i] = view.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Equal(t, int64(600), f.available(t, buyer))

	view, err := f.checkout.Initiate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, view.Status)

	changed := req
	changed.Amount = 500
	_, err = f.checkout.Initiate(ctx, changed)
	assert.ErrorIs(t, err, entity.ErrIdempotencyConflict)
}

func TestCheckoutUseCase_ConcurrentWalletCheckoutsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 600)

	var wg sync.WaitGroup
	results := make([]*checkout.View, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.checkout.Initiate(ctx, purchase(buyer, 500, entity.MethodWallet))
		}(i)
	}
	wg.Wait()

	completed := 0
	for i := range results {
		if errs[i] != nil {
			assert.ErrorIs(t, errs[i], entity.ErrInsufficientFunds)
			continue
		}
		if results[i].Status == entity.StatusCompleted {
			completed++
			continue
		}
		assert.Equal(t, entity.StatusFailed, results[i].Status)
		assert.True(t, results[i].InsufficientBalance())
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, int64(100), f.available(t, buyer))
}

func TestCheckoutUseCase_Withdraw(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.account(t, 1_000)

	view, err := f.checkout.Withdraw(ctx, checkout.WithdrawRequest{AccountID: owner, Amount: 300})
	require.NoError(t, err)
	assert.Equal(t, entity.KindWithdrawal, view.Kind)
	assert.Equal(t, entity.StatusCompleted, view.Status)
	assert.Equal(t, int64(700), f.available(t, owner))

	_, err = f.checkout.Withdraw(ctx, checkout.WithdrawRequest{AccountID: owner, Amount: 701})
	assert.ErrorIs(t, err, entity.ErrInsufficientFunds)
}

func TestCheckoutUseCase_ResumeStuckWalletTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 1_000)

	stuck := entity.NewTransaction(entity.KindPurchase, buyer, "listing-9", entity.ListingVehicle, 300, entity.MethodWallet)
	require.NoError(t, stuck.Transition(entity.StatusProcessing))
	require.NoError(t, f.uow.Transactions().Create(ctx, stuck))
	require.NoError(t, f.ledger.Settle(ctx, buyer, 300, stuck.ID().String()))

	view, err := f.checkout.Resume(ctx, stuck.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, view.Status)

	_, err = f.checkout.Resume(ctx, stuck.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(700), f.available(t, buyer))
}

func TestCheckoutUseCase_Watch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 0)

	paid, err := f.checkout.Initiate(ctx, purchase(buyer, 100, entity.MethodExternalGateway))
	require.NoError(t, err)

	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = f.provider.MarkPaid(paid.GatewayReference)
	}()

	view, err := f.checkout.Watch(ctx, paid.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, view.Status)

	unpaid, err := f.checkout.Initiate(ctx, purchase(buyer, 100, entity.MethodExternalGateway))
	require.NoError(t, err)

	view, err = f.checkout.Watch(ctx, unpaid.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, view.Status)
}

func TestCheckoutUseCase_ExpireStale(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 1_000)

	abandoned, err := f.checkout.Initiate(ctx, purchase(buyer, 100, entity.MethodExternalGateway))
	require.NoError(t, err)
	paidLate, err := f.checkout.Initiate(ctx, purchase(buyer, 100, entity.MethodExternalGateway))
	require.NoError(t, err)
	require.NoError(t, f.provider.MarkPaid(paidLate.GatewayReference))

	stuck := entity.NewTransaction(entity.KindPurchase, buyer, "listing-9", entity.ListingVehicle, 300, entity.MethodWallet)
	require.NoError(t, f.uow.Transactions().Create(ctx, stuck))

	result, err := f.checkout.ExpireStale(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Cancelled)
	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, 1, result.Resumed)

	view, err := f.checkout.Get(ctx, abandoned.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, view.Status)
	assert.Equal(t, entity.FailureExpired, view.FailureReason)

	view, err = f.checkout.Get(ctx, stuck.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, view.Status)
	assert.Equal(t, int64(700), f.available(t, buyer))

	confirmed, err := f.checkout.Confirm(ctx, abandoned.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, confirmed.Status)
}

// slowProvider opens a fresh order on every CreateOrder call and holds the
// first call until release is closed.
type slowProvider struct {
	mu      sync.Mutex
	calls   int
	txID    uuid.UUID
	orders  map[string]payment.OrderStatus
	entered chan struct{}
	release chan struct{}
}

func newSlowProvider() *slowProvider {
	return &slowProvider{
		orders:  make(map[string]payment.OrderStatus),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (p *slowProvider) CreateOrder(_ context.Context, o payment.Order) (*payment.CreatedOrder, error) {
	p.mu.Lock()
	p.calls++
	ref := fmt.Sprintf("order-%d", p.calls)
	p.orders[ref] = payment.OrderPending
	first := p.calls == 1
	if first {
		p.txID = o.TransactionID
	}
	p.mu.Unlock()

	if first {
		close(p.entered)
		<-p.release
	}
	return &payment.CreatedOrder{Reference: ref, PayURL: "http://pay/" + ref}, nil
}

func (p *slowProvider) QueryOrder(_ context.Context, reference string) (payment.OrderStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.orders[reference], nil
}

func (p *slowProvider) markPaid(reference string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders[reference] = payment.OrderPaid
}

func (p *slowProvider) createCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestCheckoutUseCase_ConfirmWhileOrderIsBeingCreated(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	uow := memory.NewUnitOfWork(memory.NewStore())
	l := ledger.NewUseCase(uow, logger)
	provider := newSlowProvider()

	uc, err := checkout.NewUseCase(uow, l, map[entity.PaymentMethod]payment.Gateway{
		entity.MethodExternalGateway: pay.NewQRGateway(provider, qrgenerator.NewGenerator(256), "EVMARKET"),
	}, provider, checkout.Config{PollInterval: 10 * time.Millisecond, PollAttempts: 2, CacheSize: 16}, logger)
	require.NoError(t, err)

	buyer := uuid.New()
	_, err = l.OpenAccount(ctx, buyer, 0)
	require.NoError(t, err)

	type result struct {
		view *checkout.View
		err  error
	}
	done := make(chan result, 1)
	go func() {
		view, err := uc.Initiate(ctx, purchase(buyer, 900, entity.MethodExternalGateway))
		done <- result{view, err}
	}()
	<-provider.entered

	during, err := uc.Confirm(ctx, provider.txID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, during.Status)
	assert.Empty(t, during.GatewayReference)

	_, err = uc.Resume(ctx, provider.txID)
	require.NoError(t, err)

	close(provider.release)
	initiated := <-done
	require.NoError(t, initiated.err)
	assert.Equal(t, "order-1", initiated.view.GatewayReference)
	assert.Equal(t, 1, provider.createCalls())

	provider.markPaid("order-1")
	confirmed, err := uc.Confirm(ctx, provider.txID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, confirmed.Status)
	assert.Equal(t, "order-1", confirmed.GatewayReference)
}

func TestCheckoutUseCase_TopUpOverflowIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.account(t, math.MaxInt64)

	_, err := f.checkout.TopUp(ctx, checkout.TopUpRequest{AccountID: owner, Amount: 10})
	assert.ErrorIs(t, err, entity.ErrAmountOverflow)
	assert.Equal(t, int64(math.MaxInt64), f.available(t, owner))

	near := f.account(t, math.MaxInt64-20)
	view, err := f.checkout.TopUp(ctx, checkout.TopUpRequest{AccountID: near, Amount: 10})
	require.NoError(t, err)
	require.NoError(t, f.provider.MarkPaid(view.GatewayReference))

	require.NoError(t, f.ledger.Credit(ctx, near, 15, "manual-adjustment"))

	_, err = f.checkout.Confirm(ctx, view.ID)
	assert.ErrorIs(t, err, entity.ErrAmountOverflow)
	assert.Equal(t, int64(math.MaxInt64-5), f.available(t, near))

	stored, err := f.checkout.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, stored.Status)
}

func TestCheckoutUseCase_ConcurrentConfirmCreditsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.account(t, 1_000)

	view, err := f.checkout.TopUp(ctx, checkout.TopUpRequest{AccountID: owner, Amount: 500})
	require.NoError(t, err)
	require.Equal(t, entity.StatusProcessing, view.Status)
	require.NoError(t, f.provider.MarkPaid(view.GatewayReference))

	const callers = 50
	var wg sync.WaitGroup
	statuses := make([]entity.TransactionStatus, callers+1)
	errs := make([]error, callers+1)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var v *checkout.View
			if i%2 == 0 {
				v, errs[i] = f.checkout.Confirm(ctx, view.ID)
				if v != nil {
					statuses[i] = v.Status
				}
				return
			}
			statuses[i], errs[i] = f.checkout.Poll(ctx, view.ID)
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := f.checkout.Watch(ctx, view.ID)
		errs[callers] = err
		if v != nil {
			statuses[callers] = v.Status
		}
	}()
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, entity.StatusCompleted, statuses[i])
	}
	assert.Equal(t, int64(1_500), f.available(t, owner))

	entries, err := f.ledger.History(ctx, owner, 0)
	require.NoError(t, err)
	credits := 0
	for _, e := range entries {
		if e.Kind() == entity.EntryCredit && e.Reference() == view.ID.String() {
			credits++
		}
	}
	assert.Equal(t, 1, credits)
}

func TestCheckoutUseCase_RetryableFailureNeedsNewKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.account(t, 0)

	req := purchase(buyer, 300, entity.MethodExternalGateway)
	req.IdempotencyKey = "qr-attempt-1"

	f.provider.SetAvailable(false)
	failed, err := f.checkout.Initiate(ctx, req)
	require.NoError(t, err)
	require.Equal(t, entity.StatusFailed, failed.Status)
	require.True(t, failed.Retryable)

	f.provider.SetAvailable(true)
	replayed, err := f.checkout.Initiate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, failed.ID, replayed.ID)
	assert.Equal(t, entity.StatusFailed, replayed.Status)
	assert.Equal(t, entity.FailureGatewayUnavailable, replayed.FailureReason)

	req.IdempotencyKey = "qr-attempt-2"
	retried, err := f.checkout.Initiate(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, failed.ID, retried.ID)
	assert.Equal(t, entity.StatusProcessing, retried.Status)
	assert.NotEmpty(t, retried.GatewayReference)
}
