package grpc_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	grpchandler "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/delivery/grpc"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/memory"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/provider/sandbox"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/qrgenerator"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/bidding"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/checkout"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/pay"
)

type recordingScheduler struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (s *recordingScheduler) Submit(txID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, txID)
	return true
}

func (s *recordingScheduler) submitted() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.ids...)
}

type env struct {
	client    *checkoutv1.CheckoutEngineClient
	provider  *sandbox.Provider
	scheduler *recordingScheduler
}

func newEnv(t *testing.T) *env {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := memory.NewUnitOfWork(memory.NewStore())
	ledgerUC := ledger.NewUseCase(uow, logger)
	biddingUC := bidding.NewUseCase(uow, ledgerUC, logger)
	provider := sandbox.NewProvider("http://sandbox.local")

	gateways := map[entity.PaymentMethod]payment.Gateway{
		entity.MethodWallet:          pay.NewWalletGateway(ledgerUC),
		entity.MethodExternalGateway: pay.NewQRGateway(provider, qrgenerator.NewGenerator(256), "EVTRADE"),
	}
	checkoutUC, err := checkout.NewUseCase(uow, ledgerUC, gateways, provider, checkout.Config{
		PollInterval: 10 * time.Millisecond,
		PollAttempts: 3,
	}, logger)
	require.NoError(t, err)

	scheduler := &recordingScheduler{}
	handler := grpchandler.NewHandler(checkoutUC, ledgerUC, biddingUC, scheduler, logger)

	lis := bufconn.Listen(1 << 20)
	srv := gogrpc.NewServer()
	checkoutv1.RegisterCheckoutEngineServer(srv, handler)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &env{
		client:    checkoutv1.NewCheckoutEngineClient(conn),
		provider:  provider,
		scheduler: scheduler,
	}
}

func (e *env) account(t *testing.T, opening int64) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.client.OpenAccount(context.Background(), &checkoutv1.OpenAccountRequest{
		AccountID:      id,
		OpeningBalance: opening,
	})
	require.NoError(t, err)
	return id
}

func TestHandler_WalletCheckout(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	buyer := e.account(t, 1000)

	resp, err := e.client.InitiateCheckout(ctx, &checkoutv1.InitiateCheckoutRequest{
		IdempotencyKey: "wallet-1",
		AccountID:      buyer,
		ListingID:      "battery-7",
		ListingType:    "BATTERY",
		Amount:         400,
		PaymentMethod:  "WALLET",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Transaction)
	assert.Equal(t, "COMPLETED", resp.Transaction.Status)
	assert.Empty(t, resp.ErrorCode)

	bal, err := e.client.GetWalletBalance(ctx, &checkoutv1.AccountRequest{AccountID: buyer})
	require.NoError(t, err)
	assert.Equal(t, int64(600), bal.Available)

	history, err := e.client.GetWalletHistory(ctx, &checkoutv1.HistoryRequest{AccountID: buyer})
	require.NoError(t, err)
	require.Len(t, history.Entries, 2)
	assert.Equal(t, string(entity.EntryDebit), history.Entries[0].Kind)
	assert.Equal(t, resp.Transaction.TransactionID, history.Entries[0].Reference)

	assert.Empty(t, e.scheduler.submitted())
}

func TestHandler_InsufficientFundsIsAResponse(t *testing.T) {
	e := newEnv(t)
	buyer := e.account(t, 100)

	resp, err := e.client.InitiateCheckout(context.Background(), &checkoutv1.InitiateCheckoutRequest{
		AccountID:     buyer,
		ListingID:     "vehicle-1",
		ListingType:   "VEHICLE",
		Amount:        500,
		PaymentMethod: "WALLET",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Transaction)
	assert.Equal(t, checkoutv1.ErrorInsufficientFunds, resp.ErrorCode)
}

func TestHandler_InvalidInput(t *testing.T) {
	e := newEnv(t)
	buyer := e.account(t, 100)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *checkoutv1.InitiateCheckoutRequest
		code codes.Code
	}{
		{
			name: "bad account id",
			req:  &checkoutv1.InitiateCheckoutRequest{AccountID: "nope", ListingID: "l", ListingType: "VEHICLE", Amount: 1, PaymentMethod: "WALLET"},
			code: codes.InvalidArgument,
		},
		{
			name: "zero amount",
			req:  &checkoutv1.InitiateCheckoutRequest{AccountID: buyer, ListingID: "l", ListingType: "VEHICLE", PaymentMethod: "WALLET"},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown listing type",
			req:  &checkoutv1.InitiateCheckoutRequest{AccountID: buyer, ListingID: "l", ListingType: "BOAT", Amount: 1, PaymentMethod: "WALLET"},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown method",
			req:  &checkoutv1.InitiateCheckoutRequest{AccountID: buyer, ListingID: "l", ListingType: "VEHICLE", Amount: 1, PaymentMethod: "CASH"},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown account",
			req:  &checkoutv1.InitiateCheckoutRequest{AccountID: uuid.NewString(), ListingID: "l", ListingType: "VEHICLE", Amount: 1, PaymentMethod: "WALLET"},
			code: codes.NotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.client.InitiateCheckout(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestHandler_ExternalCheckoutAndConfirm(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	buyer := e.account(t, 0)

	resp, err := e.client.InitiateCheckout(ctx, &checkoutv1.InitiateCheckoutRequest{
		AccountID:     buyer,
		ListingID:     "vehicle-9",
		ListingType:   "VEHICLE",
		Amount:        2500,
		PaymentMethod: "EXTERNAL_GATEWAY",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Transaction)
	assert.Equal(t, "PROCESSING", resp.Transaction.Status)
	require.NotNil(t, resp.Transaction.Pending)
	assert.NotEmpty(t, resp.Transaction.Pending.QRPayload)

	txID := resp.Transaction.TransactionID
	assert.Equal(t, []uuid.UUID{uuid.MustParse(txID)}, e.scheduler.submitted())

	confirm, err := e.client.ConfirmExternalPayment(ctx, &checkoutv1.TransactionRequest{TransactionID: txID})
	require.NoError(t, err)
	assert.Equal(t, "PROCESSING", confirm.Transaction.Status)

	require.NoError(t, e.provider.MarkPaid(resp.Transaction.GatewayReference))

	for i := 0; i < 3; i++ {
		confirm, err = e.client.ConfirmExternalPayment(ctx, &checkoutv1.TransactionRequest{TransactionID: txID})
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", confirm.Transaction.Status)
	}
}

func TestHandler_ConfirmWhileProviderDown(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	buyer := e.account(t, 0)

	resp, err := e.client.TopUpWallet(ctx, &checkoutv1.WalletRequest{AccountID: buyer, Amount: 300})
	require.NoError(t, err)
	require.Equal(t, "PROCESSING", resp.Transaction.Status)

	e.provider.SetAvailable(false)
	confirm, err := e.client.ConfirmExternalPayment(ctx, &checkoutv1.TransactionRequest{
		TransactionID: resp.Transaction.TransactionID,
	})
	require.NoError(t, err)
	assert.Equal(t, checkoutv1.ErrorGatewayUnavailable, confirm.ErrorCode)
	assert.Equal(t, "PROCESSING", confirm.Transaction.Status)
}

func TestHandler_TopUpPastBalanceLimit(t *testing.T) {
	e := newEnv(t)
	owner := e.account(t, math.MaxInt64)

	_, err := e.client.TopUpWallet(context.Background(), &checkoutv1.WalletRequest{AccountID: owner, Amount: 10})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHandler_GetTransactionNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.client.GetTransaction(context.Background(), &checkoutv1.TransactionRequest{TransactionID: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_AuctionFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.account(t, 1000)
	bob := e.account(t, 1000)

	_, err := e.client.OpenAuction(ctx, &checkoutv1.OpenAuctionRequest{
		ListingID:     "battery-42",
		ListingType:   "BATTERY",
		StartingPrice: 500,
		BidIncrement:  50,
		DepositAmount: 100,
	})
	require.NoError(t, err)

	bid, err := e.client.PlaceBid(ctx, &checkoutv1.BidRequest{ListingID: "battery-42", AccountID: alice, Amount: 550})
	require.NoError(t, err)
	assert.Equal(t, checkoutv1.ErrorDepositRequired, bid.ErrorCode)

	dep, err := e.client.PlaceDeposit(ctx, &checkoutv1.DepositRequest{ListingID: "battery-42", AccountID: alice})
	require.NoError(t, err)
	assert.Empty(t, dep.ErrorCode)
	assert.Equal(t, int64(100), dep.Amount)

	bid, err = e.client.PlaceBid(ctx, &checkoutv1.BidRequest{ListingID: "battery-42", AccountID: alice, Amount: 550})
	require.NoError(t, err)
	require.NotNil(t, bid.Bid)
	assert.Equal(t, int64(550), bid.CurrentBid)
	assert.Equal(t, int64(600), bid.MinimumNextBid)

	_, err = e.client.PlaceDeposit(ctx, &checkoutv1.DepositRequest{ListingID: "battery-42", AccountID: bob})
	require.NoError(t, err)
	bid, err = e.client.PlaceBid(ctx, &checkoutv1.BidRequest{ListingID: "battery-42", AccountID: bob, Amount: 560})
	require.NoError(t, err)
	assert.Equal(t, checkoutv1.ErrorBelowMinimum, bid.ErrorCode)
	assert.Equal(t, int64(600), bid.MinimumNextBid)

	state, err := e.client.GetAuctionState(ctx, &checkoutv1.AuctionStateRequest{ListingID: "battery-42", AccountID: alice})
	require.NoError(t, err)
	assert.Equal(t, int64(550), state.CurrentBid)
	assert.True(t, state.CallerDeposited)
	require.NotNil(t, state.Leading)
	assert.Equal(t, alice, state.Leading.AccountID)

	bal, err := e.client.GetWalletBalance(ctx, &checkoutv1.AccountRequest{AccountID: alice})
	require.NoError(t, err)
	assert.Equal(t, int64(900), bal.Available)
	assert.Equal(t, int64(100), bal.Locked)

	closed, err := e.client.CloseAuction(ctx, &checkoutv1.CloseAuctionRequest{ListingID: "battery-42"})
	require.NoError(t, err)
	assert.Equal(t, 2, closed.ReleasedDeposits)
	require.NotNil(t, closed.Winner)
	assert.Equal(t, alice, closed.Winner.AccountID)

	bids, err := e.client.ListBids(ctx, &checkoutv1.ListBidsRequest{ListingID: "battery-42"})
	require.NoError(t, err)
	assert.Len(t, bids.Bids, 1)

	bal, err = e.client.GetWalletBalance(ctx, &checkoutv1.AccountRequest{AccountID: alice})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), bal.Available)
	assert.Zero(t, bal.Locked)
}
