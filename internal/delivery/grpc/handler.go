package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/bidding"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/checkout"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
)

// Scheduler takes over confirmation of a transaction that is waiting for an
// external payment.
type Scheduler interface {
	Submit(txID uuid.UUID) bool
}

type Handler struct {
	checkoutv1.UnimplementedCheckoutEngineServer

	checkoutUC *checkout.UseCase
	ledgerUC   *ledger.UseCase
	biddingUC  *bidding.UseCase
	scheduler  Scheduler
	logger     *slog.Logger
}

func NewHandler(
	checkoutUC *checkout.UseCase,
	ledgerUC *ledger.UseCase,
	biddingUC *bidding.UseCase,
	scheduler Scheduler,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		checkoutUC: checkoutUC,
		ledgerUC:   ledgerUC,
		biddingUC:  biddingUC,
		scheduler:  scheduler,
		logger:     logger,
	}
}

func (h *Handler) InitiateCheckout(
	ctx context.Context,
	req *checkoutv1.InitiateCheckoutRequest,
) (*checkoutv1.TransactionResponse, error) {
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	view, err := h.checkoutUC.Initiate(ctx, checkout.CheckoutRequest{
		IdempotencyKey: req.IdempotencyKey,
		AccountID:      accountID,
		ListingID:      req.ListingID,
		ListingType:    entity.ListingType(req.ListingType),
		Amount:         req.Amount,
		Method:         entity.PaymentMethod(req.PaymentMethod),
	})
	return h.transactionResponse(view, err)
}

func (h *Handler) ConfirmExternalPayment(
	ctx context.Context,
	req *checkoutv1.TransactionRequest,
) (*checkoutv1.TransactionResponse, error) {
	txID, err := parseID(req.TransactionID, "transaction_id")
	if err != nil {
		return nil, err
	}

	view, err := h.checkoutUC.Confirm(ctx, txID)
	if errors.Is(err, entity.ErrGatewayUnavailable) {
		// The provider could not be asked; report the stored state.
		current, getErr := h.checkoutUC.Get(ctx, txID)
		if getErr != nil {
			return nil, toStatus(getErr)
		}
		return &checkoutv1.TransactionResponse{
			Transaction:  toTransaction(current),
			ErrorCode:    checkoutv1.ErrorGatewayUnavailable,
			ErrorMessage: err.Error(),
		}, nil
	}
	return h.transactionResponse(view, err)
}

func (h *Handler) GetTransaction(
	ctx context.Context,
	req *checkoutv1.TransactionRequest,
) (*checkoutv1.TransactionResponse, error) {
	txID, err := parseID(req.TransactionID, "transaction_id")
	if err != nil {
		return nil, err
	}

	view, err := h.checkoutUC.Get(ctx, txID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &checkoutv1.TransactionResponse{Transaction: toTransaction(view)}, nil
}

func (h *Handler) TopUpWallet(ctx context.Context, req *checkoutv1.WalletRequest) (*checkoutv1.TransactionResponse, error) {
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	view, err := h.checkoutUC.TopUp(ctx, checkout.TopUpRequest{
		IdempotencyKey: req.IdempotencyKey,
		AccountID:      accountID,
		Amount:         req.Amount,
	})
	return h.transactionResponse(view, err)
}

func (h *Handler) WithdrawWallet(ctx context.Context, req *checkoutv1.WalletRequest) (*checkoutv1.TransactionResponse, error) {
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	view, err := h.checkoutUC.Withdraw(ctx, checkout.WithdrawRequest{
		IdempotencyKey: req.IdempotencyKey,
		AccountID:      accountID,
		Amount:         req.Amount,
	})
	return h.transactionResponse(view, err)
}

// transactionResponse turns a use case outcome into a response. Business
// failures travel in error_code; everything else becomes a status error.
func (h *Handler) transactionResponse(view *checkout.View, err error) (*checkoutv1.TransactionResponse, error) {
	switch {
	case errors.Is(err, entity.ErrInsufficientFunds):
		return &checkoutv1.TransactionResponse{
			ErrorCode:    checkoutv1.ErrorInsufficientFunds,
			ErrorMessage: err.Error(),
		}, nil
	case errors.Is(err, entity.ErrIdempotencyConflict):
		return &checkoutv1.TransactionResponse{
			ErrorCode:    checkoutv1.ErrorIdempotencyConflict,
			ErrorMessage: err.Error(),
		}, nil
	case err != nil:
		return nil, toStatus(err)
	}

	if view.AwaitingConfirmation() && h.scheduler != nil {
		if !h.scheduler.Submit(view.ID) {
			h.logger.Warn("confirmation queue full, left for expiry sweep", "transaction_id", view.ID)
		}
	}

	resp := &checkoutv1.TransactionResponse{Transaction: toTransaction(view)}
	if view.FailureReason != entity.FailureNone {
		resp.ErrorCode = string(view.FailureReason)
		resp.ErrorMessage = failureMessage(view.FailureReason)
	}
	return resp, nil
}

func failureMessage(reason entity.FailureReason) string {
	switch reason {
	case entity.FailureInsufficientFunds:
		return entity.ErrInsufficientFunds.Error()
	case entity.FailureGatewayUnavailable:
		return entity.ErrGatewayUnavailable.Error()
	case entity.FailurePaymentDeclined:
		return "payment declined by provider"
	case entity.FailureExpired:
		return "payment not confirmed in time"
	default:
		return string(reason)
	}
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return id, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, repository.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrAmountOverflow),
		errors.Is(err, entity.ErrInvalidListing),
		errors.Is(err, entity.ErrUnsupportedPaymentMethod):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}
