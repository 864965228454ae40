package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/generateqr"
)

const idempotencyHeader = "X-Idempotency-Key"

// Engine is the part of the checkout engine API the gateway exposes.
type Engine interface {
	InitiateCheckout(ctx context.Context, in *checkoutv1.InitiateCheckoutRequest, opts ...grpc.CallOption) (*checkoutv1.TransactionResponse, error)
	ConfirmExternalPayment(ctx context.Context, in *checkoutv1.TransactionRequest, opts ...grpc.CallOption) (*checkoutv1.TransactionResponse, error)
	GetTransaction(ctx context.Context, in *checkoutv1.TransactionRequest, opts ...grpc.CallOption) (*checkoutv1.TransactionResponse, error)
	OpenAccount(ctx context.Context, in *checkoutv1.OpenAccountRequest, opts ...grpc.CallOption) (*checkoutv1.BalanceResponse, error)
	GetWalletBalance(ctx context.Context, in *checkoutv1.AccountRequest, opts ...grpc.CallOption) (*checkoutv1.BalanceResponse, error)
	GetWalletHistory(ctx context.Context, in *checkoutv1.HistoryRequest, opts ...grpc.CallOption) (*checkoutv1.HistoryResponse, error)
	TopUpWallet(ctx context.Context, in *checkoutv1.WalletRequest, opts ...grpc.CallOption) (*checkoutv1.TransactionResponse, error)
	WithdrawWallet(ctx context.Context, in *checkoutv1.WalletRequest, opts ...grpc.CallOption) (*checkoutv1.TransactionResponse, error)
	OpenAuction(ctx context.Context, in *checkoutv1.OpenAuctionRequest, opts ...grpc.CallOption) (*checkoutv1.AuctionState, error)
	PlaceDeposit(ctx context.Context, in *checkoutv1.DepositRequest, opts ...grpc.CallOption) (*checkoutv1.DepositResponse, error)
	PlaceBid(ctx context.Context, in *checkoutv1.BidRequest, opts ...grpc.CallOption) (*checkoutv1.BidResponse, error)
	GetAuctionState(ctx context.Context, in *checkoutv1.AuctionStateRequest, opts ...grpc.CallOption) (*checkoutv1.AuctionState, error)
	ListBids(ctx context.Context, in *checkoutv1.ListBidsRequest, opts ...grpc.CallOption) (*checkoutv1.ListBidsResponse, error)
	CloseAuction(ctx context.Context, in *checkoutv1.CloseAuctionRequest, opts ...grpc.CallOption) (*checkoutv1.CloseAuctionResponse, error)
}

type Handler struct {
	engine       Engine
	generateQRUC *generateqr.UseCase
}

func NewHandler(engine Engine, generateQRUC *generateqr.UseCase) *Handler {
	return &Handler{
		engine:       engine,
		generateQRUC: generateQRUC,
	}
}

type CheckoutRequest struct {
	AccountID     string `json:"account_id"`
	ListingID     string `json:"listing_id"`
	ListingType   string `json:"listing_type"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

type AmountRequest struct {
	Amount int64 `json:"amount"`
}

type OpenWalletRequest struct {
	OpeningBalance int64 `json:"opening_balance"`
}

type AccountBody struct {
	AccountID string `json:"account_id"`
}

type BidBody struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleCheckout starts a purchase. Replaying an X-Idempotency-Key returns
// the transaction it first created, including a FAILED one; retrying a
// retryable failure such as GATEWAY_UNAVAILABLE needs a new key.
func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.InitiateCheckout(r.Context(), &checkoutv1.InitiateCheckoutRequest{
		IdempotencyKey: r.Header.Get(idempotencyHeader),
		AccountID:      req.AccountID,
		ListingID:      req.ListingID,
		ListingType:    req.ListingType,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
	})
	writeTransaction(w, resp, err)
}

func (h *Handler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.GetTransaction(r.Context(), &checkoutv1.TransactionRequest{
		TransactionID: chi.URLParam(r, "id"),
	})
	writeTransaction(w, resp, err)
}

func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.ConfirmExternalPayment(r.Context(), &checkoutv1.TransactionRequest{
		TransactionID: chi.URLParam(r, "id"),
	})
	writeTransaction(w, resp, err)
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	txID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	png, err := h.generateQRUC.Execute(r.Context(), generateqr.Request{TransactionID: txID})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	case errors.Is(err, generateqr.ErrNoPendingPayment):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "qr generation failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (h *Handler) HandleOpenWallet(w http.ResponseWriter, r *http.Request) {
	var req OpenWalletRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.OpenAccount(r.Context(), &checkoutv1.OpenAccountRequest{
		AccountID:      chi.URLParam(r, "account_id"),
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.GetWalletBalance(r.Context(), &checkoutv1.AccountRequest{
		AccountID: chi.URLParam(r, "account_id"),
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	resp, err := h.engine.GetWalletHistory(r.Context(), &checkoutv1.HistoryRequest{
		AccountID: chi.URLParam(r, "account_id"),
		Limit:     limit,
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleTopUp(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.TopUpWallet(r.Context(), &checkoutv1.WalletRequest{
		IdempotencyKey: r.Header.Get(idempotencyHeader),
		AccountID:      chi.URLParam(r, "account_id"),
		Amount:         req.Amount,
	})
	writeTransaction(w, resp, err)
}

func (h *Handler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.WithdrawWallet(r.Context(), &checkoutv1.WalletRequest{
		IdempotencyKey: r.Header.Get(idempotencyHeader),
		AccountID:      chi.URLParam(r, "account_id"),
		Amount:         req.Amount,
	})
	writeTransaction(w, resp, err)
}

func (h *Handler) HandleOpenAuction(w http.ResponseWriter, r *http.Request) {
	var req checkoutv1.OpenAuctionRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.OpenAuction(r.Context(), &req)
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) HandleAuctionState(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.GetAuctionState(r.Context(), &checkoutv1.AuctionStateRequest{
		ListingID: chi.URLParam(r, "listing_id"),
		AccountID: r.URL.Query().Get("account_id"),
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	var req AccountBody
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.PlaceDeposit(r.Context(), &checkoutv1.DepositRequest{
		ListingID: chi.URLParam(r, "listing_id"),
		AccountID: req.AccountID,
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, outcomeStatus(resp.ErrorCode, http.StatusOK), resp)
}

func (h *Handler) HandleBid(w http.ResponseWriter, r *http.Request) {
	var req BidBody
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.engine.PlaceBid(r.Context(), &checkoutv1.BidRequest{
		ListingID: chi.URLParam(r, "listing_id"),
		AccountID: req.AccountID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, outcomeStatus(resp.ErrorCode, http.StatusCreated), resp)
}

func (h *Handler) HandleListBids(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	resp, err := h.engine.ListBids(r.Context(), &checkoutv1.ListBidsRequest{
		ListingID: chi.URLParam(r, "listing_id"),
		Limit:     limit,
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleCloseAuction(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.CloseAuction(r.Context(), &checkoutv1.CloseAuctionRequest{
		ListingID: chi.URLParam(r, "listing_id"),
	})
	if err != nil {
		writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

// writeTransaction answers 200 whenever a transaction exists, failed or not;
// the client reads its status. A business refusal without a transaction gets
// a status matching its error code.
func writeTransaction(w http.ResponseWriter, resp *checkoutv1.TransactionResponse, err error) {
	if err != nil {
		writeRPCError(w, err)
		return
	}
	if resp.Transaction != nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	writeJSON(w, outcomeStatus(resp.ErrorCode, http.StatusOK), resp)
}

func outcomeStatus(code string, ok int) int {
	switch code {
	case "":
		return ok
	case checkoutv1.ErrorInsufficientFunds:
		return http.StatusPaymentRequired
	case checkoutv1.ErrorIdempotencyConflict:
		return http.StatusConflict
	case checkoutv1.ErrorGatewayUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeRPCError(w http.ResponseWriter, err error) {
	st, _ := status.FromError(err)
	code := http.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument:
		code = http.StatusBadRequest
	case codes.NotFound:
		code = http.StatusNotFound
	case codes.AlreadyExists:
		code = http.StatusConflict
	case codes.Unavailable:
		code = http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		code = http.StatusGatewayTimeout
	}
	writeError(w, code, st.Message())
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
