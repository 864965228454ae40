package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
)

const maxHistoryLimit = 500

func (h *Handler) OpenAccount(ctx context.Context, req *checkoutv1.OpenAccountRequest) (*checkoutv1.BalanceResponse, error) {
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	if req.OpeningBalance < 0 {
		return nil, status.Error(codes.InvalidArgument, "opening_balance must not be negative")
	}

	bal, err := h.ledgerUC.OpenAccount(ctx, accountID, req.OpeningBalance)
	if err != nil {
		return nil, toStatus(err)
	}
	return &checkoutv1.BalanceResponse{
		AccountID: bal.AccountID.String(),
		Available: bal.Available,
		Locked:    bal.Locked,
	}, nil
}

func (h *Handler) GetWalletBalance(ctx context.Context, req *checkoutv1.AccountRequest) (*checkoutv1.BalanceResponse, error) {
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}

	bal, err := h.ledgerUC.Balance(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &checkoutv1.BalanceResponse{
		AccountID: bal.AccountID.String(),
		Available: bal.Available,
		Locked:    bal.Locked,
	}, nil
}

func (h *Handler) GetWalletHistory(ctx context.Context, req *checkoutv1.HistoryRequest) (*checkoutv1.HistoryResponse, error) {
	accountID, err := parseID(req.AccountID, "account_id")
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := h.ledgerUC.History(ctx, accountID, limit)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &checkoutv1.HistoryResponse{Entries: make([]checkoutv1.LedgerEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, checkoutv1.LedgerEntry{
			ID:        e.ID().String(),
			Kind:      string(e.Kind()),
			Amount:    e.Amount(),
			Reference: e.Reference(),
			CreatedAt: e.CreatedAt(),
		})
	}
	return resp, nil
}
