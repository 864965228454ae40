package sandbox

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
)

type createOrderRequest struct {
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
}

type createOrderResponse struct {
	Reference string `json:"reference"`
	PayURL    string `json:"pay_url"`
	Deeplink  string `json:"deeplink"`
}

type orderStatusResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Handler exposes the provider over the same HTTP API the real provider
// client speaks, plus pay and decline endpoints for manual testing.
func (p *Provider) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/orders", p.handleCreate)
	r.Get("/orders/{reference}", p.handleQuery)
	r.Post("/orders/{reference}/pay", p.handleSettle(p.MarkPaid))
	r.Post("/orders/{reference}/decline", p.handleSettle(p.Decline))

	return r
}

func (p *Provider) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	txID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction_id")
		return
	}

	created, err := p.CreateOrder(r.Context(), payment.Order{
		TransactionID: txID,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		Reference: created.Reference,
		PayURL:    created.PayURL,
		Deeplink:  created.Deeplink,
	})
}

func (p *Provider) handleQuery(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "reference")
	status, err := p.QueryOrder(r.Context(), ref)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orderStatusResponse{Reference: ref, Status: string(status)})
}

func (p *Provider) handleSettle(settle func(string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "reference")
		err := settle(ref)
		switch {
		case errors.Is(err, ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
