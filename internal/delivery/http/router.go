package http //nolint:revive // directory-based package name, imported with alias

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", h.HandleCheckout)

		r.Route("/transactions/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetTransaction)
			r.Post("/confirm", h.HandleConfirm)
			r.Get("/qr", h.HandleQR)
		})

		r.Route("/wallets/{account_id}", func(r chi.Router) {
			r.Post("/", h.HandleOpenWallet)
			r.Get("/", h.HandleBalance)
			r.Get("/history", h.HandleHistory)
			r.Post("/top-up", h.HandleTopUp)
			r.Post("/withdraw", h.HandleWithdraw)
		})

		r.Post("/auctions", h.HandleOpenAuction)
		r.Route("/auctions/{listing_id}", func(r chi.Router) {
			r.Get("/", h.HandleAuctionState)
			r.Post("/deposit", h.HandleDeposit)
			r.Get("/bids", h.HandleListBids)
			r.Post("/bids", h.HandleBid)
			r.Post("/close", h.HandleCloseAuction)
		})
	})

	return r
}
