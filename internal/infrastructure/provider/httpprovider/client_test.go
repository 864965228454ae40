package httpprovider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/provider/httpprovider"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/provider/sandbox"
)

func newClient(url string) *httpprovider.Client {
	return httpprovider.NewClient(url, time.Second, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_AgainstSandbox(t *testing.T) {
	provider := sandbox.NewProvider("http://sandbox.local")
	srv := httptest.NewServer(provider.Handler())
	defer srv.Close()

	client := newClient(srv.URL)
	ctx := context.Background()

	txID := uuid.New()
	created, err := client.CreateOrder(ctx, payment.Order{TransactionID: txID, Amount: 520_000, Description: "battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Reference)
	assert.Contains(t, created.Deeplink, created.Reference)

	status, err := client.QueryOrder(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPending, status)

	require.NoError(t, provider.Decline(created.Reference))

	status, err = client.QueryOrder(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, payment.OrderDeclined, status)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reference":"ord-1","status":"PAID"}`))
	}))
	defer srv.Close()

	status, err := newClient(srv.URL).QueryOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, payment.OrderPaid, status)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).QueryOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GivesUpWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := httpprovider.NewClient(url, 100*time.Millisecond, 300*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := client.CreateOrder(context.Background(), payment.Order{TransactionID: uuid.New(), Amount: 1})
	assert.Error(t, err)
}
