//go:build integration

package integration_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
)

func TestIdempotencyNetworkRetryStorm(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := connect(t, ctx)
	buyer := s.openAccount(t, ctx, 5000)

	checkoutReq := func(key string, amount int64) *checkoutv1.InitiateCheckoutRequest {
		return &checkoutv1.InitiateCheckoutRequest{
			IdempotencyKey: key,
			AccountID:      buyer.String(),
			ListingID:      "vehicle-" + key,
			ListingType:    "VEHICLE",
			Amount:         amount,
			PaymentMethod:  "WALLET",
		}
	}

	key := uuid.NewString()
	t.Run("sequential_retries", func(t *testing.T) {
		var first string
		for i := range 10 {
			resp, err := s.client.InitiateCheckout(ctx, checkoutReq(key, 1000))
			require.NoError(t, err)
			require.NotNil(t, resp.Transaction)
			if i == 0 {
				first = resp.Transaction.TransactionID
			}
			require.Equal(t, first, resp.Transaction.TransactionID, "retry %d has a different transaction", i)
			require.Equal(t, "COMPLETED", resp.Transaction.Status)
		}
	})

	available, _ := s.balance(t, ctx, buyer)
	require.Equal(t, int64(4000), available, "balance should decrease exactly once")

	concurrentKey := uuid.NewString()
	t.Run("concurrent_retries", func(t *testing.T) {
		const workers = 10
		ids := make([]string, workers)
		var wg sync.WaitGroup

		wg.Add(workers)
		for i := range workers {
			go func(idx int) {
				defer wg.Done()
				resp, err := s.client.InitiateCheckout(ctx, checkoutReq(concurrentKey, 500))
				if !assert.NoError(t, err) || !assert.NotNil(t, resp.Transaction) {
					return
				}
				ids[idx] = resp.Transaction.TransactionID
			}(i)
		}
		wg.Wait()

		for i, id := range ids {
			require.Equal(t, ids[0], id, "concurrent response %d has a different transaction", i)
		}
	})

	require.Eventually(t, func() bool {
		available, _ := s.balance(t, ctx, buyer)
		return available == 3500
	}, 5*time.Second, 50*time.Millisecond, "balance should decrease exactly once more")

	t.Run("key_reused_for_other_request", func(t *testing.T) {
		resp, err := s.client.InitiateCheckout(ctx, checkoutReq(key, 999))
		require.NoError(t, err)
		assert.Equal(t, checkoutv1.ErrorIdempotencyConflict, resp.ErrorCode)
	})
}
