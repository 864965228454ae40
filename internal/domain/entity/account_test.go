package entity_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
)

func TestAccount_Operations(t *testing.T) {
	acc := entity.NewAccount(uuid.New(), 1_000)

	require.NoError(t, acc.Reserve(300))
	assert.Equal(t, int64(700), acc.Available())
	assert.Equal(t, int64(300), acc.Locked())
	assert.Equal(t, int64(1_000), acc.Total())

	assert.ErrorIs(t, acc.Debit(701), entity.ErrInsufficientFunds)
	assert.ErrorIs(t, acc.Release(301), entity.ErrInsufficientFunds)
	assert.Equal(t, int64(700), acc.Available())

	require.NoError(t, acc.Release(300))
	require.NoError(t, acc.Debit(1_000))
	assert.Equal(t, int64(0), acc.Total())

	for _, op := range []func(int64) error{acc.Debit, acc.Credit, acc.Reserve, acc.Release} {
		assert.ErrorIs(t, op(0), entity.ErrInvalidAmount)
	}
}

func TestAccount_CreditOverflow(t *testing.T) {
	acc := entity.NewAccount(uuid.New(), math.MaxInt64)
	assert.ErrorIs(t, acc.CanCredit(10), entity.ErrAmountOverflow)
	assert.ErrorIs(t, acc.Credit(10), entity.ErrAmountOverflow)
	assert.Equal(t, int64(math.MaxInt64), acc.Available())

	split := entity.ReconstructAccount(uuid.New(), math.MaxInt64-100, 100)
	assert.ErrorIs(t, split.Credit(1), entity.ErrAmountOverflow)
	require.NoError(t, split.Release(100))
	assert.Equal(t, int64(math.MaxInt64), split.Available())
	assert.Equal(t, int64(0), split.Locked())

	near := entity.NewAccount(uuid.New(), math.MaxInt64-10)
	require.NoError(t, near.Credit(10))
	assert.Equal(t, int64(math.MaxInt64), near.Available())
}

func TestIdempotencyRecord_Matches(t *testing.T) {
	rec := entity.NewIdempotencyRecord("key", "fp-1", uuid.New())
	assert.NoError(t, rec.Matches("fp-1"))
	assert.ErrorIs(t, rec.Matches("fp-2"), entity.ErrIdempotencyConflict)
}

func TestReservation_MarkReleased(t *testing.T) {
	res := entity.NewReservation(uuid.New(), 100, "deposit:l-1")
	require.NoError(t, res.MarkReleased())
	assert.ErrorIs(t, res.MarkReleased(), entity.ErrReservationReleased)
}
