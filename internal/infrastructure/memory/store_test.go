package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/memory"
)

func TestUnitOfWork_RollbackRestoresWrites(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWork(memory.NewStore())

	id := uuid.New()
	require.NoError(t, uow.Accounts().Create(ctx, entity.NewAccount(id, 1000)))

	tx, err := uow.Begin(ctx)
	require.NoError(t, err)

	acc, err := tx.Accounts().FindByIDForUpdate(ctx, id)
	require.NoError(t, err)
	require.NoError(t, acc.Debit(400))
	require.NoError(t, tx.Accounts().UpdateBalance(ctx, acc))
	require.NoError(t, tx.Entries().Append(ctx, entity.NewLedgerEntry(id, entity.EntryDebit, 400, "ref-1")))
	require.NoError(t, tx.Rollback(ctx))

	acc, err = uow.Accounts().FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), acc.Available())

	entry, err := uow.Entries().FindByReference(ctx, "ref-1", entity.EntryDebit)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestUnitOfWork_RollbackAfterCommitIsNoop(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWork(memory.NewStore())

	tx, err := uow.Begin(ctx)
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, tx.Accounts().Create(ctx, entity.NewAccount(id, 50)))
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, tx.Rollback(ctx))

	acc, err := uow.Accounts().FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(50), acc.Available())
}

func TestUnitOfWork_ForUpdateSerializes(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWork(memory.NewStore())

	id := uuid.New()
	require.NoError(t, uow.Accounts().Create(ctx, entity.NewAccount(id, 0)))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repository.InTx(ctx, uow, func(tx repository.UnitOfWork) error {
				acc, err := tx.Accounts().FindByIDForUpdate(ctx, id)
				if err != nil {
					return err
				}
				if err := acc.Credit(10); err != nil {
					return err
				}
				return tx.Accounts().UpdateBalance(ctx, acc)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	acc, err := uow.Accounts().FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*10), acc.Available())
}

func TestEntries_UniqueByReferenceAndKind(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWork(memory.NewStore())
	id := uuid.New()

	require.NoError(t, uow.Entries().Append(ctx, entity.NewLedgerEntry(id, entity.EntryDebit, 10, "tx-1")))
	require.NoError(t, uow.Entries().Append(ctx, entity.NewLedgerEntry(id, entity.EntryCredit, 10, "tx-1")))

	err := uow.Entries().Append(ctx, entity.NewLedgerEntry(id, entity.EntryDebit, 10, "tx-1"))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	entries, err := uow.Entries().ListByAccount(ctx, id, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.EntryCredit, entries[0].Kind())
}

func TestAuctions_VersionCheckAndBids(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWork(memory.NewStore())

	state, err := entity.NewAuctionState(entity.AuctionParams{
		ListingID:     "listing-1",
		ListingType:   entity.ListingVehicle,
		StartingPrice: 1000,
		BidIncrement:  100,
	})
	require.NoError(t, err)
	require.NoError(t, uow.Auctions().Create(ctx, state))

	bidder := uuid.New()
	loaded, err := uow.Auctions().FindByListingID(ctx, "listing-1")
	require.NoError(t, err)
	bid, err := loaded.PlaceBid(bidder, 1100, time.Now())
	require.NoError(t, err)
	require.NoError(t, uow.Auctions().Update(ctx, loaded, loaded.Version()))
	require.NoError(t, uow.Auctions().AppendBid(ctx, bid))

	err = uow.Auctions().Update(ctx, loaded, loaded.Version())
	assert.ErrorIs(t, err, entity.ErrStaleAuctionState)

	second, err := uow.Auctions().FindByListingID(ctx, "listing-1")
	require.NoError(t, err)
	next, err := second.PlaceBid(uuid.New(), 1200, time.Now())
	require.NoError(t, err)
	require.NoError(t, uow.Auctions().Update(ctx, second, second.Version()))
	require.NoError(t, uow.Auctions().AppendBid(ctx, next))

	bids, err := uow.Auctions().ListBids(ctx, "listing-1", 0)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	assert.True(t, bids[0].IsLeading)
	assert.Equal(t, int64(1200), bids[0].Amount)
	assert.False(t, bids[1].IsLeading)

	final, err := uow.Auctions().FindByListingID(ctx, "listing-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), final.CurrentBid())
	assert.Equal(t, int64(2), final.Version())
	assert.True(t, final.HasBid(bidder))
}

func TestTransactions_ListUnsettled(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWork(memory.NewStore())

	pending := entity.NewTransaction(entity.KindPurchase, uuid.New(), "l-1", entity.ListingBattery, 100, entity.MethodExternalGateway)
	done := entity.NewTransaction(entity.KindPurchase, uuid.New(), "l-2", entity.ListingBattery, 100, entity.MethodWallet)
	require.NoError(t, done.Transition(entity.StatusProcessing))
	require.NoError(t, done.Complete())

	require.NoError(t, uow.Transactions().Create(ctx, pending))
	require.NoError(t, uow.Transactions().Create(ctx, done))

	list, err := uow.Transactions().ListUnsettled(ctx, time.Now().Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pending.ID(), list[0].ID())

	list, err = uow.Transactions().ListUnsettled(ctx, pending.CreatedAt(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
