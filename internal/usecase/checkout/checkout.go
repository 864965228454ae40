package checkout

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultPollAttempts = 10
	defaultCacheSize    = 1024
	defaultSweepBatch   = 100
)

type CheckoutRequest struct {
	IdempotencyKey string
	AccountID      uuid.UUID
	ListingID      string
	ListingType    entity.ListingType
	Amount         int64
	Method         entity.PaymentMethod
}

type TopUpRequest struct {
	IdempotencyKey string
	AccountID      uuid.UUID
	Amount         int64
}

type WithdrawRequest struct {
	IdempotencyKey string
	AccountID      uuid.UUID
	Amount         int64
}

type Config struct {
	PollInterval time.Duration
	PollAttempts int
	CacheSize    int
	SweepBatch   int
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.PollAttempts <= 0 {
		c.PollAttempts = defaultPollAttempts
	}
	if c.CacheSize <= 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.SweepBatch <= 0 {
		c.SweepBatch = defaultSweepBatch
	}
	return c
}

// UseCase drives a transaction from intent to a terminal status. Each status
// change happens under the transaction row lock, so when several callers race
// to finalize the same transaction exactly one of them wins.
type UseCase struct {
	uow      repository.UnitOfWork
	ledger   *ledger.UseCase
	gateways map[entity.PaymentMethod]payment.Gateway
	provider payment.Provider
	terminal *lru.Cache[uuid.UUID, *View]
	cfg      Config
	logger   *slog.Logger
}

func NewUseCase(
	uow repository.UnitOfWork,
	ledger *ledger.UseCase,
	gateways map[entity.PaymentMethod]payment.Gateway,
	provider payment.Provider,
	cfg Config,
	logger *slog.Logger,
) (*UseCase, error) {
	cfg = cfg.withDefaults()
	terminal, err := lru.New[uuid.UUID, *View](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &UseCase{
		uow:      uow,
		ledger:   ledger,
		gateways: gateways,
		provider: provider,
		terminal: terminal,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

type intent struct {
	key         string
	kind        entity.TransactionKind
	accountID   uuid.UUID
	listingID   string
	listingType entity.ListingType
	amount      int64
	method      entity.PaymentMethod
}

func (in intent) fingerprint() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s|%d|%s",
		in.kind, in.accountID, in.listingID, in.listingType, in.amount, in.method)))
	return hex.EncodeToString(sum[:])
}

func (in intent) description() string {
	switch in.kind {
	case entity.KindTopUp:
		return "wallet top-up"
	case entity.KindWithdrawal:
		return "wallet withdrawal"
	default:
		return fmt.Sprintf("%s listing %s", in.listingType, in.listingID)
	}
}

// Initiate starts a purchase checkout. Requests that fail validation create
// no transaction.
func (uc *UseCase) Initiate(ctx context.Context, req CheckoutRequest) (*View, error) {
	if req.ListingID == "" || !req.ListingType.Valid() {
		return nil, entity.ErrInvalidListing
	}
	return uc.start(ctx, intent{
		key:         req.IdempotencyKey,
		kind:        entity.KindPurchase,
		accountID:   req.AccountID,
		listingID:   req.ListingID,
		listingType: req.ListingType,
		amount:      req.Amount,
		method:      req.Method,
	})
}

// TopUp adds funds to the wallet through the external gateway. The wallet is
// credited when the transaction completes.
func (uc *UseCase) TopUp(ctx context.Context, req TopUpRequest) (*View, error) {
	return uc.start(ctx, intent{
		key:       req.IdempotencyKey,
		kind:      entity.KindTopUp,
		accountID: req.AccountID,
		amount:    req.Amount,
		method:    entity.MethodExternalGateway,
	})
}

func (uc *UseCase) Withdraw(ctx context.Context, req WithdrawRequest) (*View, error) {
	return uc.start(ctx, intent{
		key:       req.IdempotencyKey,
		kind:      entity.KindWithdrawal,
		accountID: req.AccountID,
		amount:    req.Amount,
		method:    entity.MethodWallet,
	})
}

func (uc *UseCase) Get(ctx context.Context, txID uuid.UUID) (*View, error) {
	txn, err := uc.uow.Transactions().FindByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	return viewOf(txn), nil
}

func (uc *UseCase) start(ctx context.Context, in intent) (*View, error) {
	if in.amount <= 0 {
		return nil, entity.ErrInvalidAmount
	}
	if _, ok := uc.gateways[in.method]; !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedPaymentMethod, in.method)
	}

	if in.key != "" {
		rec, err := uc.uow.Idempotency().Find(ctx, in.key)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return uc.replay(ctx, rec, in)
		}
	}

	if err := uc.precheck(ctx, in); err != nil {
		return nil, err
	}

	txn, rec, err := uc.create(ctx, in)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return uc.replay(ctx, rec, in)
	}

	uc.logger.Info("transaction created",
		"transaction_id", txn.ID(),
		"kind", txn.Kind(),
		"method", txn.Method(),
		"amount", txn.Amount(),
	)
	return uc.process(ctx, txn.ID(), false)
}

// precheck is a soft balance check. The authoritative check happens again
// under the account lock at settlement.
func (uc *UseCase) precheck(ctx context.Context, in intent) error {
	acc, err := uc.uow.Accounts().FindByID(ctx, in.accountID)
	if err != nil {
		return err
	}
	if in.method == entity.MethodWallet && acc.Available() < in.amount {
		return entity.ErrInsufficientFunds
	}
	if in.kind == entity.KindTopUp {
		return acc.CanCredit(in.amount)
	}
	return nil
}

// create inserts the PENDING transaction and its idempotency record. When a
// concurrent request with the same key got there first, the existing record
// is returned instead.
func (uc *UseCase) create(ctx context.Context, in intent) (*entity.Transaction, *entity.IdempotencyRecord, error) {
	var (
		txn      *entity.Transaction
		existing *entity.IdempotencyRecord
	)
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		if in.key != "" {
			if err := tx.Idempotency().Lock(ctx, in.key); err != nil {
				return err
			}
			rec, err := tx.Idempotency().Find(ctx, in.key)
			if err != nil {
				return err
			}
			if rec != nil {
				existing = rec
				return nil
			}
		}

		txn = entity.NewTransaction(in.kind, in.accountID, in.listingID, in.listingType, in.amount, in.method)
		if err := tx.Transactions().Create(ctx, txn); err != nil {
			return err
		}
		if in.key == "" {
			return nil
		}
		return tx.Idempotency().Save(ctx, entity.NewIdempotencyRecord(in.key, in.fingerprint(), txn.ID()))
	})
	if err != nil {
		return nil, nil, err
	}
	return txn, existing, nil
}

func (uc *UseCase) replay(ctx context.Context, rec *entity.IdempotencyRecord, in intent) (*View, error) {
	if err := rec.Matches(in.fingerprint()); err != nil {
		return nil, err
	}
	uc.logger.Debug("idempotent replay", "idempotency_key", in.key, "transaction_id", rec.TransactionID())
	return uc.process(ctx, rec.TransactionID(), false)
}

// Resume re-drives a transaction a crash left mid-flight. Wallet settlement
// is keyed by transaction id, so running it again never debits twice.
// External orders are opened at most once per transaction: a PROCESSING
// external transaction without a reference is still waiting on its first
// CreateOrder and is returned as is.
func (uc *UseCase) Resume(ctx context.Context, txID uuid.UUID) (*View, error) {
	txn, err := uc.uow.Transactions().FindByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if txn.Status().IsTerminal() {
		return viewOf(txn), nil
	}
	if txn.Method() == entity.MethodExternalGateway {
		if txn.GatewayReference() != "" {
			return uc.refresh(ctx, txn)
		}
		return uc.process(ctx, txID, false)
	}
	return uc.process(ctx, txID, true)
}

// process claims the transaction for a settlement attempt and runs it through
// the gateway for its payment method. Without force, only the caller that
// moves it out of PENDING runs the attempt; everyone else gets the current
// view.
func (uc *UseCase) process(ctx context.Context, txID uuid.UUID, force bool) (*View, error) {
	txn, claimed, err := uc.claim(ctx, txID)
	if err != nil {
		return nil, err
	}
	if txn.Status().IsTerminal() || (!claimed && !force) {
		return viewOf(txn), nil
	}

	gateway, ok := uc.gateways[txn.Method()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedPaymentMethod, txn.Method())
	}

	res, err := gateway.Pay(ctx, payment.Request{
		TransactionID: txn.ID(),
		AccountID:     txn.AccountID(),
		Amount:        txn.Amount(),
		Description:   txn.ListingID(),
	})
	switch {
	case errors.Is(err, entity.ErrInsufficientFunds):
		return uc.finalize(ctx, txID, func(t *entity.Transaction) error {
			return t.Fail(entity.FailureInsufficientFunds, false)
		})
	case errors.Is(err, entity.ErrGatewayUnavailable):
		uc.logger.Warn("payment gateway unavailable", "transaction_id", txID, "error", err)
		return uc.finalize(ctx, txID, func(t *entity.Transaction) error {
			return t.Fail(entity.FailureGatewayUnavailable, true)
		})
	case err != nil:
		uc.logger.Error("settlement attempt failed, transaction left processing",
			"transaction_id", txID,
			"error", err,
		)
		return nil, err
	}

	if res.Settled {
		return uc.finalize(ctx, txID, (*entity.Transaction).Complete)
	}
	return uc.attachPending(ctx, txID, res)
}

func (uc *UseCase) claim(ctx context.Context, txID uuid.UUID) (*entity.Transaction, bool, error) {
	var (
		txn     *entity.Transaction
		claimed bool
	)
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		var err error
		txn, err = tx.Transactions().FindByIDForUpdate(ctx, txID)
		if err != nil {
			return err
		}
		if txn.Status() != entity.StatusPending {
			return nil
		}
		if err := txn.Transition(entity.StatusProcessing); err != nil {
			return err
		}
		claimed = true
		return tx.Transactions().Update(ctx, txn)
	})
	if err != nil {
		return nil, false, err
	}
	return txn, claimed, nil
}

func (uc *UseCase) attachPending(ctx context.Context, txID uuid.UUID, res *payment.Result) (*View, error) {
	var view *View
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		txn, err := tx.Transactions().FindByIDForUpdate(ctx, txID)
		if err != nil {
			return err
		}
		if txn.Status().IsTerminal() {
			view = viewOf(txn)
			return nil
		}
		if err := txn.AttachPending(res.Reference, res.Pending); err != nil {
			if errors.Is(err, entity.ErrPendingAlreadyAttached) {
				uc.logger.Error("second provider order for transaction discarded",
					"transaction_id", txID,
					"reference", txn.GatewayReference(),
					"discarded_reference", res.Reference,
				)
			}
			return err
		}
		if err := tx.Transactions().Update(ctx, txn); err != nil {
			return err
		}
		view = viewOf(txn)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("awaiting external payment", "transaction_id", txID, "reference", res.Reference)
	return view, nil
}

// finalize applies a terminal transition under the transaction lock. If the
// transaction is already terminal, the stored outcome is returned and apply
// is not run. Completed top-ups credit the wallet in the same unit of work.
func (uc *UseCase) finalize(ctx context.Context, txID uuid.UUID, apply func(*entity.Transaction) error) (*View, error) {
	var (
		view *View
		won  bool
	)
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		txn, err := tx.Transactions().FindByIDForUpdate(ctx, txID)
		if err != nil {
			return err
		}
		if txn.Status().IsTerminal() {
			view = viewOf(txn)
			return nil
		}
		if err := apply(txn); err != nil {
			return err
		}
		if txn.Kind() == entity.KindTopUp && txn.Status() == entity.StatusCompleted {
			if err := uc.ledger.CreditTx(ctx, tx, txn.AccountID(), txn.Amount(), txn.ID().String()); err != nil {
				return err
			}
		}
		if err := tx.Transactions().Update(ctx, txn); err != nil {
			return err
		}
		view = viewOf(txn)
		won = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.terminal.Add(txID, view)
	if won {
		uc.logger.Info("transaction finalized",
			"transaction_id", txID,
			"status", view.Status,
			"failure_reason", view.FailureReason,
		)
	}
	return view, nil
}
