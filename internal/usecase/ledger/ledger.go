package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
)

type Balance struct {
	AccountID uuid.UUID
	Available int64
	Locked    int64
}

func balanceOf(acc *entity.Account) *Balance {
	return &Balance{
		AccountID: acc.ID(),
		Available: acc.Available(),
		Locked:    acc.Locked(),
	}
}

// UseCase is the wallet ledger. Every balance change happens under the
// account row lock and leaves a journal entry; debits and credits are keyed
// by reference so a replay with the same reference changes nothing.
type UseCase struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewUseCase(uow repository.UnitOfWork, logger *slog.Logger) *UseCase {
	return &UseCase{uow: uow, logger: logger}
}

func openingReference(accountID uuid.UUID) string {
	return "open:" + accountID.String()
}

func reservationReference(reservationID uuid.UUID) string {
	return "reservation:" + reservationID.String()
}

func (uc *UseCase) OpenAccount(ctx context.Context, accountID uuid.UUID, opening int64) (*Balance, error) {
	if opening < 0 {
		return nil, entity.ErrInvalidAmount
	}

	acc := entity.NewAccount(accountID, opening)
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		if err := tx.Accounts().Create(ctx, acc); err != nil {
			return err
		}
		if opening == 0 {
			return nil
		}
		return tx.Entries().Append(ctx, entity.NewLedgerEntry(accountID, entity.EntryCredit, opening, openingReference(accountID)))
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("account opened", "account_id", accountID, "opening", opening)
	return balanceOf(acc), nil
}

func (uc *UseCase) Balance(ctx context.Context, accountID uuid.UUID) (*Balance, error) {
	acc, err := uc.uow.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return balanceOf(acc), nil
}

// History returns journal entries for the account, most recent first.
func (uc *UseCase) History(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.LedgerEntry, error) {
	if _, err := uc.uow.Accounts().FindByID(ctx, accountID); err != nil {
		return nil, err
	}
	return uc.uow.Entries().ListByAccount(ctx, accountID, limit)
}

func (uc *UseCase) Reserve(ctx context.Context, accountID uuid.UUID, amount int64, reference string) (*entity.Reservation, error) {
	var res *entity.Reservation
	err := repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		var err error
		res, err = uc.ReserveTx(ctx, tx, accountID, amount, reference)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReserveTx moves amount from available to locked inside the caller's unit
// of work.
func (uc *UseCase) ReserveTx(
	ctx context.Context,
	tx repository.UnitOfWork,
	accountID uuid.UUID,
	amount int64,
	reference string,
) (*entity.Reservation, error) {
	if amount <= 0 {
		return nil, entity.ErrInvalidAmount
	}

	acc, err := tx.Accounts().FindByIDForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := acc.Reserve(amount); err != nil {
		return nil, err
	}
	if err := tx.Accounts().UpdateBalance(ctx, acc); err != nil {
		return nil, err
	}

	res := entity.NewReservation(accountID, amount, reference)
	if err := tx.Reservations().Create(ctx, res); err != nil {
		return nil, err
	}
	entry := entity.NewLedgerEntry(accountID, entity.EntryReserve, amount, reservationReference(res.ID()))
	if err := tx.Entries().Append(ctx, entry); err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *UseCase) Release(ctx context.Context, reservationID uuid.UUID) error {
	return repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		return uc.ReleaseTx(ctx, tx, reservationID)
	})
}

// ReleaseTx returns a held reservation to available. Releasing twice is a
// no-op.
func (uc *UseCase) ReleaseTx(ctx context.Context, tx repository.UnitOfWork, reservationID uuid.UUID) error {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
	if err != nil {
		return err
	}
	if res.Status() == entity.ReservationReleased {
		return nil
	}

	acc, err := tx.Accounts().FindByIDForUpdate(ctx, res.AccountID())
	if err != nil {
		return err
	}
	if err := acc.Release(res.Amount()); err != nil {
		return err
	}
	if err := res.MarkReleased(); err != nil {
		return err
	}
	if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
		return err
	}
	if err := tx.Accounts().UpdateBalance(ctx, acc); err != nil {
		return err
	}
	entry := entity.NewLedgerEntry(acc.ID(), entity.EntryRelease, res.Amount(), reservationReference(res.ID()))
	return tx.Entries().Append(ctx, entry)
}

func (uc *UseCase) Settle(ctx context.Context, accountID uuid.UUID, amount int64, reference string) error {
	return repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		return uc.SettleTx(ctx, tx, accountID, amount, reference)
	})
}

// SettleTx debits available funds. Sufficiency is checked under the account
// lock, and a reference that was already debited is treated as settled.
func (uc *UseCase) SettleTx(
	ctx context.Context,
	tx repository.UnitOfWork,
	accountID uuid.UUID,
	amount int64,
	reference string,
) error {
	if amount <= 0 {
		return entity.ErrInvalidAmount
	}

	acc, err := tx.Accounts().FindByIDForUpdate(ctx, accountID)
	if err != nil {
		return err
	}

	settled, err := tx.Entries().FindByReference(ctx, reference, entity.EntryDebit)
	if err != nil {
		return err
	}
	if settled != nil {
		uc.logger.Debug("settle replayed", "account_id", accountID, "reference", reference)
		return nil
	}

	if err := acc.Debit(amount); err != nil {
		return err
	}
	if err := tx.Accounts().UpdateBalance(ctx, acc); err != nil {
		return err
	}
	return tx.Entries().Append(ctx, entity.NewLedgerEntry(accountID, entity.EntryDebit, amount, reference))
}

func (uc *UseCase) Credit(ctx context.Context, accountID uuid.UUID, amount int64, reference string) error {
	return repository.InTx(ctx, uc.uow, func(tx repository.UnitOfWork) error {
		return uc.CreditTx(ctx, tx, accountID, amount, reference)
	})
}

func (uc *UseCase) CreditTx(
	ctx context.Context,
	tx repository.UnitOfWork,
	accountID uuid.UUID,
	amount int64,
	reference string,
) error {
	if amount <= 0 {
		return entity.ErrInvalidAmount
	}

	acc, err := tx.Accounts().FindByIDForUpdate(ctx, accountID)
	if err != nil {
		return err
	}

	credited, err := tx.Entries().FindByReference(ctx, reference, entity.EntryCredit)
	if err != nil {
		return err
	}
	if credited != nil {
		return nil
	}

	if err := acc.Credit(amount); err != nil {
		return err
	}
	if err := tx.Accounts().UpdateBalance(ctx, acc); err != nil {
		return err
	}
	return tx.Entries().Append(ctx, entity.NewLedgerEntry(accountID, entity.EntryCredit, amount, reference))
}
