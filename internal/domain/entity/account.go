package entity

import (
	"github.com/google/uuid"
)

type Account struct {
	id        uuid.UUID
	available int64
	locked    int64
}

func NewAccount(id uuid.UUID, available int64) *Account {
	return &Account{
		id:        id,
		available: available,
	}
}

func ReconstructAccount(id uuid.UUID, available, locked int64) *Account {
	return &Account{
		id:        id,
		available: available,
		locked:    locked,
	}
}

func (a *Account) ID() uuid.UUID {
	return a.id
}

func (a *Account) Available() int64 {
	return a.available
}

func (a *Account) Locked() int64 {
	return a.locked
}

// Total is the conserved quantity: only debits and credits change it.
func (a *Account) Total() int64 {
	return a.available + a.locked
}

func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.available < amount {
		return ErrInsufficientFunds
	}
	a.available -= amount
	return nil
}

func (a *Account) Credit(amount int64) error {
	if err := a.CanCredit(amount); err != nil {
		return err
	}
	a.available += amount
	return nil
}

// CanCredit reports whether Credit(amount) would succeed. The total balance
// must stay representable.
func (a *Account) CanCredit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	_, err := addAmount(a.Total(), amount)
	return err
}

// Reserve moves amount from available to locked.
func (a *Account) Reserve(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.available < amount {
		return ErrInsufficientFunds
	}
	a.available -= amount
	a.locked += amount
	return nil
}

// Release moves amount from locked back to available.
func (a *Account) Release(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.locked < amount {
		return ErrInsufficientFunds
	}
	available, err := addAmount(a.available, amount)
	if err != nil {
		return err
	}
	a.locked -= amount
	a.available = available
	return nil
}
