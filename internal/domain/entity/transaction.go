package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusCompleted  TransactionStatus = "COMPLETED"
	StatusFailed     TransactionStatus = "FAILED"
	StatusCancelled  TransactionStatus = "CANCELLED"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

type TransactionKind string

const (
	KindPurchase   TransactionKind = "PURCHASE"
	KindTopUp      TransactionKind = "TOP_UP"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
)

type ListingType string

const (
	ListingVehicle ListingType = "VEHICLE"
	ListingBattery ListingType = "BATTERY"
)

func (t ListingType) Valid() bool {
	return t == ListingVehicle || t == ListingBattery
}

type PaymentMethod string

const (
	MethodWallet          PaymentMethod = "WALLET"
	MethodExternalGateway PaymentMethod = "EXTERNAL_GATEWAY"
)

type FailureReason string

const (
	FailureNone               FailureReason = ""
	FailureInsufficientFunds  FailureReason = "INSUFFICIENT_FUNDS"
	FailureGatewayUnavailable FailureReason = "GATEWAY_UNAVAILABLE"
	FailurePaymentDeclined    FailureReason = "PAYMENT_DECLINED"
	FailureExpired            FailureReason = "EXPIRED"
)

// PendingPayment is the handle an external gateway hands back while the
// buyer completes payment out of band.
type PendingPayment struct {
	QRPayload   string `json:"qr_payload"`
	Deeplink    string `json:"deeplink"`
	FallbackURL string `json:"fallback_url"`
}

var transitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:    {StatusProcessing, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusCancelled},
}

type Transaction struct {
	id               uuid.UUID
	kind             TransactionKind
	listingID        string
	listingType      ListingType
	accountID        uuid.UUID
	amount           int64
	method           PaymentMethod
	status           TransactionStatus
	failureReason    FailureReason
	retryable        bool
	gatewayReference string
	pending          *PendingPayment
	createdAt        time.Time
	updatedAt        time.Time
}

func NewTransaction(
	kind TransactionKind,
	accountID uuid.UUID,
	listingID string,
	listingType ListingType,
	amount int64,
	method PaymentMethod,
) *Transaction {
	now := time.Now()
	return &Transaction{
		id:          uuid.New(),
		kind:        kind,
		listingID:   listingID,
		listingType: listingType,
		accountID:   accountID,
		amount:      amount,
		method:      method,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}
}

type TransactionSnapshot struct {
	ID               uuid.UUID
	Kind             TransactionKind
	ListingID        string
	ListingType      ListingType
	AccountID        uuid.UUID
	Amount           int64
	Method           PaymentMethod
	Status           TransactionStatus
	FailureReason    FailureReason
	Retryable        bool
	GatewayReference string
	Pending          *PendingPayment
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructTransaction(s TransactionSnapshot) *Transaction {
	return &Transaction{
		id:               s.ID,
		kind:             s.Kind,
		listingID:        s.ListingID,
		listingType:      s.ListingType,
		accountID:        s.AccountID,
		amount:           s.Amount,
		method:           s.Method,
		status:           s.Status,
		failureReason:    s.FailureReason,
		retryable:        s.Retryable,
		gatewayReference: s.GatewayReference,
		pending:          s.Pending,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

func (t *Transaction) Snapshot() TransactionSnapshot {
	return TransactionSnapshot{
		ID:               t.id,
		Kind:             t.kind,
		ListingID:        t.listingID,
		ListingType:      t.listingType,
		AccountID:        t.accountID,
		Amount:           t.amount,
		Method:           t.method,
		Status:           t.status,
		FailureReason:    t.failureReason,
		Retryable:        t.retryable,
		GatewayReference: t.gatewayReference,
		Pending:          t.pending,
		CreatedAt:        t.createdAt,
		UpdatedAt:        t.updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID {
	return t.id
}

func (t *Transaction) Kind() TransactionKind {
	return t.kind
}

func (t *Transaction) ListingID() string {
	return t.listingID
}

func (t *Transaction) ListingType() ListingType {
	return t.listingType
}

func (t *Transaction) AccountID() uuid.UUID {
	return t.accountID
}

func (t *Transaction) Amount() int64 {
	return t.amount
}

func (t *Transaction) Method() PaymentMethod {
	return t.method
}

func (t *Transaction) Status() TransactionStatus {
	return t.status
}

func (t *Transaction) FailureReason() FailureReason {
	return t.failureReason
}

// Retryable marks a failure the caller may try again, such as an unreachable
// gateway. The failed transaction itself stays FAILED: replaying its
// idempotency key returns the stored failure, so a retry needs a new key.
func (t *Transaction) Retryable() bool {
	return t.retryable
}

func (t *Transaction) GatewayReference() string {
	return t.gatewayReference
}

func (t *Transaction) Pending() *PendingPayment {
	return t.pending
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) UpdatedAt() time.Time {
	return t.updatedAt
}

// Transition moves the transaction to the next status. Terminal statuses are
// final: any transition out of one returns ErrAlreadyTerminal.
func (t *Transaction) Transition(to TransactionStatus) error {
	if t.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	for _, allowed := range transitions[t.status] {
		if allowed == to {
			t.status = to
			t.updatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, to)
}

func (t *Transaction) Complete() error {
	return t.Transition(StatusCompleted)
}

func (t *Transaction) Fail(reason FailureReason, retryable bool) error {
	if err := t.Transition(StatusFailed); err != nil {
		return err
	}
	t.failureReason = reason
	t.retryable = retryable
	return nil
}

func (t *Transaction) Cancel(reason FailureReason) error {
	if err := t.Transition(StatusCancelled); err != nil {
		return err
	}
	t.failureReason = reason
	return nil
}

// AttachPending records the external gateway handle. Only valid while the
// transaction is waiting for confirmation. A reference, once attached, is
// never replaced by a different one; attaching the same reference again is a
// no-op apart from the pending handle.
func (t *Transaction) AttachPending(reference string, pending *PendingPayment) error {
	if t.status != StatusProcessing {
		return fmt.Errorf("%w: attach pending payment in %s", ErrInvalidTransition, t.status)
	}
	if t.gatewayReference != "" && t.gatewayReference != reference {
		return fmt.Errorf("%w: %s", ErrPendingAlreadyAttached, t.gatewayReference)
	}
	t.gatewayReference = reference
	t.pending = pending
	t.updatedAt = time.Now()
	return nil
}
