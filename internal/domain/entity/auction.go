package entity

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

type AuctionStatus string

const (
	AuctionOpen   AuctionStatus = "OPEN"
	AuctionClosed AuctionStatus = "CLOSED"
)

type Bid struct {
	ID        uuid.UUID `json:"id"`
	ListingID string    `json:"listing_id"`
	AccountID uuid.UUID `json:"account_id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	IsLeading bool      `json:"is_leading"`
}

// AuctionState is the per-listing state of an English auction. Every accepted
// bid raises CurrentBid; it never goes down.
type AuctionState struct {
	listingID     string
	listingType   ListingType
	startingPrice int64
	currentBid    *int64
	bidIncrement  int64
	depositAmount int64
	deposits      map[uuid.UUID]uuid.UUID
	bidders       map[uuid.UUID]struct{}
	leading       *Bid
	startsAt      time.Time
	endsAt        time.Time
	status        AuctionStatus
	version       int64
}

type AuctionParams struct {
	ListingID     string
	ListingType   ListingType
	StartingPrice int64
	BidIncrement  int64
	DepositAmount int64
	StartsAt      time.Time
	EndsAt        time.Time
}

func NewAuctionState(p AuctionParams) (*AuctionState, error) {
	if p.ListingID == "" || !p.ListingType.Valid() {
		return nil, ErrInvalidListing
	}
	if p.StartingPrice <= 0 || p.BidIncrement < 0 || p.DepositAmount < 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := addAmount(p.StartingPrice, bidStep(p.BidIncrement)); err != nil {
		return nil, err
	}
	return &AuctionState{
		listingID:     p.ListingID,
		listingType:   p.ListingType,
		startingPrice: p.StartingPrice,
		bidIncrement:  p.BidIncrement,
		depositAmount: p.DepositAmount,
		deposits:      make(map[uuid.UUID]uuid.UUID),
		bidders:       make(map[uuid.UUID]struct{}),
		startsAt:      p.StartsAt,
		endsAt:        p.EndsAt,
		status:        AuctionOpen,
	}, nil
}

type AuctionSnapshot struct {
	Params     AuctionParams
	CurrentBid *int64
	Deposits   map[uuid.UUID]uuid.UUID
	Bidders    []uuid.UUID
	Leading    *Bid
	Status     AuctionStatus
	Version    int64
}

func ReconstructAuctionState(s AuctionSnapshot) *AuctionState {
	a := &AuctionState{
		listingID:     s.Params.ListingID,
		listingType:   s.Params.ListingType,
		startingPrice: s.Params.StartingPrice,
		currentBid:    s.CurrentBid,
		bidIncrement:  s.Params.BidIncrement,
		depositAmount: s.Params.DepositAmount,
		deposits:      make(map[uuid.UUID]uuid.UUID, len(s.Deposits)),
		bidders:       make(map[uuid.UUID]struct{}, len(s.Bidders)),
		leading:       s.Leading,
		startsAt:      s.Params.StartsAt,
		endsAt:        s.Params.EndsAt,
		status:        s.Status,
		version:       s.Version,
	}
	for acc, res := range s.Deposits {
		a.deposits[acc] = res
	}
	for _, acc := range s.Bidders {
		a.bidders[acc] = struct{}{}
	}
	return a
}

func (a *AuctionState) Snapshot() AuctionSnapshot {
	deposits := make(map[uuid.UUID]uuid.UUID, len(a.deposits))
	for acc, res := range a.deposits {
		deposits[acc] = res
	}
	bidders := make([]uuid.UUID, 0, len(a.bidders))
	for acc := range a.bidders {
		bidders = append(bidders, acc)
	}
	var current *int64
	if a.currentBid != nil {
		v := *a.currentBid
		current = &v
	}
	var leading *Bid
	if a.leading != nil {
		b := *a.leading
		leading = &b
	}
	return AuctionSnapshot{
		Params: AuctionParams{
			ListingID:     a.listingID,
			ListingType:   a.listingType,
			StartingPrice: a.startingPrice,
			BidIncrement:  a.bidIncrement,
			DepositAmount: a.depositAmount,
			StartsAt:      a.startsAt,
			EndsAt:        a.endsAt,
		},
		CurrentBid: current,
		Deposits:   deposits,
		Bidders:    bidders,
		Leading:    leading,
		Status:     a.status,
		Version:    a.version,
	}
}

func (a *AuctionState) ListingID() string {
	return a.listingID
}

func (a *AuctionState) ListingType() ListingType {
	return a.listingType
}

func (a *AuctionState) StartingPrice() int64 {
	return a.startingPrice
}

func (a *AuctionState) BidIncrement() int64 {
	return a.bidIncrement
}

func (a *AuctionState) DepositAmount() int64 {
	return a.depositAmount
}

func (a *AuctionState) DepositRequired() bool {
	return a.depositAmount > 0
}

func (a *AuctionState) Status() AuctionStatus {
	return a.status
}

func (a *AuctionState) Version() int64 {
	return a.version
}

func (a *AuctionState) StartsAt() time.Time {
	return a.startsAt
}

func (a *AuctionState) EndsAt() time.Time {
	return a.endsAt
}

func (a *AuctionState) Leading() *Bid {
	return a.leading
}

// CurrentBid falls back to the starting price until the first bid lands.
func (a *AuctionState) CurrentBid() int64 {
	if a.currentBid == nil {
		return a.startingPrice
	}
	return *a.currentBid
}

func (a *AuctionState) HasBids() bool {
	return a.currentBid != nil
}

// MinimumNextBid is the lowest amount PlaceBid would accept right now.
// A zero increment means one smallest currency unit above the current price.
// Once the price cannot be raised any further it returns math.MaxInt64 and
// PlaceBid rejects every bid.
func (a *AuctionState) MinimumNextBid() int64 {
	minimum, err := a.minimumNextBid()
	if err != nil {
		return math.MaxInt64
	}
	return minimum
}

func (a *AuctionState) minimumNextBid() (int64, error) {
	return addAmount(a.CurrentBid(), bidStep(a.bidIncrement))
}

func bidStep(increment int64) int64 {
	if increment > 0 {
		return increment
	}
	return 1
}

func (a *AuctionState) HasDeposited(accountID uuid.UUID) bool {
	_, ok := a.deposits[accountID]
	return ok
}

func (a *AuctionState) DepositReservation(accountID uuid.UUID) (uuid.UUID, bool) {
	res, ok := a.deposits[accountID]
	return res, ok
}

func (a *AuctionState) HasBid(accountID uuid.UUID) bool {
	_, ok := a.bidders[accountID]
	return ok
}

func (a *AuctionState) EligibleToBid(accountID uuid.UUID) bool {
	return !a.DepositRequired() || a.HasDeposited(accountID) || a.HasBid(accountID)
}

func (a *AuctionState) IsOpenAt(now time.Time) bool {
	if a.status != AuctionOpen {
		return false
	}
	if !a.startsAt.IsZero() && now.Before(a.startsAt) {
		return false
	}
	if !a.endsAt.IsZero() && !now.Before(a.endsAt) {
		return false
	}
	return true
}

// AcceptsDeposits allows deposits ahead of the bidding window but not after it.
func (a *AuctionState) AcceptsDeposits(now time.Time) bool {
	if a.status != AuctionOpen {
		return false
	}
	return a.endsAt.IsZero() || now.Before(a.endsAt)
}

// DepositReservations returns reservation ids ordered by account id, the
// order the ledger locks accounts in.
func (a *AuctionState) DepositReservations() []uuid.UUID {
	accounts := make([]uuid.UUID, 0, len(a.deposits))
	for acc := range a.deposits {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].String() < accounts[j].String()
	})
	out := make([]uuid.UUID, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, a.deposits[acc])
	}
	return out
}

func (a *AuctionState) RecordDeposit(accountID, reservationID uuid.UUID) error {
	if !a.DepositRequired() {
		return ErrDepositNotRequired
	}
	a.deposits[accountID] = reservationID
	return nil
}

// PlaceBid validates the bid against eligibility and amount rules and, if it
// passes, makes it the leading bid.
func (a *AuctionState) PlaceBid(accountID uuid.UUID, amount int64, now time.Time) (*Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !a.IsOpenAt(now) {
		return nil, ErrAuctionClosed
	}
	if !a.EligibleToBid(accountID) {
		return nil, &BidRejectedError{Reason: ReasonDepositRequired}
	}
	minimum, err := a.minimumNextBid()
	if err != nil {
		return nil, err
	}
	if amount < minimum {
		return nil, &BidRejectedError{Reason: ReasonBelowMinimum, Minimum: minimum}
	}

	bid := &Bid{
		ID:        uuid.New(),
		ListingID: a.listingID,
		AccountID: accountID,
		Amount:    amount,
		Timestamp: now,
		IsLeading: true,
	}
	current := amount
	a.currentBid = &current
	a.bidders[accountID] = struct{}{}
	a.leading = bid
	return bid, nil
}

func (a *AuctionState) Close() {
	a.status = AuctionClosed
}
