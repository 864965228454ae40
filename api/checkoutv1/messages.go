package checkoutv1

import "time"

// Error codes carried in responses for business outcomes. Malformed input and
// unknown ids are gRPC status errors instead.
const (
	ErrorInsufficientFunds   = "INSUFFICIENT_FUNDS"
	ErrorGatewayUnavailable  = "GATEWAY_UNAVAILABLE"
	ErrorBelowMinimum        = "BELOW_MINIMUM"
	ErrorDepositRequired     = "DEPOSIT_REQUIRED"
	ErrorDepositNotRequired  = "DEPOSIT_NOT_REQUIRED"
	ErrorAuctionClosed       = "AUCTION_CLOSED"
	ErrorIdempotencyConflict = "IDEMPOTENCY_CONFLICT"
)

type PendingPayment struct {
	QRPayload   string `json:"qr_payload"`
	Deeplink    string `json:"deeplink"`
	FallbackURL string `json:"fallback_url"`
}

type Transaction struct {
	TransactionID    string          `json:"transaction_id"`
	Kind             string          `json:"kind"`
	Status           string          `json:"status"`
	AccountID        string          `json:"account_id"`
	ListingID        string          `json:"listing_id,omitempty"`
	ListingType      string          `json:"listing_type,omitempty"`
	Amount           int64           `json:"amount"`
	PaymentMethod    string          `json:"payment_method"`
	FailureReason    string          `json:"failure_reason,omitempty"`
	Retryable        bool            `json:"retryable"`
	GatewayReference string          `json:"gateway_reference,omitempty"`
	Pending          *PendingPayment `json:"pending,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type TransactionResponse struct {
	Transaction  *Transaction `json:"transaction,omitempty"`
	ErrorCode    string       `json:"error_code,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type InitiateCheckoutRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	AccountID      string `json:"account_id"`
	ListingID      string `json:"listing_id"`
	ListingType    string `json:"listing_type"`
	Amount         int64  `json:"amount"`
	PaymentMethod  string `json:"payment_method"`
}

type TransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type WalletRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	AccountID      string `json:"account_id"`
	Amount         int64  `json:"amount"`
}

type OpenAccountRequest struct {
	AccountID      string `json:"account_id"`
	OpeningBalance int64  `json:"opening_balance"`
}

type AccountRequest struct {
	AccountID string `json:"account_id"`
}

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Available int64  `json:"available"`
	Locked    int64  `json:"locked"`
}

type HistoryRequest struct {
	AccountID string `json:"account_id"`
	Limit     int    `json:"limit"`
}

type LedgerEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Entries []LedgerEntry `json:"entries"`
}

type Bid struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	IsLeading bool      `json:"is_leading"`
}

type OpenAuctionRequest struct {
	ListingID     string     `json:"listing_id"`
	ListingType   string     `json:"listing_type"`
	StartingPrice int64      `json:"starting_price"`
	BidIncrement  int64      `json:"bid_increment"`
	DepositAmount int64      `json:"deposit_amount"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
}

type AuctionStateRequest struct {
	ListingID string `json:"listing_id"`
	AccountID string `json:"account_id,omitempty"`
}

type AuctionState struct {
	ListingID           string     `json:"listing_id"`
	ListingType         string     `json:"listing_type"`
	Status              string     `json:"status"`
	StartingPrice       int64      `json:"starting_price"`
	CurrentBid          int64      `json:"current_bid"`
	HasBids             bool       `json:"has_bids"`
	MinimumNextBid      int64      `json:"minimum_next_bid"`
	BidIncrement        int64      `json:"bid_increment"`
	DepositRequired     bool       `json:"deposit_required"`
	DepositAmount       int64      `json:"deposit_amount"`
	CallerDeposited     bool       `json:"caller_deposited"`
	CallerEligibleToBid bool       `json:"caller_eligible_to_bid"`
	Leading             *Bid       `json:"leading,omitempty"`
	StartsAt            *time.Time `json:"starts_at,omitempty"`
	EndsAt              *time.Time `json:"ends_at,omitempty"`
}

type DepositRequest struct {
	ListingID string `json:"listing_id"`
	AccountID string `json:"account_id"`
}

type DepositResponse struct {
	ListingID        string `json:"listing_id"`
	AccountID        string `json:"account_id"`
	ReservationID    string `json:"reservation_id,omitempty"`
	Amount           int64  `json:"amount"`
	AlreadyDeposited bool   `json:"already_deposited"`
	ErrorCode        string `json:"error_code,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

type BidRequest struct {
	ListingID string `json:"listing_id"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

type BidResponse struct {
	Bid            *Bid   `json:"bid,omitempty"`
	CurrentBid     int64  `json:"current_bid"`
	MinimumNextBid int64  `json:"minimum_next_bid"`
	ErrorCode      string `json:"error_code,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
}

type ListBidsRequest struct {
	ListingID string `json:"listing_id"`
	Limit     int    `json:"limit"`
}

type ListBidsResponse struct {
	Bids []Bid `json:"bids"`
}

type CloseAuctionRequest struct {
	ListingID string `json:"listing_id"`
}

type CloseAuctionResponse struct {
	ListingID        string `json:"listing_id"`
	Winner           *Bid   `json:"winner,omitempty"`
	ReleasedDeposits int    `json:"released_deposits"`
	AlreadyClosed    bool   `json:"already_closed"`
}
