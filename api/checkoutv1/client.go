package checkoutv1

import (
	"context"

	"google.golang.org/grpc"
)

type CheckoutEngineClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutEngineClient(cc grpc.ClientConnInterface) *CheckoutEngineClient {
	return &CheckoutEngineClient{cc: cc}
}

func (c *CheckoutEngineClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *CheckoutEngineClient) InitiateCheckout(ctx context.Context, in *InitiateCheckoutRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	out := new(TransactionResponse)
	if err := c.invoke(ctx, "InitiateCheckout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) ConfirmExternalPayment(ctx context.Context, in *TransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	out := new(TransactionResponse)
	if err := c.invoke(ctx, "ConfirmExternalPayment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) GetTransaction(ctx context.Context, in *TransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	out := new(TransactionResponse)
	if err := c.invoke(ctx, "GetTransaction", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) OpenAccount(ctx context.Context, in *OpenAccountRequest, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	if err := c.invoke(ctx, "OpenAccount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) GetWalletBalance(ctx context.Context, in *AccountRequest, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	if err := c.invoke(ctx, "GetWalletBalance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) GetWalletHistory(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	out := new(HistoryResponse)
	if err := c.invoke(ctx, "GetWalletHistory", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) TopUpWallet(ctx context.Context, in *WalletRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	out := new(TransactionResponse)
	if err := c.invoke(ctx, "TopUpWallet", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) WithdrawWallet(ctx context.Context, in *WalletRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	out := new(TransactionResponse)
	if err := c.invoke(ctx, "WithdrawWallet", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) OpenAuction(ctx context.Context, in *OpenAuctionRequest, opts ...grpc.CallOption) (*AuctionState, error) {
	out := new(AuctionState)
	if err := c.invoke(ctx, "OpenAuction", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) PlaceDeposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	out := new(DepositResponse)
	if err := c.invoke(ctx, "PlaceDeposit", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) PlaceBid(ctx context.Context, in *BidRequest, opts ...grpc.CallOption) (*BidResponse, error) {
	out := new(BidResponse)
	if err := c.invoke(ctx, "PlaceBid", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) GetAuctionState(ctx context.Context, in *AuctionStateRequest, opts ...grpc.CallOption) (*AuctionState, error) {
	out := new(AuctionState)
	if err := c.invoke(ctx, "GetAuctionState", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) ListBids(ctx context.Context, in *ListBidsRequest, opts ...grpc.CallOption) (*ListBidsResponse, error) {
	out := new(ListBidsResponse)
	if err := c.invoke(ctx, "ListBids", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutEngineClient) CloseAuction(ctx context.Context, in *CloseAuctionRequest, opts ...grpc.CallOption) (*CloseAuctionResponse, error) {
	out := new(CloseAuctionResponse)
	if err := c.invoke(ctx, "CloseAuction", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
