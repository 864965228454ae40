package checkoutv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "checkout.v1.CheckoutEngine"

type CheckoutEngineServer interface {
	InitiateCheckout(context.Context, *InitiateCheckoutRequest) (*TransactionResponse, error)
	ConfirmExternalPayment(context.Context, *TransactionRequest) (*TransactionResponse, error)
	GetTransaction(context.Context, *TransactionRequest) (*TransactionResponse, error)
	OpenAccount(context.Context, *OpenAccountRequest) (*BalanceResponse, error)
	GetWalletBalance(context.Context, *AccountRequest) (*BalanceResponse, error)
	GetWalletHistory(context.Context, *HistoryRequest) (*HistoryResponse, error)
	TopUpWallet(context.Context, *WalletRequest) (*TransactionResponse, error)
	WithdrawWallet(context.Context, *WalletRequest) (*TransactionResponse, error)
	OpenAuction(context.Context, *OpenAuctionRequest) (*AuctionState, error)
	PlaceDeposit(context.Context, *DepositRequest) (*DepositResponse, error)
	PlaceBid(context.Context, *BidRequest) (*BidResponse, error)
	GetAuctionState(context.Context, *AuctionStateRequest) (*AuctionState, error)
	ListBids(context.Context, *ListBidsRequest) (*ListBidsResponse, error)
	CloseAuction(context.Context, *CloseAuctionRequest) (*CloseAuctionResponse, error)
}

// UnimplementedCheckoutEngineServer can be embedded to satisfy
// CheckoutEngineServer while only overriding some methods.
type UnimplementedCheckoutEngineServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedCheckoutEngineServer) InitiateCheckout(context.Context, *InitiateCheckoutRequest) (*TransactionResponse, error) {
	return nil, unimplemented("InitiateCheckout")
}

func (UnimplementedCheckoutEngineServer) ConfirmExternalPayment(context.Context, *TransactionRequest) (*TransactionResponse, error) {
	return nil, unimplemented("ConfirmExternalPayment")
}

func (UnimplementedCheckoutEngineServer) GetTransaction(context.Context, *TransactionRequest) (*TransactionResponse, error) {
	return nil, unimplemented("GetTransaction")
}

func (UnimplementedCheckoutEngineServer) OpenAccount(context.Context, *OpenAccountRequest) (*BalanceResponse, error) {
	return nil, unimplemented("OpenAccount")
}

func (UnimplementedCheckoutEngineServer) GetWalletBalance(context.Context, *AccountRequest) (*BalanceResponse, error) {
	return nil, unimplemented("GetWalletBalance")
}

func (UnimplementedCheckoutEngineServer) GetWalletHistory(context.Context, *HistoryRequest) (*HistoryResponse, error) {
	return nil, unimplemented("GetWalletHistory")
}

func (UnimplementedCheckoutEngineServer) TopUpWallet(context.Context, *WalletRequest) (*TransactionResponse, error) {
	return nil, unimplemented("TopUpWallet")
}

func (UnimplementedCheckoutEngineServer) WithdrawWallet(context.Context, *WalletRequest) (*TransactionResponse, error) {
	return nil, unimplemented("WithdrawWallet")
}

func (UnimplementedCheckoutEngineServer) OpenAuction(context.Context, *OpenAuctionRequest) (*AuctionState, error) {
	return nil, unimplemented("OpenAuction")
}

func (UnimplementedCheckoutEngineServer) PlaceDeposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, unimplemented("PlaceDeposit")
}

func (UnimplementedCheckoutEngineServer) PlaceBid(context.Context, *BidRequest) (*BidResponse, error) {
	return nil, unimplemented("PlaceBid")
}

func (UnimplementedCheckoutEngineServer) GetAuctionState(context.Context, *AuctionStateRequest) (*AuctionState, error) {
	return nil, unimplemented("GetAuctionState")
}

func (UnimplementedCheckoutEngineServer) ListBids(context.Context, *ListBidsRequest) (*ListBidsResponse, error) {
	return nil, unimplemented("ListBids")
}

func (UnimplementedCheckoutEngineServer) CloseAuction(context.Context, *CloseAuctionRequest) (*CloseAuctionResponse, error) {
	return nil, unimplemented("CloseAuction")
}

func RegisterCheckoutEngineServer(s grpc.ServiceRegistrar, srv CheckoutEngineServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](
	method string,
	call func(CheckoutEngineServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CheckoutEngineServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CheckoutEngineServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutEngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InitiateCheckout", Handler: unary("InitiateCheckout", CheckoutEngineServer.InitiateCheckout)},
		{MethodName: "ConfirmExternalPayment", Handler: unary("ConfirmExternalPayment", CheckoutEngineServer.ConfirmExternalPayment)},
		{MethodName: "GetTransaction", Handler: unary("GetTransaction", CheckoutEngineServer.GetTransaction)},
		{MethodName: "OpenAccount", Handler: unary("OpenAccount", CheckoutEngineServer.OpenAccount)},
		{MethodName: "GetWalletBalance", Handler: unary("GetWalletBalance", CheckoutEngineServer.GetWalletBalance)},
		{MethodName: "GetWalletHistory", Handler: unary("GetWalletHistory", CheckoutEngineServer.GetWalletHistory)},
		{MethodName: "TopUpWallet", Handler: unary("TopUpWallet", CheckoutEngineServer.TopUpWallet)},
		{MethodName: "WithdrawWallet", Handler: unary("WithdrawWallet", CheckoutEngineServer.WithdrawWallet)},
		{MethodName: "OpenAuction", Handler: unary("OpenAuction", CheckoutEngineServer.OpenAuction)},
		{MethodName: "PlaceDeposit", Handler: unary("PlaceDeposit", CheckoutEngineServer.PlaceDeposit)},
		{MethodName: "PlaceBid", Handler: unary("PlaceBid", CheckoutEngineServer.PlaceBid)},
		{MethodName: "GetAuctionState", Handler: unary("GetAuctionState", CheckoutEngineServer.GetAuctionState)},
		{MethodName: "ListBids", Handler: unary("ListBids", CheckoutEngineServer.ListBids)},
		{MethodName: "CloseAuction", Handler: unary("CloseAuction", CheckoutEngineServer.CloseAuction)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checkout/v1/checkout_engine",
}
