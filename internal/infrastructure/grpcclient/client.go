package grpcclient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
)

// Client talks to the checkout engine over gRPC.
type Client struct {
	*checkoutv1.CheckoutEngineClient
	conn *grpc.ClientConn
}

func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return NewFromConn(conn), nil
}

func NewFromConn(conn *grpc.ClientConn) *Client {
	return &Client{
		CheckoutEngineClient: checkoutv1.NewCheckoutEngineClient(conn),
		conn:                 conn,
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// PendingPayment returns the external payment handle of a transaction, or
// nil if it has none.
func (c *Client) PendingPayment(ctx context.Context, txID uuid.UUID) (*entity.PendingPayment, error) {
	resp, err := c.GetTransaction(ctx, &checkoutv1.TransactionRequest{TransactionID: txID.String()})
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("transaction %s: %w", txID, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	p := resp.Transaction.Pending
	if p == nil || resp.Transaction.Status != string(entity.StatusProcessing) {
		return nil, nil
	}
	return &entity.PendingPayment{
		QRPayload:   p.QRPayload,
		Deeplink:    p.Deeplink,
		FallbackURL: p.FallbackURL,
	}, nil
}
