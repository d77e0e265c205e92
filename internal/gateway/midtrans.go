package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type midtransGateway struct {
	cfg  Config
	snap snap.Client
	core coreapi.Client
}

// NewMidtransGateway wires the snap (checkout) and core (status query) clients
// against the configured environment.
func NewMidtransGateway(cfg Config) (PaymentGateway, error) {
	if cfg.ServerKey == "" {
		return nil, errors.New("missing midtrans server key")
	}

	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}

	g := &midtransGateway{cfg: cfg}
	g.snap.New(cfg.ServerKey, env)
	g.core.New(cfg.ServerKey, env)
	return g, nil
}

func (g *midtransGateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	body := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.AmountMinor,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.DonorName,
			Email: req.DonorEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.OrderID,
				Name:  fmt.Sprintf("Donasi: %s", req.ProgramTitle),
				Price: req.AmountMinor,
				Qty:   1,
			},
		},
	}

	resp, snapErr := g.snap.CreateTransaction(body)
	if snapErr != nil {
		return nil, fmt.Errorf("midtrans create transaction: %w", snapErr)
	}

	return &CheckoutSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (g *midtransGateway) QueryStatus(ctx context.Context, orderID string) (*Notification, error) {
	resp, coreErr := g.core.CheckTransaction(orderID)
	if coreErr != nil {
		return nil, fmt.Errorf("midtrans check transaction: %w", coreErr)
	}

	return &Notification{
		OrderID:           resp.OrderID,
		TransactionStatus: resp.TransactionStatus,
		FraudStatus:       resp.FraudStatus,
		StatusCode:        resp.StatusCode,
		GrossAmount:       resp.GrossAmount,
		PaymentType:       resp.PaymentType,
		SignatureKey:      resp.SignatureKey,
		TransactionTime:   resp.TransactionTime,
	}, nil
}

func (g *midtransGateway) VerifySignature(n Notification) bool {
	return VerifyNotificationSignature(n, g.cfg.ServerKey)
}
