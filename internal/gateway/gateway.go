package gateway

import (
	"context"
	"errors"
	"math"
	"strconv"

	"danakita/internal/models/db_models"
)

// Config holds the provider credentials shared by checkout, status query and
// webhook signature verification.
type Config struct {
	ServerKey    string
	ClientKey    string
	Production   bool
	ProviderName string // stored on audit entries, e.g. "midtrans"
}

// Notification is the provider webhook payload reduced to the fields the
// settlement engine consumes. RawPayload keeps the original body verbatim.
type Notification struct {
	OrderID           string
	TransactionStatus string
	FraudStatus       string
	StatusCode        string
	GrossAmount       string // provider sends a decimal string, e.g. "100000.00"
	PaymentType       string
	SignatureKey      string
	TransactionTime   string
	RawPayload        []byte
}

type CheckoutRequest struct {
	OrderID      string
	AmountMinor  int64
	DonorName    string
	DonorEmail   string
	ProgramTitle string
}

type CheckoutSession struct {
	Token       string
	RedirectURL string
}

// PaymentGateway is the narrow surface over the concrete provider SDK so the
// settlement path stays testable with a fake.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	QueryStatus(ctx context.Context, orderID string) (*Notification, error)
	VerifySignature(n Notification) bool
}

var ErrInvalidGrossAmount = errors.New("invalid gross amount")

// ParseGrossAmount converts the provider's decimal gross_amount string into
// minor units. IDR carries no decimals, so "100000.00" becomes 100000.
func ParseGrossAmount(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidGrossAmount
	}
	return int64(math.Round(f)), nil
}

// MappedStatus is a convenience wrapper for callers that already hold a
// Notification.
func (n Notification) MappedStatus() db_models.DonationStatus {
	return MapTransactionStatus(n.TransactionStatus, n.FraudStatus)
}
