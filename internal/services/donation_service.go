package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"danakita/internal/gateway"
	"danakita/internal/models/db_models"
	"danakita/internal/models/response_models"
	"danakita/internal/repositories"
	"danakita/pkg/utils"
)

// Donations below Rp 1.000 are rejected; most payment methods cannot process
// them anyway.
const minDonationMinor = 1000

type CreateDonationInput struct {
	ProgramID    uuid.UUID
	UserID       *uuid.UUID
	DonorName    string
	DonorEmail   string
	IsAnonymous  bool
	AmountMinor  int64
	ReferralCode string
}

type DonationServiceInterface interface {
	CreateDonation(input CreateDonationInput, ctx context.Context) (*response_models.CreateDonationResponse, error)
	GetDonation(orderID string, ctx context.Context) (*response_models.DonationResponse, error)
	DonationQR(orderID string, ctx context.Context) ([]byte, error)
}

func NewDonationService(
	donations repositories.DonationRepositoryInterface,
	programs repositories.ProgramRepositoryInterface,
	gw gateway.PaymentGateway,
	providerName string,
) DonationServiceInterface {
	return &DonationService{
		donations:    donations,
		programs:     programs,
		gateway:      gw,
		providerName: providerName,
	}
}

type DonationService struct {
	donations    repositories.DonationRepositoryInterface
	programs     repositories.ProgramRepositoryInterface
	gateway      gateway.PaymentGateway
	providerName string
}

// NewOrderID builds the provider-facing order identifier, e.g.
// DON-1719223344-4821. Unix seconds plus a random suffix keeps collisions
// practically impossible; the unique index on order_id catches the rest.
func NewOrderID() string {
	return fmt.Sprintf("DON-%d-%04d", time.Now().Unix(), rand.Intn(10000))
}

func (d *DonationService) CreateDonation(input CreateDonationInput, ctx context.Context) (*response_models.CreateDonationResponse, error) {
	if input.AmountMinor < minDonationMinor {
		return nil, utils.ErrInvalidAmount
	}

	program, err := d.programs.GetByID(input.ProgramID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if program == nil || !program.IsActive {
		return nil, utils.ErrProgramNotFound
	}

	donation := &db_models.Donation{
		OrderID:      NewOrderID(),
		ProgramID:    program.ID,
		UserID:       input.UserID,
		DonorName:    input.DonorName,
		DonorEmail:   input.DonorEmail,
		IsAnonymous:  input.IsAnonymous,
		AmountMinor:  input.AmountMinor,
		Status:       db_models.DonationStatusPending,
		ReferralCode: input.ReferralCode,
	}

	if err := d.donations.CreateDonation(donation, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	session, err := d.gateway.CreateCheckout(ctx, gateway.CheckoutRequest{
		OrderID:      donation.OrderID,
		AmountMinor:  donation.AmountMinor,
		DonorName:    donation.DonorName,
		DonorEmail:   donation.DonorEmail,
		ProgramTitle: program.Title,
	})
	if err != nil {
		if markErr := d.donations.MarkFailed(donation.ID, ctx); markErr != nil {
			log.Printf("checkout: mark failed for %s: %v", donation.OrderID, markErr)
		}
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	if err := d.donations.UpdateCheckoutSession(donation.ID, session.Token, session.RedirectURL, ctx); err != nil {
		log.Printf("checkout: persist session for %s: %v", donation.OrderID, err)
	}

	return &response_models.CreateDonationResponse{
		OrderID:      donation.OrderID,
		Amount:       donation.AmountMinor,
		PaymentToken: session.Token,
		PaymentURL:   session.RedirectURL,
		ProviderName: d.providerName,
	}, nil
}

func (d *DonationService) GetDonation(orderID string, ctx context.Context) (*response_models.DonationResponse, error) {
	donation, err := d.donations.GetByOrderID(orderID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if donation == nil {
		return nil, utils.ErrDonationNotFound
	}

	return &response_models.DonationResponse{
		OrderID:      donation.OrderID,
		ProgramID:    donation.ProgramID.String(),
		DonorName:    donation.DonorName,
		Amount:       donation.AmountMinor,
		Status:       string(donation.Status),
		PaymentType:  donation.PaymentType,
		ReferralCode: donation.ReferralCode,
		PaidAt:       donation.PaidAt,
		CreatedAt:    donation.CreatedAt,
	}, nil
}

// DonationQR renders the donation's checkout URL as a PNG QR code so a second
// device can pick up the payment.
func (d *DonationService) DonationQR(orderID string, ctx context.Context) ([]byte, error) {
	donation, err := d.donations.GetByOrderID(orderID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if donation == nil || donation.PaymentURL == "" {
		return nil, utils.ErrDonationNotFound
	}
	return qrcode.Encode(donation.PaymentURL, qrcode.Medium, 256)
}
