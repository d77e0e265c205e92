package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"danakita/internal/gateway"
	"danakita/internal/models/db_models"
	"danakita/internal/models/response_models"
	"danakita/internal/repositories"
	"danakita/pkg/utils"
)

type OutcomeKind string

const (
	OutcomeSettled          OutcomeKind = "settled"
	OutcomeAlreadyProcessed OutcomeKind = "already_processed"
	OutcomeMarkedFailed     OutcomeKind = "marked_failed"
	OutcomeStillPending     OutcomeKind = "still_pending"
)

// SettlementOutcome is the explicit result variant the webhook boundary
// translates into an HTTP response. Expected idempotent no-ops are outcomes,
// not errors.
type SettlementOutcome struct {
	Kind     OutcomeKind
	Donation *db_models.Donation
}

type SettlementServiceInterface interface {
	ProcessNotification(n gateway.Notification, ctx context.Context) (*SettlementOutcome, error)
	SimulateSettlement(orderID string, amountMinor int64, ctx context.Context) (*SettlementOutcome, error)
}

type SettlementConfig struct {
	ProviderName    string
	SandboxSimulate bool
}

func NewSettlementService(
	gw gateway.PaymentGateway,
	ledger repositories.LedgerStoreInterface,
	audit AuditRecorderInterface,
	receipts ReceiptNotifierInterface,
	feed FeedPublisherInterface,
	cfg SettlementConfig,
) SettlementServiceInterface {
	return &SettlementService{
		gateway:  gw,
		ledger:   ledger,
		audit:    audit,
		receipts: receipts,
		feed:     feed,
		cfg:      cfg,
	}
}

type SettlementService struct {
	gateway  gateway.PaymentGateway
	ledger   repositories.LedgerStoreInterface
	audit    AuditRecorderInterface
	receipts ReceiptNotifierInterface
	feed     FeedPublisherInterface
	cfg      SettlementConfig
}

func (s *SettlementService) ProcessNotification(n gateway.Notification, ctx context.Context) (*SettlementOutcome, error) {
	if !s.gateway.VerifySignature(n) {
		return nil, utils.ErrSignatureMismatch
	}
	return s.process(n, ctx)
}

// SimulateSettlement synthesizes a settlement notification for sandbox
// testing, bypassing signature verification. Gated by configuration; disabled
// deployments report the endpoint as absent.
func (s *SettlementService) SimulateSettlement(orderID string, amountMinor int64, ctx context.Context) (*SettlementOutcome, error) {
	if !s.cfg.SandboxSimulate {
		return nil, utils.ErrSimulateDisabled
	}

	n := gateway.Notification{
		OrderID:           orderID,
		TransactionStatus: gateway.StatusSettlement,
		StatusCode:        "200",
		GrossAmount:       fmt.Sprintf("%d.00", amountMinor),
		PaymentType:       "sandbox",
		TransactionTime:   time.Now().Format("2006-01-02 15:04:05"),
		RawPayload:        []byte(fmt.Sprintf(`{"order_id":%q,"transaction_status":"settlement","simulated":true}`, orderID)),
	}
	return s.process(n, ctx)
}

func (s *SettlementService) process(n gateway.Notification, ctx context.Context) (*SettlementOutcome, error) {
	donation, err := s.ledger.GetDonationByOrderID(n.OrderID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if donation == nil {
		return nil, utils.ErrDonationNotFound
	}

	mapped := n.MappedStatus()

	// At-least-once delivery: a settled donation receiving another success
	// notification is acknowledged without re-applying anything.
	if donation.Status == db_models.DonationStatusSuccess && mapped == db_models.DonationStatusSuccess {
		return &SettlementOutcome{Kind: OutcomeAlreadyProcessed, Donation: donation}, nil
	}

	amountMinor, err := gateway.ParseGrossAmount(n.GrossAmount)
	if err != nil || amountMinor != donation.AmountMinor {
		// Data-integrity anomaly: never settle with the provider's figure.
		go s.recordAmountMismatch(donation, n.GrossAmount)
		return nil, utils.ErrAmountMismatch
	}

	upd := repositories.SettlementUpdate{
		OrderID:     n.OrderID,
		NewStatus:   mapped,
		PaymentType: n.PaymentType,
		RawPayload:  n.RawPayload,
		Signature:   n.SignatureKey,
	}
	if mapped == db_models.DonationStatusSuccess {
		now := time.Now().Unix()
		upd.PaidAt = &now
	}

	result, err := s.ledger.ApplySettlement(upd, ctx)
	if err != nil {
		if errors.Is(err, utils.ErrDonationNotFound) {
			return nil, err
		}
		log.Printf("settlement: apply failed for order %s: %v", n.OrderID, err)
		return nil, utils.ErrDatabaseError
	}

	switch mapped {
	case db_models.DonationStatusSuccess:
		if !result.FirstSuccess {
			// Lost the race against a concurrent delivery of the same webhook.
			return &SettlementOutcome{Kind: OutcomeAlreadyProcessed, Donation: result.Donation}, nil
		}
		s.afterSettled(result.Donation)
		return &SettlementOutcome{Kind: OutcomeSettled, Donation: result.Donation}, nil
	case db_models.DonationStatusFailed:
		if !result.Applied && result.Donation.Status == db_models.DonationStatusSuccess {
			// Late failure report for a donation that already settled.
			return &SettlementOutcome{Kind: OutcomeAlreadyProcessed, Donation: result.Donation}, nil
		}
		return &SettlementOutcome{Kind: OutcomeMarkedFailed, Donation: result.Donation}, nil
	default:
		return &SettlementOutcome{Kind: OutcomeStillPending, Donation: result.Donation}, nil
	}
}

// afterSettled fires the best-effort side effects once the transaction has
// committed. None of them may fail the webhook.
func (s *SettlementService) afterSettled(donation *db_models.Donation) {
	go s.recordAudit(donation)
	go s.sendReceipt(donation)

	if s.feed != nil {
		paidAt := int64(0)
		if donation.PaidAt != nil {
			paidAt = *donation.PaidAt
		}
		donorName := donation.DonorName
		if donation.IsAnonymous {
			donorName = "Hamba Allah"
		}
		s.feed.PublishSettled(response_models.FeedEvent{
			OrderID:      donation.OrderID,
			ProgramID:    donation.ProgramID.String(),
			ProgramTitle: donation.Program.Title,
			DonorName:    donorName,
			Amount:       donation.AmountMinor,
			PaidAt:       paidAt,
		})
	}
}

func (s *SettlementService) recordAudit(donation *db_models.Donation) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entry := AuditEntry{
		Action:     ActionDonationSuccess,
		EntityType: "donation",
		EntityID:   donation.ID.String(),
		Metadata: map[string]interface{}{
			"program_id":   donation.ProgramID.String(),
			"amount":       donation.AmountMinor,
			"payment_type": donation.PaymentType,
			"provider":     s.cfg.ProviderName,
		},
	}
	if donation.UserID != nil {
		entry.DonorID = donation.UserID.String()
	}

	if err := s.audit.RecordEntry(ctx, entry); err != nil {
		log.Printf("settlement: audit entry for %s failed: %v", donation.OrderID, err)
	}
}

func (s *SettlementService) recordAmountMismatch(donation *db_models.Donation, grossAmount string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entry := AuditEntry{
		Action:     ActionAmountMismatch,
		EntityType: "donation",
		EntityID:   donation.ID.String(),
		Metadata: map[string]interface{}{
			"order_id":        donation.OrderID,
			"stored_amount":   donation.AmountMinor,
			"notified_amount": grossAmount,
		},
	}

	if err := s.audit.RecordEntry(ctx, entry); err != nil {
		log.Printf("settlement: amount-mismatch alert for %s failed: %v", donation.OrderID, err)
	}
}

func (s *SettlementService) sendReceipt(donation *db_models.Donation) {
	if donation.DonorEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	paidAt := ""
	if donation.PaidAt != nil {
		paidAt = utils.FormatRFC3339WIB(utils.FromUnixSecondsWIB(*donation.PaidAt))
	}

	receipt := Receipt{
		DonorEmail:   donation.DonorEmail,
		DonorName:    donation.DonorName,
		Amount:       donation.AmountMinor,
		ProgramTitle: donation.Program.Title,
		OrderID:      donation.OrderID,
		PaidAt:       paidAt,
	}

	if err := s.receipts.SendReceipt(ctx, receipt); err != nil {
		log.Printf("settlement: receipt for %s failed: %v", donation.OrderID, err)
	}
}
