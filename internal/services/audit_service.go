package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ActionDonationSuccess = "DONATION_SUCCESS"
	ActionAmountMismatch  = "DONATION_AMOUNT_MISMATCH"
)

// AuditEntry mirrors the audit collaborator's ingest contract.
type AuditEntry struct {
	DonorID    string                 `json:"donor_id,omitempty"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Receipt mirrors the notification collaborator's contract for donor receipts.
type Receipt struct {
	DonorEmail   string `json:"donor_email"`
	DonorName    string `json:"donor_name"`
	Amount       int64  `json:"amount"`
	ProgramTitle string `json:"program_title"`
	OrderID      string `json:"order_id"`
	PaidAt       string `json:"paid_at"`
}

type AuditRecorderInterface interface {
	RecordEntry(ctx context.Context, entry AuditEntry) error
}

type ReceiptNotifierInterface interface {
	SendReceipt(ctx context.Context, receipt Receipt) error
}

// Both collaborators are plain JSON-over-HTTP endpoints implemented elsewhere.
// An empty URL disables the client, which keeps local setups working without
// the collaborator running.

func NewHTTPAuditRecorder(url string) AuditRecorderInterface {
	return &httpAuditRecorder{url: url, client: &http.Client{Timeout: 5 * time.Second}}
}

type httpAuditRecorder struct {
	url    string
	client *http.Client
}

func (a *httpAuditRecorder) RecordEntry(ctx context.Context, entry AuditEntry) error {
	if a.url == "" {
		return nil
	}
	return postJSON(ctx, a.client, a.url, entry)
}

func NewHTTPReceiptNotifier(url string) ReceiptNotifierInterface {
	return &httpReceiptNotifier{url: url, client: &http.Client{Timeout: 5 * time.Second}}
}

type httpReceiptNotifier struct {
	url    string
	client *http.Client
}

func (r *httpReceiptNotifier) SendReceipt(ctx context.Context, receipt Receipt) error {
	if r.url == "" {
		return nil
	}
	if receipt.DonorEmail == "" {
		return nil
	}
	return postJSON(ctx, r.client, r.url, receipt)
}

func postJSON(ctx context.Context, client *http.Client, url string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("collaborator %s responded %d", url, resp.StatusCode)
	}
	return nil
}
