package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"danakita/internal/gateway"
	"danakita/internal/models/db_models"
	"danakita/internal/models/response_models"
	"danakita/internal/repositories"
)

var (
	ErrMockStorage  = errors.New("mock storage error")
	ErrMockCheckout = errors.New("mock checkout error")
)

// MockGateway implements gateway.PaymentGateway for testing.
type MockGateway struct {
	VerifyFunc         func(n gateway.Notification) bool
	CreateCheckoutFunc func(ctx context.Context, req gateway.CheckoutRequest) (*gateway.CheckoutSession, error)
	CheckoutCalls      []gateway.CheckoutRequest
}

func (m *MockGateway) CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (*gateway.CheckoutSession, error) {
	m.CheckoutCalls = append(m.CheckoutCalls, req)
	if m.CreateCheckoutFunc != nil {
		return m.CreateCheckoutFunc(ctx, req)
	}
	return &gateway.CheckoutSession{Token: "tok-test", RedirectURL: "https://pay.example/" + req.OrderID}, nil
}

func (m *MockGateway) QueryStatus(ctx context.Context, orderID string) (*gateway.Notification, error) {
	return nil, errors.New("not implemented")
}

func (m *MockGateway) VerifySignature(n gateway.Notification) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(n)
	}
	return true
}

// MockLedgerStore is an in-memory LedgerStore mirroring the transactional
// semantics of the gorm implementation: guarded transitions, first-success
// detection, and aggregate increments applied exactly once.
type MockLedgerStore struct {
	mu             sync.Mutex
	Donations      map[string]*db_models.Donation
	ProgramTotals  map[uuid.UUID]int64
	Leaderboard    map[string]*db_models.DonorLeaderboard
	Attributed     map[uuid.UUID]bool
	ReferralTotals map[string]int64
	ReferralDonors map[string]int64
	KnownCodes     map[string]bool

	ApplyCalls int
	FailApply  bool
	FailGet    bool
	// LoseSuccessRace makes the next success apply behave as if a concurrent
	// delivery won the guarded update: the donation settles (the winner's
	// effects apply once) but the caller's result reports no application.
	LoseSuccessRace bool
}

func NewMockLedgerStore() *MockLedgerStore {
	return &MockLedgerStore{
		Donations:      make(map[string]*db_models.Donation),
		ProgramTotals:  make(map[uuid.UUID]int64),
		Leaderboard:    make(map[string]*db_models.DonorLeaderboard),
		Attributed:     make(map[uuid.UUID]bool),
		ReferralTotals: make(map[string]int64),
		ReferralDonors: make(map[string]int64),
		KnownCodes:     make(map[string]bool),
	}
}

func (m *MockLedgerStore) AddDonation(d *db_models.Donation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.Donations[d.OrderID] = d
}

func (m *MockLedgerStore) GetDonationByOrderID(orderID string, ctx context.Context) (*db_models.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return nil, ErrMockStorage
	}
	d, ok := m.Donations[orderID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *MockLedgerStore) ApplySettlement(upd repositories.SettlementUpdate, ctx context.Context) (*repositories.SettlementResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ApplyCalls++
	if m.FailApply {
		return nil, ErrMockStorage
	}

	d, ok := m.Donations[upd.OrderID]
	if !ok {
		return nil, ErrMockStorage
	}

	result := &repositories.SettlementResult{}

	switch upd.NewStatus {
	case db_models.DonationStatusSuccess:
		if m.LoseSuccessRace && d.Status != db_models.DonationStatusSuccess {
			m.LoseSuccessRace = false
			d.Status = db_models.DonationStatusSuccess
			d.PaidAt = upd.PaidAt
			m.ProgramTotals[d.ProgramID] += d.AmountMinor
			cp := *d
			result.Donation = &cp
			return result, nil
		}
		if d.Status != db_models.DonationStatusSuccess {
			d.Status = db_models.DonationStatusSuccess
			d.PaidAt = upd.PaidAt
			d.PaymentType = upd.PaymentType
			d.ProviderSignature = upd.Signature
			result.Applied = true
			result.FirstSuccess = true

			m.ProgramTotals[d.ProgramID] += d.AmountMinor

			if key := d.DonorKey(); key != "" {
				entry, ok := m.Leaderboard[key]
				if !ok {
					entry = &db_models.DonorLeaderboard{DonorKey: key, DisplayName: d.DonorName}
					m.Leaderboard[key] = entry
				}
				entry.TotalDonatedMinor += d.AmountMinor
				entry.DonationCount++
				entry.IsAnonymous = d.IsAnonymous
				entry.Tier = db_models.TierFor(entry.TotalDonatedMinor)
			}

			if d.ReferralCode != "" && m.KnownCodes[d.ReferralCode] && !m.Attributed[d.ID] {
				m.Attributed[d.ID] = true
				m.ReferralTotals[d.ReferralCode] += d.AmountMinor
				m.ReferralDonors[d.ReferralCode]++
			}
		}
	case db_models.DonationStatusFailed:
		if d.Status != db_models.DonationStatusSuccess {
			d.Status = db_models.DonationStatusFailed
			d.PaymentType = upd.PaymentType
			d.ProviderSignature = upd.Signature
			result.Applied = true
		}
	default:
		if d.Status == db_models.DonationStatusPending {
			d.ProviderSignature = upd.Signature
			result.Applied = true
		}
	}

	cp := *d
	result.Donation = &cp
	return result, nil
}

// MockAuditRecorder implements AuditRecorderInterface for testing.
type MockAuditRecorder struct {
	mu      sync.Mutex
	Entries []AuditEntry
}

func (m *MockAuditRecorder) RecordEntry(ctx context.Context, entry AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockAuditRecorder) EntryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Entries)
}

func (m *MockAuditRecorder) LastEntry() *AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Entries) == 0 {
		return nil
	}
	cp := m.Entries[len(m.Entries)-1]
	return &cp
}

// WaitForEntries polls until at least n entries were recorded; the side
// effects run on their own goroutines.
func (m *MockAuditRecorder) WaitForEntries(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if m.EntryCount() >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return m.EntryCount() >= n
}

// MockReceiptNotifier implements ReceiptNotifierInterface for testing.
type MockReceiptNotifier struct {
	mu       sync.Mutex
	Receipts []Receipt
}

func (m *MockReceiptNotifier) SendReceipt(ctx context.Context, receipt Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Receipts = append(m.Receipts, receipt)
	return nil
}

func (m *MockReceiptNotifier) ReceiptCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Receipts)
}

func (m *MockReceiptNotifier) WaitForReceipts(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if m.ReceiptCount() >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return m.ReceiptCount() >= n
}

// MockFeed implements FeedPublisherInterface for testing.
type MockFeed struct {
	mu     sync.Mutex
	Events []response_models.FeedEvent
}

func (m *MockFeed) PublishSettled(event response_models.FeedEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

func (m *MockFeed) EventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}

// MockDonationRepository implements repositories.DonationRepositoryInterface.
type MockDonationRepository struct {
	mu       sync.Mutex
	Created  []*db_models.Donation
	Sessions map[uuid.UUID][2]string
	Failed   map[uuid.UUID]bool
	FailNext bool
}

func NewMockDonationRepository() *MockDonationRepository {
	return &MockDonationRepository{
		Sessions: make(map[uuid.UUID][2]string),
		Failed:   make(map[uuid.UUID]bool),
	}
}

func (m *MockDonationRepository) CreateDonation(donation *db_models.Donation, ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		return ErrMockStorage
	}
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	m.Created = append(m.Created, donation)
	return nil
}

func (m *MockDonationRepository) GetByOrderID(orderID string, ctx context.Context) (*db_models.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.Created {
		if d.OrderID == orderID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MockDonationRepository) UpdateCheckoutSession(donationID uuid.UUID, token string, url string, ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sessions[donationID] = [2]string{token, url}
	for _, d := range m.Created {
		if d.ID == donationID {
			d.PaymentToken = token
			d.PaymentURL = url
		}
	}
	return nil
}

func (m *MockDonationRepository) MarkFailed(donationID uuid.UUID, ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failed[donationID] = true
	return nil
}

// MockProgramRepository implements repositories.ProgramRepositoryInterface.
type MockProgramRepository struct {
	mu       sync.Mutex
	Programs map[uuid.UUID]*db_models.Program
}

func NewMockProgramRepository() *MockProgramRepository {
	return &MockProgramRepository{Programs: make(map[uuid.UUID]*db_models.Program)}
}

func (m *MockProgramRepository) AddProgram(p *db_models.Program) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.Programs[p.ID] = p
}

func (m *MockProgramRepository) CreateProgram(program *db_models.Program, ctx context.Context) error {
	m.AddProgram(program)
	return nil
}

func (m *MockProgramRepository) GetByID(programID uuid.UUID, ctx context.Context) (*db_models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Programs[programID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MockProgramRepository) ListActive(page int, pageSize int, ctx context.Context) ([]db_models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.Program
	for _, p := range m.Programs {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *MockProgramRepository) IncrementCollected(tx *gorm.DB, programID uuid.UUID, amountMinor int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Programs[programID]
	if !ok {
		return ErrMockStorage
	}
	p.CollectedAmountMinor += amountMinor
	return nil
}
