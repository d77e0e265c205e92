package response_models

type CreateDonationResponse struct {
	OrderID      string `json:"order_id"`
	Amount       int64  `json:"amount"`
	PaymentToken string `json:"payment_token"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider"`
}

type DonationResponse struct {
	OrderID      string `json:"order_id"`
	ProgramID    string `json:"program_id"`
	DonorName    string `json:"donor_name"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	PaymentType  string `json:"payment_type,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
	PaidAt       *int64 `json:"paid_at,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

// NotificationAck is the body the provider receives for every accepted
// notification, duplicates included.
type NotificationAck struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Outcome string `json:"outcome"` // settled | already_processed | marked_failed | still_pending
}
