package response_models

type LeaderboardEntryResponse struct {
	Rank           int    `json:"rank"`
	DisplayName    string `json:"display_name"` // masked when the donor is anonymous
	TotalDonated   int64  `json:"total_donated"`
	DonationCount  int64  `json:"donation_count"`
	Tier           string `json:"tier"`
	LastDonationAt int64  `json:"last_donation_at"`
}

type ReferralStatsResponse struct {
	Code           string `json:"code"`
	TotalDonations int64  `json:"total_donations"`
	TotalDonors    int64  `json:"total_donors"`
	IsActive       bool   `json:"is_active"`
}

// FeedEvent is pushed over the websocket feed when a donation settles.
type FeedEvent struct {
	OrderID      string `json:"order_id"`
	ProgramID    string `json:"program_id"`
	ProgramTitle string `json:"program_title,omitempty"`
	DonorName    string `json:"donor_name"`
	Amount       int64  `json:"amount"`
	PaidAt       int64  `json:"paid_at"`
}
