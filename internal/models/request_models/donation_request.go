package request_models

type CreateDonationRequest struct {
	ProgramID    string `json:"program_id" binding:"required"`
	DonorName    string `json:"donor_name" binding:"required"`
	DonorEmail   string `json:"donor_email"`
	IsAnonymous  bool   `json:"is_anonymous"`
	Amount       int64  `json:"amount" binding:"required"`
	ReferralCode string `json:"referral_code"`
}
