package utils

import "errors"

var (
	ErrSignatureMismatch = errors.New("notification signature mismatch")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrProgramNotFound   = errors.New("program not found")
	ErrReferralNotFound  = errors.New("referral code not found")
	ErrAmountMismatch    = errors.New("notification amount does not match donation")
	ErrInvalidAmount     = errors.New("invalid donation amount")
	ErrSimulateDisabled  = errors.New("sandbox simulation disabled")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrDatabaseError     = errors.New("database error")
)
