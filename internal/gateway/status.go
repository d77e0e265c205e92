package gateway

import (
	"danakita/internal/models/db_models"
)

// Provider transaction_status vocabulary.
const (
	StatusCapture    = "capture"
	StatusSettlement = "settlement"
	StatusPending    = "pending"
	StatusCancel     = "cancel"
	StatusDeny       = "deny"
	StatusExpire     = "expire"

	FraudAccept = "accept"
)

// MapTransactionStatus converts the provider status pair into the internal
// donation state. Unrecognized statuses map to PENDING: a retry-safe
// non-terminal state rather than a silent success or failure.
func MapTransactionStatus(transactionStatus, fraudStatus string) db_models.DonationStatus {
	switch transactionStatus {
	case StatusCapture:
		if fraudStatus == FraudAccept {
			return db_models.DonationStatusSuccess
		}
		return db_models.DonationStatusPending
	case StatusSettlement:
		return db_models.DonationStatusSuccess
	case StatusCancel, StatusDeny, StatusExpire:
		return db_models.DonationStatusFailed
	case StatusPending:
		return db_models.DonationStatusPending
	default:
		return db_models.DonationStatusPending
	}
}
