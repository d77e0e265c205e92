package db_models

// Donor tiers, derived from the cumulative donated total in rupiah.
const (
	TierPemula   = "PEMULA"
	TierDermawan = "DERMAWAN"
	TierJuragan  = "JURAGAN"
	TierSultan   = "SULTAN"
	TierLegend   = "LEGEND"
)

// TierFor maps a cumulative total (minor units) to its tier label.
// Boundaries are inclusive-lower / exclusive-upper.
func TierFor(totalMinor int64) string {
	switch {
	case totalMinor < 1_000_000:
		return TierPemula
	case totalMinor < 10_000_000:
		return TierDermawan
	case totalMinor < 50_000_000:
		return TierJuragan
	case totalMinor < 100_000_000:
		return TierSultan
	default:
		return TierLegend
	}
}

type DonorLeaderboard struct {
	BaseModel
	// Stable donor identity: user id when the donation was authenticated,
	// otherwise the lowercased donor email.
	DonorKey    string `gorm:"size:120;uniqueIndex"`
	DisplayName string `gorm:"size:100"`

	TotalDonatedMinor int64
	DonationCount     int64
	Tier              string `gorm:"size:16"`
	LastDonationAt    int64  // unix seconds
	IsAnonymous       bool   // latest donation's flag wins
}
