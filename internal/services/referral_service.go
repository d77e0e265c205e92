package services

import (
	"context"

	"danakita/internal/models/response_models"
	"danakita/internal/repositories"
	"danakita/pkg/utils"
)

type ReferralServiceInterface interface {
	CodeStats(code string, ctx context.Context) (*response_models.ReferralStatsResponse, error)
}

func NewReferralService(referrals repositories.ReferralRepositoryInterface) ReferralServiceInterface {
	return &ReferralService{referrals: referrals}
}

type ReferralService struct {
	referrals repositories.ReferralRepositoryInterface
}

func (r *ReferralService) CodeStats(code string, ctx context.Context) (*response_models.ReferralStatsResponse, error) {
	rc, err := r.referrals.GetByCode(code, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rc == nil {
		return nil, utils.ErrReferralNotFound
	}

	return &response_models.ReferralStatsResponse{
		Code:           rc.Code,
		TotalDonations: rc.TotalDonatedMinor,
		TotalDonors:    rc.TotalDonors,
		IsActive:       rc.IsActive,
	}, nil
}
