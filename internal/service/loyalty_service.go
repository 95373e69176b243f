package service

import (
	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type LoyaltyConfigRequest struct {
	PointValueRequirement   *int64 `json:"point_value_requirement"`
	DiscountSilverPercent   *int64 `json:"discount_silver_percent"`
	DiscountGoldPercent     *int64 `json:"discount_gold_percent"`
	DiscountPlatinumPercent *int64 `json:"discount_platinum_percent"`
	IsAutoTierEnabled       *bool  `json:"is_auto_tier_enabled"`
	TierSilverThreshold     *int64 `json:"tier_silver_threshold"`
	TierGoldThreshold       *int64 `json:"tier_gold_threshold"`
	TierPlatinumThreshold   *int64 `json:"tier_platinum_threshold"`
}

type LoyaltyService interface {
	GetConfig(businessID uuid.UUID) (*model.Business, error)
	UpdateConfig(businessID uuid.UUID, req *LoyaltyConfigRequest) (*model.Business, error)
}

type loyaltyService struct {
	businessRepo repository.BusinessRepository
}

func NewLoyaltyService(bRepo repository.BusinessRepository) LoyaltyService {
	return &loyaltyService{businessRepo: bRepo}
}

func (s *loyaltyService) GetConfig(businessID uuid.UUID) (*model.Business, error) {
	return s.businessRepo.FindByID(businessID)
}

// UpdateConfig applies a partial loyalty-settings update. Percentages
// are whole numbers 0-100; the point value must stay positive.
func (s *loyaltyService) UpdateConfig(businessID uuid.UUID, req *LoyaltyConfigRequest) (*model.Business, error) {
	fields := map[string]interface{}{}

	if req.PointValueRequirement != nil {
		if *req.PointValueRequirement <= 0 {
			return nil, apperr.Validation("point_value_requirement", "must be positive")
		}
		fields["point_value_requirement"] = *req.PointValueRequirement
	}
	for name, pct := range map[string]*int64{
		"discount_silver_percent":   req.DiscountSilverPercent,
		"discount_gold_percent":     req.DiscountGoldPercent,
		"discount_platinum_percent": req.DiscountPlatinumPercent,
	} {
		if pct == nil {
			continue
		}
		if *pct < 0 || *pct > 100 {
			return nil, apperr.Validation(name, "must be between 0 and 100")
		}
		fields[name] = *pct
	}
	if req.IsAutoTierEnabled != nil {
		fields["is_auto_tier_enabled"] = *req.IsAutoTierEnabled
	}
	for name, threshold := range map[string]*int64{
		"tier_silver_threshold":   req.TierSilverThreshold,
		"tier_gold_threshold":     req.TierGoldThreshold,
		"tier_platinum_threshold": req.TierPlatinumThreshold,
	} {
		if threshold == nil {
			continue
		}
		if *threshold < 0 {
			return nil, apperr.Validation(name, "must not be negative")
		}
		fields[name] = *threshold
	}

	if len(fields) > 0 {
		if err := s.businessRepo.UpdateLoyalty(businessID, fields); err != nil {
			return nil, err
		}
	}
	return s.businessRepo.FindByID(businessID)
}
