package model

import "github.com/google/uuid"

// Business is the tenant entity that scopes all catalog, member,
// and transaction data. Loyalty configuration lives on the business
// row itself (one config per business).
type Business struct {
	BaseModel
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	BusinessName string    `gorm:"type:varchar(255);not null" json:"business_name" validate:"required"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	LogoURL      string    `gorm:"type:text" json:"logo_url"`

	// Loyalty settings. PointValueRequirement is the amount of revenue
	// needed to earn one point. Discount percents are whole numbers 0-100.
	PointValueRequirement   int64 `gorm:"default:10000" json:"point_value_requirement"`
	DiscountSilverPercent   int64 `gorm:"default:0" json:"discount_silver_percent" validate:"gte=0,lte=100"`
	DiscountGoldPercent     int64 `gorm:"default:0" json:"discount_gold_percent" validate:"gte=0,lte=100"`
	DiscountPlatinumPercent int64 `gorm:"default:0" json:"discount_platinum_percent" validate:"gte=0,lte=100"`

	// Auto-tier promotion thresholds (total points at which a member
	// is promoted). Only applied when IsAutoTierEnabled is true.
	IsAutoTierEnabled     bool  `gorm:"default:false" json:"is_auto_tier_enabled"`
	TierSilverThreshold   int64 `gorm:"default:50" json:"tier_silver_threshold"`
	TierGoldThreshold     int64 `gorm:"default:200" json:"tier_gold_threshold"`
	TierPlatinumThreshold int64 `gorm:"default:500" json:"tier_platinum_threshold"`
}

func (Business) TableName() string {
	return "businesses"
}

// LoyaltyConfig is the slice of business settings the pricing engine
// consumes. Kept as a value type so the engine never touches the row.
type LoyaltyConfig struct {
	PointValue      int64 `json:"point_value"`
	SilverPercent   int64 `json:"silver_percent"`
	GoldPercent     int64 `json:"gold_percent"`
	PlatinumPercent int64 `json:"platinum_percent"`
}

// LoyaltyConfig extracts the pricing-relevant settings.
func (b *Business) Loyalty() LoyaltyConfig {
	return LoyaltyConfig{
		PointValue:      b.PointValueRequirement,
		SilverPercent:   b.DiscountSilverPercent,
		GoldPercent:     b.DiscountGoldPercent,
		PlatinumPercent: b.DiscountPlatinumPercent,
	}
}
