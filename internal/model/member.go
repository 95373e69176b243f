package model

import "github.com/google/uuid"

// MemberLevel is the loyalty tier of a member. "baru" (new) carries
// no discount.
type MemberLevel string

const (
	LevelBaru     MemberLevel = "baru"
	LevelSilver   MemberLevel = "silver"
	LevelGold     MemberLevel = "gold"
	LevelPlatinum MemberLevel = "platinum"
)

type Member struct {
	BaseModel
	BusinessID uuid.UUID   `gorm:"type:uuid;not null;index" json:"business_id"`
	Name       string      `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone      string      `gorm:"type:varchar(20)" json:"phone"`
	Level      MemberLevel `gorm:"type:varchar(10);default:'baru';column:member_level" json:"member_level"`

	TotalPoints       int64 `gorm:"default:0" json:"total_points"`
	TotalTransactions int64 `gorm:"default:0" json:"total_transactions"`
	TotalSpent        int64 `gorm:"default:0" json:"total_spent"`
	IsActive          bool  `gorm:"default:true" json:"is_active"`
}

func (Member) TableName() string {
	return "members"
}

// TierForPoints returns the level a member with the given point total
// qualifies for under the business's auto-tier thresholds. Highest
// matching tier wins.
func TierForPoints(points int64, b *Business) MemberLevel {
	switch {
	case points >= b.TierPlatinumThreshold:
		return LevelPlatinum
	case points >= b.TierGoldThreshold:
		return LevelGold
	case points >= b.TierSilverThreshold:
		return LevelSilver
	default:
		return LevelBaru
	}
}

// tierRank orders levels so promotions never downgrade a member.
func tierRank(l MemberLevel) int {
	switch l {
	case LevelSilver:
		return 1
	case LevelGold:
		return 2
	case LevelPlatinum:
		return 3
	default:
		return 0
	}
}

// HigherTier reports whether a is a strictly higher tier than b.
func HigherTier(a, b MemberLevel) bool {
	return tierRank(a) > tierRank(b)
}
