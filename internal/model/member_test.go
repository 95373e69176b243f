package model

import "testing"

func testBusiness() *Business {
	return &Business{
		TierSilverThreshold:   50,
		TierGoldThreshold:     200,
		TierPlatinumThreshold: 500,
	}
}

func TestTierForPoints(t *testing.T) {
	tests := []struct {
		points int64
		want   MemberLevel
	}{
		{0, LevelBaru},
		{49, LevelBaru},
		{50, LevelSilver},
		{199, LevelSilver},
		{200, LevelGold},
		{499, LevelGold},
		{500, LevelPlatinum},
		{10000, LevelPlatinum},
	}

	b := testBusiness()
	for _, tt := range tests {
		if got := TierForPoints(tt.points, b); got != tt.want {
			t.Errorf("TierForPoints(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestHigherTier(t *testing.T) {
	tests := []struct {
		a, b MemberLevel
		want bool
	}{
		{LevelSilver, LevelBaru, true},
		{LevelPlatinum, LevelGold, true},
		{LevelGold, LevelGold, false},
		{LevelBaru, LevelSilver, false},
		// Unknown levels rank lowest, so a promotion never applies.
		{"vip", LevelSilver, false},
		{LevelSilver, "vip", true},
	}

	for _, tt := range tests {
		if got := HigherTier(tt.a, tt.b); got != tt.want {
			t.Errorf("HigherTier(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
