package models

import (
	"time"
)

// Badge identifies a milestone achievement
type Badge string

const (
	BadgeGreenStarter   Badge = "green_starter"
	BadgeEcoWarrior     Badge = "eco_warrior"
	BadgeZeroCarbonHero Badge = "zero_carbon_hero"
)

// AchievementRecord represents a badge a user has unlocked. Records are
// created once per (user, badge) pair and never deleted.
type AchievementRecord struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	Badge      Badge     `db:"badge"`
	UnlockedAt time.Time `db:"unlocked_at"`
}

// BadgeThreshold pairs a badge with the lifetime token total required to
// unlock it. Thresholds are evaluated in ascending order and never
// re-evaluated downward.
type BadgeThreshold struct {
	Badge     Badge
	Threshold float64
}
