package models

import "time"

const (
	WeekdayStatusPending = "pending"
	WeekdayStatusDone    = "done"
)

// WeekdayKeys lists the weekly-status map keys, Monday first.
var WeekdayKeys = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// StreakRecord is the single per-user sign-in streak row. WeeklyStatus
// covers the current ISO week only and always carries all seven keys.
type StreakRecord struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	UserID        uint              `gorm:"not null;uniqueIndex" json:"user_id"`
	CurrentStreak int               `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int               `gorm:"not null;default:0" json:"longest_streak"`
	LastLoginDate *time.Time        `gorm:"type:date" json:"last_login_date,omitempty"`
	WeeklyStatus  map[string]string `gorm:"serializer:json" json:"weekly_status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func DefaultWeeklyStatus() map[string]string {
	status := make(map[string]string, len(WeekdayKeys))
	for _, key := range WeekdayKeys {
		status[key] = WeekdayStatusPending
	}
	return status
}

// EnsureWeeklyStatus repairs rows loaded with missing weekday keys.
func (record *StreakRecord) EnsureWeeklyStatus() {
	if record.WeeklyStatus == nil {
		record.WeeklyStatus = DefaultWeeklyStatus()
		return
	}
	for _, key := range WeekdayKeys {
		if _, ok := record.WeeklyStatus[key]; !ok {
			record.WeeklyStatus[key] = WeekdayStatusPending
		}
	}
}

// ResetWeeklyStatus returns every weekday key to pending.
func (record *StreakRecord) ResetWeeklyStatus() {
	record.WeeklyStatus = DefaultWeeklyStatus()
}
