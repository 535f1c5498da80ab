package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// LutealPhaseDays is the fixed gap between ovulation and the next
	// period start used for all predictions.
	LutealPhaseDays = 14

	// FertileWindowSpread is the number of days on each side of the
	// ovulation date included in the fertile window.
	FertileWindowSpread = 2
)

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// CycleEntry is one logged menstrual period. CycleLength is the day count
// from this entry's start to the next entry's start; it is written onto the
// earlier entry when a later one is logged and stays null until then.
type CycleEntry struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index:idx_cycle_entries_user_start" json:"user_id"`
	PeriodStartDate time.Time  `gorm:"type:date;not null;index:idx_cycle_entries_user_start" json:"period_start_date"`
	PeriodEndDate   *time.Time `gorm:"type:date" json:"period_end_date,omitempty"`
	PeriodLength    *int       `json:"period_length,omitempty"`
	CycleLength     *int       `json:"cycle_length,omitempty"`
	FlowIntensity   string     `json:"flow_intensity,omitempty"`
	FluidType       string     `json:"fluid_type,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Symptoms        []string   `gorm:"serializer:json" json:"symptoms"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
