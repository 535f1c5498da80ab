package models

import "time"

// PredictionConfidence is a fixed placeholder, not a derived interval.
const PredictionConfidence = 0.98

// CyclePrediction holds the current projection for a user. The newest row
// per user is authoritative; recomputes overwrite it in place.
type CyclePrediction struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	NextPeriodDate     time.Time `gorm:"type:date;not null" json:"next_period_date"`
	OvulationDate      time.Time `gorm:"type:date;not null" json:"ovulation_date"`
	FertileWindowStart time.Time `gorm:"type:date;not null" json:"fertile_window_start"`
	FertileWindowEnd   time.Time `gorm:"type:date;not null" json:"fertile_window_end"`
	ConfidenceScore    float64   `gorm:"not null" json:"confidence_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
