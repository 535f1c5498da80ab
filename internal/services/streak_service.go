package services

import (
	"errors"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

var (
	ErrStreakLoadFailed = errors.New("load streak record failed")
	ErrStreakSaveFailed = errors.New("save streak record failed")
)

type StreakRecordRepository interface {
	FindByUser(userID uint) (models.StreakRecord, bool, error)
	Create(record *models.StreakRecord) error
	Save(record *models.StreakRecord) error
}

type StreakService struct {
	streaks StreakRecordRepository
}

func NewStreakService(streaks StreakRecordRepository) *StreakService {
	return &StreakService{streaks: streaks}
}

// RecordSignIn advances the user's streak for a successful sign-in. The row
// is created all-default on first touch so a first-ever login goes through
// the same gap branch as a lapsed one.
func (service *StreakService) RecordSignIn(userID uint, now time.Time, location *time.Location) (models.StreakRecord, error) {
	record, found, err := service.streaks.FindByUser(userID)
	if err != nil {
		return models.StreakRecord{}, ErrStreakLoadFailed
	}
	if !found {
		record = models.StreakRecord{
			UserID:       userID,
			WeeklyStatus: models.DefaultWeeklyStatus(),
		}
		if err := service.streaks.Create(&record); err != nil {
			return models.StreakRecord{}, ErrStreakSaveFailed
		}
	}

	AdvanceStreak(&record, now, location)

	if err := service.streaks.Save(&record); err != nil {
		return models.StreakRecord{}, ErrStreakSaveFailed
	}
	return record, nil
}

// GetStreak returns the stored record, or an unsaved default when the user
// has never signed in.
func (service *StreakService) GetStreak(userID uint) (models.StreakRecord, error) {
	record, found, err := service.streaks.FindByUser(userID)
	if err != nil {
		return models.StreakRecord{}, ErrStreakLoadFailed
	}
	if !found {
		return models.StreakRecord{
			UserID:       userID,
			WeeklyStatus: models.DefaultWeeklyStatus(),
		}, nil
	}
	record.EnsureWeeklyStatus()
	return record, nil
}

// AdvanceStreak applies one sign-in transition in place: same day is
// idempotent, yesterday continues the run, anything older restarts it. The
// weekly map is cleared whenever the ISO week changed (or never existed)
// before today's key is marked done.
func AdvanceStreak(record *models.StreakRecord, now time.Time, location *time.Location) {
	record.EnsureWeeklyStatus()
	today := DateAtLocation(now, location)

	switch {
	case record.LastLoginDate != nil && DaysBetween(*record.LastLoginDate, today, location) == 0:
		// repeat sign-in, counters untouched
	case record.LastLoginDate != nil && DaysBetween(*record.LastLoginDate, today, location) == 1:
		record.CurrentStreak++
		if !SameISOWeek(*record.LastLoginDate, today, location) {
			record.ResetWeeklyStatus()
		}
	default:
		record.CurrentStreak = 1
		if record.LastLoginDate == nil || !SameISOWeek(*record.LastLoginDate, today, location) {
			record.ResetWeeklyStatus()
		}
	}

	record.WeeklyStatus[WeekdayKey(today, location)] = models.WeekdayStatusDone
	if record.CurrentStreak > record.LongestStreak {
		record.LongestStreak = record.CurrentStreak
	}
	record.LastLoginDate = &today
}
