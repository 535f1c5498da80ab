package services

import (
	"testing"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

type stubStreakRepo struct {
	record  *models.StreakRecord
	creates int
	saves   int
}

func (stub *stubStreakRepo) FindByUser(uint) (models.StreakRecord, bool, error) {
	if stub.record == nil {
		return models.StreakRecord{}, false, nil
	}
	return *stub.record, true, nil
}

func (stub *stubStreakRepo) Create(record *models.StreakRecord) error {
	stub.creates++
	record.ID = 1
	copied := *record
	stub.record = &copied
	return nil
}

func (stub *stubStreakRepo) Save(record *models.StreakRecord) error {
	stub.saves++
	copied := *record
	stub.record = &copied
	return nil
}

func storedStreak(current int, longest int, lastLogin time.Time, weekly map[string]string) *models.StreakRecord {
	record := models.StreakRecord{
		ID:            1,
		UserID:        1,
		CurrentStreak: current,
		LongestStreak: longest,
		LastLoginDate: &lastLogin,
		WeeklyStatus:  weekly,
	}
	record.EnsureWeeklyStatus()
	return &record
}

func TestFirstSignInStartsStreak(t *testing.T) {
	t.Parallel()

	repo := &stubStreakRepo{}
	service := NewStreakService(repo)

	// 2024-01-10 is a Wednesday.
	record, err := service.RecordSignIn(1, mustParseDay(t, "2024-01-10"), time.UTC)
	if err != nil {
		t.Fatalf("record sign-in failed: %v", err)
	}

	if record.CurrentStreak != 1 || record.LongestStreak != 1 {
		t.Fatalf("expected streak 1/1, got %d/%d", record.CurrentStreak, record.LongestStreak)
	}
	if record.LastLoginDate == nil || record.LastLoginDate.Format("2006-01-02") != "2024-01-10" {
		t.Fatalf("expected last login 2024-01-10, got %v", record.LastLoginDate)
	}
	if record.WeeklyStatus["wed"] != models.WeekdayStatusDone {
		t.Fatalf("expected wednesday done, got %s", record.WeeklyStatus["wed"])
	}
	if repo.creates != 1 {
		t.Fatalf("expected the row to be created once, got %d creates", repo.creates)
	}
}

func TestSameDaySignInIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := &stubStreakRepo{}
	service := NewStreakService(repo)
	now := mustParseDay(t, "2024-01-10")

	if _, err := service.RecordSignIn(1, now, time.UTC); err != nil {
		t.Fatalf("first sign-in failed: %v", err)
	}
	record, err := service.RecordSignIn(1, now.Add(6*time.Hour), time.UTC)
	if err != nil {
		t.Fatalf("repeat sign-in failed: %v", err)
	}

	if record.CurrentStreak != 1 {
		t.Fatalf("expected streak to stay at 1, got %d", record.CurrentStreak)
	}
	if record.WeeklyStatus["wed"] != models.WeekdayStatusDone {
		t.Fatalf("expected wednesday to stay done, got %s", record.WeeklyStatus["wed"])
	}
}

func TestNextDaySignInContinuesStreak(t *testing.T) {
	t.Parallel()

	repo := &stubStreakRepo{record: storedStreak(3, 5, mustParseDay(t, "2024-01-09"), nil)}
	service := NewStreakService(repo)

	record, err := service.RecordSignIn(1, mustParseDay(t, "2024-01-10"), time.UTC)
	if err != nil {
		t.Fatalf("record sign-in failed: %v", err)
	}
	if record.CurrentStreak != 4 {
		t.Fatalf("expected streak 4, got %d", record.CurrentStreak)
	}
	if record.LongestStreak != 5 {
		t.Fatalf("expected longest streak to stay 5, got %d", record.LongestStreak)
	}
}

func TestGapResetsStreak(t *testing.T) {
	t.Parallel()

	repo := &stubStreakRepo{record: storedStreak(6, 6, mustParseDay(t, "2024-01-08"), nil)}
	service := NewStreakService(repo)

	record, err := service.RecordSignIn(1, mustParseDay(t, "2024-01-10"), time.UTC)
	if err != nil {
		t.Fatalf("record sign-in failed: %v", err)
	}
	if record.CurrentStreak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", record.CurrentStreak)
	}
	if record.LongestStreak != 6 {
		t.Fatalf("expected longest streak preserved at 6, got %d", record.LongestStreak)
	}
}

func TestLongestStreakTracksRunningMaximum(t *testing.T) {
	t.Parallel()

	repo := &stubStreakRepo{record: storedStreak(6, 6, mustParseDay(t, "2024-01-09"), nil)}
	service := NewStreakService(repo)

	record, err := service.RecordSignIn(1, mustParseDay(t, "2024-01-10"), time.UTC)
	if err != nil {
		t.Fatalf("record sign-in failed: %v", err)
	}
	if record.CurrentStreak != 7 || record.LongestStreak != 7 {
		t.Fatalf("expected streak 7/7, got %d/%d", record.CurrentStreak, record.LongestStreak)
	}
}

func TestWeekChangeResetsWeeklyMap(t *testing.T) {
	t.Parallel()

	// Previous sign-in on Sunday 2024-01-14; next on Monday 2024-01-15 —
	// continued streak, fresh ISO week.
	weekly := models.DefaultWeeklyStatus()
	for _, key := range models.WeekdayKeys {
		weekly[key] = models.WeekdayStatusDone
	}
	repo := &stubStreakRepo{record: storedStreak(7, 7, mustParseDay(t, "2024-01-14"), weekly)}
	service := NewStreakService(repo)

	record, err := service.RecordSignIn(1, mustParseDay(t, "2024-01-15"), time.UTC)
	if err != nil {
		t.Fatalf("record sign-in failed: %v", err)
	}

	if record.CurrentStreak != 8 {
		t.Fatalf("expected streak 8, got %d", record.CurrentStreak)
	}
	if record.WeeklyStatus["mon"] != models.WeekdayStatusDone {
		t.Fatalf("expected monday done, got %s", record.WeeklyStatus["mon"])
	}
	for _, key := range []string{"tue", "wed", "thu", "fri", "sat", "sun"} {
		if record.WeeklyStatus[key] != models.WeekdayStatusPending {
			t.Fatalf("expected %s reset to pending, got %s", key, record.WeeklyStatus[key])
		}
	}
}

func TestSameWeekSignInKeepsEarlierDays(t *testing.T) {
	t.Parallel()

	weekly := models.DefaultWeeklyStatus()
	weekly["mon"] = models.WeekdayStatusDone
	repo := &stubStreakRepo{record: storedStreak(1, 1, mustParseDay(t, "2024-01-15"), weekly)}
	service := NewStreakService(repo)

	record, err := service.RecordSignIn(1, mustParseDay(t, "2024-01-16"), time.UTC)
	if err != nil {
		t.Fatalf("record sign-in failed: %v", err)
	}
	if record.WeeklyStatus["mon"] != models.WeekdayStatusDone {
		t.Fatalf("expected monday to stay done, got %s", record.WeeklyStatus["mon"])
	}
	if record.WeeklyStatus["tue"] != models.WeekdayStatusDone {
		t.Fatalf("expected tuesday done, got %s", record.WeeklyStatus["tue"])
	}
}

func TestGetStreakDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	service := NewStreakService(&stubStreakRepo{})
	record, err := service.GetStreak(1)
	if err != nil {
		t.Fatalf("get streak failed: %v", err)
	}
	if record.CurrentStreak != 0 || record.LastLoginDate != nil {
		t.Fatalf("expected an untouched default record, got streak %d", record.CurrentStreak)
	}
	if len(record.WeeklyStatus) != 7 {
		t.Fatalf("expected 7 weekday keys, got %d", len(record.WeeklyStatus))
	}
	for _, key := range models.WeekdayKeys {
		if record.WeeklyStatus[key] != models.WeekdayStatusPending {
			t.Fatalf("expected %s pending, got %s", key, record.WeeklyStatus[key])
		}
	}
}
