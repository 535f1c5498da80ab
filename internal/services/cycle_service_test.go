package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

// stubCycleRepo mirrors the sqlite repository in memory, including the
// transactional backfill performed by CreateWithBackfill.
type stubCycleRepo struct {
	entries   []models.CycleEntry
	nextID    uint
	createErr error
	saveErr   error
}

func (stub *stubCycleRepo) sortedDesc(userID uint) []models.CycleEntry {
	filtered := make([]models.CycleEntry, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			filtered = append(filtered, entry)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].PeriodStartDate.Equal(filtered[j].PeriodStartDate) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].PeriodStartDate.After(filtered[j].PeriodStartDate)
	})
	return filtered
}

func (stub *stubCycleRepo) ListByUser(userID uint) ([]models.CycleEntry, error) {
	return stub.sortedDesc(userID), nil
}

func (stub *stubCycleRepo) FindLatestByUser(userID uint) (models.CycleEntry, bool, error) {
	sorted := stub.sortedDesc(userID)
	if len(sorted) == 0 {
		return models.CycleEntry{}, false, nil
	}
	return sorted[0], true, nil
}

func (stub *stubCycleRepo) FindByIDForUser(userID uint, cycleID uint) (models.CycleEntry, bool, error) {
	for _, entry := range stub.entries {
		if entry.UserID == userID && entry.ID == cycleID {
			return entry, true, nil
		}
	}
	return models.CycleEntry{}, false, nil
}

func (stub *stubCycleRepo) CreateWithBackfill(entry *models.CycleEntry, gapFromPrior func(prior models.CycleEntry) int) error {
	if stub.createErr != nil {
		return stub.createErr
	}

	prior, priorFound, _ := stub.FindLatestByUser(entry.UserID)

	stub.nextID++
	entry.ID = stub.nextID
	stub.entries = append(stub.entries, *entry)

	if !priorFound || prior.CycleLength != nil {
		return nil
	}
	gap := gapFromPrior(prior)
	if gap <= 0 {
		return nil
	}
	for index := range stub.entries {
		if stub.entries[index].ID == prior.ID {
			stub.entries[index].CycleLength = &gap
		}
	}
	return nil
}

func (stub *stubCycleRepo) Save(entry *models.CycleEntry) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for index := range stub.entries {
		if stub.entries[index].ID == entry.ID {
			stub.entries[index] = *entry
			return nil
		}
	}
	return errors.New("entry not found")
}

func (stub *stubCycleRepo) DeleteByIDForUser(userID uint, cycleID uint) (bool, error) {
	for index := range stub.entries {
		if stub.entries[index].UserID == userID && stub.entries[index].ID == cycleID {
			stub.entries = append(stub.entries[:index], stub.entries[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubCycleRepo) byID(t *testing.T, cycleID uint) models.CycleEntry {
	t.Helper()

	for _, entry := range stub.entries {
		if entry.ID == cycleID {
			return entry
		}
	}
	t.Fatalf("entry %d not found", cycleID)
	return models.CycleEntry{}
}

func logEntry(t *testing.T, service *CycleService, start string, end string) models.CycleEntry {
	t.Helper()

	input := CycleEntryInput{PeriodStartDate: mustParseDay(t, start)}
	if end != "" {
		endDate := mustParseDay(t, end)
		input.PeriodEndDate = &endDate
	}
	entry, err := service.LogCycle(1, input, time.UTC)
	if err != nil {
		t.Fatalf("log cycle %s failed: %v", start, err)
	}
	return entry
}

func TestLogCycleComputesInclusivePeriodLength(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	entry := logEntry(t, service, "2025-01-01", "2025-01-04")
	if entry.PeriodLength == nil || *entry.PeriodLength != 4 {
		t.Fatalf("expected inclusive period length 4, got %v", entry.PeriodLength)
	}
}

func TestLogCycleBackfillsPriorCycleLength(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	first := logEntry(t, service, "2025-01-01", "")
	second := logEntry(t, service, "2025-01-29", "")

	backfilled := repo.byID(t, first.ID)
	if backfilled.CycleLength == nil || *backfilled.CycleLength != 28 {
		t.Fatalf("expected first entry cycle length 28, got %v", backfilled.CycleLength)
	}
	if repo.byID(t, second.ID).CycleLength != nil {
		t.Fatal("expected the newest entry's cycle length to stay unset")
	}
}

func TestLogCycleIgnoresOutOfOrderDates(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	first := logEntry(t, service, "2025-01-01", "")
	second := logEntry(t, service, "2025-01-29", "")
	third := logEntry(t, service, "2024-12-20", "")

	if got := repo.byID(t, first.ID).CycleLength; got == nil || *got != 28 {
		t.Fatalf("expected first entry to keep cycle length 28, got %v", got)
	}
	if repo.byID(t, second.ID).CycleLength != nil {
		t.Fatal("expected no cycle length written onto the latest entry")
	}
	if repo.byID(t, third.ID).CycleLength != nil {
		t.Fatal("expected no cycle length on the out-of-order entry")
	}
}

func TestLogCycleValidation(t *testing.T) {
	t.Parallel()

	service := NewCycleService(&stubCycleRepo{})

	if _, err := service.LogCycle(1, CycleEntryInput{}, time.UTC); !errors.Is(err, ErrCycleStartDateRequired) {
		t.Fatalf("expected ErrCycleStartDateRequired, got %v", err)
	}

	end := mustParseDay(t, "2024-12-30")
	input := CycleEntryInput{
		PeriodStartDate: mustParseDay(t, "2025-01-01"),
		PeriodEndDate:   &end,
	}
	if _, err := service.LogCycle(1, input, time.UTC); !errors.Is(err, ErrCycleEndBeforeStart) {
		t.Fatalf("expected ErrCycleEndBeforeStart, got %v", err)
	}
}

func TestUpdateCycleRecomputesPeriodLength(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	entry := logEntry(t, service, "2025-01-01", "")

	end := "2025-01-06"
	patch := CycleEntryPatch{PeriodEndDateSet: true}
	endDate := mustParseDay(t, end)
	patch.PeriodEndDate = &endDate

	updated, err := service.UpdateCycle(1, entry.ID, patch, time.UTC)
	if err != nil {
		t.Fatalf("update cycle failed: %v", err)
	}
	if updated.PeriodLength == nil || *updated.PeriodLength != 6 {
		t.Fatalf("expected recomputed period length 6, got %v", updated.PeriodLength)
	}
}

func TestUpdateCycleDoesNotTouchCycleLength(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	first := logEntry(t, service, "2025-01-01", "")
	logEntry(t, service, "2025-01-29", "")

	notes := "heavier than usual"
	if _, err := service.UpdateCycle(1, first.ID, CycleEntryPatch{Notes: &notes}, time.UTC); err != nil {
		t.Fatalf("update cycle failed: %v", err)
	}

	if got := repo.byID(t, first.ID).CycleLength; got == nil || *got != 28 {
		t.Fatalf("expected backfilled cycle length 28 to survive the edit, got %v", got)
	}
}

func TestUpdateCycleNotFound(t *testing.T) {
	t.Parallel()

	service := NewCycleService(&stubCycleRepo{})
	if _, err := service.UpdateCycle(1, 99, CycleEntryPatch{}, time.UTC); !errors.Is(err, ErrCycleEntryNotFound) {
		t.Fatalf("expected ErrCycleEntryNotFound, got %v", err)
	}
}

func TestDeleteCycleLeavesNeighboursUntouched(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	first := logEntry(t, service, "2025-01-01", "")
	second := logEntry(t, service, "2025-01-29", "")

	if err := service.DeleteCycle(1, second.ID); err != nil {
		t.Fatalf("delete cycle failed: %v", err)
	}
	if got := repo.byID(t, first.ID).CycleLength; got == nil || *got != 28 {
		t.Fatalf("expected the stored cycle length to survive the delete, got %v", got)
	}

	if err := service.DeleteCycle(1, 99); !errors.Is(err, ErrCycleEntryNotFound) {
		t.Fatalf("expected ErrCycleEntryNotFound, got %v", err)
	}
}
