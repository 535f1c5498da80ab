package services

import (
	"errors"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

var (
	ErrCycleStartDateRequired = errors.New("period start date required")
	ErrCycleEndBeforeStart    = errors.New("period end date before start date")
	ErrCycleEntryNotFound     = errors.New("cycle entry not found")
	ErrCycleEntryLoadFailed   = errors.New("load cycle entry failed")
	ErrCycleEntryCreateFailed = errors.New("create cycle entry failed")
	ErrCycleEntryUpdateFailed = errors.New("update cycle entry failed")
	ErrCycleEntryDeleteFailed = errors.New("delete cycle entry failed")
)

type CycleEntryInput struct {
	PeriodStartDate time.Time
	PeriodEndDate   *time.Time
	FlowIntensity   string
	FluidType       string
	Notes           string
	Symptoms        []string
}

// CycleEntryPatch carries partial updates. End-date changes recompute the
// period length; stored cycle lengths are never re-inferred on edit.
type CycleEntryPatch struct {
	PeriodEndDateSet bool
	PeriodEndDate    *time.Time
	FlowIntensity    *string
	FluidType        *string
	Notes            *string
	SymptomsSet      bool
	Symptoms         []string
}

type CycleEntryRepository interface {
	ListByUser(userID uint) ([]models.CycleEntry, error)
	FindLatestByUser(userID uint) (models.CycleEntry, bool, error)
	FindByIDForUser(userID uint, cycleID uint) (models.CycleEntry, bool, error)
	CreateWithBackfill(entry *models.CycleEntry, gapFromPrior func(prior models.CycleEntry) int) error
	Save(entry *models.CycleEntry) error
	DeleteByIDForUser(userID uint, cycleID uint) (bool, error)
}

type CycleService struct {
	entries CycleEntryRepository
}

func NewCycleService(entries CycleEntryRepository) *CycleService {
	return &CycleService{entries: entries}
}

// LogCycle creates a new entry and backfills the previous entry's cycle
// length from the gap between the two start dates. A non-positive gap
// (out-of-order logging) is ignored rather than treated as an error.
func (service *CycleService) LogCycle(userID uint, input CycleEntryInput, location *time.Location) (models.CycleEntry, error) {
	if input.PeriodStartDate.IsZero() {
		return models.CycleEntry{}, ErrCycleStartDateRequired
	}

	start := DateAtLocation(input.PeriodStartDate, location)
	entry := models.CycleEntry{
		UserID:          userID,
		PeriodStartDate: start,
		FlowIntensity:   input.FlowIntensity,
		FluidType:       input.FluidType,
		Notes:           input.Notes,
		Symptoms:        input.Symptoms,
	}
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}

	if input.PeriodEndDate != nil {
		end := DateAtLocation(*input.PeriodEndDate, location)
		if end.Before(start) {
			return models.CycleEntry{}, ErrCycleEndBeforeStart
		}
		length := DaysBetween(start, end, location) + 1
		entry.PeriodEndDate = &end
		entry.PeriodLength = &length
	}

	err := service.entries.CreateWithBackfill(&entry, func(prior models.CycleEntry) int {
		return DaysBetween(prior.PeriodStartDate, start, location)
	})
	if err != nil {
		return models.CycleEntry{}, ErrCycleEntryCreateFailed
	}
	return entry, nil
}

func (service *CycleService) UpdateCycle(userID uint, cycleID uint, patch CycleEntryPatch, location *time.Location) (models.CycleEntry, error) {
	entry, found, err := service.entries.FindByIDForUser(userID, cycleID)
	if err != nil {
		return models.CycleEntry{}, ErrCycleEntryLoadFailed
	}
	if !found {
		return models.CycleEntry{}, ErrCycleEntryNotFound
	}

	if patch.PeriodEndDateSet {
		if patch.PeriodEndDate == nil {
			entry.PeriodEndDate = nil
			entry.PeriodLength = nil
		} else {
			start := DateAtLocation(entry.PeriodStartDate, location)
			end := DateAtLocation(*patch.PeriodEndDate, location)
			if end.Before(start) {
				return models.CycleEntry{}, ErrCycleEndBeforeStart
			}
			length := DaysBetween(start, end, location) + 1
			entry.PeriodEndDate = &end
			entry.PeriodLength = &length
		}
	}
	if patch.FlowIntensity != nil {
		entry.FlowIntensity = *patch.FlowIntensity
	}
	if patch.FluidType != nil {
		entry.FluidType = *patch.FluidType
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	if patch.SymptomsSet {
		entry.Symptoms = patch.Symptoms
		if entry.Symptoms == nil {
			entry.Symptoms = []string{}
		}
	}

	if err := service.entries.Save(&entry); err != nil {
		return models.CycleEntry{}, ErrCycleEntryUpdateFailed
	}
	return entry, nil
}

// DeleteCycle removes the entry without recomputing neighbours' cycle
// lengths: history is append-only once shown to the user.
func (service *CycleService) DeleteCycle(userID uint, cycleID uint) error {
	deleted, err := service.entries.DeleteByIDForUser(userID, cycleID)
	if err != nil {
		return ErrCycleEntryDeleteFailed
	}
	if !deleted {
		return ErrCycleEntryNotFound
	}
	return nil
}

func (service *CycleService) ListCycles(userID uint) ([]models.CycleEntry, error) {
	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return nil, ErrCycleEntryLoadFailed
	}
	return entries, nil
}
