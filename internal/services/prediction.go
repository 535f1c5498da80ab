package services

import (
	"errors"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

var (
	ErrNoCycleHistory       = errors.New("no cycle history")
	ErrPredictionLoadFailed = errors.New("load prediction failed")
	ErrPredictionSaveFailed = errors.New("save prediction failed")
)

type CyclePredictionResult struct {
	NextPeriodDate     time.Time
	OvulationDate      time.Time
	FertileWindowStart time.Time
	FertileWindowEnd   time.Time
	ConfidenceScore    float64
}

// BuildCyclePrediction projects the next period start, ovulation date, and
// fertile window from a period start and a cycle length. Ovulation sits a
// fixed luteal phase before the next period; the fertile window spans two
// days on each side of it.
func BuildCyclePrediction(lastPeriodStart time.Time, cycleLength float64, location *time.Location) CyclePredictionResult {
	length := int(cycleLength + 0.5)
	if length <= 0 {
		length = models.DefaultCycleLength
	}

	start := DateAtLocation(lastPeriodStart, location)
	nextPeriod := start.AddDate(0, 0, length)
	ovulation := nextPeriod.AddDate(0, 0, -models.LutealPhaseDays)

	return CyclePredictionResult{
		NextPeriodDate:     nextPeriod,
		OvulationDate:      ovulation,
		FertileWindowStart: ovulation.AddDate(0, 0, -models.FertileWindowSpread),
		FertileWindowEnd:   ovulation.AddDate(0, 0, models.FertileWindowSpread),
		ConfidenceScore:    models.PredictionConfidence,
	}
}

// PredictionCycleLength picks the cycle length to project with: the latest
// entry's own length when known, else the historical average, else the
// 28-day default.
func PredictionCycleLength(latest models.CycleEntry, stats CycleStatistics) float64 {
	if latest.CycleLength != nil && *latest.CycleLength > 0 {
		return float64(*latest.CycleLength)
	}
	if stats.AverageCycleLength > 0 {
		return stats.AverageCycleLength
	}
	return float64(models.DefaultCycleLength)
}

type PredictionEntryReader interface {
	ListByUser(userID uint) ([]models.CycleEntry, error)
}

type PredictionStore interface {
	FindLatestByUser(userID uint) (models.CyclePrediction, bool, error)
	Create(prediction *models.CyclePrediction) error
	Save(prediction *models.CyclePrediction) error
}

type PredictionService struct {
	entries     PredictionEntryReader
	predictions PredictionStore
}

func NewPredictionService(entries PredictionEntryReader, predictions PredictionStore) *PredictionService {
	return &PredictionService{
		entries:     entries,
		predictions: predictions,
	}
}

// RefreshForUser recomputes the current prediction from the latest logged
// entry and persists it. Callers triggering this after a cycle log treat a
// failure here as non-fatal.
func (service *PredictionService) RefreshForUser(userID uint, location *time.Location) (models.CyclePrediction, error) {
	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return models.CyclePrediction{}, ErrPredictionLoadFailed
	}
	if len(entries) == 0 {
		return models.CyclePrediction{}, ErrNoCycleHistory
	}

	latest := entries[0]
	stats := BuildCycleStatistics(entries)
	result := BuildCyclePrediction(latest.PeriodStartDate, PredictionCycleLength(latest, stats), location)
	return service.upsert(userID, result)
}

// PredictFromDate serves the explicit "predict next period" request: the
// supplied date has no backing entry, so only the historical average (or
// the default) drives the projection.
func (service *PredictionService) PredictFromDate(userID uint, lastPeriodDate time.Time, location *time.Location) (models.CyclePrediction, error) {
	if lastPeriodDate.IsZero() {
		return models.CyclePrediction{}, ErrCycleStartDateRequired
	}

	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return models.CyclePrediction{}, ErrPredictionLoadFailed
	}

	stats := BuildCycleStatistics(entries)
	cycleLength := stats.AverageCycleLength
	if cycleLength <= 0 {
		cycleLength = float64(models.DefaultCycleLength)
	}

	result := BuildCyclePrediction(lastPeriodDate, cycleLength, location)
	return service.upsert(userID, result)
}

// upsert keeps at most one live prediction per user: the newest row is
// overwritten in place when present, inserted otherwise.
func (service *PredictionService) upsert(userID uint, result CyclePredictionResult) (models.CyclePrediction, error) {
	prediction, found, err := service.predictions.FindLatestByUser(userID)
	if err != nil {
		return models.CyclePrediction{}, ErrPredictionLoadFailed
	}

	if !found {
		prediction = models.CyclePrediction{UserID: userID}
	}
	prediction.NextPeriodDate = result.NextPeriodDate
	prediction.OvulationDate = result.OvulationDate
	prediction.FertileWindowStart = result.FertileWindowStart
	prediction.FertileWindowEnd = result.FertileWindowEnd
	prediction.ConfidenceScore = result.ConfidenceScore

	if found {
		err = service.predictions.Save(&prediction)
	} else {
		err = service.predictions.Create(&prediction)
	}
	if err != nil {
		return models.CyclePrediction{}, ErrPredictionSaveFailed
	}
	return prediction, nil
}
