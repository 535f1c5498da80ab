package services

import (
	"math"

	"github.com/wellnestlab/wellnest/internal/models"
)

const (
	RegularityRegular   = "Regular"
	RegularityNormal    = "Normal"
	RegularityIrregular = "Irregular"
)

// CycleStatistics aggregates a user's full cycle history. Averages are 0
// when no qualifying entries exist; callers substitute the 28/5 defaults.
type CycleStatistics struct {
	AverageCycleLength  float64 `json:"average_cycle_length"`
	AveragePeriodLength float64 `json:"average_period_length"`
	TotalCycles         int     `json:"total_cycles"`
	KnownCycleLengths   int     `json:"known_cycle_lengths"`
	Regularity          string  `json:"regularity"`
}

func BuildCycleStatistics(entries []models.CycleEntry) CycleStatistics {
	cycleLengths := make([]int, 0, len(entries))
	periodLengths := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.CycleLength != nil && *entry.CycleLength > 0 {
			cycleLengths = append(cycleLengths, *entry.CycleLength)
		}
		if entry.PeriodLength != nil && *entry.PeriodLength > 0 {
			periodLengths = append(periodLengths, *entry.PeriodLength)
		}
	}

	return CycleStatistics{
		AverageCycleLength:  averageInts(cycleLengths),
		AveragePeriodLength: averageInts(periodLengths),
		TotalCycles:         len(entries),
		KnownCycleLengths:   len(cycleLengths),
		Regularity:          classifyRegularity(cycleLengths),
	}
}

// WithDefaults substitutes the 28-day cycle and 5-day period defaults for
// undefined averages. User-facing payloads go through this; internal
// consumers read the raw zeroes to tell "no data" apart from real values.
func (stats CycleStatistics) WithDefaults() CycleStatistics {
	if stats.AverageCycleLength <= 0 {
		stats.AverageCycleLength = models.DefaultCycleLength
	}
	if stats.AveragePeriodLength <= 0 {
		stats.AveragePeriodLength = models.DefaultPeriodLength
	}
	return stats
}

// classifyRegularity buckets cycle-length variability by population standard
// deviation. The breakpoints are fixed product heuristics, not calibrated
// statistics.
func classifyRegularity(cycleLengths []int) string {
	if len(cycleLengths) < 2 {
		return RegularityNormal
	}
	stddev := populationStdDev(cycleLengths)
	switch {
	case stddev < 3:
		return RegularityRegular
	case stddev < 7:
		return RegularityNormal
	default:
		return RegularityIrregular
	}
}

func populationStdDev(values []int) float64 {
	mean := averageInts(values)
	var sumSquares float64
	for _, value := range values {
		diff := float64(value) - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func roundedOrDefault(average float64, fallback int) int {
	if average > 0 {
		return int(average + 0.5)
	}
	return fallback
}
