package services

import (
	"sort"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

// Dashboard is a read-only projection. The next period date is derived
// inline from the latest entry on every view rather than read back from the
// persisted prediction row.
type Dashboard struct {
	HasHistory          bool              `json:"has_history"`
	CurrentCycleDay     int               `json:"current_cycle_day"`
	NextPeriodDate      *time.Time        `json:"next_period_date,omitempty"`
	NextPeriodInDays    int               `json:"next_period_in_days"`
	AverageCycleLength  int               `json:"average_cycle_length"`
	AveragePeriodLength int               `json:"average_period_length"`
	TotalCycles         int               `json:"total_cycles"`
	Regularity          string            `json:"regularity"`
	Insights            DashboardInsights `json:"insights"`
}

// DashboardInsights reports only cycles with a known, positive length, so
// the in-progress cycle never leaks into "previous cycle" figures.
type DashboardInsights struct {
	CompletedCycles     int `json:"completed_cycles"`
	PreviousCycleLength int `json:"previous_cycle_length,omitempty"`
	ShortestCycleLength int `json:"shortest_cycle_length,omitempty"`
	LongestCycleLength  int `json:"longest_cycle_length,omitempty"`
}

func BuildDashboard(entries []models.CycleEntry, now time.Time, location *time.Location) Dashboard {
	stats := BuildCycleStatistics(entries)
	dashboard := Dashboard{
		AverageCycleLength:  roundedOrDefault(stats.AverageCycleLength, models.DefaultCycleLength),
		AveragePeriodLength: roundedOrDefault(stats.AveragePeriodLength, models.DefaultPeriodLength),
		TotalCycles:         stats.TotalCycles,
		Regularity:          stats.Regularity,
	}
	if len(entries) == 0 {
		return dashboard
	}

	sorted := make([]models.CycleEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PeriodStartDate.After(sorted[j].PeriodStartDate)
	})
	latest := sorted[0]
	today := DateAtLocation(now, location)

	dashboard.HasHistory = true
	cycleDay := DaysBetween(latest.PeriodStartDate, today, location) + 1
	if cycleDay < 1 {
		cycleDay = 1
	}
	dashboard.CurrentCycleDay = cycleDay

	prediction := BuildCyclePrediction(latest.PeriodStartDate, PredictionCycleLength(latest, stats), location)
	nextPeriod := prediction.NextPeriodDate
	dashboard.NextPeriodDate = &nextPeriod
	daysLeft := DaysBetween(today, nextPeriod, location)
	if daysLeft < 0 {
		daysLeft = 0
	}
	dashboard.NextPeriodInDays = daysLeft

	for _, entry := range sorted {
		if entry.CycleLength == nil || *entry.CycleLength <= 0 {
			continue
		}
		length := *entry.CycleLength
		dashboard.Insights.CompletedCycles++
		if dashboard.Insights.PreviousCycleLength == 0 {
			dashboard.Insights.PreviousCycleLength = length
		}
		if dashboard.Insights.ShortestCycleLength == 0 || length < dashboard.Insights.ShortestCycleLength {
			dashboard.Insights.ShortestCycleLength = length
		}
		if length > dashboard.Insights.LongestCycleLength {
			dashboard.Insights.LongestCycleLength = length
		}
	}

	return dashboard
}
