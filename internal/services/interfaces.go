package services

import (
	"time"

	"challenge-tracker/internal/tracker"
)

// ActivitySummary holds one activity's figures for one month
type ActivitySummary struct {
	Activity       string  `json:"activity"`
	DaysInMonth    int     `json:"days_in_month"`
	ElapsedDays    int     `json:"elapsed_days"`
	LoggedDays     int     `json:"logged_days"`
	CompletedDays  int     `json:"completed_days"`
	TotalHours     float64 `json:"total_hours"`
	CompletionRate float64 `json:"completion_rate"` // CompletedDays / ElapsedDays
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
}

// MonthSummary holds the summaries of every activity for a month
type MonthSummary struct {
	Month      time.Time          `json:"month"`
	Title      string             `json:"title"`
	Activities []*ActivitySummary `json:"activities"`
}

// TotalHours sums hours across all activities
func (m *MonthSummary) TotalHours() float64 {
	var total float64
	for _, a := range m.Activities {
		total += a.TotalHours
	}
	return total
}

// CalendarService resolves the months and days commands operate on
type CalendarService interface {
	// Month navigation
	ResolveMonth(month string, offset int) (time.Time, error)
	CurrentMonth() time.Time

	// Day resolution
	ResolveDateKey(arg string) (string, error)
	Today() string
	IsToday(dateKey string) bool

	// Formatting
	FormatHours(hours float64) string
}

// SummaryService handles monthly reporting over the tracker store
type SummaryService interface {
	SummarizeMonth(store *tracker.Store, month time.Time) *MonthSummary
	SummarizeActivity(store *tracker.Store, activity string, month time.Time) (*ActivitySummary, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	CalendarService CalendarService
	SummaryService  SummaryService
}

// NewServiceContainer wires the services around a shared clock
func NewServiceContainer(now func() time.Time) *ServiceContainer {
	cal := NewCalendarService(now)
	return &ServiceContainer{
		CalendarService: cal,
		SummaryService:  NewSummaryService(cal),
	}
}
