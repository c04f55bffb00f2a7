package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// WindowKind selects the bounded time interval a budget is evaluated over.
type WindowKind string

const (
	WindowDay   WindowKind = "day"
	WindowWeek  WindowKind = "week"
	WindowMonth WindowKind = "month"
)

// label returns the adjective used in alert copy for this window.
func (k WindowKind) label() string {
	switch k {
	case WindowDay:
		return "daily"
	case WindowWeek:
		return "weekly"
	case WindowMonth:
		return "monthly"
	}
	return string(k)
}

// AlertSeverity orders alerts from informational to urgent.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityDanger  AlertSeverity = "danger"
)

// Alert is a banner-level message derived from a window evaluation.
type Alert struct {
	ID       string        `json:"id"`
	Severity AlertSeverity `json:"severity"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
}

// DaySpend is one day's expense total within a week window.
type DaySpend struct {
	Day     string    `json:"day"`
	Date    time.Time `json:"date"`
	Amount  float64   `json:"amount"`
	IsToday bool      `json:"is_today"`
}

// Pace compares month-to-date spending against a uniform linear projection
// of the limit across the month.
type Pace struct {
	ExpectedSoFar  float64 `json:"expected_so_far"`
	IsAheadOfPace  bool    `json:"is_ahead_of_pace"`
	DailyAllowance float64 `json:"daily_allowance"`
}

// WindowStatus is the result of evaluating spending against a limit over a
// day, week, or month window. Limit-relative fields (Remaining, PercentUsed,
// OverBudgetBy) are nil when no limit is configured: an unset limit means
// "not applicable", never a zero budget.
type WindowStatus struct {
	Kind             WindowKind                         `json:"kind"`
	Start            time.Time                          `json:"start"`
	End              time.Time                          `json:"end"`
	Limit            float64                            `json:"limit"`
	Spent            float64                            `json:"spent"`
	TransactionCount int                                `json:"transaction_count"`
	Remaining        *float64                           `json:"remaining,omitempty"`
	PercentUsed      *int                               `json:"percent_used,omitempty"`
	OverBudgetBy     *float64                           `json:"over_budget_by,omitempty"`
	IsOverBudget     bool                               `json:"is_over_budget"`
	CategoryTotals   map[models.ExpenseCategory]float64 `json:"category_totals"`

	// Day window only: projected routine spending still to come today.
	RoutineProjection *float64 `json:"routine_projection,omitempty"`

	// Week window only: per-day totals and the daily average.
	DailySpend   []DaySpend `json:"daily_spend,omitempty"`
	DailyAverage *float64   `json:"daily_average,omitempty"`

	// Month window only: pace against the linear projection of the limit.
	Pace *Pace `json:"pace,omitempty"`

	Alerts []Alert `json:"alerts"`
}

// windowBounds returns the inclusive [start, end] interval for the kind.
// The week is a trailing 7-day window ending today, not a calendar week.
func windowBounds(kind WindowKind, now time.Time) (time.Time, time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch kind {
	case WindowWeek:
		start := dayStart.AddDate(0, 0, -6)
		end := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
		return start, end
	case WindowMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return start, end
	default:
		return dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
}

func inWindow(t time.Time, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// EvaluateWindow filters the snapshot into the window ending at now, computes
// spend against the limit, and emits the window's alerts. Only expense
// transactions count toward spend; income never enters a window. routineTotal
// is the user's configured routine-expense total and only affects the day
// window's projection. A limit of zero suppresses limit-relative alerts while
// spend is still reported.
func (e *Engine) EvaluateWindow(txs []models.Transaction, limit float64, kind WindowKind, now time.Time, routineTotal float64) WindowStatus {
	start, end := windowBounds(kind, now)

	var window []models.Transaction
	for _, t := range txs {
		if t.IsExpense() && inWindow(t.Date, start, end) {
			window = append(window, t)
		}
	}

	var spent float64
	totals := make(map[models.ExpenseCategory]float64)
	impulseCount := 0
	for _, t := range window {
		spent += t.Amount
		if t.Category != "" {
			totals[t.Category] += t.Amount
		}
		if t.EmotionTag == models.EmotionImpulse {
			impulseCount++
		}
	}

	status := WindowStatus{
		Kind:             kind,
		Start:            start,
		End:              end,
		Limit:            limit,
		Spent:            spent,
		TransactionCount: len(window),
		CategoryTotals:   totals,
	}

	hasLimit := limit > 0
	if hasLimit {
		remaining := math.Max(0, limit-spent)
		percent := int(math.Min(100, math.Round(spent/limit*100)))
		status.Remaining = &remaining
		status.PercentUsed = &percent
		if spent > limit {
			status.IsOverBudget = true
			over := spent - limit
			status.OverBudgetBy = &over
		}
	}

	switch kind {
	case WindowDay:
		projection := routineProjection(routineTotal, now)
		status.RoutineProjection = &projection
	case WindowWeek:
		status.DailySpend = dailySpend(txs, now)
		avg := spent / 7
		status.DailyAverage = &avg
	case WindowMonth:
		if hasLimit {
			status.Pace = monthPace(e.cfg, limit, spent, *status.Remaining, now)
		}
	}

	status.Alerts = e.windowAlerts(&status, impulseCount)
	return status
}

// routineProjection estimates how much of the routine-expense total is still
// to come today, keyed off the evaluation hour alone. This is a coarse
// heuristic, not a learned model: before noon the full total is projected,
// through the afternoon half of it, and nothing from 18:00 on. Past
// transactions' time of day is never inspected.
func routineProjection(routineTotal float64, now time.Time) float64 {
	switch hour := now.Hour(); {
	case hour < 12:
		return routineTotal
	case hour < 18:
		return routineTotal * 0.5
	default:
		return 0
	}
}

// dailySpend buckets the trailing seven days of expenses by day.
func dailySpend(txs []models.Transaction, now time.Time) []DaySpend {
	days := make([]DaySpend, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

		var amount float64
		for _, t := range txs {
			if t.IsExpense() && inWindow(t.Date, dayStart, dayEnd) {
				amount += t.Amount
			}
		}

		days = append(days, DaySpend{
			Day:     dayStart.Weekday().String()[:3],
			Date:    dayStart,
			Amount:  amount,
			IsToday: i == 0,
		})
	}
	return days
}

func monthPace(cfg Config, limit, spent, remaining float64, now time.Time) *Pace {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	dayOfMonth := now.Day()

	expected := limit / float64(daysInMonth) * float64(dayOfMonth)
	return &Pace{
		ExpectedSoFar:  expected,
		IsAheadOfPace:  spent > expected*cfg.PaceTolerance,
		DailyAllowance: remaining / math.Max(1, float64(daysInMonth-dayOfMonth+1)),
	}
}

// windowAlerts emits the window's alerts in fixed order. Over-budget takes
// priority over the near-limit warning; the remaining alerts stack.
func (e *Engine) windowAlerts(s *WindowStatus, impulseCount int) []Alert {
	alerts := []Alert{}
	label := s.Kind.label()

	if s.IsOverBudget {
		alerts = append(alerts, Alert{
			ID:       fmt.Sprintf("over-%s", label),
			Severity: SeverityDanger,
			Title:    fmt.Sprintf("%s limit exceeded!", titleCase(label)),
			Message:  fmt.Sprintf("You've exceeded your %s limit by %s.", label, FormatINR(*s.OverBudgetBy)),
		})
	} else if s.PercentUsed != nil && *s.PercentUsed >= e.cfg.NearLimitPercent {
		alerts = append(alerts, Alert{
			ID:       fmt.Sprintf("near-%s", label),
			Severity: SeverityWarning,
			Title:    fmt.Sprintf("Approaching %s limit", label),
			Message:  fmt.Sprintf("You've used %d%% of your %s budget. Only %s left.", *s.PercentUsed, label, FormatINR(*s.Remaining)),
		})
	}

	if s.Kind == WindowDay && s.Remaining != nil && s.RoutineProjection != nil &&
		*s.Remaining < *s.RoutineProjection && *s.Remaining > 0 && !s.IsOverBudget {
		alerts = append(alerts, Alert{
			ID:       "routine-warning",
			Severity: SeverityWarning,
			Title:    "Routine expenses ahead",
			Message:  fmt.Sprintf("You usually spend around %s more today. Spend carefully!", FormatINR(*s.RoutineProjection)),
		})
	}

	if s.Kind == WindowMonth && s.Pace != nil && s.Pace.IsAheadOfPace && !s.IsOverBudget {
		alerts = append(alerts, Alert{
			ID:       "pace-warning",
			Severity: SeverityWarning,
			Title:    "Spending faster than expected",
			Message:  fmt.Sprintf("You're spending faster than your daily pace. Limit to %s/day to stay on track.", FormatINR(math.Round(s.Pace.DailyAllowance))),
		})
	}

	if impulseCount >= e.cfg.ImpulseAlertCount {
		alerts = append(alerts, Alert{
			ID:       "impulse-alert",
			Severity: SeverityWarning,
			Title:    "Multiple impulse purchases",
			Message:  "You've made several impulse purchases recently. Take a moment before your next purchase.",
		})
	}

	if s.Kind == WindowWeek && s.DailyAverage != nil && *s.DailyAverage > 0 {
		var high []string
		for _, d := range s.DailySpend {
			if d.Amount > *s.DailyAverage*e.cfg.HighSpendFactor {
				high = append(high, d.Day)
			}
		}
		if len(high) > 0 {
			alerts = append(alerts, Alert{
				ID:       "high-spend-days",
				Severity: SeverityInfo,
				Title:    "Spending pattern detected",
				Message:  fmt.Sprintf("You spent more than average on %s.", strings.Join(high, ", ")),
			})
		}
	}

	return alerts
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
