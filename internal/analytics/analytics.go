// Package analytics computes spending reports over the expense ledger.
//
// Reports are recomputed from scratch on every call. At the data volumes of a
// personal ledger this is cheaper than maintaining incremental aggregates,
// and it keeps the package free of state.
package analytics

import (
	"errors"
	"sort"
	"time"

	"github.com/budgetlens/backend/internal/budget"
	"github.com/budgetlens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Window is a rolling lookback period for a report.
//
// Windows are day-count lookbacks anchored at the evaluation instant, not
// calendar-aligned periods: "month" means the last 30 days, not the current
// calendar month.
type Window string

const (
	WindowWeek    Window = "week"
	WindowMonth   Window = "month"
	WindowQuarter Window = "quarter"
	WindowYear    Window = "year"
)

var ErrInvalidWindow = errors.New("the window must be one of week, month, quarter, year")

// Days returns the number of days the window looks back.
func (w Window) Days() int {
	switch w {
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	case WindowQuarter:
		return 90
	case WindowYear:
		return 365
	}

	return 0
}

// ParseWindow parses a window name. The empty string defaults to month.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "":
		return WindowMonth, nil
	case string(WindowWeek), string(WindowMonth), string(WindowQuarter), string(WindowYear):
		return Window(s), nil
	}

	return "", ErrInvalidWindow
}

// CategoryBreakdown reports one budget category over the window.
type CategoryBreakdown struct {
	Spent      decimal.Decimal `json:"spent" example:"120"`     // Sum of expenses with this category in the window
	Target     decimal.Decimal `json:"target" example:"2500"`   // The 50-30-20 target for the category
	Percentage float64         `json:"percentage" example:"4.8"` // Spent as a percentage of the target, 0 if there is no positive target
}

// SubcategoryTotal is the aggregate for one subcategory.
type SubcategoryTotal struct {
	Name     string          `json:"name" example:"groceries"`
	Category budget.Category `json:"category" example:"needs"`
	Amount   decimal.Decimal `json:"amount" example:"245.10"`
	Count    int             `json:"count" example:"3"`
}

// DailyTotal is the aggregate for one calendar date.
type DailyTotal struct {
	Date   time.Time       `json:"date" example:"2022-04-02T00:00:00Z"`
	Amount decimal.Decimal `json:"amount" example:"100"`
	Count  int             `json:"count" example:"2"`
}

// Report is an immutable snapshot of the spending analytics for one window.
type Report struct {
	Window        Window                                 `json:"window" example:"month"`
	TotalSpent    decimal.Decimal                        `json:"totalSpent" example:"365.10"`
	Categories    map[budget.Category]CategoryBreakdown  `json:"categories"`
	Subcategories []SubcategoryTotal                     `json:"subcategories"` // Ordered by descending amount
	Daily         []DailyTotal                           `json:"daily"`         // Ordered by ascending date, dates without expenses are absent
	DailyAverage  decimal.Decimal                        `json:"dailyAverage" example:"73.02"`
}

// Analyze builds the spending report for the expenses that fall into the
// window ending at now.
//
// A nil report means there is no data at all: callers must branch on it
// before rendering, it is not an error.
func Analyze(expenses []models.Expense, monthlyIncome decimal.Decimal, window Window, now time.Time) *Report {
	if len(expenses) == 0 {
		return nil
	}

	cutoff := now.Add(-time.Duration(window.Days()) * 24 * time.Hour)

	windowed := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if !expense.Date.Before(cutoff) {
			windowed = append(windowed, expense)
		}
	}

	report := Report{
		Window:       window,
		TotalSpent:   decimal.Zero,
		DailyAverage: decimal.Zero,
	}

	// Per-category totals
	spent := map[budget.Category]decimal.Decimal{
		budget.CategoryNeeds:   decimal.Zero,
		budget.CategoryWants:   decimal.Zero,
		budget.CategorySavings: decimal.Zero,
	}

	for _, expense := range windowed {
		report.TotalSpent = report.TotalSpent.Add(expense.Amount)
		spent[expense.Category] = spent[expense.Category].Add(expense.Amount)
	}

	allocation := budget.Targets(monthlyIncome)

	report.Categories = make(map[budget.Category]CategoryBreakdown, len(spent))
	for _, category := range []budget.Category{budget.CategoryNeeds, budget.CategoryWants, budget.CategorySavings} {
		target := allocation.Target(category)

		// Spending against a zero or negative target reads as 0%, a
		// division error must never surface here
		percentage := 0.0
		if target.IsPositive() {
			percentage, _ = spent[category].Div(target).Mul(decimal.NewFromInt(100)).Float64()
		}

		report.Categories[category] = CategoryBreakdown{
			Spent:      spent[category],
			Target:     target,
			Percentage: percentage,
		}
	}

	report.Subcategories = rankSubcategories(windowed)
	report.Daily = dailySeries(windowed)

	// The average is taken over the days that had at least one expense,
	// not over the window length
	if len(report.Daily) > 0 {
		sum := decimal.Zero
		for _, day := range report.Daily {
			sum = sum.Add(day.Amount)
		}
		report.DailyAverage = sum.Div(decimal.NewFromInt(int64(len(report.Daily))))
	}

	return &report
}

// rankSubcategories groups the expenses by subcategory and orders the groups
// by descending amount. Groups with equal amounts keep the order in which
// their subcategory was first seen.
func rankSubcategories(expenses []models.Expense) []SubcategoryTotal {
	index := make(map[string]int)
	totals := make([]SubcategoryTotal, 0)

	for _, expense := range expenses {
		i, ok := index[expense.Subcategory]
		if !ok {
			i = len(totals)
			index[expense.Subcategory] = i
			totals = append(totals, SubcategoryTotal{
				Name:     expense.Subcategory,
				Category: expense.Category,
				Amount:   decimal.Zero,
			})
		}

		totals[i].Amount = totals[i].Amount.Add(expense.Amount)
		totals[i].Count++
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})

	return totals
}

// dailySeries groups the expenses by calendar date, ascending. The series is
// sparse: dates without expenses do not appear with a zero, they are absent.
func dailySeries(expenses []models.Expense) []DailyTotal {
	index := make(map[time.Time]int)
	days := make([]DailyTotal, 0)

	for _, expense := range expenses {
		date := expense.Date.Truncate(24 * time.Hour)

		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, DailyTotal{
				Date:   date,
				Amount: decimal.Zero,
			})
		}

		days[i].Amount = days[i].Amount.Add(expense.Amount)
		days[i].Count++
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}
