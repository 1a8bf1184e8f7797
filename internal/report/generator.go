// Package report builds aggregate views of a parsed statement:
// summary totals, per-category breakdowns and a monthly time series.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Summary holds the headline totals of one statement. Transactions
// flagged Internal are excluded from every aggregate.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
	Count    int             `json:"count"`
	Currency string          `json:"currency"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthPoint is one bucket of the monthly time series.
type MonthPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Report is the full aggregate view of one parsed statement.
type Report struct {
	BankName   string          `json:"bankName"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Summary    Summary         `json:"summary"`
	Categories []CategoryTotal `json:"categories"`
	Months     []MonthPoint    `json:"months"`
}

// Build computes the aggregate report for parsed data.
func Build(data *models.ParsedData) *Report {
	report := &Report{
		BankName: data.BankName,
		From:     dateutils.ToISODate(data.DateRange.From),
		To:       dateutils.ToISODate(data.DateRange.To),
	}

	categoryTotals := make(map[string]*CategoryTotal)
	monthTotals := make(map[string]*MonthPoint)

	for _, tx := range data.Transactions {
		if tx.Internal {
			continue
		}
		report.Summary.Count++
		report.Summary.Net = report.Summary.Net.Add(tx.Amount)
		if report.Summary.Currency == "" {
			report.Summary.Currency = tx.Currency
		}

		month := dateutils.MonthKey(tx.Date)
		point, ok := monthTotals[month]
		if !ok {
			point = &MonthPoint{Month: month}
			monthTotals[month] = point
		}

		if tx.IsIncome() {
			report.Summary.Income = report.Summary.Income.Add(tx.Amount)
			point.Income = point.Income.Add(tx.Amount)
			continue
		}

		expense := tx.Amount.Abs()
		report.Summary.Expenses = report.Summary.Expenses.Add(expense)
		point.Expenses = point.Expenses.Add(expense)

		ct, ok := categoryTotals[tx.Category]
		if !ok {
			ct = &CategoryTotal{Category: tx.Category}
			categoryTotals[tx.Category] = ct
		}
		ct.Total = ct.Total.Add(expense)
		ct.Count++
	}

	for _, ct := range categoryTotals {
		report.Categories = append(report.Categories, *ct)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		if !report.Categories[i].Total.Equal(report.Categories[j].Total) {
			return report.Categories[i].Total.GreaterThan(report.Categories[j].Total)
		}
		return report.Categories[i].Category < report.Categories[j].Category
	})

	for _, point := range monthTotals {
		report.Months = append(report.Months, *point)
	}
	sort.Slice(report.Months, func(i, j int) bool {
		return report.Months[i].Month < report.Months[j].Month
	})

	log.WithFields(logrus.Fields{
		"bank":       report.BankName,
		"count":      report.Summary.Count,
		"categories": len(report.Categories),
	}).Debug("Report built")

	return report
}

// Generate renders a report in the requested format (text or json).
func Generate(report *Report, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return out, nil
	case "text":
		return []byte(renderText(report)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func renderText(report *Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  (%s - %s)\n", report.BankName, report.From, report.To)
	fmt.Fprintf(&sb, "Transactions: %d\n", report.Summary.Count)
	fmt.Fprintf(&sb, "Income:   %s %s\n", report.Summary.Income.StringFixed(2), report.Summary.Currency)
	fmt.Fprintf(&sb, "Expenses: %s %s\n", report.Summary.Expenses.StringFixed(2), report.Summary.Currency)
	fmt.Fprintf(&sb, "Net:      %s %s\n", report.Summary.Net.StringFixed(2), report.Summary.Currency)

	if len(report.Categories) > 0 {
		sb.WriteString("\nExpenses by category:\n")
		for _, ct := range report.Categories {
			fmt.Fprintf(&sb, "  %-20s %12s  (%d)\n", ct.Category, ct.Total.StringFixed(2), ct.Count)
		}
	}

	if len(report.Months) > 0 {
		sb.WriteString("\nMonthly totals:\n")
		for _, point := range report.Months {
			fmt.Fprintf(&sb, "  %s  income %12s  expenses %12s\n",
				point.Month, point.Income.StringFixed(2), point.Expenses.StringFixed(2))
		}
	}

	return sb.String()
}
