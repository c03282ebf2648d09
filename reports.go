package books

import "fmt"

// FeedEntry is the common projection of the three record shapes used by
// the global transaction feed and the filtered reports.
type FeedEntry struct {
	ID          string
	Date        Date
	Type        RecordType
	Category    string
	Description string
	Amount      Money
	Account     string
}

// feedEntry projects one record into the common shape.
func feedEntry(rec Record) FeedEntry {
	switch r := rec.(type) {
	case IncomeRecord:
		desc := r.ServiceName
		if desc == "" {
			desc = r.DonorName
		}
		return FeedEntry{
			ID:          r.ID,
			Date:        r.Date,
			Type:        RecIncome,
			Category:    "Service Revenue",
			Description: desc,
			Amount:      r.Total,
			Account:     r.Credits().String(),
		}
	case ExpenseRecord:
		return FeedEntry{
			ID:          r.ID,
			Date:        r.Date,
			Type:        RecExpense,
			Category:    string(r.Category),
			Description: r.Description,
			Amount:      r.Amount,
			Account:     r.Source.String(),
		}
	case TransferRecord:
		return FeedEntry{
			ID:          r.ID,
			Date:        r.Date,
			Type:        RecTransfer,
			Category:    "Account Transfer",
			Description: fmt.Sprintf("%s → %s", r.From, r.To),
			Amount:      r.Amount,
			Account:     "Multi-account",
		}
	}
	return FeedEntry{}
}

// Feed is the global transaction feed: the union of the three sequences
// projected into the common shape, sorted descending by date with ties
// broken by original entry order, truncated to limit rows. A limit of 0
// returns everything.
func (b *Book) Feed(limit int) []FeedEntry {
	rows := make([]FeedEntry, 0, len(b.incomes)+len(b.expenses)+len(b.transfers))
	for _, rec := range b.records() {
		rows = append(rows, feedEntry(rec))
	}
	sortByDateDesc(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Closing holds the consolidated totals of a closing statement.
// "Monthly" is a label supplied by the caller: the totals cover the full
// current record set, the system does not partition records by calendar
// month internally.
type Closing struct {
	Month         string
	TotalIncome   Money
	TotalExpenses Money
	NetBalance    Money
}

// Closing computes the consolidated totals over the full record set.
func (b *Book) Closing(month string) Closing {
	var income, expenses Money
	for _, r := range b.incomes {
		income = income.Add(r.Total)
	}
	for _, r := range b.expenses {
		expenses = expenses.Add(r.Amount)
	}
	return Closing{
		Month:         month,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetBalance:    income.Sub(expenses),
	}
}

// FilterAll is the filter value that disables a predicate.
const FilterAll = "All"

// ReportType selects which sequence a filtered report covers.
type ReportType string

const (
	IncomeReport  ReportType = "Income"
	ExpenseReport ReportType = "Expenses"
)

// ParseReportType parses a string into a ReportType.
func ParseReportType(s string) (ReportType, error) {
	switch s {
	case "Income", "income":
		return IncomeReport, nil
	case "Expenses", "expenses":
		return ExpenseReport, nil
	default:
		return "", fmt.Errorf("unknown report type: %q", s)
	}
}

// ReportFilter selects records for a filtered report. Category filters on
// the income kind (Income report) or the expense category (Expenses
// report); Method filters on the payment method (Income) or the source
// account (Expenses). A value of FilterAll or "" disables that predicate.
// The date range is inclusive on both ends and compares calendar dates
// only; a zero date leaves that end open.
type ReportFilter struct {
	Type     ReportType
	Category string
	Method   string
	From     Date
	To       Date
}

// inRange reports whether d falls within the filter's inclusive range.
func (f ReportFilter) inRange(d Date) bool {
	if !f.From.IsZero() && d.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && d.After(f.To) {
		return false
	}
	return true
}

func (f ReportFilter) matches(category, method string) bool {
	if f.Category != "" && f.Category != FilterAll && f.Category != category {
		return false
	}
	if f.Method != "" && f.Method != FilterAll && f.Method != method {
		return false
	}
	return true
}

// Report returns the matching records projected into the common shape,
// sorted descending by date.
func (b *Book) Report(f ReportFilter) []FeedEntry {
	var rows []FeedEntry
	switch f.Type {
	case IncomeReport:
		for _, r := range b.incomes {
			if f.inRange(r.Date) && f.matches(string(r.Kind), string(r.Method)) {
				rows = append(rows, feedEntry(r))
			}
		}
	case ExpenseReport:
		for _, r := range b.expenses {
			if f.inRange(r.Date) && f.matches(string(r.Category), r.Source.String()) {
				rows = append(rows, feedEntry(r))
			}
		}
	}
	sortByDateDesc(rows)
	return rows
}
