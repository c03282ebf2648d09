package renderer

import (
	"strings"
	"testing"

	"github.com/sacredfin/books"
)

func sampleClosing() books.Closing {
	return books.Closing{
		Month:         "January 2026",
		TotalIncome:   books.M(450),
		TotalExpenses: books.M(40),
		NetBalance:    books.M(410),
	}
}

func sampleFeed() []books.FeedEntry {
	return []books.FeedEntry{
		{
			ID: "a", Date: books.MustParseDate("2026-01-11"), Type: books.RecIncome,
			Category: "Service Revenue", Description: "Sunday Service",
			Amount: books.M(300), Account: "Cash in Hand",
		},
		{
			ID: "b", Date: books.MustParseDate("2026-01-06"), Type: books.RecExpense,
			Category: "Operational Expenses", Description: "supplies",
			Amount: books.M(40), Account: "Bank",
		},
	}
}

func TestSummaryMarkdown(t *testing.T) {
	bal := books.Balance{
		Bank:           books.M(4750),
		PettyCash:      books.M(250),
		CashInHand:     books.M(300),
		PettyCashLimit: books.M(500),
	}
	got := SummaryMarkdown(bal, sampleClosing(), sampleFeed())

	for _, want := range []string{
		"# Dashboard",
		"Total Funds: $5,300.00",
		"## Accounts",
		"$250.00 / $500.00",
		"## Income vs Expenses",
		"+$410.00",
		"## Recent Transactions",
		"Sunday Service",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestFeedMarkdown(t *testing.T) {
	got := FeedMarkdown(sampleFeed())
	for _, want := range []string{"# Transactions", "+$300.00", "-$40.00", "supplies"} {
		if !strings.Contains(got, want) {
			t.Errorf("FeedMarkdown() misses %q:\n%s", want, got)
		}
	}

	empty := FeedMarkdown(nil)
	if !strings.Contains(empty, "No transactions recorded.") {
		t.Errorf("FeedMarkdown(nil) = %q, want the empty notice", empty)
	}
}

func TestClosingMarkdown(t *testing.T) {
	incomes := []books.IncomeRecord{
		books.NewIncome(books.MustParseDate("2026-01-04"), "10:30", books.ServiceIncome,
			"Sunday Service", "", "", books.M(300), books.M(0), books.M(0), books.Cash),
	}
	expenses := []books.ExpenseRecord{
		books.NewExpense(books.MustParseDate("2026-01-06"), "supplies", books.Operational,
			books.M(40), books.Bank),
	}

	got := ClosingMarkdown(sampleClosing(), incomes, expenses, "Finances look healthy.")
	for _, want := range []string{
		"# Monthly Closing: January 2026",
		"## Consolidated Totals",
		"## Income Detail",
		"Sunday Service",
		"## Expense Detail",
		"Operational Expenses",
		"## AI Insight",
		"Finances look healthy.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ClosingMarkdown() misses %q:\n%s", want, got)
		}
	}

	// Without an insight the section does not exist.
	bare := ClosingMarkdown(sampleClosing(), nil, nil, "")
	if strings.Contains(bare, "AI Insight") {
		t.Errorf("ClosingMarkdown() without insight still carries the section:\n%s", bare)
	}
	if strings.Contains(bare, "Income Detail") || strings.Contains(bare, "Expense Detail") {
		t.Errorf("ClosingMarkdown() without records still carries detail tables:\n%s", bare)
	}
}

func TestReportMarkdown(t *testing.T) {
	f := books.ReportFilter{
		Type:     books.IncomeReport,
		Category: "Service",
		From:     books.MustParseDate("2026-01-01"),
	}
	got := ReportMarkdown(f, sampleFeed())
	for _, want := range []string{
		"# Income Report",
		"Filters: category Service, from 2026-01-01",
		"2 records, total $340.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() misses %q:\n%s", want, got)
		}
	}

	empty := ReportMarkdown(books.ReportFilter{Type: books.ExpenseReport}, nil)
	if !strings.Contains(empty, "No matching records.") {
		t.Errorf("ReportMarkdown(empty) = %q, want the empty notice", empty)
	}
}
