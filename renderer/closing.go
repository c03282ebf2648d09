package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/sacredfin/books"
)

// ClosingMarkdown renders the printable closing statement: consolidated
// totals plus the income and expense detail tables. An optional insight
// paragraph is appended when not empty.
func ClosingMarkdown(c books.Closing, incomes []books.IncomeRecord, expenses []books.ExpenseRecord, insight string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Closing: %s", c.Month))

	doc.H2("Consolidated Totals")
	doc.Table(md.TableSet{
		Header: []string{"Total Income", "Total Expenses", "Net Balance"},
		Rows: [][]string{
			{c.TotalIncome.String(), c.TotalExpenses.String(), c.NetBalance.SignedString()},
		},
	})

	if len(incomes) > 0 {
		doc.H2("Income Detail")
		rows := make([][]string, 0, len(incomes))
		for _, r := range incomes {
			name := r.ServiceName
			if name == "" {
				name = r.DonorName
			}
			rows = append(rows, []string{
				r.Date.String(), string(r.Kind), name,
				r.Offerings.String(), r.Tithes.String(), r.Donations.String(),
				string(r.Method), r.Total.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Kind", "Service/Donor", "Offerings", "Tithes", "Donations", "Method", "Total"},
			Rows:   rows,
		})
	}

	if len(expenses) > 0 {
		doc.H2("Expense Detail")
		rows := make([][]string, 0, len(expenses))
		for _, r := range expenses {
			rows = append(rows, []string{
				r.Date.String(), string(r.Category), r.Description, r.Amount.String(), r.Source.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Category", "Description", "Amount", "Source"},
			Rows:   rows,
		})
	}

	if insight != "" {
		doc.H2("AI Insight")
		doc.PlainText(insight)
	}

	return doc.String()
}

// ReportMarkdown renders a filtered report.
func ReportMarkdown(f books.ReportFilter, rows []books.FeedEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("%s Report", f.Type)
	doc.H1(title)

	var criteria []string
	if f.Category != "" && f.Category != books.FilterAll {
		criteria = append(criteria, fmt.Sprintf("category %s", f.Category))
	}
	if f.Method != "" && f.Method != books.FilterAll {
		criteria = append(criteria, fmt.Sprintf("method %s", f.Method))
	}
	if !f.From.IsZero() {
		criteria = append(criteria, fmt.Sprintf("from %s", f.From))
	}
	if !f.To.IsZero() {
		criteria = append(criteria, fmt.Sprintf("to %s", f.To))
	}
	if len(criteria) > 0 {
		doc.PlainText("Filters: " + strings.Join(criteria, ", "))
	}

	if len(rows) == 0 {
		doc.PlainText("No matching records.")
		return doc.String()
	}
	doc.Table(md.TableSet{Header: feedHeader, Rows: feedRows(rows)})

	var total books.Money
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	doc.PlainText(fmt.Sprintf("%d records, total %s", len(rows), total))

	return doc.String()
}
