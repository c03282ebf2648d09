// Package renderer turns book projections into markdown documents: the
// dashboard summary, the transaction feed, the monthly closing statement
// and the filtered reports. It never mutates the book.
package renderer

import (
	"github.com/sacredfin/books"
)

// feedRows renders feed entries as markdown table rows.
func feedRows(entries []books.FeedEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		amount := e.Amount.String()
		switch e.Type {
		case books.RecIncome:
			amount = "+" + amount
		case books.RecExpense:
			amount = "-" + amount
		}
		rows = append(rows, []string{e.Date.String(), string(e.Type), e.Category, e.Description, amount, e.Account})
	}
	return rows
}

var feedHeader = []string{"Date", "Type", "Category", "Description", "Amount", "Account"}
