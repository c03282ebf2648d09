package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/sacredfin/books"
)

// SummaryMarkdown renders the dashboard: balances, fund split, income vs
// expenses, and the recent transaction feed.
func SummaryMarkdown(bal books.Balance, c books.Closing, feed []books.FeedEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard %s", books.Today()))
	doc.PlainText(fmt.Sprintf("Total Funds: %s", bal.Total()))

	doc.H2("Accounts")
	doc.Table(md.TableSet{
		Header: []string{"Account", "Balance"},
		Rows: [][]string{
			{books.Bank.String(), bal.Bank.String()},
			{books.PettyCash.String(), fmt.Sprintf("%s / %s", bal.PettyCash, bal.PettyCashLimit)},
			{books.CashInHand.String(), bal.CashInHand.String()},
		},
	})

	doc.H2("Income vs Expenses")
	doc.Table(md.TableSet{
		Header: []string{"Total Income", "Total Expenses", "Net"},
		Rows: [][]string{
			{c.TotalIncome.String(), c.TotalExpenses.String(), c.NetBalance.SignedString()},
		},
	})

	if len(feed) > 0 {
		doc.H2("Recent Transactions")
		doc.Table(md.TableSet{Header: feedHeader, Rows: feedRows(feed)})
	}

	return doc.String()
}

// FeedMarkdown renders the global transaction feed.
func FeedMarkdown(feed []books.FeedEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transactions")
	if len(feed) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	doc.Table(md.TableSet{Header: feedHeader, Rows: feedRows(feed)})
	return doc.String()
}
