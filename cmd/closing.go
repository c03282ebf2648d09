package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
	"github.com/sacredfin/books/insight"
	"github.com/sacredfin/books/renderer"
)

type closingCmd struct {
	month       string
	withInsight bool
}

func (*closingCmd) Name() string     { return "closing" }
func (*closingCmd) Synopsis() string { return "display the printable monthly closing statement" }
func (*closingCmd) Usage() string {
	return `sfb closing [-month <label>] [-insight]

  Displays the closing statement: consolidated totals over the full record
  set plus the income and expense detail. The month is a label, not a date
  filter; use 'report' for real date ranges. With -insight, a short
  AI-generated financial summary is appended (falls back to a fixed
  message when the service is unavailable).
`
}

func (c *closingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", books.Today().MonthLabel(), "Label of the closing statement.")
	f.BoolVar(&c.withInsight, "insight", false, "Append the AI financial summary.")
}

func (c *closingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	closing := book.Closing(c.month)

	var summary string
	if c.withInsight {
		client, err := insight.NewClient(ctx)
		if err != nil {
			// Degrade, do not fail the statement.
			fmt.Fprintln(os.Stderr, "Warning:", err)
			summary = insight.Fallback
		} else {
			summary = insight.Generate(ctx, client, closing)
		}
	}

	md := renderer.ClosingMarkdown(closing, book.Incomes(), book.Expenses(), summary)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
