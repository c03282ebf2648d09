package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
	"github.com/sacredfin/books/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	limit int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard summary" }
func (*summaryCmd) Usage() string {
	return `sfb summary [-n <limit>]

  Displays the dashboard: account balances, income vs expenses, and the
  most recent transactions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of recent transactions to show (10, 20 or 50).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	closing := book.Closing(books.Today().MonthLabel())
	md := renderer.SummaryMarkdown(book.Balance(), closing, book.Feed(c.limit))
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	limit int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the global transaction feed" }
func (*txCmd) Usage() string {
	return `sfb tx [-n <limit>]

  Lists incomes, expenses and transfers as one feed, most recent first.
  A limit of 0 lists everything.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of transactions to show (10, 20 or 50; 0 for all).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.limit < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must not be negative.")
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FeedMarkdown(book.Feed(c.limit)))
	return subcommands.ExitSuccess
}
