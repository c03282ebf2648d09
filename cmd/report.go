package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
	"github.com/sacredfin/books/renderer"
)

type reportCmd struct {
	kind     string
	category string
	method   string
	from     string
	to       string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a filtered income or expense report" }
func (*reportCmd) Usage() string {
	return `sfb report [-type Income|Expenses] [-category <filter>] [-method <filter>] [-from <date>] [-to <date>]

  Displays matching records, most recent first. For an Income report the
  category filter matches the income kind and the method filter matches
  the payment method; for an Expenses report they match the expense
  category and the source account. "All" disables a filter. The date range
  is inclusive on both ends and compares calendar dates only.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "Income", "Report type (Income, Expenses).")
	f.StringVar(&c.category, "category", books.FilterAll, "Category filter.")
	f.StringVar(&c.method, "method", books.FilterAll, "Method or source-account filter.")
	f.StringVar(&c.from, "from", "", "Start date, inclusive.")
	f.StringVar(&c.to, "to", "", "End date, inclusive.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := books.ParseReportType(c.kind)
	if err != nil {
		return fail(err)
	}
	filter := books.ReportFilter{Type: kind, Category: c.category, Method: c.method}
	if c.from != "" {
		if filter.From, err = books.ParseDate(c.from); err != nil {
			return fail(err)
		}
	}
	if c.to != "" {
		if filter.To, err = books.ParseDate(c.to); err != nil {
			return fail(err)
		}
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReportMarkdown(filter, book.Report(filter)))
	return subcommands.ExitSuccess
}
