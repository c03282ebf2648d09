package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

type expenseCmd struct {
	date        string
	description string
	category    string
	amount      float64
	source      string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense against one account" }
func (*expenseCmd) Usage() string {
	return `sfb expense [-d <date>] -desc <description> -category <category> -amount <amount> -from <account>

  Records an expense paid from exactly one account. The expense is rejected
  when the amount exceeds the current balance of that account; a rejected
  expense changes nothing.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the expense (defaults to today).")
	f.StringVar(&c.description, "desc", "", "What the money was spent on.")
	f.StringVar(&c.category, "category", "operational", "Category (salaries, charity, capital, operational).")
	f.Float64Var(&c.amount, "amount", 0, "Amount spent.")
	f.StringVar(&c.source, "from", "bank", "Source account (bank, petty-cash, cash-in-hand).")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentUser(); err != nil {
		return fail(err)
	}
	day := books.Today()
	if c.date != "" {
		var err error
		if day, err = books.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}
	category, err := books.ParseExpenseCategory(c.category)
	if err != nil {
		return fail(err)
	}
	source, err := books.ParseAccount(c.source)
	if err != nil {
		return fail(err)
	}
	if c.amount <= 0 {
		return fail(fmt.Errorf("expense amount must be positive, got %v", c.amount))
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	rec := books.NewExpense(day, c.description, category, books.M(c.amount), source)
	if err := book.AppendExpense(rec); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded expense of %s from %s, balance %s\n", rec.Amount, rec.Source, book.Balance().Of(rec.Source))
	return subcommands.ExitSuccess
}
