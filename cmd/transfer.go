package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

type transferCmd struct {
	date        string
	from        string
	to          string
	amount      float64
	description string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move funds between two accounts" }
func (*transferCmd) Usage() string {
	return `sfb transfer [-d <date>] -from <account> -to <account> -amount <amount> [-desc <description>]

  Moves funds between two distinct accounts. The transfer is rejected when
  the amount exceeds the source balance, when both accounts are the same,
  or when it would push petty cash over its ceiling (landing exactly on
  the ceiling is allowed).
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transfer (defaults to today).")
	f.StringVar(&c.from, "from", "", "Source account (bank, petty-cash, cash-in-hand).")
	f.StringVar(&c.to, "to", "", "Destination account (bank, petty-cash, cash-in-hand).")
	f.Float64Var(&c.amount, "amount", 0, "Amount to move.")
	f.StringVar(&c.description, "desc", "", "Optional note.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	from, err := books.ParseAccount(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := books.ParseAccount(c.to)
	if err != nil {
		return fail(err)
	}
	if c.amount <= 0 {
		return fail(fmt.Errorf("transfer amount must be positive, got %v", c.amount))
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	rec := books.NewTransfer(day, from, to, books.M(c.amount), c.description)
	if err := book.AppendTransfer(rec); err != nil {
		return fail(err)
	}
	bal := book.Balance()
	fmt.Printf("Transferred %s from %s (%s) to %s (%s)\n", rec.Amount, from, bal.Of(from), to, bal.Of(to))
	return subcommands.ExitSuccess
}
