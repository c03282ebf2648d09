package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

type limitCmd struct {
	amount float64
}

func (*limitCmd) Name() string     { return "limit" }
func (*limitCmd) Synopsis() string { return "set the petty-cash ceiling" }
func (*limitCmd) Usage() string {
	return `sfb limit -amount <amount>

  Sets the petty-cash ceiling. The ceiling constrains inbound transfers
  only; it is never changed by a transaction. Requires the Admin role.
`
}

func (c *limitCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "New petty-cash ceiling.")
}

func (c *limitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := requireAdmin(); err != nil {
		return fail(err)
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.SetPettyCashLimit(books.M(c.amount)); err != nil {
		return fail(err)
	}
	fmt.Printf("Petty cash limit set to %s\n", book.Balance().PettyCashLimit)
	return subcommands.ExitSuccess
}

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear all financial records and reset balances" }
func (*resetCmd) Usage() string {
	return `sfb reset -force

  Clears all income, expense and transfer records and resets the balances
  to their defaults. Users are preserved. The operation is destructive and
  irreversible, so it refuses to run without -force. Requires the Admin
  role.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm clearing all financial records.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := requireAdmin(); err != nil {
		return fail(err)
	}
	if !c.force {
		return fail(fmt.Errorf("reset deletes all financial records; re-run with -force to confirm"))
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("Financial records cleared, balances reset to defaults. Users preserved.")
	return subcommands.ExitSuccess
}

type dumpCmd struct{}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "print the raw database as JSON" }
func (*dumpCmd) Usage() string {
	return `sfb dump

  Prints a read-only JSON serialization of the full application state
  (records, balances, users), for inspection and export. Requires the
  Admin role.
`
}

func (*dumpCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dumpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := requireAdmin(); err != nil {
		return fail(err)
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	data, err := book.Dump()
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}

type verifyCmd struct{}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "check the balance cache against the record history" }
func (*verifyCmd) Usage() string {
	return `sfb verify

  Replays the full record history from the default opening balance and
  compares the result with the stored balance cache. Drift is reported,
  never corrected: the cache remains the source of truth.
`
}

func (*verifyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *verifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	drifts := book.Verify()
	if len(drifts) == 0 {
		fmt.Println("Balance cache matches the record history.")
		return subcommands.ExitSuccess
	}
	for _, d := range drifts {
		fmt.Printf("%s: stored %s, replayed %s\n", d.Account, d.Stored, d.Replayed)
	}
	return subcommands.ExitFailure
}
