package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

type incomeCmd struct {
	date        string
	clock       string
	kind        string
	serviceName string
	donorName   string
	destination string
	offerings   float64
	tithes      float64
	donations   float64
	method      string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record a service collection or a direct donation" }
func (*incomeCmd) Usage() string {
	return `sfb income [-d <date>] [-kind service|direct] [-service <name> | -donor <name>] [-offerings <amount>] [-tithes <amount>] [-donations <amount>] [-method cash|bank]

  Records income. The total is the sum of the three envelopes and is fixed
  at creation. Cash credits the cash-in-hand pool, a bank transfer credits
  the bank. Income is always accepted: it only ever increases a balance.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the income (defaults to today).")
	f.StringVar(&c.clock, "t", "", "Time of the service, informational only.")
	f.StringVar(&c.kind, "kind", "service", "Income kind (service, direct).")
	f.StringVar(&c.serviceName, "service", "", "Service name (service income).")
	f.StringVar(&c.donorName, "donor", "", "Donor name (direct income).")
	f.StringVar(&c.destination, "dest", "", "Destination or purpose of a direct donation.")
	f.Float64Var(&c.offerings, "offerings", 0, "Offerings amount.")
	f.Float64Var(&c.tithes, "tithes", 0, "Tithes amount.")
	f.Float64Var(&c.donations, "donations", 0, "Donations amount.")
	f.StringVar(&c.method, "method", "cash", "Payment method (cash, bank).")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	kind, err := books.ParseIncomeKind(c.kind)
	if err != nil {
		return fail(err)
	}
	method, err := books.ParsePaymentMethod(c.method)
	if err != nil {
		return fail(err)
	}
	if c.offerings < 0 || c.tithes < 0 || c.donations < 0 {
		return fail(fmt.Errorf("income amounts must not be negative"))
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	rec := books.NewIncome(day, c.clock, kind, c.serviceName, c.donorName, c.destination,
		books.M(c.offerings), books.M(c.tithes), books.M(c.donations), method)
	if err := book.AppendIncome(rec); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded income of %s to %s\n", rec.Total, rec.Credits())
	return subcommands.ExitSuccess
}
