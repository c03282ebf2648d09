package books

// day is a helper for tests to build a Date from a literal.
func day(s string) Date { return MustParseDate(s) }

// testBalance is the balance used by the gate scenarios: a well-funded
// bank, a half-full petty cash pool, and the default ceiling.
func testBalance() Balance {
	return Balance{
		Bank:           M(5000),
		PettyCash:      M(250),
		CashInHand:     M(0),
		PettyCashLimit: M(500),
	}
}

// serviceIncome is a helper to build a typical service income record.
func serviceIncome(date string, total float64, method PaymentMethod) IncomeRecord {
	return NewIncome(day(date), "10:30", ServiceIncome, "Sunday Service", "", "", M(total), M(0), M(0), method)
}

// expense is a helper to build an expense record.
func expense(date string, amount float64, source Account) ExpenseRecord {
	return NewExpense(day(date), "supplies", Operational, M(amount), source)
}

// transfer is a helper to build a transfer record.
func transfer(date string, amount float64, from, to Account) TransferRecord {
	return NewTransfer(day(date), from, to, M(amount), "")
}
