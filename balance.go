package books

import (
	"encoding/json"
	"fmt"
)

// DefaultBank is the opening bank balance of a fresh (or reset) book.
var DefaultBank = M(5000)

// DefaultPettyCashLimit is the ceiling applied to the petty-cash pool
// until an administrator sets another one.
var DefaultPettyCashLimit = M(500)

// Balance is the running-total snapshot of the three cash pools plus the
// petty-cash ceiling. It is the single mutable aggregate of the system: a
// cache of the sum of all record deltas, stored directly rather than
// re-derived from the full history on every read. Nothing reconciles the
// cache with the record history automatically; see Book.Verify.
type Balance struct {
	Bank           Money `json:"bank"`
	PettyCash      Money `json:"pettyCash"`
	CashInHand     Money `json:"cashInHand"`
	PettyCashLimit Money `json:"pettyCashLimit"`
}

// DefaultBalance returns the balance of a fresh book.
func DefaultBalance() Balance {
	return Balance{
		Bank:           DefaultBank,
		PettyCash:      M(0),
		CashInHand:     M(0),
		PettyCashLimit: DefaultPettyCashLimit,
	}
}

// Of returns the current balance of the named account.
func (b Balance) Of(a Account) Money {
	switch a {
	case Bank:
		return b.Bank
	case PettyCash:
		return b.PettyCash
	case CashInHand:
		return b.CashInHand
	}
	return Money{}
}

// Total returns the sum of the three pools.
func (b Balance) Total() Money {
	return b.Bank.Add(b.PettyCash).Add(b.CashInHand)
}

// credit returns a copy of b with amount added to the named account.
func (b Balance) credit(a Account, amount Money) Balance {
	switch a {
	case Bank:
		b.Bank = b.Bank.Add(amount)
	case PettyCash:
		b.PettyCash = b.PettyCash.Add(amount)
	case CashInHand:
		b.CashInHand = b.CashInHand.Add(amount)
	}
	return b
}

// Apply returns the balance after the record's delta. The delta is applied
// exactly once per accepted record, in the same step as the append:
//   - Income credits cash in hand (Cash) or the bank (Bank Transfer).
//   - Expense debits its source account.
//   - Transfer debits the from-account and credits the to-account.
//
// No record touches more than the two accounts implied by its own fields;
// the limit changes only through SetPettyCashLimit, never here.
func (b Balance) Apply(rec Record) Balance {
	switch r := rec.(type) {
	case IncomeRecord:
		return b.credit(r.Credits(), r.Total)
	case ExpenseRecord:
		return b.credit(r.Source, r.Amount.Neg())
	case TransferRecord:
		return b.credit(r.From, r.Amount.Neg()).credit(r.To, r.Amount)
	}
	return b
}

// MarshalJSON persists the balance blob with a stable field order.
func (b Balance) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("bank", b.Bank)
	w.Append("pettyCash", b.PettyCash)
	w.Append("cashInHand", b.CashInHand)
	w.Append("pettyCashLimit", b.PettyCashLimit)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the balance blob.
func (b *Balance) UnmarshalJSON(data []byte) error {
	type plain Balance
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid balance blob: %w", err)
	}
	*b = Balance(temp)
	return nil
}
