package books

import (
	"errors"
	"fmt"
)

// Error values reported by the validation gate and the user operations.
// All are recoverable-by-user conditions surfaced at the point of the
// attempted action; a rejected mutation leaves all state untouched.
var (
	// ErrIdenticalAccounts rejects a transfer whose source and destination
	// are the same account.
	ErrIdenticalAccounts = errors.New("transfer accounts must differ")
	// ErrProtectedAccount rejects deleting the root administrator or the
	// caller's own account.
	ErrProtectedAccount = errors.New("account is protected and cannot be deleted")
	// ErrInvalidCredentials rejects a login with an unknown username or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// InsufficientFundsError rejects an expense or transfer that exceeds the
// current balance of its source account.
type InsufficientFundsError struct {
	Account   Account
	Available Money
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in %s, available %s", e.Account, e.Available)
}

// LimitExceededError rejects a transfer into petty cash that would push the
// pool over its ceiling.
type LimitExceededError struct {
	Projected Money
	Limit     Money
}

func (e LimitExceededError) Error() string {
	return fmt.Sprintf("petty cash limit exceeded: projected %s over limit %s", e.Projected, e.Limit)
}

// DuplicateUsernameError rejects creating a user whose username is taken.
type DuplicateUsernameError struct {
	Username string
}

func (e DuplicateUsernameError) Error() string {
	return fmt.Sprintf("username %q already exists", e.Username)
}

// Check decides, before a record is accepted, whether the resulting state
// is admissible. It is a pure function of the proposed record and the
// current balance; it has no side effect, so rejecting a record changes
// nothing and submitting the same record again yields the same answer.
//
// Rules in order, first failing rule wins:
//  1. Expense/Transfer: amount must not exceed the source account balance.
//  2. Transfer: from and to must differ.
//  3. Transfer into petty cash: the projected balance must not exceed the
//     limit (the bound is inclusive: landing exactly on the limit passes).
//
// Income is unconditionally accepted: it only ever increases a balance, so
// no insufficiency is possible.
func Check(rec Record, bal Balance) error {
	switch r := rec.(type) {
	case ExpenseRecord:
		if available := bal.Of(r.Source); r.Amount.GreaterThan(available) {
			return InsufficientFundsError{Account: r.Source, Available: available}
		}
	case TransferRecord:
		if available := bal.Of(r.From); r.Amount.GreaterThan(available) {
			return InsufficientFundsError{Account: r.From, Available: available}
		}
		if r.From == r.To {
			return ErrIdenticalAccounts
		}
		if r.To == PettyCash {
			if projected := bal.PettyCash.Add(r.Amount); projected.GreaterThan(bal.PettyCashLimit) {
				return LimitExceededError{Projected: projected, Limit: bal.PettyCashLimit}
			}
		}
	}
	return nil
}
