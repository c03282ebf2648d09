package books

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Book is the whole application state: the three record sequences, the
// user list and the balance cache. It is owned by exactly one caller at a
// time (the CLI process); every operation runs to completion before the
// next one, so there is no locking. All mutation funnels through the
// validation gate, then the balance delta, then the append, then a full
// rewrite of the persisted state.
//
// Two processes mutating the same books directory concurrently can
// silently overwrite each other at whole-blob granularity. That is an
// accepted limitation of the design, not a safe property.
type Book struct {
	incomes   []IncomeRecord
	expenses  []ExpenseRecord
	transfers []TransferRecord
	users     []UserAccount
	balance   Balance

	dir string // books directory; empty for an in-memory book
}

// NewBook creates an in-memory book with default balances and the root
// administrator. It persists nothing until given a directory via SaveBook.
func NewBook() *Book {
	return &Book{
		users:   []UserAccount{rootUser()},
		balance: DefaultBalance(),
	}
}

// Balance returns the current balance snapshot.
func (b *Book) Balance() Balance { return b.balance }

// Incomes returns the income sequence in entry order.
func (b *Book) Incomes() []IncomeRecord { return slices.Clone(b.incomes) }

// Expenses returns the expense sequence in entry order.
func (b *Book) Expenses() []ExpenseRecord { return slices.Clone(b.expenses) }

// Transfers returns the transfer sequence in entry order.
func (b *Book) Transfers() []TransferRecord { return slices.Clone(b.transfers) }

// Users returns the user list.
func (b *Book) Users() []UserAccount { return slices.Clone(b.users) }

// AppendIncome validates, appends and applies an income record, then
// persists the updated state.
func (b *Book) AppendIncome(rec IncomeRecord) error {
	if err := Check(rec, b.balance); err != nil {
		return err
	}
	b.incomes = append(b.incomes, rec)
	b.balance = b.balance.Apply(rec)
	return b.persist()
}

// AppendExpense validates, appends and applies an expense record, then
// persists the updated state. On rejection nothing changes.
func (b *Book) AppendExpense(rec ExpenseRecord) error {
	if err := Check(rec, b.balance); err != nil {
		return err
	}
	b.expenses = append(b.expenses, rec)
	b.balance = b.balance.Apply(rec)
	return b.persist()
}

// AppendTransfer validates, appends and applies a transfer record, then
// persists the updated state. On rejection nothing changes.
func (b *Book) AppendTransfer(rec TransferRecord) error {
	if err := Check(rec, b.balance); err != nil {
		return err
	}
	b.transfers = append(b.transfers, rec)
	b.balance = b.balance.Apply(rec)
	return b.persist()
}

// SetPettyCashLimit is the explicit policy-change operation for the
// petty-cash ceiling; no transaction delta ever touches the limit.
func (b *Book) SetPettyCashLimit(limit Money) error {
	if limit.IsNegative() {
		return fmt.Errorf("petty cash limit must not be negative, got %s", limit)
	}
	b.balance.PettyCashLimit = limit
	return b.persist()
}

// Reset clears all three record sequences and returns the balance to its
// defaults. Users are unaffected. The operation is destructive and
// irreversible; the caller boundary is responsible for confirmation.
func (b *Book) Reset() error {
	b.incomes = nil
	b.expenses = nil
	b.transfers = nil
	b.balance = DefaultBalance()
	return b.persist()
}

// Authenticate finds the user with the given username and password by
// linear scan over the plaintext user list.
func (b *Book) Authenticate(username, password string) (UserAccount, error) {
	for _, u := range b.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return UserAccount{}, ErrInvalidCredentials
}

// AddUser creates a user. Usernames are unique.
func (b *Book) AddUser(username, password string, role Role) (UserAccount, error) {
	if username == "" {
		return UserAccount{}, fmt.Errorf("username is missing")
	}
	for _, u := range b.users {
		if u.Username == username {
			return UserAccount{}, DuplicateUsernameError{Username: username}
		}
	}
	u := UserAccount{ID: uuid.NewString(), Username: username, Password: password, Role: role}
	b.users = append(b.users, u)
	if err := b.persist(); err != nil {
		return UserAccount{}, err
	}
	return u, nil
}

// RemoveUser deletes the user with the target id. The root administrator
// is permanent and no caller may delete their own account.
func (b *Book) RemoveUser(callerID, targetID string) error {
	idx := slices.IndexFunc(b.users, func(u UserAccount) bool { return u.ID == targetID })
	if idx < 0 {
		return fmt.Errorf("no user with id %q", targetID)
	}
	if b.users[idx].Username == RootUsername || targetID == callerID {
		return ErrProtectedAccount
	}
	b.users = slices.Delete(b.users, idx, idx+1)
	return b.persist()
}

// Drift is the per-account difference between the stored balance cache and
// a balance replayed from the full record history.
type Drift struct {
	Account  Account
	Stored   Money
	Replayed Money
}

// Verify replays the whole record history from the default opening balance
// and compares the result with the stored cache. It reports drift without
// correcting it: the cache is trusted, divergence is only surfaced.
func (b *Book) Verify() []Drift {
	replayed := DefaultBalance()
	replayed.PettyCashLimit = b.balance.PettyCashLimit // policy, not a delta
	for _, rec := range b.records() {
		replayed = replayed.Apply(rec)
	}
	var drifts []Drift
	for _, a := range Accounts {
		if !b.balance.Of(a).Equal(replayed.Of(a)) {
			drifts = append(drifts, Drift{Account: a, Stored: b.balance.Of(a), Replayed: replayed.Of(a)})
		}
	}
	return drifts
}

// records returns every record in entry order, incomes first. Replays only
// need the multiset of deltas, so grouping by type is fine.
func (b *Book) records() []Record {
	recs := make([]Record, 0, len(b.incomes)+len(b.expenses)+len(b.transfers))
	for _, r := range b.incomes {
		recs = append(recs, r)
	}
	for _, r := range b.expenses {
		recs = append(recs, r)
	}
	for _, r := range b.transfers {
		recs = append(recs, r)
	}
	return recs
}

// sortByDateDesc stable-sorts feed rows descending by date; rows on the
// same day keep their original entry order.
func sortByDateDesc(rows []FeedEntry) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
}
