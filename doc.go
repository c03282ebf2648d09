// Package books implements the bookkeeping core for a small congregation:
// three append-only record sequences (income, expenses, transfers), a
// running balance over three cash pools (bank, petty cash, cash in hand),
// and the validation rules that decide whether a candidate record may
// commit.
//
// The core functionalities include:
//   - Record Store: ordered, write-once sequences of Income, Expense and
//     Transfer records plus the user list, persisted as one blob per
//     entity and rewritten in full on every accepted mutation.
//   - Balance Ledger: the per-record delta rules that keep the three
//     account balances current, including the petty-cash ceiling policy.
//   - Validation Gate: a pure pre-commit check of a candidate record
//     against the current balances; a rejected record leaves all state
//     untouched.
//   - View Projections: read-only derived views (transaction feed,
//     closing totals, filtered reports) computed from the record store.
//
// This package serves as the foundational logic for the `sfb` command-line
// tool; all mutation funnels through the gate, then the ledger, then the
// store, never bypassing that order.
package books
