package books

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// encodeLines writes one JSON object per line (JSONL) for each item.
func encodeLines[T any](w io.Writer, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// decodeLines reads JSONL records, skipping empty lines, preserving order.
func decodeLines[T any](r io.Reader) ([]T, error) {
	var items []T
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("could not decode line %q: %w", string(line), err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return items, nil
}

// EncodeIncomes writes the income sequence in JSONL format.
func EncodeIncomes(w io.Writer, recs []IncomeRecord) error { return encodeLines(w, recs) }

// DecodeIncomes reads an income sequence from JSONL data.
func DecodeIncomes(r io.Reader) ([]IncomeRecord, error) { return decodeLines[IncomeRecord](r) }

// EncodeExpenses writes the expense sequence in JSONL format.
func EncodeExpenses(w io.Writer, recs []ExpenseRecord) error { return encodeLines(w, recs) }

// DecodeExpenses reads an expense sequence from JSONL data.
func DecodeExpenses(r io.Reader) ([]ExpenseRecord, error) { return decodeLines[ExpenseRecord](r) }

// EncodeTransfers writes the transfer sequence in JSONL format.
func EncodeTransfers(w io.Writer, recs []TransferRecord) error { return encodeLines(w, recs) }

// DecodeTransfers reads a transfer sequence from JSONL data.
func DecodeTransfers(r io.Reader) ([]TransferRecord, error) { return decodeLines[TransferRecord](r) }

// EncodeUsers writes the user list as a JSON array.
func EncodeUsers(w io.Writer, users []UserAccount) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// DecodeUsers reads the user list.
func DecodeUsers(r io.Reader) ([]UserAccount, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var users []UserAccount
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("could not decode users: %w", err)
	}
	return users, nil
}

// EncodeBalance writes the balance blob.
func EncodeBalance(w io.Writer, b Balance) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal balance: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// DecodeBalance reads the balance blob.
func DecodeBalance(r io.Reader) (Balance, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Balance{}, err
	}
	var b Balance
	if err := json.Unmarshal(data, &b); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// Dump is the read-only serialization of the full application state, for
// the admin data explorer. No behavior depends on its shape beyond
// display and export.
func (b *Book) Dump() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("incomes", b.incomes)
	w.Append("expenses", b.expenses)
	w.Append("transfers", b.transfers)
	w.Append("balances", b.balance)
	w.Append("users", b.users)
	raw, err := w.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out json.RawMessage = raw
	return json.MarshalIndent(out, "", "  ")
}
