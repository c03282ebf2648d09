package books

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of the persisted blobs, one per logical entity.
const (
	incomesFile   = "incomes.jsonl"
	expensesFile  = "expenses.jsonl"
	transfersFile = "transfers.jsonl"
	usersFile     = "users.json"
	balanceFile   = "balance.json"
)

// SessionFile holds the logged-in user. It lives beside the durable blobs
// but is not part of them: logout removes it.
const SessionFile = ".session.json"

// LoadBook reads the book from the given directory. Missing blobs fall
// back to their documented defaults: empty record sequences, the default
// balance, and a user list containing only the root administrator. The
// blobs are read once here; every subsequent mutation rewrites them.
func LoadBook(dir string) (*Book, error) {
	b := NewBook()
	b.dir = dir

	if recs, ok, err := loadBlob(dir, incomesFile, DecodeIncomes); err != nil {
		return nil, err
	} else if ok {
		b.incomes = recs
	}
	if recs, ok, err := loadBlob(dir, expensesFile, DecodeExpenses); err != nil {
		return nil, err
	} else if ok {
		b.expenses = recs
	}
	if recs, ok, err := loadBlob(dir, transfersFile, DecodeTransfers); err != nil {
		return nil, err
	} else if ok {
		b.transfers = recs
	}
	if users, ok, err := loadBlob(dir, usersFile, DecodeUsers); err != nil {
		return nil, err
	} else if ok {
		b.users = users
	}
	if bal, ok, err := loadBlob(dir, balanceFile, DecodeBalance); err != nil {
		return nil, err
	} else if ok {
		b.balance = bal
	}
	return b, nil
}

// loadBlob opens and decodes one blob. The boolean is false when the blob
// does not exist yet (first run).
func loadBlob[T any](dir, name string, decode func(r io.Reader) (T, error)) (T, bool, error) {
	var zero T
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("could not open %s: %w", name, err)
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return zero, false, fmt.Errorf("could not decode %s: %w", name, err)
	}
	return v, true, nil
}

// SaveBook writes every blob of the book under dir and remembers dir for
// subsequent mutations.
func SaveBook(dir string, b *Book) error {
	b.dir = dir
	return b.persist()
}

// persist rewrites the whole persisted state synchronously. A book with no
// directory is in-memory only and persists nothing. Mutating operations
// call this after the in-memory update, so no partial-write window is
// exposed to callers: either the operation returns nil and the state is on
// disk, or it returns an error.
func (b *Book) persist() error {
	if b.dir == "" {
		return nil
	}
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("could not create books directory %q: %w", b.dir, err)
	}
	if err := writeBlob(b.dir, incomesFile, b.incomes, EncodeIncomes); err != nil {
		return err
	}
	if err := writeBlob(b.dir, expensesFile, b.expenses, EncodeExpenses); err != nil {
		return err
	}
	if err := writeBlob(b.dir, transfersFile, b.transfers, EncodeTransfers); err != nil {
		return err
	}
	if err := writeBlob(b.dir, usersFile, b.users, EncodeUsers); err != nil {
		return err
	}
	return writeBlob(b.dir, balanceFile, b.balance, EncodeBalance)
}

func writeBlob[T any](dir, name string, v T, encode func(w io.Writer, v T) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("error opening %s for writing: %w", name, err)
	}
	defer f.Close()
	if err := encode(f, v); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}
