package books

import (
	"encoding/json"
	"fmt"
)

// Account identifies one of the three cash pools tracked by the ledger.
// It is a closed enumeration, not an entity: records reference accounts by
// name.
type Account int

const (
	// Bank is the organization's bank account.
	Bank Account = iota
	// PettyCash is the small on-site float, capped by the petty-cash limit.
	PettyCash
	// CashInHand is uncounted cash received but not yet banked.
	CashInHand
)

// Accounts lists every account in display order.
var Accounts = []Account{Bank, PettyCash, CashInHand}

func (a Account) String() string {
	switch a {
	case Bank:
		return "Bank"
	case PettyCash:
		return "Petty Cash"
	case CashInHand:
		return "Cash in Hand"
	default:
		return "unknown"
	}
}

// ParseAccount parses a string into an Account.
func ParseAccount(s string) (Account, error) {
	switch s {
	case "Bank", "bank":
		return Bank, nil
	case "Petty Cash", "petty-cash", "petty":
		return PettyCash, nil
	case "Cash in Hand", "cash-in-hand", "cash":
		return CashInHand, nil
	default:
		return 0, fmt.Errorf("unknown account: %q", s)
	}
}

// MarshalJSON persists the account by its display name.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON reads an account from its display name.
func (a *Account) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
