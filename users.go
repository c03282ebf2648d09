package books

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Role is the binary authorization flag carried by a user.
type Role string

const (
	Admin Role = "Admin"
	User  Role = "User"
)

// RootUsername names the distinguished administrator that always exists
// and can never be deleted.
const RootUsername = "root"

// defaultRootPassword is the fixed first-run password of the root admin.
const defaultRootPassword = "1234"

// UserAccount is a login of the bookkeeping tool. Passwords are stored in
// plaintext and checked by linear scan: this is deliberately not a
// security design, it is the flat user list of a single-tenant tool. Do
// not reuse real passwords here.
type UserAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the user carries the Admin role.
func (u UserAccount) IsAdmin() bool { return u.Role == Admin }

// rootUser returns the bootstrap root administrator.
func rootUser() UserAccount {
	return UserAccount{
		ID:       uuid.NewString(),
		Username: RootUsername,
		Password: defaultRootPassword,
		Role:     Admin,
	}
}

// MarshalJSON persists the user with a stable field order.
func (u UserAccount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", u.ID)
	w.Append("username", u.Username)
	w.Append("password", u.Password)
	w.Append("role", u.Role)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a user.
func (u *UserAccount) UnmarshalJSON(data []byte) error {
	type plain UserAccount
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*u = UserAccount(temp)
	return nil
}
