package books

import (
	"errors"
	"testing"
)

func TestBook_Authenticate(t *testing.T) {
	b := NewBook()
	if _, err := b.AddUser("alice", "pw", User); err != nil {
		t.Fatalf("AddUser() = %v", err)
	}

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "root first run", username: "root", password: "1234"},
		{name: "regular user", username: "alice", password: "pw"},
		{name: "wrong password", username: "alice", password: "nope", wantErr: true},
		{name: "unknown user", username: "bob", password: "pw", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := b.Authenticate(tc.username, tc.password)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Errorf("Authenticate() = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() = %v, want accepted", err)
			}
			if u.Username != tc.username {
				t.Errorf("Authenticate() = %q, want %q", u.Username, tc.username)
			}
		})
	}
}

func TestBook_AddUser(t *testing.T) {
	b := NewBook()

	u, err := b.AddUser("alice", "pw", User)
	if err != nil {
		t.Fatalf("AddUser(alice) = %v, want accepted", err)
	}
	if u.ID == "" {
		t.Error("AddUser() assigned no id")
	}
	if u.IsAdmin() {
		t.Error("AddUser(User) created an admin")
	}

	_, err = b.AddUser("alice", "other", Admin)
	var dup DuplicateUsernameError
	if !errors.As(err, &dup) {
		t.Fatalf("AddUser(alice) again = %v, want DuplicateUsernameError", err)
	}
	if dup.Username != "alice" {
		t.Errorf("DuplicateUsernameError.Username = %q, want %q", dup.Username, "alice")
	}

	if _, err := b.AddUser("", "pw", User); err == nil {
		t.Error("AddUser(\"\") accepted, want error")
	}
}

func TestBook_RemoveUser(t *testing.T) {
	b := NewBook()
	root := b.Users()[0]
	alice, err := b.AddUser("alice", "pw", Admin)
	if err != nil {
		t.Fatalf("AddUser(alice) = %v", err)
	}
	bob, err := b.AddUser("bob", "pw", User)
	if err != nil {
		t.Fatalf("AddUser(bob) = %v", err)
	}

	testCases := []struct {
		name     string
		callerID string
		targetID string
		wantErr  error
	}{
		{name: "root is permanent", callerID: alice.ID, targetID: root.ID, wantErr: ErrProtectedAccount},
		{name: "no self deletion", callerID: alice.ID, targetID: alice.ID, wantErr: ErrProtectedAccount},
		{name: "unknown target", callerID: alice.ID, targetID: "missing", wantErr: errors.New("any")},
		{name: "another user", callerID: alice.ID, targetID: bob.ID},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.RemoveUser(tc.callerID, tc.targetID)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("RemoveUser() = %v, want accepted", err)
				}
				return
			}
			if err == nil {
				t.Fatal("RemoveUser() accepted, want rejection")
			}
			if errors.Is(tc.wantErr, ErrProtectedAccount) && !errors.Is(err, ErrProtectedAccount) {
				t.Errorf("RemoveUser() = %v, want ErrProtectedAccount", err)
			}
		})
	}

	if got := len(b.Users()); got != 2 {
		t.Errorf("len(Users()) = %d, want 2 (root and alice)", got)
	}
}
