package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

func sessionPath() string {
	return filepath.Join(*booksDir, books.SessionFile)
}

// currentUser reads the active session. It reports an error when nobody is
// signed in.
func currentUser() (books.UserAccount, error) {
	data, err := os.ReadFile(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return books.UserAccount{}, errors.New("not signed in, run 'sfb login' first")
	}
	if err != nil {
		return books.UserAccount{}, fmt.Errorf("could not read session: %w", err)
	}
	var u books.UserAccount
	if err := json.Unmarshal(data, &u); err != nil {
		return books.UserAccount{}, fmt.Errorf("could not decode session: %w", err)
	}
	return u, nil
}

// requireAdmin reads the active session and checks the Admin role.
func requireAdmin() (books.UserAccount, error) {
	u, err := currentUser()
	if err != nil {
		return books.UserAccount{}, err
	}
	if !u.IsAdmin() {
		return books.UserAccount{}, fmt.Errorf("user %q is not an administrator", u.Username)
	}
	return u, nil
}

func saveSession(u books.UserAccount) error {
	if err := os.MkdirAll(*booksDir, 0755); err != nil {
		return err
	}
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), data, 0600)
}

func clearSession() error {
	err := os.Remove(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and start a session" }
func (*loginCmd) Usage() string {
	return `sfb login -u <username> -p <password>

  Authenticates against the user list and records the session. The first
  run bootstraps the root administrator with its default password.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username.")
	f.StringVar(&c.password, "p", "", "Password.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	user, err := book.Authenticate(c.username, c.password)
	if err != nil {
		return fail(err)
	}
	if err := saveSession(user); err != nil {
		return fail(fmt.Errorf("could not record session: %w", err))
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Role)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "sign out and clear the session" }
func (*logoutCmd) Usage() string            { return "sfb logout\n\n  Clears the active session.\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := clearSession(); err != nil {
		return fail(err)
	}
	fmt.Println("Signed out.")
	return subcommands.ExitSuccess
}
