package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

type addUserCmd struct {
	username string
	password string
	admin    bool
}

func (*addUserCmd) Name() string     { return "add-user" }
func (*addUserCmd) Synopsis() string { return "create a user" }
func (*addUserCmd) Usage() string {
	return `sfb add-user -u <username> -p <password> [-admin]

  Creates a user. Usernames are unique. Requires the Admin role.
`
}

func (c *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the new user.")
	f.StringVar(&c.password, "p", "", "Password of the new user.")
	f.BoolVar(&c.admin, "admin", false, "Grant the Admin role.")
}

func (c *addUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := requireAdmin(); err != nil {
		return fail(err)
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	role := books.User
	if c.admin {
		role = books.Admin
	}
	user, err := book.AddUser(c.username, c.password, role)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created user %s (%s)\n", user.Username, user.Role)
	return subcommands.ExitSuccess
}

type rmUserCmd struct {
	username string
}

func (*rmUserCmd) Name() string     { return "rm-user" }
func (*rmUserCmd) Synopsis() string { return "delete a user" }
func (*rmUserCmd) Usage() string {
	return `sfb rm-user -u <username>

  Deletes a user. The root administrator is permanent and no one may
  delete their own account. Requires the Admin role.
`
}

func (c *rmUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the user to delete.")
}

func (c *rmUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	caller, err := requireAdmin()
	if err != nil {
		return fail(err)
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	var targetID string
	for _, u := range book.Users() {
		if u.Username == c.username {
			targetID = u.ID
			break
		}
	}
	if targetID == "" {
		return fail(fmt.Errorf("no user named %q", c.username))
	}
	if err := book.RemoveUser(caller.ID, targetID); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted user %s\n", c.username)
	return subcommands.ExitSuccess
}

type usersCmd struct{}

func (*usersCmd) Name() string             { return "users" }
func (*usersCmd) Synopsis() string         { return "list users" }
func (*usersCmd) Usage() string            { return "sfb users\n\n  Lists all users. Requires the Admin role.\n" }
func (*usersCmd) SetFlags(_ *flag.FlagSet) {}

func (c *usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := requireAdmin(); err != nil {
		return fail(err)
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	for _, u := range book.Users() {
		fmt.Printf("%s\t%s\n", u.Username, u.Role)
	}
	return subcommands.ExitSuccess
}
