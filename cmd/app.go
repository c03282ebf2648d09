// Package cmd implements the CLI application to keep the books of a small
// congregation.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/sacredfin/books"
)

// Register registers all subcommands on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&incomeCmd{}, "records")
	c.Register(&expenseCmd{}, "records")
	c.Register(&transferCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&closingCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&verifyCmd{}, "reports")

	c.Register(&limitCmd{}, "administration")
	c.Register(&resetCmd{}, "administration")
	c.Register(&addUserCmd{}, "administration")
	c.Register(&rmUserCmd{}, "administration")
	c.Register(&usersCmd{}, "administration")
	c.Register(&dumpCmd{}, "administration")
}

// as a CLI application it has a very short lived lifecycle, so it is ok to use global variables.

var booksDir = flag.String("books-dir", "books", "Directory holding the persisted book blobs")

// loadBook reads the whole book once for this invocation.
func loadBook() (*books.Book, error) {
	book, err := books.LoadBook(*booksDir)
	if err != nil {
		return nil, fmt.Errorf("could not load books from %q: %w", *booksDir, err)
	}
	return book, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
