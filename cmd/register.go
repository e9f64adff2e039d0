package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store/auth"
	"github.com/google/subcommands"
)

type registerCmd struct {
	username string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a user allowed to run the shell" }
func (*registerCmd) Usage() string {
	return `stk register [-u <username>]

  Creates a user in the users database. The password is prompted for.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username, prompted for when empty")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	users, err := auth.Open(ctx, authPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening users database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer users.Close()

	p := newPrompter(os.Stdin, os.Stdout)
	if err := register(ctx, users, p, c.username); err != nil {
		fmt.Fprintf(os.Stderr, "Registration failed: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Registration successful! You can now log in.")
	return subcommands.ExitSuccess
}

// register prompts for the missing credentials and creates the user.
func register(ctx context.Context, users *auth.Manager, p *prompter, username string) error {
	var err error
	if username == "" {
		if username, err = p.ask("Choose a unique username: "); err != nil {
			return err
		}
	}
	password, err := p.password("Choose a password: ")
	if err != nil {
		return err
	}
	return users.Register(ctx, username, password)
}
