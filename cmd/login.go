package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store/auth"
	"github.com/google/subcommands"
)

type loginCmd struct {
	username string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check a user's credentials" }
func (*loginCmd) Usage() string {
	return `stk login [-u <username>]

  Checks a username and password against the users database.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username, prompted for when empty")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	users, err := auth.Open(ctx, authPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening users database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer users.Close()

	p := newPrompter(os.Stdin, os.Stdout)
	if err := login(ctx, users, p, c.username); err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Login successful!")
	return subcommands.ExitSuccess
}

// login prompts for the missing credentials and checks them.
func login(ctx context.Context, users *auth.Manager, p *prompter, username string) error {
	var err error
	if username == "" {
		if username, err = p.ask("Enter your username: "); err != nil {
			return err
		}
	}
	password, err := p.password("Enter your password: ")
	if err != nil {
		return err
	}
	return users.Authenticate(ctx, username, password)
}
