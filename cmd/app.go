// Package cmd implements the CLI application to manage a store.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/store"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Group is a set of related commands, listed together by the help command.
type Group struct {
	Name     string
	Commands []subcommands.Command
}

// Groups returns all the commands of the application.
func Groups() []Group {
	return []Group{
		{Name: "catalog", Commands: []subcommands.Command{&addCmd{}, &editCmd{}, &deleteCmd{}, &showCmd{}, &listCmd{}}},
		{Name: "transactions", Commands: []subcommands.Command{&recordCmd{typ: store.Sale}, &recordCmd{typ: store.Purchase}, &txCmd{}}},
		{Name: "reports", Commands: []subcommands.Command{&reportCmd{}, &queryCmd{}}},
		{Name: "users", Commands: []subcommands.Command{&registerCmd{}, &loginCmd{}}},
		{Name: "interactive", Commands: []subcommands.Command{&shellCmd{}}},
		{Name: "documentation", Commands: []subcommands.Command{&topicCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Groups() {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Name)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// StoreDirEnv overrides the default store folder.
const StoreDirEnv = "STK_STORE_DIR"

var storeDir = flag.String("store-dir", defaultStoreDir(), "Path to the store folder holding the catalog and the ledger (default from $"+StoreDirEnv+")")
var authDB = flag.String("auth-db", "", "Path to the users database (default users.db in the store folder)")
var verbose = flag.Bool("v", false, "Log debug information to stderr")

func defaultStoreDir() string {
	if dir := os.Getenv(StoreDirEnv); dir != "" {
		return dir
	}
	return ".store"
}

func authPath() string {
	if *authDB != "" {
		return *authDB
	}
	return filepath.Join(*storeDir, "users.db")
}

// newLogger returns a development logger in verbose mode, and a console
// logger limited to warnings otherwise.
func newLogger() *zap.Logger {
	var cfg zap.Config
	if *verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableStacktrace = true
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return zap.NewNop()
	}
	return log
}

// openStore loads the store from the store folder.
func openStore() (*store.Repository, *store.Store) {
	repo := store.NewRepository(*storeDir, newLogger())
	return repo, repo.Load()
}

// saveStore saves s, printing the error if any.
func saveStore(repo *store.Repository, s *store.Store) subcommands.ExitStatus {
	if err := repo.Save(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving the store in %q: %v\n", repo.Dir, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown prints md to stdout, styled when stdout is a terminal.
func printMarkdown(md string) { fprintMarkdown(os.Stdout, md) }

func fprintMarkdown(w io.Writer, md string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, md)
		return
	}
	width := 80
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		width = cols
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
