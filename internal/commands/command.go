// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todos/internal/config"
	"todos/internal/service"
	"todos/internal/session"
)

// Env carries the collaborators a command works with.
type Env struct {
	// Sessions loads and saves session snapshots.
	Sessions session.Store

	// Ops runs operations against snapshots.
	Ops *service.Service
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes session data.
	// Commands like help, version, login, logout return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths, session, logger).
	// env is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int
}
