package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/output"
	"todos/internal/service"
	"todos/internal/todo"
)

// operation is one mutating service call against a loaded snapshot.
type operation func(snap todo.Snapshot) (service.Result, error)

// apply runs op as a unit of work on the configured session: load, run,
// save when applied, then report.
func apply(ctx context.Context, cfg *config.Config, env *Env, name string, op operation, out, errOut io.Writer) int {
	snap, err := env.Sessions.Load(ctx, cfg.Session)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	res, err := op(snap)
	if err != nil {
		return reportLookup(cfg, name, err, errOut)
	}

	cfg.Log().Debug("operation finished",
		"op", name,
		"session", cfg.Session,
		"outcome", res.Outcome.String())

	if res.Outcome == service.Rejected {
		for _, msg := range res.Messages {
			fmt.Fprintf(errOut, "error: %s\n", msg)
		}
		return exitcode.UserError
	}

	if err := env.Sessions.Save(ctx, cfg.Session, res.Snapshot); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatMessages(out, res.Messages)
	}
	return exitcode.Success
}

// view loads the configured session for a read-only command.
func view(ctx context.Context, cfg *config.Config, env *Env, errOut io.Writer) (todo.Snapshot, int) {
	snap, err := env.Sessions.Load(ctx, cfg.Session)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return todo.Snapshot{}, exitcode.BackendError
	}
	return snap, exitcode.Success
}

func reportLookup(cfg *config.Config, name string, err error, errOut io.Writer) int {
	if errors.Is(err, todo.ErrNotFound) {
		cfg.Log().Debug("lookup failed", "op", name, "session", cfg.Session, "err", err)
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.BackendError
}

// requireArgs checks that at least n positional arguments were given.
func requireArgs(args []string, n int, what string, errOut io.Writer) bool {
	if len(args) < n {
		fmt.Fprintf(errOut, "error: %s required\n", what)
		return false
	}
	return true
}

// joinTitle forms a title from the remaining positional arguments.
func joinTitle(args []string) string {
	return strings.Join(args, " ")
}
