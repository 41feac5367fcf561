package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/backend/googletasks"
	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/service"
	"todos/internal/todo"
)

func init() {
	Register(&ImportCmd{})
}

// Importer fetches lists from an external source.
type Importer interface {
	FetchAll(ctx context.Context) ([]service.ImportList, error)
}

// ImportCmd implements the import command.
type ImportCmd struct {
	source Importer
}

// SetSource replaces the Google Tasks client (for testing).
func (c *ImportCmd) SetSource(src Importer) {
	c.source = src
}

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return nil }
func (c *ImportCmd) Synopsis() string  { return "Import lists from Google Tasks" }
func (c *ImportCmd) Usage() string     { return "todos import [common flags]" }
func (c *ImportCmd) NeedsStore() bool  { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	src := c.source
	if src == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: todos login)")
			return exitcode.AuthError
		}
		client, err := googletasks.New(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		}
		src = client
	}

	lists, err := src.FetchAll(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	cfg.Log().Debug("fetched remote lists", "count", len(lists))

	return apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		return env.Ops.Import(snap, lists)
	}, out, errOut)
}
