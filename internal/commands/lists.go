package commands

import (
	"context"
	"flag"
	"io"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/output"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd implements the lists command.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print all lists" }
func (c *ListsCmd) Usage() string     { return "todos lists [common flags]" }
func (c *ListsCmd) NeedsStore() bool  { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	snap, code := view(ctx, cfg, env, errOut)
	if code != exitcode.Success {
		return code
	}
	output.FormatLists(out, env.Ops.Lists(snap))
	return exitcode.Success
}
