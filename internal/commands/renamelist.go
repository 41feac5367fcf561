package commands

import (
	"context"
	"flag"
	"io"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/service"
	"todos/internal/todo"
)

func init() {
	Register(&RenameListCmd{})
}

// RenameListCmd implements the renamelist command.
type RenameListCmd struct{}

func (c *RenameListCmd) Name() string      { return "renamelist" }
func (c *RenameListCmd) Aliases() []string { return nil }
func (c *RenameListCmd) Synopsis() string  { return "Rename a list" }
func (c *RenameListCmd) Usage() string     { return "todos renamelist [common flags] <list-id> <title...>" }
func (c *RenameListCmd) NeedsStore() bool  { return true }

func (c *RenameListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RenameListCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !requireArgs(args, 1, "list id", errOut) {
		return exitcode.UserError
	}
	listID, title := args[0], joinTitle(args[1:])
	return apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		return env.Ops.RenameList(snap, listID, title)
	}, out, errOut)
}
