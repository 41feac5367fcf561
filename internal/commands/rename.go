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
	Register(&RenameCmd{})
}

// RenameCmd implements the rename command.
type RenameCmd struct{}

func (c *RenameCmd) Name() string      { return "rename" }
func (c *RenameCmd) Aliases() []string { return nil }
func (c *RenameCmd) Synopsis() string  { return "Rename a todo" }
func (c *RenameCmd) Usage() string     { return "todos rename [common flags] <list-id> <todo-id> <title...>" }
func (c *RenameCmd) NeedsStore() bool  { return true }

func (c *RenameCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RenameCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !requireArgs(args, 2, "list id and todo id", errOut) {
		return exitcode.UserError
	}
	listID, taskID, title := args[0], args[1], joinTitle(args[2:])
	return apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		return env.Ops.RenameTask(snap, listID, taskID, title)
	}, out, errOut)
}
