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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return nil }
func (c *RmCmd) Synopsis() string  { return "Delete a todo" }
func (c *RmCmd) Usage() string     { return "todos rm [common flags] <list-id> <todo-id>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !requireArgs(args, 2, "list id and todo id", errOut) {
		return exitcode.UserError
	}
	listID, taskID := args[0], args[1]
	return apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		return env.Ops.DeleteTask(snap, listID, taskID)
	}, out, errOut)
}
