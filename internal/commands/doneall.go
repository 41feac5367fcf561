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
	Register(&DoneAllCmd{})
}

// DoneAllCmd implements the doneall command.
type DoneAllCmd struct{}

func (c *DoneAllCmd) Name() string      { return "doneall" }
func (c *DoneAllCmd) Aliases() []string { return []string{"complete-all"} }
func (c *DoneAllCmd) Synopsis() string  { return "Mark every todo of a list done" }
func (c *DoneAllCmd) Usage() string     { return "todos doneall [common flags] <list-id>" }
func (c *DoneAllCmd) NeedsStore() bool  { return true }

func (c *DoneAllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneAllCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !requireArgs(args, 1, "list id", errOut) {
		return exitcode.UserError
	}
	listID := args[0]
	return apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		return env.Ops.CompleteAll(snap, listID)
	}, out, errOut)
}
