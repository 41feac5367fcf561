package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/service"
	"todos/internal/todo"
)

func init() {
	Register(&RmListCmd{})
}

// errListNotEmpty guards rmlist without --force.
var errListNotEmpty = errors.New("list has open todos (use --force)")

// RmListCmd implements the rmlist command.
type RmListCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *RmListCmd) SetForce(force bool) {
	c.force = force
}

func (c *RmListCmd) Name() string      { return "rmlist" }
func (c *RmListCmd) Aliases() []string { return nil }
func (c *RmListCmd) Synopsis() string  { return "Delete a list and its todos" }
func (c *RmListCmd) Usage() string     { return "todos rmlist [common flags] [--force] <list-id>" }
func (c *RmListCmd) NeedsStore() bool  { return true }

func (c *RmListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *RmListCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !requireArgs(args, 1, "list id", errOut) {
		return exitcode.UserError
	}
	listID := args[0]

	blocked := false
	code := apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		if !c.force {
			list, err := env.Ops.List(snap, listID)
			if err != nil {
				return service.Result{}, err
			}
			if list.DoneCount < list.Count {
				blocked = true
				return service.Result{Outcome: service.Rejected, Snapshot: snap}, nil
			}
		}
		return env.Ops.DeleteList(snap, listID)
	}, out, errOut)

	if blocked {
		fmt.Fprintf(errOut, "error: %v\n", errListNotEmpty)
	}
	return code
}
