package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/service"
	"todos/internal/todo"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	printID bool
}

// SetPrintID sets the print-id flag (for testing).
func (c *AddCmd) SetPrintID(printID bool) {
	c.printID = printID
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a todo to a list" }
func (c *AddCmd) Usage() string     { return "todos add [common flags] [--print-id] <list-id> <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.printID, "print-id", false, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !requireArgs(args, 1, "list id", errOut) {
		return exitcode.UserError
	}
	listID, title := args[0], joinTitle(args[1:])

	var created int
	code := apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		res, err := env.Ops.AddTask(snap, listID, title)
		created = res.ID
		return res, err
	}, out, errOut)

	if code == exitcode.Success && c.printID {
		fmt.Fprintln(out, created)
	}
	return code
}
