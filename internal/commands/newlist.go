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
	Register(&NewListCmd{})
}

// NewListCmd implements the newlist command.
type NewListCmd struct {
	printID bool
}

// SetPrintID sets the print-id flag (for testing).
func (c *NewListCmd) SetPrintID(printID bool) {
	c.printID = printID
}

func (c *NewListCmd) Name() string      { return "newlist" }
func (c *NewListCmd) Aliases() []string { return []string{"createlist", "addlist"} }
func (c *NewListCmd) Synopsis() string  { return "Create a list" }
func (c *NewListCmd) Usage() string     { return "todos newlist [common flags] [--print-id] <title...>" }
func (c *NewListCmd) NeedsStore() bool  { return true }

func (c *NewListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.printID, "print-id", false, "")
}

func (c *NewListCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	title := joinTitle(args)

	var created int
	code := apply(ctx, cfg, env, c.Name(), func(snap todo.Snapshot) (service.Result, error) {
		res, err := env.Ops.CreateList(snap, title)
		created = res.ID
		return res, err
	}, out, errOut)

	if code == exitcode.Success && c.printID {
		fmt.Fprintln(out, created)
	}
	return code
}
