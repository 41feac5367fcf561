package commands

import (
	"context"
	"flag"
	"io"
	"strconv"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct {
	all bool
}

// SetAll sets the all flag (for testing).
func (c *ShowCmd) SetAll(all bool) {
	c.all = all
}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return []string{"list"} }
func (c *ShowCmd) Synopsis() string  { return "Print the tasks of a list" }
func (c *ShowCmd) Usage() string     { return "todos show [common flags] [--all] <list-id>" }
func (c *ShowCmd) NeedsStore() bool  { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.all, "a", false, "")
}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if !c.all && !requireArgs(args, 1, "list id", errOut) {
		return exitcode.UserError
	}

	snap, code := view(ctx, cfg, env, errOut)
	if code != exitcode.Success {
		return code
	}

	if c.all {
		lists := env.Ops.Lists(snap)
		if len(lists) == 0 {
			output.FormatLists(out, lists)
			return exitcode.Success
		}
		for _, l := range lists {
			full, err := env.Ops.List(snap, strconv.Itoa(l.ID))
			if err != nil {
				return reportLookup(cfg, c.Name(), err, errOut)
			}
			output.FormatList(out, full)
		}
		return exitcode.Success
	}

	list, err := env.Ops.List(snap, args[0])
	if err != nil {
		return reportLookup(cfg, c.Name(), err, errOut)
	}
	output.FormatList(out, list)
	return exitcode.Success
}
