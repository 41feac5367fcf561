package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todos/internal/config"
	"todos/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todos help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	writeAliases(out, DefaultRegistry)
	return exitcode.Success
}

// writeAliases lists each command's alternative names.
func writeAliases(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "\nAliases:")
	for _, cmd := range r.All() {
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(w, "  %-12s %s\n", cmd.Name(), strings.Join(aliases, ", "))
		}
	}
}

const helpText = `Usage:
  todos                                               Print all lists
  todos lists [common flags]
  todos show [common flags] [--all] <list-id>
  todos newlist [common flags] [--print-id] <title...>
  todos renamelist [common flags] <list-id> <title...>
  todos rmlist [common flags] [--force] <list-id>
  todos add [common flags] [--print-id] <list-id> <title...>
  todos toggle [common flags] <list-id> <todo-id>
  todos rename [common flags] <list-id> <todo-id> <title...>
  todos rm [common flags] <list-id> <todo-id>
  todos doneall [common flags] <list-id>
  todos import [common flags]
  todos serve [common flags] [--addr <addr>]
  todos login [common flags]
  todos logout [common flags]
  todos help
  todos version

Common flags:
  --config <dir>     Override config directory
  --session <name>   Operate on another session
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
