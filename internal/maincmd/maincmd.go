// Package maincmd implements the rlox command-line entry point: flag
// parsing and dispatch, built on github.com/mna/mainer - mainer.Stdio for
// injected I/O and mainer.Parser for struct-tag flags. The positional
// argument contract is independent of mainer: zero args is the REPL, one is
// a script path, two or more is a usage error (exit 64). rlox installs no
// SIGINT handler: the REPL's read loop blocks on stdin between lines, and
// Go's default SIGINT disposition (terminate) is the wanted behavior, so
// there's nothing to wire up.
package maincmd

import (
	"fmt"

	"github.com/loxlang/rlox/internal/runner"
	"github.com/mna/mainer"
)

const binName = "rlox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [script]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [script]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox scripting language.

With no script argument, %[1]s starts an interactive prompt, reading one
source fragment per line against a persistent global scope until an empty
line is entered. With one script argument, it reads and runs that file.
Two or more positional arguments is a usage error.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --tokenize                Print the script's token stream instead of
                                  running it (requires a script argument).
       --parse                   Print the script's parsed syntax tree
                                  instead of running it (requires a script
                                  argument).
`, binName)
)

// Cmd holds rlox's parsed flags and arguments.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help     bool `flag:"h,help"`
	Version  bool `flag:"v,version"`
	Tokenize bool `flag:"tokenize"`
	Parse    bool `flag:"parse"`

	args []string
}

func (c *Cmd) SetArgs(args []string)    { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}

// Validate enforces the positional-argument contract and the debug flags'
// requirement of exactly one script argument.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if c.Tokenize && c.Parse {
		return fmt.Errorf("--tokenize and --parse are mutually exclusive")
	}
	if (c.Tokenize || c.Parse) && len(c.args) != 1 {
		return fmt.Errorf("--tokenize/--parse require exactly one script argument")
	}
	return nil
}

// Main is rlox's entry point: parse flags, then dispatch to the debug
// printers, the REPL, or file execution depending on the positional
// arguments. The script/REPL path exits 0/64/65/70;
// --help/--version/flag-parse-failure use mainer's own codes, since those
// are ambient CLI concerns outside the language's contract.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	cfg, err := loadReplConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", configFileName, err)
	}

	switch {
	case c.Tokenize:
		return mainer.ExitCode(runDebug(stdio, c.args[0], debugTokenize))
	case c.Parse:
		return mainer.ExitCode(runDebug(stdio, c.args[0], debugParse))
	case len(c.args) == 0:
		return mainer.ExitCode(runner.RunPromptWithConfig(stdio.Stdin, stdio.Stdout, stdio.Stderr, cfg.prompt(), cfg.maxCallDepth()))
	case len(c.args) == 1:
		return mainer.ExitCode(runner.RunFileWithMaxCallDepth(c.args[0], stdio.Stdout, stdio.Stderr, cfg.maxCallDepth()))
	default:
		fmt.Fprintf(stdio.Stderr, "usage error: at most one script argument is allowed\n%s", shortUsage)
		return mainer.ExitCode(runner.ExitUsage)
	}
}
