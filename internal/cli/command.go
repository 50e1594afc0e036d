package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines a CLI command with unified help generation.
type Command struct {
	// Flags defines command-specific flags.
	// The FlagSet name is not used - command identity comes from Usage.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "kpd" in help.
	// Includes the command name and arguments.
	// Examples: "add <description> [<priority>]", "next [flags]"
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Long is the full description shown in command help.
	// If empty, Short is used instead.
	Long string

	// Exec runs the command after flags are parsed.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-38s %s", c.Usage, c.Short)
}

// PrintHelp prints the full help output for "kpd <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: kpd", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")

		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command. Returns exit code.
// Handles error printing internally for consistent output ordering.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag output

	flagArgs, positional := c.splitArgs(args)

	err := c.Flags.Parse(flagArgs)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)

			return exitOK
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o.Stderr())

		return exitUsage
	}

	return o.Finish(c.Exec(ctx, o, append(c.Flags.Args(), positional...)))
}

// splitArgs separates the flags the command defines from everything else.
// A dash-prefixed argument that is neither -h, --help nor a defined flag
// is free text, so descriptions like "-5 degrees" reach Exec untouched.
// Arguments after "--" are always positional.
func (c *Command) splitArgs(args []string) ([]string, []string) {
	var flagArgs, positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)

			break
		}

		f, inline, ok := c.lookupFlag(arg)
		if !ok {
			positional = append(positional, arg)

			continue
		}

		flagArgs = append(flagArgs, arg)

		if f != nil && !inline && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	return flagArgs, positional
}

// lookupFlag reports whether arg names -h, --help or a defined flag, and
// whether its value is attached. f is nil for the help flags.
func (c *Command) lookupFlag(arg string) (*flag.Flag, bool, bool) {
	if arg == "-h" || arg == "--help" {
		return c.Flags.Lookup("help"), false, true
	}

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, inline := strings.Cut(name, "=")
		if name == "" {
			return nil, false, false
		}

		f := c.Flags.Lookup(name)

		return f, inline, f != nil
	}

	if len(arg) < 2 || arg[0] != '-' {
		return nil, false, false
	}

	f := c.Flags.ShorthandLookup(arg[1:2])

	return f, len(arg) > 2, f != nil
}
