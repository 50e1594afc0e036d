package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// helpCmd prints usage. commands is read when the command runs, so it can
// list itself.
func helpCmd(commands *[]*Command) *Command {
	return &Command{
		Flags: flag.NewFlagSet("help", flag.ContinueOnError),
		Usage: "help [<command>]",
		Short: "Print this help",
		Exec: func(_ context.Context, o *IO, args []string) error {
			switch len(args) {
			case 0:
				printUsage(o, *commands)
			case 1:
				cmd := lookupCommand(*commands, args[0])
				if cmd == nil {
					return invalidArg(args[0], "command")
				}

				cmd.PrintHelp(o)
			default:
				return errTooManyArgs
			}

			return nil
		},
	}
}

func versionCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("version", flag.ContinueOnError),
		Usage: "version",
		Short: "Print version",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}

			printVersion(o)

			return nil
		},
	}
}
