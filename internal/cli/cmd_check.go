package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func testCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("test", flag.ContinueOnError),
		Usage: "test",
		Short: "Check if TODO.md exists and has the correct format",
		Long: `Locate and parse the task document. Prints "All correct" if every line is
a valid task; otherwise reports the first malformed line.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}

			return a.withDocument(func(*document) error {
				o.Println("All correct")

				return nil
			})
		},
	}
}
