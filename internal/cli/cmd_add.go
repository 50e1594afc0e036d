package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func addCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("add", flag.ContinueOnError),
		Usage: "add <description> [<priority>]",
		Short: "Add task",
		Long: `Append an open task. Without <priority> the task has the implicit
default priority (medium) and no marker is written.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execAdd(o, a, args)
		},
	}
}

func execAdd(o *IO, a *app, args []string) error {
	if len(args) == 0 {
		return errTooFewArgs
	}

	if len(args) > 2 {
		return errTooManyArgs
	}

	record := todo.Record{Priority: todo.DefaultPriority}

	if err := record.SetText(args[0]); err != nil {
		return err
	}

	if len(args) == 2 {
		priority, ok := resolvePriority(args[1])
		if !ok {
			return invalidArg(args[1], "priority")
		}

		record.Priority = priority
		record.PriorityExplicit = true
	}

	return a.withDocument(func(doc *document) error {
		added, err := doc.list.Append(record)
		if err != nil {
			return err
		}

		if err := a.save(doc, doc.list); err != nil {
			return err
		}

		o.Println(a.render.line(added, 1))

		return nil
	})
}
