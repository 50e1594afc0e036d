package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func priorityCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("priority", flag.ContinueOnError),
		Usage: "priority [<number>] [<priority>]",
		Short: "Set task priority",
		Long: `Set the priority of the selected tasks, or of the most urgent open task.
Without <priority> the explicit marker is removed and the task falls back
to the default priority (medium).`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			parsed, err := parsePriorityArgs(args, true)
			if err != nil {
				return err
			}

			return a.withDocument(func(doc *document) error {
				return execPriority(o, a, doc, parsed)
			})
		},
	}
}

type priorityArgs struct {
	target   target
	priority todo.Priority
	explicit bool
}

func parsePriorityArgs(args []string, allowNumber bool) (priorityArgs, error) {
	parsed := priorityArgs{priority: todo.DefaultPriority}

	tgt, rest, err := takeSelector(args, allowNumber)
	if err != nil {
		return priorityArgs{}, err
	}

	parsed.target = tgt

	switch len(rest) {
	case 0:
	case 1:
		priority, ok := resolvePriority(rest[0])
		if !ok {
			if allowNumber && tgt.selector == "" {
				return priorityArgs{}, invalidArg(rest[0], "number or priority")
			}

			return priorityArgs{}, invalidArg(rest[0], "priority")
		}

		parsed.priority = priority
		parsed.explicit = true
	default:
		return priorityArgs{}, errTooManyArgs
	}

	return parsed, nil
}

func execPriority(o *IO, a *app, doc *document, parsed priorityArgs) error {
	mask, err := parsed.target.mask(doc.list, todo.HighestOpen)
	if err != nil {
		return err
	}

	changed := false

	for _, rec := range doc.list.Selected(mask) {
		changed = changed || rec.Priority != parsed.priority || rec.PriorityExplicit != parsed.explicit
		rec.Priority = parsed.priority
		rec.PriorityExplicit = parsed.explicit
	}

	if changed {
		if err := a.save(doc, doc.list); err != nil {
			return err
		}
	}

	a.render.Selected(o, doc.list, mask)

	return nil
}
