package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

const formatUsage = "Output format: text, json, or yaml"

func listCmd(a *app) *Command {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	format := flags.StringP("format", "f", formatText, formatUsage)

	return &Command{
		Flags: flags,
		Usage: "list [<status>] [<priority>] [flags]",
		Short: "List entries",
		Long: `List tasks in document order. <status> is one of all, open, done and
defaults to open. With <priority> only tasks of that priority are shown.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execList(o, a, *format, args)
		},
	}
}

func execList(o *IO, a *app, format string, args []string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	status := todo.StatusOpen

	var priority *todo.Priority

	switch len(args) {
	case 0:
	case 1:
		if s, ok := resolveStatus(args[0]); ok {
			status = s
		} else if p, ok := resolvePriority(args[0]); ok {
			priority = &p
		} else {
			return invalidArg(args[0], "status or priority")
		}
	case 2:
		s, ok := resolveStatus(args[0])
		if !ok {
			return invalidArg(args[0], "status")
		}

		p, ok := resolvePriority(args[1])
		if !ok {
			return invalidArg(args[1], "priority")
		}

		status, priority = s, &p
	default:
		return errTooManyArgs
	}

	return a.withDocument(func(doc *document) error {
		mask := todo.FilterMask(doc.list, status, priority)

		var records []todo.Record
		for _, rec := range doc.list.Selected(mask) {
			records = append(records, *rec)
		}

		return a.render.Records(o, format, records, doc.list.Len())
	})
}

func sortCmd(a *app) *Command {
	flags := flag.NewFlagSet("sort", flag.ContinueOnError)
	format := flags.StringP("format", "f", formatText, formatUsage)

	return &Command{
		Flags: flags,
		Usage: "sort [<status>] [flags]",
		Short: "List entries sorted by priority (default command)",
		Long: `List tasks most urgent first; tasks of equal priority keep document order.
<status> is one of all, open, done and defaults to open.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSort(o, a, *format, args)
		},
	}
}

func execSort(o *IO, a *app, format string, args []string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	status := todo.StatusOpen

	switch len(args) {
	case 0:
	case 1:
		s, ok := resolveStatus(args[0])
		if !ok {
			return invalidArg(args[0], "status")
		}

		status = s
	default:
		return errTooManyArgs
	}

	return a.withDocument(func(doc *document) error {
		var records []todo.Record

		for _, rec := range todo.Sorted(doc.list) {
			if status.Match(&rec) {
				records = append(records, rec)
			}
		}

		return a.render.Records(o, format, records, doc.list.Len())
	})
}

func nextCmd(a *app) *Command {
	flags := flag.NewFlagSet("next", flag.ContinueOnError)
	format := flags.StringP("format", "f", formatText, formatUsage)

	return &Command{
		Flags: flags,
		Usage: "next [flags]",
		Short: "Print next task",
		Long:  "Print the most urgent open task.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execNext(o, a, *format, args)
		},
	}
}

func execNext(o *IO, a *app, format string, args []string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if len(args) > 0 {
		return errTooManyArgs
	}

	return a.withDocument(func(doc *document) error {
		index, err := todo.HighestOpen(doc.list)
		if errors.Is(err, todo.ErrNotFound) && format != formatText {
			return a.render.Records(o, format, nil, doc.list.Len())
		}

		if err != nil {
			return err
		}

		return a.render.Records(o, format, []todo.Record{*doc.list.At(index)}, doc.list.Len())
	})
}
