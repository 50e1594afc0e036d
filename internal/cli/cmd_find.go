package cli

import (
	"context"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

var findActions = []string{"commit", "remove", "done", "undo", "priority", "edit"}

func findCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("find", flag.ContinueOnError),
		Usage: "find <description> [<status>] [<action>]",
		Short: "Find task by description and execute command",
		Long: `Fuzzy-match <description> against tasks with <status> (default open).
Without <action> the matches are printed, best first. With <action> it is
applied to the best match. <action> is one of:

  commit [<message>]
  remove|done|undo [commit [<message>]]
  priority [<priority>]
  edit [<description>]

The argument after <description> is read as <status> whenever it names one,
so marking the best open match done is "find <description> open done".`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return execFind(ctx, o, a, args)
		},
	}
}

// findAction is a parsed action applied to the best match.
type findAction func(ctx context.Context, o *IO, doc *document, tgt target) error

func execFind(ctx context.Context, o *IO, a *app, args []string) error {
	if len(args) == 0 {
		return errTooFewArgs
	}

	query, rest := args[0], args[1:]
	status := todo.StatusOpen

	if len(rest) > 0 {
		if s, ok := resolveStatus(rest[0]); ok {
			status = s
			rest = rest[1:]
		}
	}

	var action findAction

	if len(rest) > 0 {
		var err error

		action, err = parseFindAction(a, rest)
		if err != nil {
			return err
		}
	}

	return a.withDocument(func(doc *document) error {
		matches := todo.Search(doc.list, query, status)
		if len(matches) == 0 {
			o.Println("Nothing found")

			return nil
		}

		if action != nil {
			return action(ctx, o, doc, target{index: matches[0].Index, fixed: true})
		}

		width := len(strconv.Itoa(doc.list.Len()))
		for _, m := range matches {
			o.Println(a.render.line(doc.list.At(m.Index), width))
		}

		return nil
	})
}

func parseFindAction(a *app, args []string) (findAction, error) {
	i, ok := resolveKeyword(args[0], findActions)
	if !ok {
		return nil, invalidArg(args[0], "status or action")
	}

	rest := args[1:]

	switch findActions[i] {
	case "commit":
		parsed, err := parseCommitArgs(rest, false)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, o *IO, doc *document, tgt target) error {
			parsed.target = tgt

			return execCommit(ctx, o, a, doc, parsed)
		}, nil
	case "priority":
		parsed, err := parsePriorityArgs(rest, false)
		if err != nil {
			return nil, err
		}

		return func(_ context.Context, o *IO, doc *document, tgt target) error {
			parsed.target = tgt

			return execPriority(o, a, doc, parsed)
		}, nil
	case "edit":
		parsed, err := parseEditArgs(rest, false)
		if err != nil {
			return nil, err
		}

		return func(_ context.Context, o *IO, doc *document, tgt target) error {
			parsed.target = tgt

			return execEdit(o, a, doc, parsed)
		}, nil
	default:
		action := map[string]closeAction{
			"remove": actionRemove,
			"done":   actionDone,
			"undo":   actionUndo,
		}[findActions[i]]

		parsed, err := parseCloseArgs(rest, false)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, o *IO, doc *document, tgt target) error {
			parsed.target = tgt

			return execClose(ctx, o, a, doc, action, parsed)
		}, nil
	}
}
