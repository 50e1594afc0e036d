package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/vcs"
)

// closeAction is what remove, done, and undo do to the selected tasks.
type closeAction uint8

const (
	actionRemove closeAction = iota
	actionDone
	actionUndo
)

func removeCmd(a *app) *Command {
	return closeCmd(a, actionRemove, "remove", "Remove task",
		`Delete the selected tasks, or the most urgent open task.`)
}

func doneCmd(a *app) *Command {
	return closeCmd(a, actionDone, "done", "Mark task as done",
		`Mark the selected tasks as done, or the most urgent open task.`)
}

func undoCmd(a *app) *Command {
	return closeCmd(a, actionUndo, "undo", "Mark task as not done, defaults to last done task",
		`Reopen the selected tasks, or the last task in the document that is done.`)
}

func closeCmd(a *app, action closeAction, name, short, long string) *Command {
	return &Command{
		Flags: flag.NewFlagSet(name, flag.ContinueOnError),
		Usage: name + " [<number>] [commit [<message>]]",
		Short: short,
		Long: long + `

With the commit suffix the document is saved, staged, and committed. Without
<message> a message is suggested from the first selected task.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			parsed, err := parseCloseArgs(args, true)
			if err != nil {
				return err
			}

			return a.withDocument(func(doc *document) error {
				return execClose(ctx, o, a, doc, action, parsed)
			})
		},
	}
}

type closeArgs struct {
	target     target
	commit     bool
	message    string
	hasMessage bool
}

func parseCloseArgs(args []string, allowNumber bool) (closeArgs, error) {
	tgt, rest, err := takeSelector(args, allowNumber)
	if err != nil {
		return closeArgs{}, err
	}

	parsed := closeArgs{target: tgt}

	if len(rest) == 0 {
		return parsed, nil
	}

	if !isCommitKeyword(rest[0]) {
		if allowNumber && tgt.selector == "" {
			return closeArgs{}, invalidArg(rest[0], "number or 'commit' suffix")
		}

		return closeArgs{}, invalidArg(rest[0], "'commit' suffix")
	}

	parsed.commit = true

	switch len(rest) {
	case 1:
	case 2:
		parsed.message = rest[1]
		parsed.hasMessage = true
	default:
		return closeArgs{}, errTooManyArgs
	}

	return parsed, nil
}

func execClose(ctx context.Context, o *IO, a *app, doc *document, action closeAction, parsed closeArgs) error {
	fallback := todo.HighestOpen
	if action == actionUndo {
		fallback = todo.LastDone
	}

	mask, err := parsed.target.mask(doc.list, fallback)
	if err != nil {
		return err
	}

	first, _ := mask.First()
	text := doc.list.At(first).Text

	updated := doc.list
	changed := true

	if action == actionRemove {
		updated = doc.list.Without(mask)
	} else {
		done := action == actionDone
		changed = false

		for _, rec := range doc.list.Selected(mask) {
			changed = changed || rec.Done != done
			rec.Done = done
		}
	}

	a.render.Selected(o, doc.list, mask)

	var message string

	if parsed.commit {
		message = parsed.message

		if !parsed.hasMessage {
			message, err = a.prompt.Ask(commitLabel, suggestionLabel, suggestCommit(action, text))
			if err != nil {
				return err
			}
		}
	}

	if changed {
		if err := a.save(doc, updated); err != nil {
			return err
		}
	}

	if !parsed.commit {
		return nil
	}

	return a.git.Commit(ctx, doc.store.Path(), message)
}

func suggestCommit(action closeAction, text string) string {
	switch action {
	case actionDone:
		return vcs.DoneMessage(text)
	case actionUndo:
		return vcs.UndoMessage(text)
	default:
		return vcs.RemoveMessage(text)
	}
}
