package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/vcs"
)

const (
	commitLabel     = "Commit message (Enter to accept): "
	suggestionLabel = "Suggested commit message        : "
)

func commitCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("commit", flag.ContinueOnError),
		Usage: "commit [<number>] [<message>]",
		Short: "Perform git commit",
		Long: `Stage the task document and commit it. Without <message> a message is
suggested from the selected task, or from the most urgent open task.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			parsed, err := parseCommitArgs(args, true)
			if err != nil {
				return err
			}

			return a.withDocument(func(doc *document) error {
				return execCommit(ctx, o, a, doc, parsed)
			})
		},
	}
}

type commitArgs struct {
	target     target
	message    string
	hasMessage bool
}

func parseCommitArgs(args []string, allowNumber bool) (commitArgs, error) {
	tgt, rest, err := takeSelector(args, allowNumber)
	if err != nil {
		return commitArgs{}, err
	}

	parsed := commitArgs{target: tgt}

	switch len(rest) {
	case 0:
	case 1:
		parsed.message = rest[0]
		parsed.hasMessage = true
	default:
		return commitArgs{}, errTooManyArgs
	}

	return parsed, nil
}

func execCommit(ctx context.Context, o *IO, a *app, doc *document, parsed commitArgs) error {
	mask, err := parsed.target.mask(doc.list, todo.HighestOpen)
	if err != nil {
		return err
	}

	a.render.Selected(o, doc.list, mask)

	message := parsed.message

	if !parsed.hasMessage {
		first, _ := mask.First()

		message, err = a.prompt.Ask(commitLabel, suggestionLabel, vcs.DoneMessage(doc.list.At(first).Text))
		if err != nil {
			return err
		}
	}

	return a.git.Commit(ctx, doc.store.Path(), message)
}
