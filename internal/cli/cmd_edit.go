package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func editCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("edit", flag.ContinueOnError),
		Usage: "edit [<number>] [<description>]",
		Short: "Edit or set task description",
		Long: `Replace the description of the selected tasks, or of the most urgent open
task. Without <description> you are asked for one, starting from the
current text; an empty answer keeps it.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			parsed, err := parseEditArgs(args, true)
			if err != nil {
				return err
			}

			return a.withDocument(func(doc *document) error {
				return execEdit(o, a, doc, parsed)
			})
		},
	}
}

type editArgs struct {
	target  target
	text    string
	hasText bool
}

func parseEditArgs(args []string, allowNumber bool) (editArgs, error) {
	tgt, rest, err := takeSelector(args, allowNumber)
	if err != nil {
		return editArgs{}, err
	}

	parsed := editArgs{target: tgt}

	switch len(rest) {
	case 0:
	case 1:
		parsed.text = rest[0]
		parsed.hasText = true
	default:
		return editArgs{}, errTooManyArgs
	}

	return parsed, nil
}

func execEdit(o *IO, a *app, doc *document, parsed editArgs) error {
	mask, err := parsed.target.mask(doc.list, todo.HighestOpen)
	if err != nil {
		return err
	}

	text := parsed.text

	if !parsed.hasText {
		first, _ := mask.First()

		text, err = a.prompt.Ask(
			"New description (Enter to accept): ",
			"Old description                  : ",
			doc.list.At(first).Text,
		)
		if err != nil {
			return err
		}
	}

	changed := false

	for _, rec := range doc.list.Selected(mask) {
		before := rec.Text

		if err := rec.SetText(text); err != nil {
			return err
		}

		changed = changed || rec.Text != before
	}

	if changed {
		if err := a.save(doc, doc.list); err != nil {
			return err
		}
	}

	a.render.Selected(o, doc.list, mask)

	return nil
}
