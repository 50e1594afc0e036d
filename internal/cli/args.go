package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

var (
	errUsage        = errors.New("usage")
	errTooManyArgs  = fmt.Errorf("%w: too many arguments", errUsage)
	errTooFewArgs   = fmt.Errorf("%w: too few arguments", errUsage)
	errUnknownFlag  = fmt.Errorf("%w: unknown flag", errUsage)
	errFlagArgument = fmt.Errorf("%w: flag requires an argument", errUsage)
	errAborted      = errors.New("aborted")
)

// invalidArg reports an argument that fits none of the expected kinds.
func invalidArg(arg, expected string) error {
	return fmt.Errorf("%w: '%s' is not a valid %s", errUsage, arg, expected)
}

var (
	priorityKeywords = keywords(todo.Priorities())
	statusKeywords   = keywords(todo.Statuses())
	commitKeyword    = "commit"
)

func keywords[T fmt.Stringer](values []T) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}

	return names
}

// resolveKeyword returns the index of the first keyword that word is a
// prefix of, so every keyword can be shortened as long as it stays ahead of
// its rivals in the list.
func resolveKeyword(word string, keywords []string) (int, bool) {
	if word == "" {
		return 0, false
	}

	for i, keyword := range keywords {
		if strings.HasPrefix(keyword, word) {
			return i, true
		}
	}

	return 0, false
}

func resolvePriority(word string) (todo.Priority, bool) {
	i, ok := resolveKeyword(word, priorityKeywords)
	if !ok {
		return 0, false
	}

	return todo.Priorities()[i], true
}

func resolveStatus(word string) (todo.Status, bool) {
	i, ok := resolveKeyword(word, statusKeywords)
	if !ok {
		return 0, false
	}

	return todo.Statuses()[i], true
}

func isCommitKeyword(word string) bool {
	_, ok := resolveKeyword(word, []string{commitKeyword})

	return ok
}

// isSelector reports whether arg is shaped like a selector. An argument that
// is a selector no document can satisfy, such as "0", is an error rather
// than something to reinterpret.
func isSelector(arg string) (bool, error) {
	err := todo.ValidateSelector(arg)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, todo.ErrSelectorSyntax):
		return false, nil
	default:
		return false, err
	}
}

// target picks the records a command acts on.
type target struct {
	// selector is the user's selector; empty means the command default.
	selector string

	// index, when fixed is set, names one record directly.
	index int
	fixed bool
}

// mask resolves t against list. Without a selector, fallback picks a single
// record and may return [todo.ErrNotFound].
func (t target) mask(list *todo.List, fallback func(*todo.List) (int, error)) (todo.Mask, error) {
	switch {
	case t.fixed:
		return todo.MaskOf(list.Len(), t.index), nil
	case t.selector != "":
		return todo.ParseSelector(t.selector, list.Len())
	default:
		index, err := fallback(list)
		if err != nil {
			return nil, err
		}

		return todo.MaskOf(list.Len(), index), nil
	}
}

// takeSelector consumes args[0] as the target when it is a selector and
// numbers are allowed.
func takeSelector(args []string, allowNumber bool) (target, []string, error) {
	if !allowNumber || len(args) == 0 {
		return target{}, args, nil
	}

	ok, err := isSelector(args[0])
	if err != nil {
		return target{}, nil, err
	}

	if !ok {
		return target{}, args, nil
	}

	return target{selector: args[0]}, args[1:], nil
}
