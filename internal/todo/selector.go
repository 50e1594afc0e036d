package todo

import (
	"fmt"
	"strconv"
	"strings"
)

// Mask marks the records selected for one command, parallel to a [List].
type Mask []bool

// Count returns the number of selected positions.
func (m Mask) Count() int {
	count := 0

	for _, selected := range m {
		if selected {
			count++
		}
	}

	return count
}

// First returns the first selected position.
func (m Mask) First() (int, bool) {
	for i, selected := range m {
		if selected {
			return i, true
		}
	}

	return 0, false
}

// MaskOf returns a mask of length n selecting only index.
func MaskOf(n, index int) Mask {
	mask := make(Mask, n)
	mask[index] = true

	return mask
}

// selectorClause is one comma-separated part of a selector, 1-based.
type selectorClause struct {
	from, to int
	openEnd  bool
}

// ValidateSelector checks expr against the selector grammar without a
// document:
//
//	selector := clause (',' clause)*
//	clause   := NUMBER | NUMBER '-' [NUMBER]
//
// Returns an error wrapping [ErrSelectorSyntax] when expr is not shaped like
// a selector at all, so callers can try another interpretation, or
// [ErrSelectorRange] when it is a selector that no document can satisfy
// (a zero, or a reversed range).
func ValidateSelector(expr string) error {
	_, err := parseSelector(expr)

	return err
}

// ParseSelector resolves expr against n records. Numbers are 1-based.
//
// The mask is all-or-nothing: any malformed or out-of-range clause fails the
// whole expression, and a successful result selects at least one record.
func ParseSelector(expr string, n int) (Mask, error) {
	clauses, err := parseSelector(expr)
	if err != nil {
		return nil, err
	}

	mask := make(Mask, n)

	for _, c := range clauses {
		to := c.to
		if c.openEnd {
			to = n
		}

		if c.from > n || to > n {
			return nil, fmt.Errorf("%w: %q: only %d tasks", ErrSelectorRange, expr, n)
		}

		for i := c.from; i <= to; i++ {
			mask[i-1] = true
		}
	}

	if mask.Count() == 0 {
		return nil, fmt.Errorf("%w: %q selects nothing", ErrSelectorRange, expr)
	}

	return mask, nil
}

func parseSelector(expr string) ([]selectorClause, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty", ErrSelectorSyntax)
	}

	parts := strings.Split(expr, ",")
	clauses := make([]selectorClause, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q: empty clause", ErrSelectorSyntax, expr)
		}

		fromText, toText, isRange := strings.Cut(part, "-")

		from, err := parseSelectorNumber(expr, fromText)
		if err != nil {
			return nil, err
		}

		clause := selectorClause{from: from, to: from}

		switch {
		case !isRange:
		case toText == "":
			clause.openEnd = true
		default:
			to, err := parseSelectorNumber(expr, toText)
			if err != nil {
				return nil, err
			}

			if to < from {
				return nil, fmt.Errorf("%w: %q: range %d-%d is reversed", ErrSelectorRange, expr, from, to)
			}

			clause.to = to
		}

		clauses = append(clauses, clause)
	}

	return clauses, nil
}

func parseSelectorNumber(expr, text string) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: %q: missing number", ErrSelectorSyntax, expr)
	}

	for i := range len(text) {
		if text[i] < '0' || text[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrSelectorSyntax, expr)
		}
	}

	number, err := strconv.Atoi(text)
	if err != nil {
		// Only digits reach here, so the number is too large.
		return 0, fmt.Errorf("%w: %q: %s is too large", ErrSelectorRange, expr, text)
	}

	if number == 0 {
		return 0, fmt.Errorf("%w: %q: numbers start at 1", ErrSelectorRange, expr)
	}

	return number, nil
}
