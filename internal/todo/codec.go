package todo

import (
	"strings"
)

// Line grammar:
//
//	" - [ ] description"  open task
//	" - [X] description"  done task
//
// The description may contain one priority marker such as
// "(priority: high)" anywhere in it.
const (
	linePrefixLen   = 7
	markerOpen      = ' '
	markerDone      = 'X'
	spaceCharacters = " \t\r\n"
)

var priorityMarkers = [...]string{
	PriorityLow:      "(priority: low)",
	PriorityMedium:   "(priority: medium)",
	PriorityHigh:     "(priority: high)",
	PriorityCritical: "(priority: critical)",
}

// ParseLine parses one physical line, with or without its line terminator.
//
// Blank lines return ok=false and no error. A line that does not match the
// checklist grammar returns a *[FormatError] with Line left at zero; the
// store fills in the line number.
//
// Markers are looked up in ascending priority order and the first marker
// kind present wins; only its first occurrence is removed. The marker may
// sit anywhere in the description.
func ParseLine(line string) (Record, bool, error) {
	line = strings.TrimSuffix(line, "\n")

	if trimSpace(line) == "" {
		return Record{}, false, nil
	}

	if !hasLinePrefix(line) {
		return Record{}, false, &FormatError{Raw: strings.TrimSuffix(line, "\r")}
	}

	record := Record{
		Done:     line[4] == markerDone,
		Priority: DefaultPriority,
	}

	text := line[linePrefixLen:]

	for p, marker := range priorityMarkers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}

		record.Priority = Priority(p)
		record.PriorityExplicit = true
		text = text[:idx] + text[idx+len(marker):]

		break
	}

	record.Text = trimSpace(text)

	return record, true, nil
}

func hasLinePrefix(line string) bool {
	return len(line) >= linePrefixLen &&
		line[0] == ' ' &&
		line[1] == '-' &&
		line[2] == ' ' &&
		line[3] == '[' &&
		(line[4] == markerOpen || line[4] == markerDone) &&
		line[5] == ']' &&
		line[6] == ' '
}

// FormatLine serializes r as one newline-terminated document line.
//
// ParseLine(FormatLine(r)) reproduces r, except for the ordinal, for every
// record whose text is trimmed, single-line, and free of marker literals.
func FormatLine(r *Record) string {
	return string(AppendLine(nil, r))
}

// AppendLine appends the serialized line for r to dst.
func AppendLine(dst []byte, r *Record) []byte {
	marker := byte(markerOpen)
	if r.Done {
		marker = markerDone
	}

	dst = append(dst, " - ["...)
	dst = append(dst, marker)
	dst = append(dst, "] "...)
	dst = append(dst, r.Text...)

	if r.PriorityExplicit {
		dst = append(dst, ' ')
		dst = append(dst, priorityMarkers[r.Priority]...)
	}

	return append(dst, '\n')
}

func trimSpace(s string) string {
	return strings.Trim(s, spaceCharacters)
}
