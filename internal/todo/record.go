// Package todo implements the task-store engine: parsing and writing the
// checklist document, resolving selectors, and ranking tasks by priority.
package todo

import (
	"iter"
	"strings"
)

// Priority of a record. Higher values are more urgent.
type Priority uint8

// Priorities in ascending urgency.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// DefaultPriority applies when a line carries no priority marker.
const DefaultPriority = PriorityMedium

var priorityNames = [...]string{"low", "medium", "high", "critical"}

// Priorities returns all priorities in ascending urgency.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

func (p Priority) String() string {
	if int(p) < len(priorityNames) {
		return priorityNames[p]
	}

	return "unknown"
}

// Status filters records by completion.
type Status uint8

// Status filters.
const (
	StatusAll Status = iota
	StatusOpen
	StatusDone
)

var statusNames = [...]string{"all", "open", "done"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "unknown"
}

// Statuses returns all status filters.
func Statuses() []Status {
	return []Status{StatusAll, StatusOpen, StatusDone}
}

// Match reports whether r passes the filter.
func (s Status) Match(r *Record) bool {
	switch s {
	case StatusOpen:
		return !r.Done
	case StatusDone:
		return r.Done
	default:
		return true
	}
}

// Record is one task line of the document.
type Record struct {
	// Ordinal is the zero-based position among records at load time.
	Ordinal int

	// Text is the trimmed description with the priority marker removed.
	Text string

	Priority Priority

	// PriorityExplicit reports whether the line carried a priority marker.
	// Only explicit priorities are written back.
	PriorityExplicit bool

	Done bool
}

// SetText replaces the description after trimming it.
// Returns [ErrInvalidText] if text spans several lines.
// A marker literal such as "(priority: high)" is kept verbatim and is read
// back as the priority on the next load.
func (r *Record) SetText(text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return ErrInvalidText
	}

	r.Text = trimSpace(text)

	return nil
}

// List is the ordered record sequence of one document, indexed by ordinal.
type List struct {
	records Buffer[Record]
}

// NewList builds a list from records as given.
func NewList(records ...Record) *List {
	var list List

	// Growth can only fail for absurd sizes.
	if err := list.records.Append(records...); err != nil {
		panic(err)
	}

	return &list
}

// Len returns the number of records.
func (l *List) Len() int {
	return l.records.Len()
}

// At returns record i for in-place mutation.
func (l *List) At(i int) *Record {
	return l.records.At(i)
}

// Records returns the records in document order. The slice aliases the list.
func (l *List) Records() []Record {
	return l.records.Slice()
}

// Append adds r at the end and assigns its ordinal.
func (l *List) Append(r Record) (*Record, error) {
	r.Ordinal = l.records.Len()

	if err := l.records.Append(r); err != nil {
		return nil, err
	}

	return l.records.At(r.Ordinal), nil
}

// Selected yields (index, record) for every position selected by mask.
func (l *List) Selected(mask Mask) iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for i := range min(len(mask), l.Len()) {
			if !mask[i] {
				continue
			}

			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// Without returns a new list holding the records not selected by mask, in
// document order. Ordinals are kept as loaded.
func (l *List) Without(mask Mask) *List {
	var kept List

	for i, r := range l.Records() {
		if i < len(mask) && mask[i] {
			continue
		}

		if err := kept.records.Append(r); err != nil {
			panic(err)
		}
	}

	return &kept
}
