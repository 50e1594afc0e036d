package todo

import (
	"cmp"
	"slices"
)

// Compare orders records by priority, most urgent first, then by ordinal.
func Compare(a, b *Record) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}

	return cmp.Compare(a.Ordinal, b.Ordinal)
}

// Sorted returns the records of list in ranking order. The list itself is
// not reordered.
func Sorted(list *List) []Record {
	ranked := slices.Clone(list.Records())

	slices.SortStableFunc(ranked, func(a, b Record) int {
		return Compare(&a, &b)
	})

	return ranked
}

// HighestOpen returns the index of the most urgent open record: highest
// priority, earliest ordinal among equals. Returns [ErrNotFound] when every
// record is done or the list is empty.
func HighestOpen(list *List) (int, error) {
	best := -1

	for i := range list.Len() {
		r := list.At(i)
		if r.Done {
			continue
		}

		if best < 0 || Compare(r, list.At(best)) < 0 {
			best = i
		}
	}

	if best < 0 {
		return 0, ErrNotFound
	}

	return best, nil
}

// LastDone returns the index of the done record with the greatest ordinal.
// Returns [ErrNotFound] when no record is done.
func LastDone(list *List) (int, error) {
	for i := list.Len() - 1; i >= 0; i-- {
		if list.At(i).Done {
			return i, nil
		}
	}

	return 0, ErrNotFound
}

// FilterMask selects records passing status and, when priority is non-nil,
// having exactly that priority. The mask may be empty.
func FilterMask(list *List, status Status, priority *Priority) Mask {
	mask := make(Mask, list.Len())

	for i := range list.Len() {
		r := list.At(i)
		mask[i] = status.Match(r) && (priority == nil || r.Priority == *priority)
	}

	return mask
}
