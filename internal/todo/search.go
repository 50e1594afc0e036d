package todo

import (
	"github.com/sahilm/fuzzy"
)

// Match is one record found by [Search].
type Match struct {
	// Index is the record's position in the searched list.
	Index int

	// Score ranks the match; higher is better.
	Score int

	// MatchedIndexes are the byte offsets in the text that matched the query.
	MatchedIndexes []int
}

// searchSource implements fuzzy.Source over the records passing a filter.
type searchSource struct {
	list    *List
	indices []int
}

func (s searchSource) String(i int) string {
	return s.list.At(s.indices[i]).Text
}

func (s searchSource) Len() int {
	return len(s.indices)
}

// Search fuzzy-matches query against the descriptions of records passing
// status. Matches are ordered best first; equal scores keep document order.
// An empty query matches nothing.
func Search(list *List, query string, status Status) []Match {
	if query == "" {
		return nil
	}

	source := searchSource{list: list}

	for i := range list.Len() {
		if status.Match(list.At(i)) {
			source.indices = append(source.indices, i)
		}
	}

	found := fuzzy.FindFrom(query, source)

	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{
			Index:          source.indices[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		})
	}

	return matches
}
