package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func Test_Renderer_Centers_Markers_In_Fixed_Column(t *testing.T) {
	t.Parallel()

	r := newRenderer(&bytes.Buffer{}, todo.ColorNever)

	tests := []struct {
		rec  todo.Record
		want string
	}{
		{todo.Record{Ordinal: 0, Text: "a", Priority: todo.PriorityLow}, "1.   (low)    a"},
		{todo.Record{Ordinal: 1, Text: "b", Priority: todo.PriorityMedium}, "2.  (medium)  b"},
		{todo.Record{Ordinal: 2, Text: "c", Priority: todo.PriorityHigh}, "3.   (high)   c"},
		{todo.Record{Ordinal: 3, Text: "d", Priority: todo.PriorityCritical}, "4. (critical) d"},
		{todo.Record{Ordinal: 4, Text: "e", Priority: todo.PriorityCritical, Done: true}, "5.   (done)   e"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, r.line(&testCase.rec, 1))
	}

	rec := todo.Record{Ordinal: 6, Text: "g", Priority: todo.PriorityLow}
	assert.Equal(t, "  7.   (low)    g", r.line(&rec, 3))
}

func Test_Renderer_Colors_Markers_When_Forced(t *testing.T) {
	t.Parallel()

	r := newRenderer(&bytes.Buffer{}, todo.ColorAlways)

	high := todo.Record{Text: "x", Priority: todo.PriorityHigh}
	line := r.line(&high, 1)
	assert.Contains(t, line, "\x1b[")
	assert.Contains(t, line, "(high)")
	assert.True(t, strings.HasSuffix(line, " x"))

	// Low priority has no color.
	low := todo.Record{Text: "x", Priority: todo.PriorityLow}
	assert.Equal(t, "1.   (low)    x", r.line(&low, 1))
}

func Test_Records_Encodes_Structured_Formats(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	o := NewIO(nil, &out, &bytes.Buffer{})
	r := newRenderer(&out, todo.ColorNever)

	records := []todo.Record{{Ordinal: 2, Text: "Fix bug", Priority: todo.PriorityHigh, PriorityExplicit: true}}

	require.NoError(t, r.Records(o, formatYAML, records, 3))
	assert.Contains(t, out.String(), "number: 3")
	assert.Contains(t, out.String(), "priority: high")
	assert.Contains(t, out.String(), "priority_explicit: true")

	out.Reset()

	require.NoError(t, r.Records(o, formatJSON, nil, 3))
	assert.Equal(t, "[]\n", out.String())

	require.Error(t, validateFormat("xml"))
	require.NoError(t, validateFormat(formatText))
}

func Test_PlainPrompter_Reads_Answer_Or_Accepts_Suggestion(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	p := newPrompter(strings.NewReader("  Shipped it \n\nPartial line"), &bytes.Buffer{}, &errOut)

	answer, err := p.Ask("Message: ", "Suggested: ", "Fixed bug")
	require.NoError(t, err)
	assert.Equal(t, "Shipped it", answer)
	assert.Equal(t, "Suggested: Fixed bug\nMessage: \n", errOut.String())

	answer, err = p.Ask("Message: ", "Suggested: ", "Fixed bug")
	require.NoError(t, err)
	assert.Equal(t, "Fixed bug", answer)

	// EOF without a newline still yields the partial line.
	answer, err = p.Ask("Message: ", "Suggested: ", "Fixed bug")
	require.NoError(t, err)
	assert.Equal(t, "Partial line", answer)

	answer, err = p.Ask("Message: ", "Suggested: ", "Fixed bug")
	require.NoError(t, err)
	assert.Equal(t, "Fixed bug", answer)
}

func Test_PlainPrompter_Accepts_Suggestion_Without_Input(t *testing.T) {
	t.Parallel()

	p := newPrompter(nil, &bytes.Buffer{}, &bytes.Buffer{})

	answer, err := p.Ask("Message: ", "Suggested: ", "Closed 'x'")
	require.NoError(t, err)
	assert.Equal(t, "Closed 'x'", answer)
}
