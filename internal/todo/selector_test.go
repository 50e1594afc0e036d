package todo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

func Test_ParseSelector_Builds_Mask_When_Expression_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		n    int
		want todo.Mask
	}{
		{"1,3-4", 5, todo.Mask{true, false, true, true, false}},
		{"2-", 5, todo.Mask{false, true, true, true, true}},
		{"3", 3, todo.Mask{false, false, true}},
		{"1-1", 1, todo.Mask{true}},
		{"3-", 3, todo.Mask{false, false, true}},
		{"2,2,1-2", 4, todo.Mask{true, true, false, false}},
		{"007", 7, todo.Mask{false, false, false, false, false, false, true}},
	}

	for _, testCase := range tests {
		t.Run(testCase.expr, func(t *testing.T) {
			t.Parallel()

			got, err := todo.ParseSelector(testCase.expr, testCase.n)
			require.NoError(t, err)

			if diff := cmp.Diff(testCase.want, got); diff != "" {
				t.Errorf("ParseSelector(%q, %d) mismatch (-want +got):\n%s", testCase.expr, testCase.n, diff)
			}

			assert.Positive(t, got.Count())
		})
	}
}

func Test_ParseSelector_Fails_Whole_Expression_When_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		n    int
		want error
	}{
		{"", 3, todo.ErrSelectorSyntax},
		{"1,", 3, todo.ErrSelectorSyntax},
		{",1", 3, todo.ErrSelectorSyntax},
		{"1,,2", 3, todo.ErrSelectorSyntax},
		{"a", 3, todo.ErrSelectorSyntax},
		{"1-a", 3, todo.ErrSelectorSyntax},
		{"-2", 3, todo.ErrSelectorSyntax},
		{"1-2-3", 3, todo.ErrSelectorSyntax},
		{" 1", 3, todo.ErrSelectorSyntax},
		{"+1", 3, todo.ErrSelectorSyntax},
		{"0", 3, todo.ErrSelectorRange},
		{"2-1", 3, todo.ErrSelectorRange},
		{"5", 3, todo.ErrSelectorRange},
		{"1,5", 3, todo.ErrSelectorRange},
		{"2-4", 3, todo.ErrSelectorRange},
		{"4-", 3, todo.ErrSelectorRange},
		{"1", 0, todo.ErrSelectorRange},
		{"99999999999999999999999", 3, todo.ErrSelectorRange},
	}

	for _, testCase := range tests {
		t.Run(testCase.expr, func(t *testing.T) {
			t.Parallel()

			mask, err := todo.ParseSelector(testCase.expr, testCase.n)
			require.ErrorIs(t, err, testCase.want)
			assert.Nil(t, mask)
		})
	}
}

func Test_ValidateSelector_Classifies_Arguments_Without_Document(t *testing.T) {
	t.Parallel()

	require.NoError(t, todo.ValidateSelector("1,3-4"))
	require.NoError(t, todo.ValidateSelector("2-"))

	// Numbers beyond any document size only fail once N is known.
	require.NoError(t, todo.ValidateSelector("500"))

	require.ErrorIs(t, todo.ValidateSelector("buy milk"), todo.ErrSelectorSyntax)
	require.ErrorIs(t, todo.ValidateSelector("high"), todo.ErrSelectorSyntax)
	require.ErrorIs(t, todo.ValidateSelector("0"), todo.ErrSelectorRange)
	require.ErrorIs(t, todo.ValidateSelector("3-1"), todo.ErrSelectorRange)
}

func Test_Mask_First_And_Count(t *testing.T) {
	t.Parallel()

	mask := todo.MaskOf(4, 2)

	first, ok := mask.First()
	require.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, mask.Count())

	_, ok = todo.Mask{false, false}.First()
	assert.False(t, ok)
}
