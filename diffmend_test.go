package diffmend_test

import (
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want diffmend.Document
	}{
		{name: "empty text is one empty line", text: "", want: diffmend.Document{""}},
		{name: "single line", text: "a", want: diffmend.Document{"a"}},
		{name: "trailing newline yields trailing empty line", text: "a\nb\n", want: diffmend.Document{"a", "b", ""}},
		{name: "blank lines preserved", text: "a\n\n\nb", want: diffmend.Document{"a", "", "", "b"}},
		{name: "carriage returns are kept", text: "a\r\nb", want: diffmend.Document{"a\r", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := diffmend.SplitLines(tt.text)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, diffmend.JoinLines(got))
		})
	}
}

func TestDocument_Clone(t *testing.T) {
	t.Parallel()

	t.Run("copy does not share storage", func(t *testing.T) {
		t.Parallel()

		doc := diffmend.Document{"a", "b"}
		clone := doc.Clone()
		clone[0] = "changed"

		assert.Equal(t, "a", doc[0])
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		var doc diffmend.Document

		assert.Nil(t, doc.Clone())
	})
}

func TestComparison_Candidate(t *testing.T) {
	t.Parallel()

	cmp := diffmend.Comparison{
		Candidates: []diffmend.Candidate{
			{ID: 1, Text: "one"},
			{ID: 4, Text: "four"},
		},
	}

	c, ok := cmp.Candidate(4)
	require.True(t, ok)
	assert.Equal(t, "four", c.Text)

	_, ok = cmp.Candidate(2)
	assert.False(t, ok)
}

func TestEngine_CompareText(t *testing.T) {
	t.Parallel()

	var gotBase, gotModified diffmend.Document
	engine := &diffmend.Engine{
		Differ: &mock.Differ{
			ComputeFn: func(base, modified diffmend.Document) diffmend.Comparison {
				gotBase, gotModified = base, modified
				return diffmend.Comparison{Stats: diffmend.Stats{Shared: 7}}
			},
		},
	}

	cmp := engine.CompareText("a\nb", "a\n")

	assert.Equal(t, diffmend.Document{"a", "b"}, gotBase)
	assert.Equal(t, diffmend.Document{"a", ""}, gotModified)
	assert.Equal(t, 7, cmp.Stats.Shared)
}

func TestEngine_MergeText(t *testing.T) {
	t.Parallel()

	t.Run("joins merged document", func(t *testing.T) {
		t.Parallel()

		var gotSelection diffmend.Selection
		engine := &diffmend.Engine{
			Merger: &mock.Merger{
				MergeFn: func(base, modified diffmend.Document, selected diffmend.Selection) (*diffmend.MergeResult, error) {
					gotSelection = selected
					return &diffmend.MergeResult{Document: diffmend.Document{"x", "y"}}, nil
				},
			},
		}

		text, err := engine.MergeText("base", "modified", []int{3, 1})

		require.NoError(t, err)
		assert.Equal(t, "x\ny", text)
		assert.Equal(t, []int{1, 3}, gotSelection.IDs())
	})

	t.Run("empty selection is a no-op signal", func(t *testing.T) {
		t.Parallel()

		engine := &diffmend.Engine{
			Merger: &mock.Merger{
				MergeFn: func(base, modified diffmend.Document, selected diffmend.Selection) (*diffmend.MergeResult, error) {
					t.Fatal("merger should not be called")
					return nil, nil
				},
			},
		}

		text, err := engine.MergeText("base", "modified", nil)

		require.ErrorIs(t, err, diffmend.ErrNothingToMerge)
		assert.Empty(t, text)
	})
}

func TestMergeResult_Counts(t *testing.T) {
	t.Parallel()

	r := &diffmend.MergeResult{
		Placements: []diffmend.Placement{
			{Heading: "【A】"},
			{Orphan: true},
			{Heading: "【B】"},
		},
	}

	assert.Equal(t, 2, r.Restored())
	assert.Equal(t, 1, r.Orphans())
}
