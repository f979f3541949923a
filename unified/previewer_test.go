package unified_test

import (
	"errors"
	"io"
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/mock"
	"github.com/fwojciec/diffmend/structmerge"
	"github.com/fwojciec/diffmend/unified"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewer_Preview(t *testing.T) {
	t.Parallel()

	t.Run("shows restored line with context", func(t *testing.T) {
		t.Parallel()

		modified := diffmend.Document{"【A】", "x", "【B】", "z"}
		merged := diffmend.Document{"【A】", "x", "y", "【B】", "z"}

		preview, err := unified.NewPreviewer().Preview(modified, merged)

		require.NoError(t, err)
		require.Len(t, preview.Hunks, 1)
		assert.Equal(t, 1, preview.Inserted())

		var added []diffmend.PreviewLine
		for _, l := range preview.Hunks[0].Lines {
			if l.Type == diffmend.LineAdded {
				added = append(added, l)
			}
		}
		require.Len(t, added, 1)
		assert.Equal(t, "y", added[0].Content)
		assert.Equal(t, 3, added[0].NewLineNum)
	})

	t.Run("identical documents have no hunks", func(t *testing.T) {
		t.Parallel()

		doc := diffmend.Document{"a", "b"}

		preview, err := unified.NewPreviewer().Preview(doc, doc)

		require.NoError(t, err)
		assert.Empty(t, preview.Hunks)
	})

	t.Run("merge preview contains only insertions", func(t *testing.T) {
		t.Parallel()

		base := diffmend.Document{"note", "【A】", "a1", "a2", "【B】", "b1", "b2"}
		modified := diffmend.Document{"【A】", "a2", "【B】", "b2"}
		result, err := structmerge.NewMerger().Merge(base, modified, diffmend.NewSelection(0, 2, 5))
		require.NoError(t, err)

		preview, err := unified.NewPreviewer().Preview(modified, result.Document)

		require.NoError(t, err)
		for _, h := range preview.Hunks {
			for _, l := range h.Lines {
				assert.NotEqual(t, diffmend.LineDeleted, l.Type, "unexpected deletion %q", l.Content)
			}
		}
		// 3 restored lines plus the 4-line overflow header.
		assert.Equal(t, 7, preview.Inserted())
	})

	t.Run("zero context yields only changed lines", func(t *testing.T) {
		t.Parallel()

		modified := diffmend.Document{"a", "b", "c", "d"}
		merged := diffmend.Document{"a", "b", "new", "c", "d"}

		preview, err := unified.NewPreviewer(unified.WithContext(0)).Preview(modified, merged)

		require.NoError(t, err)
		require.Len(t, preview.Hunks, 1)
		require.Len(t, preview.Hunks[0].Lines, 1)
		assert.Equal(t, "new", preview.Hunks[0].Lines[0].Content)
	})

	t.Run("parser errors are returned", func(t *testing.T) {
		t.Parallel()

		parser := &mock.PreviewParser{
			ParseFn: func(r io.Reader) (*diffmend.Preview, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := unified.NewPreviewer(unified.WithParser(parser)).Preview(
			diffmend.Document{"a"},
			diffmend.Document{"a", "b"},
		)

		require.EqualError(t, err, "boom")
	})
}

func TestPreviewer_Unified(t *testing.T) {
	t.Parallel()

	got := unified.NewPreviewer().Unified(
		diffmend.Document{"【A】", "x", "【B】", "z"},
		diffmend.Document{"【A】", "x", "y", "【B】", "z"},
	)

	want := "@@ -1,4 +1,5 @@\n" +
		" 【A】\n" +
		" x\n" +
		"+y\n" +
		" 【B】\n" +
		" z\n"
	assert.Equal(t, want, got)
}
