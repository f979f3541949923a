package diffmend_test

import (
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("groups candidates by section", func(t *testing.T) {
		t.Parallel()

		base := diffmend.Document{"intro", "【A】", "x", "y", "【B】", "z"}
		cmp := diffmend.Comparison{
			Candidates: []diffmend.Candidate{
				{ID: 0, Text: "intro"},
				{ID: 2, Text: "x"},
				{ID: 3, Text: "y"},
				{ID: 5, Text: "z"},
			},
			Stats: diffmend.Stats{Shared: 2, Added: 1, Removed: 4},
		}
		f := &diffmend.DefaultFormatter{Marker: diffmend.DefaultHeadingMarker}

		got := f.Format(base, cmp)

		want := "shared: 2  added: 1  removed: 4\n" +
			"\n(no section)\n" +
			"  0  intro\n" +
			"\n【A】\n" +
			"  2  x\n" +
			"  3  y\n" +
			"\n【B】\n" +
			"  5  z\n"
		assert.Equal(t, want, got)
	})

	t.Run("reports when nothing is missing", func(t *testing.T) {
		t.Parallel()

		f := &diffmend.DefaultFormatter{Marker: diffmend.DefaultHeadingMarker}

		got := f.Format(diffmend.Document{"a"}, diffmend.Comparison{Stats: diffmend.Stats{Shared: 1}})

		assert.Equal(t, "shared: 1  added: 0  removed: 0\n\nno missing lines\n", got)
	})

	t.Run("pads ids to the widest line index", func(t *testing.T) {
		t.Parallel()

		base := make(diffmend.Document, 120)
		base[7] = "seven"
		cmp := diffmend.Comparison{Candidates: []diffmend.Candidate{{ID: 7, Text: "seven"}}}
		f := &diffmend.DefaultFormatter{Marker: diffmend.DefaultHeadingMarker}

		got := f.Format(base, cmp)

		assert.Contains(t, got, "    7  seven\n")
	})
}

func TestSectionLabel(t *testing.T) {
	t.Parallel()

	owners := []string{"", "【A】"}

	assert.Equal(t, "(no section)", diffmend.SectionLabel(owners, 0))
	assert.Equal(t, "【A】", diffmend.SectionLabel(owners, 1))
	assert.Equal(t, "(no section)", diffmend.SectionLabel(owners, 5))
}
