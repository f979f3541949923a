package diffmend_test

import (
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSelection(t *testing.T) {
	t.Parallel()

	base := diffmend.Document{"【A】", "kept", "lost", "also lost"}
	cmp := diffmend.Comparison{
		Candidates: []diffmend.Candidate{
			{ID: 2, Text: "lost"},
			{ID: 3, Text: "also lost"},
		},
	}

	t.Run("valid selection passes", func(t *testing.T) {
		t.Parallel()

		errs := diffmend.ValidateSelection(base, cmp, diffmend.NewSelection(2, 3))
		assert.Empty(t, errs)
	})

	t.Run("out of range id", func(t *testing.T) {
		t.Parallel()

		errs := diffmend.ValidateSelection(base, cmp, diffmend.NewSelection(4))

		require.Len(t, errs, 1)
		assert.Equal(t, diffmend.ErrUnknownID, errs[0].Reason)
		assert.Equal(t, "id 4 is out of bounds (valid: 0-3)", errs[0].Error())
	})

	t.Run("negative id", func(t *testing.T) {
		t.Parallel()

		errs := diffmend.ValidateSelection(base, cmp, diffmend.NewSelection(-1))

		require.Len(t, errs, 1)
		assert.Equal(t, diffmend.ErrUnknownID, errs[0].Reason)
	})

	t.Run("id of a shared line", func(t *testing.T) {
		t.Parallel()

		errs := diffmend.ValidateSelection(base, cmp, diffmend.NewSelection(1))

		require.Len(t, errs, 1)
		assert.Equal(t, diffmend.ErrNotCandidate, errs[0].Reason)
		assert.Contains(t, errs[0].Error(), "not missing")
	})

	t.Run("errors are reported in id order", func(t *testing.T) {
		t.Parallel()

		errs := diffmend.ValidateSelection(base, cmp, diffmend.NewSelection(10, 0, 2))

		require.Len(t, errs, 2)
		assert.Equal(t, 0, errs[0].ID)
		assert.Equal(t, 10, errs[1].ID)
	})

	t.Run("empty base document", func(t *testing.T) {
		t.Parallel()

		errs := diffmend.ValidateSelection(nil, diffmend.Comparison{}, diffmend.NewSelection(0))

		require.Len(t, errs, 1)
		assert.Equal(t, "id 0: base document is empty", errs[0].Error())
	})
}
