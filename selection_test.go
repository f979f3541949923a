package diffmend_test

import (
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	t.Parallel()

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var s diffmend.Selection

		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Has(0))
		assert.Empty(t, s.IDs())
	})

	t.Run("toggle adds and removes", func(t *testing.T) {
		t.Parallel()

		var s diffmend.Selection

		assert.True(t, s.Toggle(3))
		assert.True(t, s.Has(3))
		assert.False(t, s.Toggle(3))
		assert.False(t, s.Has(3))
	})

	t.Run("select all and clear", func(t *testing.T) {
		t.Parallel()

		s := diffmend.NewSelection(9)
		s.SelectAll([]diffmend.Candidate{{ID: 4}, {ID: 1}})

		assert.Equal(t, []int{1, 4, 9}, s.IDs())

		s.Clear()
		assert.Equal(t, 0, s.Len())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()

		s := diffmend.NewSelection(2, 2, 2)

		assert.Equal(t, 1, s.Len())
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		s := diffmend.NewSelection(1)
		c := s.Clone()
		c.Add(2)

		assert.Equal(t, []int{1}, s.IDs())
		assert.Equal(t, []int{1, 2}, c.IDs())
	})
}
