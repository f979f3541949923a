package clipboard_test

import (
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/diffmend/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Copy(t *testing.T) {
	t.Parallel()

	cb := clipboard.NewSystem()
	if !cb.Available() {
		err := cb.Copy("anything")
		require.ErrorIs(t, err, clipboard.ErrUnavailable)
		return
	}

	testContent := "test clipboard content from diffmend"
	if err := cb.Copy(testContent); err != nil {
		// Utilities such as xclip fail without a display.
		t.Skipf("clipboard not usable here: %v", err)
	}

	out, err := atotto.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, testContent, out)
}
