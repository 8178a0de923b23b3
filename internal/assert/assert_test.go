package assert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/assert"
)

func TestTruefPassesSilently(t *testing.T) {
	require.NotPanics(t, func() { assert.Truef(true, "unreachable: %d", 1) })
}

func TestTruefPanicsOnFalse(t *testing.T) {
	require.PanicsWithValue(t, "internal invariant violated: bad state: 42", func() {
		assert.Truef(false, "bad state: %d", 42)
	})
}
