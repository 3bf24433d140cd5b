//go:build !wasm

package clipboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_WriteText(t *testing.T) {
	var m Memory
	var got error = ErrUnavailable

	m.WriteText("go run .", func(err error) { got = err })

	require.NoError(t, got)
	require.Equal(t, "go run .", m.Text())
}

func TestMemory_Fail(t *testing.T) {
	m := Memory{Fail: ErrUnavailable}
	var got error

	m.WriteText("x", func(err error) { got = err })

	require.ErrorIs(t, got, ErrUnavailable)
	require.Empty(t, m.Text())
}
