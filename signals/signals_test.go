//go:build !wasm

package signals

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_SetNotifiesInOrder(t *testing.T) {
	s := NewSignal("overview")
	var got []string
	s.Subscribe(func(v string) { got = append(got, "a:"+v) })
	s.Subscribe(func(v string) { got = append(got, "b:"+v) })

	s.Set("install")

	require.Equal(t, "install", s.Get())
	require.Equal(t, []string{"a:install", "b:install"}, got)
}

func TestSignal_UnsubscribeMiddle(t *testing.T) {
	s := NewSignal(0)
	var a, b, c int
	s.Subscribe(func(v int) { a = v })
	unsubB := s.Subscribe(func(v int) { b = v })
	s.Subscribe(func(v int) { c = v })

	unsubB()
	unsubB()
	s.Set(7)

	require.Equal(t, 7, a)
	require.Equal(t, 0, b)
	require.Equal(t, 7, c)
}

func TestSignal_Update(t *testing.T) {
	open := NewSignal(false)
	toggle := func(v bool) bool { return !v }

	open.Update(toggle)
	require.True(t, open.Get())

	open.Update(toggle)
	require.False(t, open.Get())
}
