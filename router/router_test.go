//go:build !wasm

package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-docs/content"
)

func knownPages(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestRouter_StartReadsKnownHash(t *testing.T) {
	h := NewMemoryHistory("#payments")
	r := New(h, knownPages("overview", "payments"), nil)

	page, ok := r.Start(func(string) {})
	require.True(t, ok)
	require.Equal(t, "payments", page)
}

func TestRouter_StartIgnoresUnknownOrEmptyHash(t *testing.T) {
	for _, hash := range []string{"", "#", "#missing"} {
		r := New(NewMemoryHistory(hash), knownPages("overview"), nil)
		_, ok := r.Start(func(string) {})
		require.False(t, ok, "hash %q", hash)
	}
}

func TestRouter_PushAndBack(t *testing.T) {
	h := NewMemoryHistory("")
	r := New(h, knownPages("overview", "payments", "setup"), nil)

	var popped []string
	r.Start(func(page string) { popped = append(popped, page) })

	require.NoError(t, r.Push("overview"))
	require.NoError(t, r.Push("payments"))
	require.Equal(t, "#payments", h.Hash())
	require.Equal(t, 3, h.Len())

	require.True(t, h.Back())
	require.Equal(t, []string{"overview"}, popped)
	require.Equal(t, "overview", r.Current())

	// The initial entry carries no state, so popping to it is ignored.
	require.True(t, h.Back())
	require.Equal(t, []string{"overview"}, popped)
	require.False(t, h.Back())

	require.True(t, h.Forward())
	require.Equal(t, []string{"overview", "overview"}, popped)
}

func TestRouter_PushUnknown(t *testing.T) {
	h := NewMemoryHistory("")
	r := New(h, knownPages("overview"), nil)

	err := r.Push("nope")
	require.ErrorIs(t, err, content.ErrUnknownPage)
	require.Equal(t, 1, h.Len())
	require.Empty(t, r.Current())
}

func TestRouter_ReplaceKeepsLength(t *testing.T) {
	h := NewMemoryHistory("#overview")
	r := New(h, knownPages("overview", "payments"), nil)

	require.NoError(t, r.Replace("payments"))
	require.Equal(t, 1, h.Len())
	require.Equal(t, "#payments", h.Hash())
}

func TestRouter_PushTruncatesForward(t *testing.T) {
	h := NewMemoryHistory("")
	r := New(h, knownPages("a", "b", "c"), nil)
	r.Start(func(string) {})

	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	require.True(t, h.Back())
	require.NoError(t, r.Push("c"))

	require.Equal(t, 3, h.Len())
	require.False(t, h.Forward())
}

func TestRouter_Stop(t *testing.T) {
	h := NewMemoryHistory("")
	r := New(h, knownPages("a", "b"), nil)
	calls := 0
	r.Start(func(string) { calls++ })

	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	r.Stop()
	h.Back()

	require.Zero(t, calls)
}

func TestHashRoundTrip(t *testing.T) {
	require.Equal(t, "#getting%20started", HashFor("getting started"))
	require.Equal(t, "getting started", PageFromHash("#getting%20started"))
	require.Equal(t, "overview", PageFromHash("overview"))
	require.Equal(t, "100%", PageFromHash("#100%"))
}
