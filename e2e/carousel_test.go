//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWithDeck(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	deck, err := tf.CreateWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp(append([]string{"--deck", deck}, args...)...))
	if !tf.SeePlain("Alpha slide") {
		tf.DumpTailOnFail(t, "startup", 4096)
		t.Fatal("first slide never rendered")
	}
	return tf
}

func TestShowsOnePagePerBreakpoint(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t)

	// 120 columns is wide: three slides share the row
	require.True(t, tf.SeePlain("Charlie slide"))
	require.True(t, tf.SeePlain("wide · 3 per page · 1/3 · wrap"))
	require.NoError(t, tf.Quit())
}

func TestArrowKeysNavigateAndWrap(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t)

	mark := tf.Mark()
	require.NoError(t, tf.Next())
	require.True(t, tf.SeeAfterMark(mark, "2/3"))

	mark = tf.Mark()
	require.NoError(t, tf.Next())
	require.NoError(t, tf.Next())
	require.True(t, tf.SeeAfterMark(mark, "1/3"), "wrap returns to the first position")

	mark = tf.Mark()
	require.NoError(t, tf.Previous())
	require.True(t, tf.SeeAfterMark(mark, "Echo slide"))
	require.NoError(t, tf.Quit())
}

func TestGoToPrompt(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t)

	require.NoError(t, tf.SendKeys(KeyGoTo))
	require.True(t, tf.SeePlain("Go to page (1-3)"))

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys("3"+KeyEnter))
	require.True(t, tf.SeeAfterMark(mark, "3/3"))
	require.NoError(t, tf.Quit())
}

func TestTabSwitchesCarousel(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t)

	mark := tf.Mark()
	require.NoError(t, tf.NextTab())
	require.True(t, tf.SeeAfterMark(mark, "Go basics"))
	require.True(t, tf.SeeAfterMark(mark, "clamp"))
	require.NoError(t, tf.Quit())
}

func TestDeckEditReloadsLive(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t, "--watch-debounce", "50ms")

	mark := tf.Mark()
	edited := strings.Replace(sampleDeck, "Alpha slide", "Alpha revised", 1)
	require.NoError(t, tf.WriteDeck(edited))
	require.True(t, tf.SeeAfterMark(mark, "Alpha revised"))
	require.True(t, tf.SeeAfterMark(mark, "Deck reloaded"))
	require.NoError(t, tf.Quit())
}

func TestQuitExitsCleanly(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t)

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(2 * time.Second); err != nil {
		tf.DumpTailOnFail(t, "exit", 4096)
		t.Fatalf("quit: %v", err)
	}
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := startWithDeck(t)

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.NoError(t, tf.WaitExit(2*time.Second))
}
