package main

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestStatusLine_TruncatesByColumnsNotBytes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := initialModel()
	m.width = 24
	m.errorMessage = "çàtastrophé: ünwritable päth"

	s := m.statusLine()
	require.True(t, utf8.ValidString(s), "truncation must not split a rune")
	require.LessOrEqual(t, runewidth.StringWidth(s), 24)
	require.Contains(t, s, "çàtastroph")
}

func TestStatusLine_ShortLinesUntouched(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := initialModel()
	m.width = 500

	s := m.statusLine()
	require.Contains(t, s, "Mode: IDLE")
	require.Contains(t, s, "q=quit")
}
