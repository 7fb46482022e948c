package session_test

import (
	"testing"

	"github.com/getdeskhelp/deskhelp-cli/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	t.Run("StartsEmpty", func(t *testing.T) {
		h := session.NewHistory()
		assert.Zero(t, h.Len())
		assert.Empty(t, h.Entries())
	})

	t.Run("KeepsNewestFirst", func(t *testing.T) {
		h := session.NewHistory()
		h.Add(session.Entry{Question: "first", Answer: "a1"})
		h.Add(session.Entry{Question: "second", Answer: "a2"})
		h.Add(session.Entry{Question: "third", Answer: "a3"})

		entries := h.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "third", entries[0].Question)
		assert.Equal(t, "second", entries[1].Question)
		assert.Equal(t, "first", entries[2].Question)
	})

	t.Run("EntriesReturnsACopy", func(t *testing.T) {
		h := session.NewHistory()
		h.Add(session.Entry{Question: "q", Answer: "a"})

		entries := h.Entries()
		entries[0].Answer = "mutated"

		assert.Equal(t, "a", h.Entries()[0].Answer)
	})
}
