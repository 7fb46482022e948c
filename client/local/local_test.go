package local_test

import (
	"context"
	"testing"

	"github.com/getdeskhelp/deskhelp-cli/client"
	"github.com/getdeskhelp/deskhelp-cli/client/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalResponder(t *testing.T) {
	ctx := context.Background()

	t.Run("StaysInProgressThenCompletes", func(t *testing.T) {
		cl := local.New()

		handle, err := cl.SubmitQuery(ctx, "hours policy")
		require.NoError(t, err)
		require.NotZero(t, handle)

		qs, err := cl.GetQuery(ctx, handle)
		require.NoError(t, err)
		assert.Equal(t, client.StatusInProgress, qs.Status)

		qs, err = cl.GetQuery(ctx, handle)
		require.NoError(t, err)
		assert.Equal(t, client.StatusCompleted, qs.Status)
		assert.Contains(t, qs.Answer, "hours policy")
	})

	t.Run("CompletesImmediatelyWithReadyAfterZero", func(t *testing.T) {
		cl := local.New(local.WithReadyAfter(0))

		handle, err := cl.SubmitQuery(ctx, "hours policy")
		require.NoError(t, err)

		qs, err := cl.GetQuery(ctx, handle)
		require.NoError(t, err)
		assert.Equal(t, client.StatusCompleted, qs.Status)
	})

	t.Run("HandlesAreDistinct", func(t *testing.T) {
		cl := local.New()

		h1, err := cl.SubmitQuery(ctx, "first")
		require.NoError(t, err)
		h2, err := cl.SubmitQuery(ctx, "second")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("FailsOnUnknownHandle", func(t *testing.T) {
		cl := local.New()

		_, err := cl.GetQuery(ctx, 42)
		assert.ErrorIs(t, err, local.ErrNotFound)
	})
}
