package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getdeskhelp/deskhelp-cli/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsTheQuestionAndReturnsTheHandle", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/submit_query", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Deskhelp-Version"))

			var body struct {
				QueryText string `json:"query_text"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "hours policy", body.QueryText)

			json.NewEncoder(w).Encode(map[string]any{
				"message": "Query submitted successfully",
				"id":      7,
			})
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		handle, err := cl.SubmitQuery(ctx, "hours policy")
		require.NoError(t, err)
		assert.Equal(t, client.Handle(7), handle)
	})

	t.Run("FailsOnNonSuccessStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "database is down"})
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		_, err := cl.SubmitQuery(ctx, "hours policy")
		require.Error(t, err)
		assert.ErrorContains(t, err, "database is down")
	})

	t.Run("FailsOnAckWithoutID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		_, err := cl.SubmitQuery(ctx, "hours policy")
		assert.ErrorIs(t, err, client.ErrMalformedResponse)
	})

	t.Run("FailsOnUnreachableBackend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		cl := client.NewWithHost(srv.URL)
		_, err := cl.SubmitQuery(ctx, "hours policy")
		require.Error(t, err)
	})
}

func TestGetQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("FetchesStatusByID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/get_query", r.URL.Path)
			assert.Equal(t, "7", r.URL.Query().Get("id"))

			json.NewEncoder(w).Encode(map[string]string{
				"status": "completed",
				"answer": "See handbook.",
			})
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		qs, err := cl.GetQuery(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, client.StatusCompleted, qs.Status)
		assert.Equal(t, "See handbook.", qs.Answer)
	})

	t.Run("ReportsInProgressWithoutAnswer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "in-progress"})
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		qs, err := cl.GetQuery(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, client.StatusInProgress, qs.Status)
		assert.Empty(t, qs.Answer)
	})

	t.Run("FailsOnNonSuccessStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		_, err := cl.GetQuery(ctx, 99)
		require.Error(t, err)
	})

	t.Run("FailsOnMalformedBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		cl := client.NewWithHost(srv.URL)
		_, err := cl.GetQuery(ctx, 7)
		assert.ErrorIs(t, err, client.ErrMalformedResponse)
	})
}
