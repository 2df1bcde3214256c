package rabbitmgmt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindingsClientBindQueueReturnsLocation(t *testing.T) {
	const testLocation = "q1/my.key"
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(
					t,
					"/api/bindings/%2F/e/x/q/q1",
					r.URL.EscapedPath(),
				)
				body := map[string]interface{}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Equal(t, "my.key", body["routing_key"])
				require.Equal(t, map[string]interface{}{}, body["arguments"])
				w.Header().Set("Location", testLocation)
				w.WriteHeader(http.StatusCreated)
				// The body is ignored; only the Location header matters.
				fmt.Fprintln(w, `{"ignored":true}`)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	location, err := client.Bindings().BindQueue(
		context.Background(),
		"/",
		"q1",
		"x",
		"my.key",
		nil,
	)
	require.NoError(t, err)
	require.Equal(t, testLocation, location)
}

func TestBindingsClientBindExchangeThreadsSourceAndDestination(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"/api/bindings/%2F/e/src/e/dst",
					r.URL.EscapedPath(),
				)
				w.Header().Set("Location", "dst/~")
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	location, err := client.Bindings().BindExchange(
		context.Background(),
		"/",
		"dst",
		"src",
		"",
		nil,
	)
	require.NoError(t, err)
	require.Equal(t, "dst/~", location)
}

func TestBindingsClientDeleteQueueBinding(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(
					t,
					"/api/bindings/%2F/e/x/q/q1/my.key",
					r.URL.EscapedPath(),
				)
				w.WriteHeader(http.StatusNoContent)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	deleted, err := client.Bindings().DeleteQueueBinding(
		context.Background(),
		"/",
		"q1",
		"x",
		"my.key",
	)
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestBindingsClientDeleteQueueBindingFoldsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintln(
					w,
					`{"error":"Object Not Found","reason":"Not Found"}`,
				)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	deleted, err := client.Bindings().DeleteQueueBinding(
		context.Background(),
		"/",
		"q1",
		"x",
		"nope",
	)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestBindingsClientListQueueBindings(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(
					t,
					"/api/bindings/%2F/e/x/q/q1",
					r.URL.EscapedPath(),
				)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `[{"routing_key":"my.key"}]`)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	bindings, err := client.Bindings().ListQueueBindings(
		context.Background(),
		"/",
		"q1",
		"x",
	)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	require.Equal(t, "my.key", bindings[0].StringField("routing_key"))
}
