package rabbitmgmt

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func alivenessTestServer(t *testing.T, statusCode int, body string) *httptest.Server {
	return httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(
					t,
					"/api/aliveness-test/%2F",
					r.URL.EscapedPath(),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(statusCode)
				fmt.Fprintln(w, body)
			},
		),
	)
}

func TestVhostsClientAlivenessTestOK(t *testing.T) {
	server := alivenessTestServer(t, http.StatusOK, `{"status":"ok"}`)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	alive, err := client.Vhosts().AlivenessTest(context.Background(), "/")
	require.NoError(t, err)
	require.True(t, alive)
}

func TestVhostsClientAlivenessTestNotOK(t *testing.T) {
	server := alivenessTestServer(t, http.StatusOK, `{"status":"failed"}`)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	alive, err := client.Vhosts().AlivenessTest(context.Background(), "/")
	require.NoError(t, err)
	require.False(t, alive)
}

func TestVhostsClientAlivenessTestFoldsHTTPFailure(t *testing.T) {
	server := alivenessTestServer(
		t,
		http.StatusServiceUnavailable,
		`{"error":"service unavailable","reason":"starting up"}`,
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	alive, err := client.Vhosts().AlivenessTest(context.Background(), "/")
	require.NoError(t, err)
	require.False(t, alive)
}

func TestVhostsClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/api/vhosts/staging", r.URL.EscapedPath())
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = client.Vhosts().Create(context.Background(), "staging")
	require.NoError(t, err)
}
