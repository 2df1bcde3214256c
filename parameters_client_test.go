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

func TestParametersClientUpdateComponentScopedPath(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(
					t,
					"/api/parameters/federation-upstream/%2F/up1",
					r.URL.EscapedPath(),
				)
				body := map[string]interface{}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.NotNil(t, body["value"])
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = client.Parameters().Update(
		context.Background(),
		"federation-upstream",
		"/",
		"up1",
		Record{
			"value": Record{"uri": "amqp://upstream.example.com"},
		},
	)
	require.NoError(t, err)
}

func TestParametersClientClear(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(
					t,
					"/api/parameters/federation-upstream/%2F/up1",
					r.URL.EscapedPath(),
				)
				w.WriteHeader(http.StatusNoContent)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = client.Parameters().Clear(
		context.Background(),
		"federation-upstream",
		"/",
		"up1",
	)
	require.NoError(t, err)
}

func TestPoliciesClientUpdate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(
					t,
					"/api/policies/%2F/ha-all",
					r.URL.EscapedPath(),
				)
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = client.Policies().Update(
		context.Background(),
		"/",
		"ha-all",
		Record{
			"pattern":    ".*",
			"definition": Record{"ha-mode": "all"},
		},
	)
	require.NoError(t, err)
}

func TestPermissionsClientListIn(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"/api/vhosts/staging/permissions",
					r.URL.EscapedPath(),
				)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `[{"user":"alice"}]`)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	permissions, err := client.Permissions().ListIn(
		context.Background(),
		"staging",
	)
	require.NoError(t, err)
	require.Len(t, permissions, 1)
	require.Equal(t, "alice", permissions[0].StringField("user"))
}
