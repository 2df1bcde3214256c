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

func TestUsersClientUpdate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/api/users/alice", r.URL.EscapedPath())
				body := map[string]interface{}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Equal(t, "opensesame", body["password"])
				require.Equal(t, "administrator", body["tags"])
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = client.Users().Update(
		context.Background(),
		"alice",
		Record{
			"password": "opensesame",
			"tags":     "administrator",
		},
	)
	require.NoError(t, err)
}

func TestUsersClientInfoEncodesName(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"/api/users/alice%20smith",
					r.URL.EscapedPath(),
				)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"name":"alice smith"}`)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	user, err := client.Users().Info(context.Background(), "alice smith")
	require.NoError(t, err)
	require.Equal(t, "alice smith", user.StringField("name"))
}

func TestUsersClientPermissions(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"/api/users/alice/permissions",
					r.URL.EscapedPath(),
				)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `[{"vhost":"/","configure":".*"}]`)
			},
		),
	)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	permissions, err := client.Users().Permissions(
		context.Background(),
		"alice",
	)
	require.NoError(t, err)
	require.Len(t, permissions, 1)
	require.Equal(t, "/", permissions[0].StringField("vhost"))
}
