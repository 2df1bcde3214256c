package rabbitmgmt

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const testOverviewBody = `{
	"listeners": [
		{"protocol": "amqp", "port": 5672},
		{"protocol": "amqp", "port": 5672},
		{"protocol": "mqtt", "port": 1883}
	]
}`

func overviewTestServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/overview", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, testOverviewBody)
			},
		),
	)
}

func TestOverviewClientGet(t *testing.T) {
	server := overviewTestServer(t)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	overview, err := client.Overview().Get(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.ListField("listeners"), 3)
}

func TestOverviewClientEnabledProtocols(t *testing.T) {
	server := overviewTestServer(t)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	protocols, err := client.Overview().EnabledProtocols(context.Background())
	require.NoError(t, err)
	// Deduplicated, order preserved.
	require.Equal(t, []string{"amqp", "mqtt"}, protocols)
}

func TestOverviewClientProtocolPorts(t *testing.T) {
	server := overviewTestServer(t)
	defer server.Close()
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	ports, err := client.Overview().ProtocolPorts(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int{"amqp": 5672, "mqtt": 1883}, ports)
}
