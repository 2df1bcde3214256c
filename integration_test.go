package rabbitmgmt_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rabbitutil/rabbitmgmt"
	"github.com/rabbitutil/rabbitmgmt/internal/testing/mgmtserver"
)

// Walks a full queue lifecycle against the in-process fake management API:
// vhost creation, exchange and queue declaration, binding, purging, and
// teardown.
func TestQueueLifecycle(t *testing.T) {
	ctx := context.Background()

	fake := mgmtserver.NewServer()
	fake.Listeners = []map[string]interface{}{
		{"protocol": "amqp", "port": 5672},
		{"protocol": "mqtt", "port": 1883},
	}
	server := httptest.NewServer(fake)
	defer server.Close()

	client, err := rabbitmgmt.NewClient(server.URL)
	require.NoError(t, err)

	protocols, err := client.Overview().EnabledProtocols(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"amqp", "mqtt"}, protocols)

	_, err = client.Vhosts().Create(ctx, "integration vhost")
	require.NoError(t, err)

	alive, err := client.Vhosts().AlivenessTest(ctx, "integration vhost")
	require.NoError(t, err)
	require.True(t, alive)

	_, err = client.Exchanges().Declare(
		ctx,
		"integration vhost",
		"events",
		rabbitmgmt.Record{"type": "topic"},
	)
	require.NoError(t, err)

	_, err = client.Queues().Declare(ctx, "integration vhost", "audit log", nil)
	require.NoError(t, err)

	queues, err := client.Queues().ListIn(ctx, "integration vhost")
	require.NoError(t, err)
	require.Len(t, queues, 1)
	require.Equal(t, "audit log", queues[0].StringField("name"))

	location, err := client.Bindings().BindQueue(
		ctx,
		"integration vhost",
		"audit log",
		"events",
		"audit.#",
		nil,
	)
	require.NoError(t, err)
	require.NotEmpty(t, location)
	propertiesKey := location[strings.LastIndex(location, "/")+1:]

	bindings, err := client.Bindings().ListQueueBindings(
		ctx,
		"integration vhost",
		"audit log",
		"events",
	)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	require.Equal(t, "audit.#", bindings[0].StringField("routing_key"))

	purged, err := client.Queues().Purge(ctx, "integration vhost", "audit log")
	require.NoError(t, err)
	require.Equal(t, rabbitmgmt.Record{}, purged)

	deleted, err := client.Bindings().DeleteQueueBinding(
		ctx,
		"integration vhost",
		"audit log",
		"events",
		propertiesKey,
	)
	require.NoError(t, err)
	require.True(t, deleted)

	// Deleting the binding twice folds the 404 into false.
	deleted, err = client.Bindings().DeleteQueueBinding(
		ctx,
		"integration vhost",
		"audit log",
		"events",
		propertiesKey,
	)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = client.Queues().Delete(ctx, "integration vhost", "audit log")
	require.NoError(t, err)

	_, err = client.Exchanges().Delete(ctx, "integration vhost", "events", false)
	require.NoError(t, err)

	_, err = client.Vhosts().Delete(ctx, "integration vhost")
	require.NoError(t, err)

	alive, err = client.Vhosts().AlivenessTest(ctx, "integration vhost")
	require.NoError(t, err)
	require.False(t, alive)
}
