package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type ConnectionsClient interface {
	List(context.Context) (RecordList, error)
	Info(ctx context.Context, name string) (Record, error)
	// Close asks the broker to drop the named connection. The decoded
	// response is usually empty.
	Close(ctx context.Context, name string) (Record, error)
}

type connectionsClient struct {
	*restmachinery.BaseClient
}

func NewConnectionsClient(
	baseClient *restmachinery.BaseClient,
) ConnectionsClient {
	return &connectionsClient{
		BaseClient: baseClient,
	}
}

func (c *connectionsClient) List(ctx context.Context) (RecordList, error) {
	connections := RecordList{}
	return connections, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "connections",
			RespObj: &connections,
		},
	)
}

func (c *connectionsClient) Info(
	ctx context.Context,
	name string,
) (Record, error) {
	connection := Record{}
	return connection, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("connections", name),
			RespObj: &connection,
		},
	)
}

func (c *connectionsClient) Close(
	ctx context.Context,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("connections", name),
			RespObj: &result,
		},
	)
}
