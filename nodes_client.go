package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type NodesClient interface {
	List(context.Context) (RecordList, error)
	Info(ctx context.Context, name string) (Record, error)
}

type nodesClient struct {
	*restmachinery.BaseClient
}

func NewNodesClient(baseClient *restmachinery.BaseClient) NodesClient {
	return &nodesClient{
		BaseClient: baseClient,
	}
}

func (c *nodesClient) List(ctx context.Context) (RecordList, error) {
	nodes := RecordList{}
	return nodes, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "nodes",
			RespObj: &nodes,
		},
	)
}

func (c *nodesClient) Info(ctx context.Context, name string) (Record, error) {
	node := Record{}
	return node, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("nodes", name),
			RespObj: &node,
		},
	)
}
