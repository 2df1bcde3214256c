package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

// DefinitionsClient exports and imports the broker's definitions document
// (vhosts, exchanges, queues, bindings, users, permissions, policies,
// parameters as one JSON object).
type DefinitionsClient interface {
	List(context.Context) (Record, error)
	Upload(ctx context.Context, definitions Record) (Record, error)
}

type definitionsClient struct {
	*restmachinery.BaseClient
}

func NewDefinitionsClient(
	baseClient *restmachinery.BaseClient,
) DefinitionsClient {
	return &definitionsClient{
		BaseClient: baseClient,
	}
}

func (c *definitionsClient) List(ctx context.Context) (Record, error) {
	definitions := Record{}
	return definitions, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "definitions",
			RespObj: &definitions,
		},
	)
}

func (c *definitionsClient) Upload(
	ctx context.Context,
	definitions Record,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context:    ctx,
			Method:     http.MethodPost,
			Path:       "definitions",
			ReqBodyObj: definitions,
			RespObj:    &result,
		},
	)
}
