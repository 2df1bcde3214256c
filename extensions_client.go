package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type ExtensionsClient interface {
	List(context.Context) (RecordList, error)
}

type extensionsClient struct {
	*restmachinery.BaseClient
}

func NewExtensionsClient(
	baseClient *restmachinery.BaseClient,
) ExtensionsClient {
	return &extensionsClient{
		BaseClient: baseClient,
	}
}

func (c *extensionsClient) List(ctx context.Context) (RecordList, error) {
	extensions := RecordList{}
	return extensions, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "extensions",
			RespObj: &extensions,
		},
	)
}
