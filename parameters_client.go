package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

// ParametersClient manages runtime parameters, which are scoped by the
// component that interprets them (e.g. federation-upstream) and by vhost.
type ParametersClient interface {
	List(context.Context) (RecordList, error)
	ListOf(ctx context.Context, component string) (RecordList, error)
	Info(ctx context.Context, component, vhost, name string) (Record, error)
	Update(ctx context.Context, component, vhost, name string, attrs Record) (Record, error)
	Clear(ctx context.Context, component, vhost, name string) (Record, error)
}

type parametersClient struct {
	*restmachinery.BaseClient
}

func NewParametersClient(
	baseClient *restmachinery.BaseClient,
) ParametersClient {
	return &parametersClient{
		BaseClient: baseClient,
	}
}

func (c *parametersClient) List(ctx context.Context) (RecordList, error) {
	parameters := RecordList{}
	return parameters, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "parameters",
			RespObj: &parameters,
		},
	)
}

func (c *parametersClient) ListOf(
	ctx context.Context,
	component string,
) (RecordList, error) {
	parameters := RecordList{}
	return parameters, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("parameters", component),
			RespObj: &parameters,
		},
	)
}

func (c *parametersClient) Info(
	ctx context.Context,
	component string,
	vhost string,
	name string,
) (Record, error) {
	parameter := Record{}
	return parameter, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("parameters", component, vhost, name),
			RespObj: &parameter,
		},
	)
}

func (c *parametersClient) Update(
	ctx context.Context,
	component string,
	vhost string,
	name string,
	attrs Record,
) (Record, error) {
	body := Record{}
	for k, v := range attrs {
		body[k] = v
	}
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context:    ctx,
			Method:     http.MethodPut,
			Path:       restmachinery.JoinPath("parameters", component, vhost, name),
			ReqBodyObj: body,
			RespObj:    &result,
		},
	)
}

func (c *parametersClient) Clear(
	ctx context.Context,
	component string,
	vhost string,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("parameters", component, vhost, name),
			RespObj: &result,
		},
	)
}
