package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type ExchangesClient interface {
	List(context.Context) (RecordList, error)
	ListIn(ctx context.Context, vhost string) (RecordList, error)
	Info(ctx context.Context, vhost, name string) (Record, error)
	// Declare creates or updates an exchange. Caller attributes are merged
	// over the defaults {type: direct, durable: true, auto_delete: false,
	// arguments: {}}, overriding only the keys they name.
	Declare(ctx context.Context, vhost, name string, attrs Record) (Record, error)
	// Delete removes an exchange. When ifUnused is set the broker only
	// deletes it if nothing is bound to it, signalled via the if-unused
	// query parameter.
	Delete(ctx context.Context, vhost, name string, ifUnused bool) (Record, error)
	ListBindingsBySource(ctx context.Context, vhost, name string) (RecordList, error)
	ListBindingsByDestination(ctx context.Context, vhost, name string) (RecordList, error)
}

type exchangesClient struct {
	*restmachinery.BaseClient
}

func NewExchangesClient(baseClient *restmachinery.BaseClient) ExchangesClient {
	return &exchangesClient{
		BaseClient: baseClient,
	}
}

func (c *exchangesClient) List(ctx context.Context) (RecordList, error) {
	exchanges := RecordList{}
	return exchanges, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "exchanges",
			RespObj: &exchanges,
		},
	)
}

func (c *exchangesClient) ListIn(
	ctx context.Context,
	vhost string,
) (RecordList, error) {
	exchanges := RecordList{}
	return exchanges, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("exchanges", vhost),
			RespObj: &exchanges,
		},
	)
}

func (c *exchangesClient) Info(
	ctx context.Context,
	vhost string,
	name string,
) (Record, error) {
	exchange := Record{}
	return exchange, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("exchanges", vhost, name),
			RespObj: &exchange,
		},
	)
}

func (c *exchangesClient) Declare(
	ctx context.Context,
	vhost string,
	name string,
	attrs Record,
) (Record, error) {
	body := Record{
		"type":        "direct",
		"durable":     true,
		"auto_delete": false,
		"arguments":   Record{},
	}
	for k, v := range attrs {
		body[k] = v
	}
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context:    ctx,
			Method:     http.MethodPut,
			Path:       restmachinery.JoinPath("exchanges", vhost, name),
			ReqBodyObj: body,
			RespObj:    &result,
		},
	)
}

func (c *exchangesClient) Delete(
	ctx context.Context,
	vhost string,
	name string,
	ifUnused bool,
) (Record, error) {
	apiReq := restmachinery.Request{
		Context: ctx,
		Method:  http.MethodDelete,
		Path:    restmachinery.JoinPath("exchanges", vhost, name),
	}
	if ifUnused {
		apiReq.QueryParams = map[string]string{
			"if-unused": "true",
		}
	}
	result := Record{}
	apiReq.RespObj = &result
	return result, c.ExecuteRequest(apiReq)
}

func (c *exchangesClient) ListBindingsBySource(
	ctx context.Context,
	vhost string,
	name string,
) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path: restmachinery.JoinPath(
				"exchanges", vhost, name, "bindings", "source",
			),
			RespObj: &bindings,
		},
	)
}

func (c *exchangesClient) ListBindingsByDestination(
	ctx context.Context,
	vhost string,
	name string,
) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path: restmachinery.JoinPath(
				"exchanges", vhost, name, "bindings", "destination",
			),
			RespObj: &bindings,
		},
	)
}
