package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type QueuesClient interface {
	List(context.Context) (RecordList, error)
	ListIn(ctx context.Context, vhost string) (RecordList, error)
	Info(ctx context.Context, vhost, name string) (Record, error)
	// Declare creates or updates a queue. Caller attributes are merged over
	// the defaults {durable: true, auto_delete: false, arguments: {}}.
	Declare(ctx context.Context, vhost, name string, attrs Record) (Record, error)
	Delete(ctx context.Context, vhost, name string) (Record, error)
	// Purge drops all messages from the queue. It always returns an empty
	// Record regardless of the response body.
	Purge(ctx context.Context, vhost, name string) (Record, error)
	// GetMessages pulls messages off the queue. Caller options are merged
	// over the defaults {count: 1, ackmode: ack_requeue_true, encoding:
	// auto}.
	GetMessages(ctx context.Context, vhost, name string, opts Record) (RecordList, error)
	ListBindings(ctx context.Context, vhost, name string) (RecordList, error)
}

type queuesClient struct {
	*restmachinery.BaseClient
}

func NewQueuesClient(baseClient *restmachinery.BaseClient) QueuesClient {
	return &queuesClient{
		BaseClient: baseClient,
	}
}

func (c *queuesClient) List(ctx context.Context) (RecordList, error) {
	queues := RecordList{}
	return queues, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "queues",
			RespObj: &queues,
		},
	)
}

func (c *queuesClient) ListIn(
	ctx context.Context,
	vhost string,
) (RecordList, error) {
	queues := RecordList{}
	return queues, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("queues", vhost),
			RespObj: &queues,
		},
	)
}

func (c *queuesClient) Info(
	ctx context.Context,
	vhost string,
	name string,
) (Record, error) {
	queue := Record{}
	return queue, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("queues", vhost, name),
			RespObj: &queue,
		},
	)
}

func (c *queuesClient) Declare(
	ctx context.Context,
	vhost string,
	name string,
	attrs Record,
) (Record, error) {
	body := Record{
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
			Path:       restmachinery.JoinPath("queues", vhost, name),
			ReqBodyObj: body,
			RespObj:    &result,
		},
	)
}

func (c *queuesClient) Delete(
	ctx context.Context,
	vhost string,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("queues", vhost, name),
			RespObj: &result,
		},
	)
}

func (c *queuesClient) Purge(
	ctx context.Context,
	vhost string,
	name string,
) (Record, error) {
	if err := c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("queues", vhost, name, "contents"),
		},
	); err != nil {
		return nil, err
	}
	return Record{}, nil
}

func (c *queuesClient) GetMessages(
	ctx context.Context,
	vhost string,
	name string,
	opts Record,
) (RecordList, error) {
	body := Record{
		"count":    1,
		"ackmode":  "ack_requeue_true",
		"encoding": "auto",
	}
	for k, v := range opts {
		body[k] = v
	}
	messages := RecordList{}
	return messages, c.ExecuteRequest(
		restmachinery.Request{
			Context:    ctx,
			Method:     http.MethodPost,
			Path:       restmachinery.JoinPath("queues", vhost, name, "get"),
			ReqBodyObj: body,
			RespObj:    &messages,
		},
	)
}

func (c *queuesClient) ListBindings(
	ctx context.Context,
	vhost string,
	name string,
) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("queues", vhost, name, "bindings"),
			RespObj: &bindings,
		},
	)
}
