package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

// BindingsClient manages routing relationships between exchanges and
// queues and between pairs of exchanges. Binding creation is asynchronous
// on the broker side: the server answers with a Location header naming the
// new binding's properties key rather than a body, and that header value is
// returned verbatim.
type BindingsClient interface {
	List(context.Context) (RecordList, error)
	ListIn(ctx context.Context, vhost string) (RecordList, error)
	// ListQueueBindings lists the bindings between one exchange and one
	// queue.
	ListQueueBindings(ctx context.Context, vhost, queue, exchange string) (RecordList, error)
	// BindQueue binds a queue to an exchange and returns the Location
	// header identifying the new binding.
	BindQueue(ctx context.Context, vhost, queue, exchange, routingKey string, args Record) (string, error)
	// DeleteQueueBinding removes one binding by its properties key. The
	// result is a success boolean; an HTTP-level failure folds into false
	// rather than an error.
	DeleteQueueBinding(ctx context.Context, vhost, queue, exchange, propertiesKey string) (bool, error)
	// ListExchangeBindings lists the bindings between a source exchange and
	// a destination exchange.
	ListExchangeBindings(ctx context.Context, vhost, source, destination string) (RecordList, error)
	// BindExchange binds a destination exchange to a source exchange and
	// returns the Location header identifying the new binding.
	BindExchange(ctx context.Context, vhost, destination, source, routingKey string, args Record) (string, error)
	// DeleteExchangeBinding removes one exchange-to-exchange binding by its
	// properties key, with the same success-boolean contract as
	// DeleteQueueBinding.
	DeleteExchangeBinding(ctx context.Context, vhost, destination, source, propertiesKey string) (bool, error)
}

type bindingsClient struct {
	*restmachinery.BaseClient
}

func NewBindingsClient(baseClient *restmachinery.BaseClient) BindingsClient {
	return &bindingsClient{
		BaseClient: baseClient,
	}
}

func (c *bindingsClient) List(ctx context.Context) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "bindings",
			RespObj: &bindings,
		},
	)
}

func (c *bindingsClient) ListIn(
	ctx context.Context,
	vhost string,
) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("bindings", vhost),
			RespObj: &bindings,
		},
	)
}

func (c *bindingsClient) ListQueueBindings(
	ctx context.Context,
	vhost string,
	queue string,
	exchange string,
) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path: restmachinery.JoinPath(
				"bindings", vhost, "e", exchange, "q", queue,
			),
			RespObj: &bindings,
		},
	)
}

func (c *bindingsClient) BindQueue(
	ctx context.Context,
	vhost string,
	queue string,
	exchange string,
	routingKey string,
	args Record,
) (string, error) {
	return c.createBinding(
		ctx,
		restmachinery.JoinPath("bindings", vhost, "e", exchange, "q", queue),
		routingKey,
		args,
	)
}

func (c *bindingsClient) DeleteQueueBinding(
	ctx context.Context,
	vhost string,
	queue string,
	exchange string,
	propertiesKey string,
) (bool, error) {
	return c.deleteBinding(
		ctx,
		restmachinery.JoinPath(
			"bindings", vhost, "e", exchange, "q", queue, propertiesKey,
		),
	)
}

func (c *bindingsClient) ListExchangeBindings(
	ctx context.Context,
	vhost string,
	source string,
	destination string,
) (RecordList, error) {
	bindings := RecordList{}
	return bindings, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path: restmachinery.JoinPath(
				"bindings", vhost, "e", source, "e", destination,
			),
			RespObj: &bindings,
		},
	)
}

func (c *bindingsClient) BindExchange(
	ctx context.Context,
	vhost string,
	destination string,
	source string,
	routingKey string,
	args Record,
) (string, error) {
	return c.createBinding(
		ctx,
		restmachinery.JoinPath("bindings", vhost, "e", source, "e", destination),
		routingKey,
		args,
	)
}

func (c *bindingsClient) DeleteExchangeBinding(
	ctx context.Context,
	vhost string,
	destination string,
	source string,
	propertiesKey string,
) (bool, error) {
	return c.deleteBinding(
		ctx,
		restmachinery.JoinPath(
			"bindings", vhost, "e", source, "e", destination, propertiesKey,
		),
	)
}

func (c *bindingsClient) createBinding(
	ctx context.Context,
	path string,
	routingKey string,
	args Record,
) (string, error) {
	body := Record{
		"routing_key": routingKey,
		"arguments":   Record{},
	}
	if args != nil {
		body["arguments"] = args
	}
	resp, err := c.SubmitRequest(
		restmachinery.Request{
			Context:    ctx,
			Method:     http.MethodPost,
			Path:       path,
			ReqBodyObj: body,
		},
	)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	return resp.Header.Get("Location"), nil
}

func (c *bindingsClient) deleteBinding(
	ctx context.Context,
	path string,
) (bool, error) {
	resp, err := c.SubmitRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    path,
		},
	)
	if err != nil {
		if _, ok := err.(*restmachinery.ErrHTTP); ok {
			return false, nil
		}
		return false, err
	}
	resp.Body.Close()
	return true, nil
}
