package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type VhostsClient interface {
	List(context.Context) (RecordList, error)
	Info(ctx context.Context, name string) (Record, error)
	Create(ctx context.Context, name string) (Record, error)
	Delete(ctx context.Context, name string) (Record, error)
	// AlivenessTest declares a test queue in the vhost, publishes to it, and
	// consumes from it. It returns true iff the decoded body's status field
	// is exactly "ok"; an HTTP-level failure folds into false rather than
	// an error.
	AlivenessTest(ctx context.Context, name string) (bool, error)
}

type vhostsClient struct {
	*restmachinery.BaseClient
}

func NewVhostsClient(baseClient *restmachinery.BaseClient) VhostsClient {
	return &vhostsClient{
		BaseClient: baseClient,
	}
}

func (c *vhostsClient) List(ctx context.Context) (RecordList, error) {
	vhosts := RecordList{}
	return vhosts, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "vhosts",
			RespObj: &vhosts,
		},
	)
}

func (c *vhostsClient) Info(ctx context.Context, name string) (Record, error) {
	vhost := Record{}
	return vhost, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("vhosts", name),
			RespObj: &vhost,
		},
	)
}

func (c *vhostsClient) Create(
	ctx context.Context,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context:    ctx,
			Method:     http.MethodPut,
			Path:       restmachinery.JoinPath("vhosts", name),
			ReqBodyObj: Record{},
			RespObj:    &result,
		},
	)
}

func (c *vhostsClient) Delete(
	ctx context.Context,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("vhosts", name),
			RespObj: &result,
		},
	)
}

func (c *vhostsClient) AlivenessTest(
	ctx context.Context,
	name string,
) (bool, error) {
	result := Record{}
	if err := c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("aliveness-test", name),
			RespObj: &result,
		},
	); err != nil {
		if _, ok := err.(*restmachinery.ErrHTTP); ok {
			return false, nil
		}
		return false, err
	}
	return result.StringField("status") == "ok", nil
}
