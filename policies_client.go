package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type PoliciesClient interface {
	List(context.Context) (RecordList, error)
	ListIn(ctx context.Context, vhost string) (RecordList, error)
	// Update creates or updates a policy. Attributes typically include
	// pattern, definition, priority, and apply-to.
	Update(ctx context.Context, vhost, name string, attrs Record) (Record, error)
	Clear(ctx context.Context, vhost, name string) (Record, error)
}

type policiesClient struct {
	*restmachinery.BaseClient
}

func NewPoliciesClient(baseClient *restmachinery.BaseClient) PoliciesClient {
	return &policiesClient{
		BaseClient: baseClient,
	}
}

func (c *policiesClient) List(ctx context.Context) (RecordList, error) {
	policies := RecordList{}
	return policies, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "policies",
			RespObj: &policies,
		},
	)
}

func (c *policiesClient) ListIn(
	ctx context.Context,
	vhost string,
) (RecordList, error) {
	policies := RecordList{}
	return policies, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("policies", vhost),
			RespObj: &policies,
		},
	)
}

func (c *policiesClient) Update(
	ctx context.Context,
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
			Path:       restmachinery.JoinPath("policies", vhost, name),
			ReqBodyObj: body,
			RespObj:    &result,
		},
	)
}

func (c *policiesClient) Clear(
	ctx context.Context,
	vhost string,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("policies", vhost, name),
			RespObj: &result,
		},
	)
}
