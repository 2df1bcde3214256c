package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type PermissionsClient interface {
	List(context.Context) (RecordList, error)
	// ListIn lists the permissions granted within one vhost.
	ListIn(ctx context.Context, vhost string) (RecordList, error)
	Of(ctx context.Context, vhost, user string) (Record, error)
	// Update grants permissions to a user in a vhost. Attributes are the
	// configure/write/read regular expressions.
	Update(ctx context.Context, vhost, user string, attrs Record) (Record, error)
	Clear(ctx context.Context, vhost, user string) (Record, error)
}

type permissionsClient struct {
	*restmachinery.BaseClient
}

func NewPermissionsClient(
	baseClient *restmachinery.BaseClient,
) PermissionsClient {
	return &permissionsClient{
		BaseClient: baseClient,
	}
}

func (c *permissionsClient) List(ctx context.Context) (RecordList, error) {
	permissions := RecordList{}
	return permissions, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "permissions",
			RespObj: &permissions,
		},
	)
}

func (c *permissionsClient) ListIn(
	ctx context.Context,
	vhost string,
) (RecordList, error) {
	permissions := RecordList{}
	return permissions, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("vhosts", vhost, "permissions"),
			RespObj: &permissions,
		},
	)
}

func (c *permissionsClient) Of(
	ctx context.Context,
	vhost string,
	user string,
) (Record, error) {
	permissions := Record{}
	return permissions, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("permissions", vhost, user),
			RespObj: &permissions,
		},
	)
}

func (c *permissionsClient) Update(
	ctx context.Context,
	vhost string,
	user string,
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
			Path:       restmachinery.JoinPath("permissions", vhost, user),
			ReqBodyObj: body,
			RespObj:    &result,
		},
	)
}

func (c *permissionsClient) Clear(
	ctx context.Context,
	vhost string,
	user string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("permissions", vhost, user),
			RespObj: &result,
		},
	)
}
