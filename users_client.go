package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type UsersClient interface {
	List(context.Context) (RecordList, error)
	Info(ctx context.Context, name string) (Record, error)
	// Update creates or updates a user. Attributes typically include
	// password (or password_hash) and tags.
	Update(ctx context.Context, name string, attrs Record) (Record, error)
	Delete(ctx context.Context, name string) (Record, error)
	// Permissions lists the user's permissions across all vhosts.
	Permissions(ctx context.Context, name string) (RecordList, error)
}

type usersClient struct {
	*restmachinery.BaseClient
}

func NewUsersClient(baseClient *restmachinery.BaseClient) UsersClient {
	return &usersClient{
		BaseClient: baseClient,
	}
}

func (c *usersClient) List(ctx context.Context) (RecordList, error) {
	users := RecordList{}
	return users, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "users",
			RespObj: &users,
		},
	)
}

func (c *usersClient) Info(ctx context.Context, name string) (Record, error) {
	user := Record{}
	return user, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("users", name),
			RespObj: &user,
		},
	)
}

func (c *usersClient) Update(
	ctx context.Context,
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
			Path:       restmachinery.JoinPath("users", name),
			ReqBodyObj: body,
			RespObj:    &result,
		},
	)
}

func (c *usersClient) Delete(
	ctx context.Context,
	name string,
) (Record, error) {
	result := Record{}
	return result, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodDelete,
			Path:    restmachinery.JoinPath("users", name),
			RespObj: &result,
		},
	)
}

func (c *usersClient) Permissions(
	ctx context.Context,
	name string,
) (RecordList, error) {
	permissions := RecordList{}
	return permissions, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("users", name, "permissions"),
			RespObj: &permissions,
		},
	)
}
