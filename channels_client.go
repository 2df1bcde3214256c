package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

type ChannelsClient interface {
	List(context.Context) (RecordList, error)
	Info(ctx context.Context, name string) (Record, error)
}

type channelsClient struct {
	*restmachinery.BaseClient
}

func NewChannelsClient(baseClient *restmachinery.BaseClient) ChannelsClient {
	return &channelsClient{
		BaseClient: baseClient,
	}
}

func (c *channelsClient) List(ctx context.Context) (RecordList, error) {
	channels := RecordList{}
	return channels, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "channels",
			RespObj: &channels,
		},
	)
}

func (c *channelsClient) Info(
	ctx context.Context,
	name string,
) (Record, error) {
	channel := Record{}
	return channel, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    restmachinery.JoinPath("channels", name),
			RespObj: &channel,
		},
	)
}
