package rabbitmgmt

import (
	"context"
	"net/http"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

// OverviewClient reads the cluster-wide overview document and the protocol
// summaries derived from it.
type OverviewClient interface {
	Get(context.Context) (Record, error)
	// EnabledProtocols returns the protocols the broker is listening on,
	// deduplicated, in the order the server listed them.
	EnabledProtocols(context.Context) ([]string, error)
	// ProtocolPorts maps each listening protocol to its port. When a
	// protocol has several listeners the last one wins.
	ProtocolPorts(context.Context) (map[string]int, error)
}

type overviewClient struct {
	*restmachinery.BaseClient
}

func NewOverviewClient(baseClient *restmachinery.BaseClient) OverviewClient {
	return &overviewClient{
		BaseClient: baseClient,
	}
}

func (c *overviewClient) Get(ctx context.Context) (Record, error) {
	overview := Record{}
	return overview, c.ExecuteRequest(
		restmachinery.Request{
			Context: ctx,
			Method:  http.MethodGet,
			Path:    "overview",
			RespObj: &overview,
		},
	)
}

func (c *overviewClient) EnabledProtocols(
	ctx context.Context,
) ([]string, error) {
	overview, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	protocols := []string{}
	seen := map[string]bool{}
	for _, listener := range overview.ListField("listeners") {
		protocol := listener.StringField("protocol")
		if protocol == "" || seen[protocol] {
			continue
		}
		seen[protocol] = true
		protocols = append(protocols, protocol)
	}
	return protocols, nil
}

func (c *overviewClient) ProtocolPorts(
	ctx context.Context,
) (map[string]int, error) {
	overview, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	ports := map[string]int{}
	for _, listener := range overview.ListField("listeners") {
		if protocol := listener.StringField("protocol"); protocol != "" {
			ports[protocol] = listener.IntField("port")
		}
	}
	return ports, nil
}
