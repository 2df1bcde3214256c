// Package rabbitmgmt is a client for the RabbitMQ management plugin's HTTP
// API. Each method maps to exactly one HTTP request against a RESTful
// resource path; responses are decoded into dynamic Records whose shape is
// defined by the server. The client performs no retries, no caching, and
// imposes no timeouts of its own.
package rabbitmgmt

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/rabbitutil/rabbitmgmt/internal/restmachinery"
)

const (
	defaultUsername = "guest"
	defaultPassword = "guest"

	// The management API occasionally answers with a redirect (e.g. when a
	// proxy normalizes the path). Follow a few hops, then give up.
	maxRedirects = 3
)

// Client is the entry point to the management API, aggregating one
// sub-client per resource family.
type Client interface {
	Overview() OverviewClient
	Nodes() NodesClient
	Extensions() ExtensionsClient
	Definitions() DefinitionsClient
	Connections() ConnectionsClient
	Channels() ChannelsClient
	Exchanges() ExchangesClient
	Queues() QueuesClient
	Bindings() BindingsClient
	Vhosts() VhostsClient
	Users() UsersClient
	Permissions() PermissionsClient
	Policies() PoliciesClient
	Parameters() ParametersClient
}

// ClientOptions tunes client construction. Credentials embedded in the
// endpoint URL take precedence over Username/Password here; both fall back
// to guest/guest.
type ClientOptions struct {
	Username string
	Password string
	// Transport, when non-nil, replaces the default HTTP transport. Any
	// timeout must be configured here; the client adds none.
	Transport http.RoundTripper
	// AllowInsecure skips TLS certificate verification. Ignored when a
	// custom Transport is supplied.
	AllowInsecure bool
}

type client struct {
	overviewClient    OverviewClient
	nodesClient       NodesClient
	extensionsClient  ExtensionsClient
	definitionsClient DefinitionsClient
	connectionsClient ConnectionsClient
	channelsClient    ChannelsClient
	exchangesClient   ExchangesClient
	queuesClient      QueuesClient
	bindingsClient    BindingsClient
	vhostsClient      VhostsClient
	usersClient       UsersClient
	permissionsClient PermissionsClient
	policiesClient    PoliciesClient
	parametersClient  ParametersClient
}

// NewClient returns a client bound to the given endpoint with default
// options. See NewClientWithOptions.
func NewClient(endpoint string) (Client, error) {
	return NewClientWithOptions(endpoint, ClientOptions{})
}

// NewClientWithOptions parses the endpoint, resolves credentials, and
// builds the HTTP pipeline shared by all resource clients. An endpoint
// whose path is empty or "/" is rewritten to "/api". Construction failures
// are *restmachinery.ErrConfiguration.
func NewClientWithOptions(endpoint string, opts ClientOptions) (Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, restmachinery.NewErrConfiguration(
			fmt.Sprintf("error parsing endpoint %q: %s", endpoint, err),
		)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, restmachinery.NewErrConfiguration(
			fmt.Sprintf("unusable transport adapter for scheme %q", u.Scheme),
		)
	}
	if u.Host == "" {
		return nil, restmachinery.NewErrConfiguration(
			fmt.Sprintf("endpoint %q has no host", endpoint),
		)
	}

	username := opts.Username
	if username == "" {
		username = defaultUsername
	}
	password := opts.Password
	if password == "" {
		password = defaultPassword
	}
	if u.User != nil {
		if name := u.User.Username(); name != "" {
			username = name
		}
		if pw, ok := u.User.Password(); ok && pw != "" {
			password = pw
		}
		u.User = nil
	}

	if u.Path == "" || u.Path == "/" {
		u.Path = "/api"
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: opts.AllowInsecure,
			},
		}
	}
	baseClient := &restmachinery.BaseClient{
		APIAddress: strings.TrimSuffix(u.String(), "/"),
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return errors.Errorf("stopped after %d redirects", maxRedirects)
				}
				// Go strips the Authorization header on cross-host
				// redirects; the management API still wants it.
				req.SetBasicAuth(username, password)
				return nil
			},
		},
	}

	return &client{
		overviewClient:    NewOverviewClient(baseClient),
		nodesClient:       NewNodesClient(baseClient),
		extensionsClient:  NewExtensionsClient(baseClient),
		definitionsClient: NewDefinitionsClient(baseClient),
		connectionsClient: NewConnectionsClient(baseClient),
		channelsClient:    NewChannelsClient(baseClient),
		exchangesClient:   NewExchangesClient(baseClient),
		queuesClient:      NewQueuesClient(baseClient),
		bindingsClient:    NewBindingsClient(baseClient),
		vhostsClient:      NewVhostsClient(baseClient),
		usersClient:       NewUsersClient(baseClient),
		permissionsClient: NewPermissionsClient(baseClient),
		policiesClient:    NewPoliciesClient(baseClient),
		parametersClient:  NewParametersClient(baseClient),
	}, nil
}

func (c *client) Overview() OverviewClient {
	return c.overviewClient
}

func (c *client) Nodes() NodesClient {
	return c.nodesClient
}

func (c *client) Extensions() ExtensionsClient {
	return c.extensionsClient
}

func (c *client) Definitions() DefinitionsClient {
	return c.definitionsClient
}

func (c *client) Connections() ConnectionsClient {
	return c.connectionsClient
}

func (c *client) Channels() ChannelsClient {
	return c.channelsClient
}

func (c *client) Exchanges() ExchangesClient {
	return c.exchangesClient
}

func (c *client) Queues() QueuesClient {
	return c.queuesClient
}

func (c *client) Bindings() BindingsClient {
	return c.bindingsClient
}

func (c *client) Vhosts() VhostsClient {
	return c.vhostsClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}

func (c *client) Permissions() PermissionsClient {
	return c.permissionsClient
}

func (c *client) Policies() PoliciesClient {
	return c.policiesClient
}

func (c *client) Parameters() ParametersClient {
	return c.parametersClient
}
