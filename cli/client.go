package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rabbitutil/rabbitmgmt"
)

func getClient(c *cli.Context) (rabbitmgmt.Client, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving configuration")
	}
	return rabbitmgmt.NewClientWithOptions(
		config.URL,
		rabbitmgmt.ClientOptions{
			Username:      config.Username,
			Password:      config.Password,
			AllowInsecure: c.Bool(flagInsecure),
		},
	)
}
