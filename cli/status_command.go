package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "Summarize the broker: versions, message totals, listeners",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage: "Return output in another format. Supported formats: " +
				"table, json, yaml",
			Value: "table",
		},
	},
	Action: status,
}

func status(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	overview, err := client.Overview().Get(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		fmt.Printf(
			"RabbitMQ %s (Erlang %s), cluster %s\n\n",
			overview.StringField("rabbitmq_version"),
			overview.StringField("erlang_version"),
			overview.StringField("cluster_name"),
		)
		ports, err := client.Overview().ProtocolPorts(c.Context)
		if err != nil {
			return err
		}
		protocols, err := client.Overview().EnabledProtocols(c.Context)
		if err != nil {
			return err
		}
		table := uitable.New()
		table.AddRow("PROTOCOL", "PORT")
		for _, protocol := range protocols {
			table.AddRow(protocol, ports[protocol])
		}
		fmt.Println(table)
	case "json":
		return printJSON(overview)
	case "yaml":
		return printYAML(overview)
	}

	return nil
}
