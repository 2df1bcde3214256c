package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rabbitutil/rabbitmgmt"
)

var bindingCommand = &cli.Command{
	Name:  "binding",
	Usage: "Manage bindings between exchanges and queues",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List bindings, optionally scoped to one vhost",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "Limit the listing to this vhost",
				},
				&cli.StringFlag{
					Name:    flagOutput,
					Aliases: []string{"o"},
					Usage: "Return output in another format. Supported formats: " +
						"table, json, yaml",
					Value: "table",
				},
			},
			Action: bindingList,
		},
		{
			Name:  "create",
			Usage: "Bind a queue to an exchange",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost containing the queue and exchange",
					Value: "/",
				},
				&cli.StringFlag{
					Name:     flagExchange,
					Usage:    "The source exchange",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagQueue,
					Usage:    "The destination queue",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagRoutingKey,
					Usage: "The routing key for the new binding",
				},
			},
			Action: bindingCreate,
		},
		{
			Name:  "delete",
			Usage: "Delete a binding by its properties key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost containing the binding",
					Value: "/",
				},
				&cli.StringFlag{
					Name:     flagExchange,
					Usage:    "The source exchange",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagQueue,
					Usage:    "The destination queue",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagPropertiesKey,
					Usage:    "The properties key identifying the binding",
					Required: true,
				},
			},
			Action: bindingDelete,
		},
	},
}

func bindingList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	var bindings rabbitmgmt.RecordList
	if vhost := c.String(flagVhost); vhost != "" {
		bindings, err = client.Bindings().ListIn(c.Context, vhost)
	} else {
		bindings, err = client.Bindings().List(c.Context)
	}
	if err != nil {
		return err
	}

	if len(bindings) == 0 {
		fmt.Println("No bindings found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow(
			"SOURCE", "DESTINATION", "TYPE", "ROUTING KEY", "PROPERTIES KEY",
		)
		for _, binding := range bindings {
			table.AddRow(
				binding.StringField("source"),
				binding.StringField("destination"),
				binding.StringField("destination_type"),
				binding.StringField("routing_key"),
				binding.StringField("properties_key"),
			)
		}
		fmt.Println(table)
	case "json":
		return printJSON(bindings)
	case "yaml":
		return printYAML(bindings)
	}

	return nil
}

func bindingCreate(c *cli.Context) error {
	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	location, err := client.Bindings().BindQueue(
		c.Context,
		c.String(flagVhost),
		c.String(flagQueue),
		c.String(flagExchange),
		c.String(flagRoutingKey),
		nil,
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created binding at %s.\n", location)
	return nil
}

func bindingDelete(c *cli.Context) error {
	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	deleted, err := client.Bindings().DeleteQueueBinding(
		c.Context,
		c.String(flagVhost),
		c.String(flagQueue),
		c.String(flagExchange),
		c.String(flagPropertiesKey),
	)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New("the binding was not deleted")
	}

	fmt.Println("Deleted binding.")
	return nil
}
