package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rabbitutil/rabbitmgmt"
)

var exchangeCommand = &cli.Command{
	Name:  "exchange",
	Usage: "Manage exchanges",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List exchanges, optionally scoped to one vhost",
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
			Action: exchangeList,
		},
		{
			Name:      "declare",
			Usage:     "Create or update an exchange",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost to declare the exchange in",
					Value: "/",
				},
				&cli.StringFlag{
					Name:  flagType,
					Usage: "The exchange type",
					Value: "direct",
				},
				&cli.BoolFlag{
					Name:  flagDurable,
					Usage: "Make the exchange survive broker restarts",
					Value: true,
				},
				&cli.BoolFlag{
					Name:  flagAutoDelete,
					Usage: "Delete the exchange once its last binding is removed",
				},
			},
			Action: exchangeDeclare,
		},
		{
			Name:      "delete",
			Usage:     "Delete an exchange",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost containing the exchange",
					Value: "/",
				},
				&cli.BoolFlag{
					Name:  flagIfUnused,
					Usage: "Only delete the exchange if nothing is bound to it",
				},
			},
			Action: exchangeDelete,
		},
	},
}

func exchangeList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	var exchanges rabbitmgmt.RecordList
	if vhost := c.String(flagVhost); vhost != "" {
		exchanges, err = client.Exchanges().ListIn(c.Context, vhost)
	} else {
		exchanges, err = client.Exchanges().List(c.Context)
	}
	if err != nil {
		return err
	}

	if len(exchanges) == 0 {
		fmt.Println("No exchanges found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "VHOST", "TYPE", "DURABLE")
		for _, exchange := range exchanges {
			table.AddRow(
				exchange.StringField("name"),
				exchange.StringField("vhost"),
				exchange.StringField("type"),
				exchange.BoolField("durable"),
			)
		}
		fmt.Println(table)
	case "json":
		return printJSON(exchanges)
	case "yaml":
		return printYAML(exchanges)
	}

	return nil
}

func exchangeDeclare(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"exchange declare requires one argument-- the exchange name",
		)
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Exchanges().Declare(
		c.Context,
		c.String(flagVhost),
		name,
		rabbitmgmt.Record{
			"type":        c.String(flagType),
			"durable":     c.Bool(flagDurable),
			"auto_delete": c.Bool(flagAutoDelete),
		},
	); err != nil {
		return err
	}

	fmt.Printf("Declared exchange %q.\n", name)
	return nil
}

func exchangeDelete(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"exchange delete requires one argument-- the exchange name",
		)
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Exchanges().Delete(
		c.Context,
		c.String(flagVhost),
		name,
		c.Bool(flagIfUnused),
	); err != nil {
		return err
	}

	fmt.Printf("Deleted exchange %q.\n", name)
	return nil
}
