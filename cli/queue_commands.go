package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rabbitutil/rabbitmgmt"
)

var queueCommand = &cli.Command{
	Name:  "queue",
	Usage: "Manage queues",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List queues, optionally scoped to one vhost",
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
			Action: queueList,
		},
		{
			Name:      "declare",
			Usage:     "Create or update a queue",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost to declare the queue in",
					Value: "/",
				},
				&cli.BoolFlag{
					Name:  flagDurable,
					Usage: "Make the queue survive broker restarts",
					Value: true,
				},
				&cli.BoolFlag{
					Name:  flagAutoDelete,
					Usage: "Delete the queue once its last consumer disconnects",
				},
			},
			Action: queueDeclare,
		},
		{
			Name:      "delete",
			Usage:     "Delete a queue",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost containing the queue",
					Value: "/",
				},
			},
			Action: queueDelete,
		},
		{
			Name:      "purge",
			Usage:     "Drop all messages from a queue",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagVhost,
					Usage: "The vhost containing the queue",
					Value: "/",
				},
			},
			Action: queuePurge,
		},
	},
}

func queueList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	var queues rabbitmgmt.RecordList
	if vhost := c.String(flagVhost); vhost != "" {
		queues, err = client.Queues().ListIn(c.Context, vhost)
	} else {
		queues, err = client.Queues().List(c.Context)
	}
	if err != nil {
		return err
	}

	if len(queues) == 0 {
		fmt.Println("No queues found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "VHOST", "DURABLE", "MESSAGES", "CONSUMERS")
		for _, queue := range queues {
			table.AddRow(
				queue.StringField("name"),
				queue.StringField("vhost"),
				queue.BoolField("durable"),
				queue.IntField("messages"),
				queue.IntField("consumers"),
			)
		}
		fmt.Println(table)
	case "json":
		return printJSON(queues)
	case "yaml":
		return printYAML(queues)
	}

	return nil
}

func queueDeclare(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("queue declare requires one argument-- the queue name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Queues().Declare(
		c.Context,
		c.String(flagVhost),
		name,
		rabbitmgmt.Record{
			"durable":     c.Bool(flagDurable),
			"auto_delete": c.Bool(flagAutoDelete),
		},
	); err != nil {
		return err
	}

	fmt.Printf("Declared queue %q.\n", name)
	return nil
}

func queueDelete(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("queue delete requires one argument-- the queue name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Queues().Delete(
		c.Context,
		c.String(flagVhost),
		name,
	); err != nil {
		return err
	}

	fmt.Printf("Deleted queue %q.\n", name)
	return nil
}

func queuePurge(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("queue purge requires one argument-- the queue name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Queues().Purge(
		c.Context,
		c.String(flagVhost),
		name,
	); err != nil {
		return err
	}

	fmt.Printf("Purged queue %q.\n", name)
	return nil
}
