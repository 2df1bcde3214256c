package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var vhostCommand = &cli.Command{
	Name:  "vhost",
	Usage: "Manage vhosts",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List vhosts",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagOutput,
					Aliases: []string{"o"},
					Usage: "Return output in another format. Supported formats: " +
						"table, json, yaml",
					Value: "table",
				},
			},
			Action: vhostList,
		},
		{
			Name:      "create",
			Usage:     "Create a vhost",
			ArgsUsage: "NAME",
			Action:    vhostCreate,
		},
		{
			Name:      "delete",
			Usage:     "Delete a vhost",
			ArgsUsage: "NAME",
			Action:    vhostDelete,
		},
		{
			Name:      "ping",
			Usage:     "Run the aliveness test against a vhost",
			ArgsUsage: "NAME",
			Action:    vhostPing,
		},
	},
}

func vhostList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	vhosts, err := client.Vhosts().List(c.Context)
	if err != nil {
		return err
	}

	if len(vhosts) == 0 {
		fmt.Println("No vhosts found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "MESSAGES")
		for _, vhost := range vhosts {
			table.AddRow(
				vhost.StringField("name"),
				vhost.IntField("messages"),
			)
		}
		fmt.Println(table)
	case "json":
		return printJSON(vhosts)
	case "yaml":
		return printYAML(vhosts)
	}

	return nil
}

func vhostCreate(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("vhost create requires one argument-- the vhost name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Vhosts().Create(c.Context, name); err != nil {
		return err
	}

	fmt.Printf("Created vhost %q.\n", name)
	return nil
}

func vhostDelete(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("vhost delete requires one argument-- the vhost name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Vhosts().Delete(c.Context, name); err != nil {
		return err
	}

	fmt.Printf("Deleted vhost %q.\n", name)
	return nil
}

func vhostPing(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("vhost ping requires one argument-- the vhost name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	alive, err := client.Vhosts().AlivenessTest(c.Context, name)
	if err != nil {
		return err
	}
	if !alive {
		return errors.Errorf("vhost %q failed the aliveness test", name)
	}

	fmt.Printf("Vhost %q is alive.\n", name)
	return nil
}
