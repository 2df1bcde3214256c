package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rabbitutil/rabbitmgmt"
)

var userCommand = &cli.Command{
	Name:  "user",
	Usage: "Manage users",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List users",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagOutput,
					Aliases: []string{"o"},
					Usage: "Return output in another format. Supported formats: " +
						"table, json, yaml",
					Value: "table",
				},
			},
			Action: userList,
		},
		{
			Name:      "set",
			Usage:     "Create or update a user",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagPassword,
					Usage:    "The user's password",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagTags,
					Usage: "Comma-separated tags, e.g. administrator,monitoring",
				},
			},
			Action: userSet,
		},
		{
			Name:      "delete",
			Usage:     "Delete a user",
			ArgsUsage: "NAME",
			Action:    userDelete,
		},
	},
}

func userList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	users, err := client.Users().List(c.Context)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "TAGS")
		for _, user := range users {
			table.AddRow(
				user.StringField("name"),
				user.StringField("tags"),
			)
		}
		fmt.Println(table)
	case "json":
		return printJSON(users)
	case "yaml":
		return printYAML(users)
	}

	return nil
}

func userSet(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("user set requires one argument-- the user name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Users().Update(
		c.Context,
		name,
		rabbitmgmt.Record{
			"password": c.String(flagPassword),
			"tags":     c.String(flagTags),
		},
	); err != nil {
		return err
	}

	fmt.Printf("Updated user %q.\n", name)
	return nil
}

func userDelete(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("user delete requires one argument-- the user name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Users().Delete(c.Context, name); err != nil {
		return err
	}

	fmt.Printf("Deleted user %q.\n", name)
	return nil
}
