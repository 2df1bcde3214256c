package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rabbitutil/rabbitmgmt/internal/version"
)

func main() {
	app := cli.NewApp()
	app.Name = "rabbitmgmtctl"
	app.Usage = "Manage a RabbitMQ broker through its management HTTP API"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure connections to the management API when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		bindingCommand,
		definitionsCommand,
		exchangeCommand,
		queueCommand,
		statusCommand,
		userCommand,
		vhostCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
