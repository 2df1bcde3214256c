package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/xeipuuv/gojsonschema"

	"github.com/rabbitutil/rabbitmgmt"
)

// definitionsSchema is deliberately loose: the server owns the full shape.
// It only rejects documents that plainly aren't definitions exports, before
// any bytes hit the broker.
const definitionsSchema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"vhosts":      { "type": "array", "items": { "type": "object" } },
		"exchanges":   { "type": "array", "items": { "type": "object" } },
		"queues":      { "type": "array", "items": { "type": "object" } },
		"bindings":    { "type": "array", "items": { "type": "object" } },
		"users":       { "type": "array", "items": { "type": "object" } },
		"permissions": { "type": "array", "items": { "type": "object" } },
		"policies":    { "type": "array", "items": { "type": "object" } },
		"parameters":  { "type": "array", "items": { "type": "object" } }
	}
}`

var definitionsCommand = &cli.Command{
	Name:  "definitions",
	Usage: "Export and import broker definitions",
	Subcommands: []*cli.Command{
		{
			Name:   "export",
			Usage:  "Export the broker's definitions document as JSON",
			Action: definitionsExport,
		},
		{
			Name:  "import",
			Usage: "Upload a definitions document to the broker",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagFile,
					Aliases:  []string{"f"},
					Usage:    "Path to a JSON definitions file",
					Required: true,
				},
			},
			Action: definitionsImport,
		},
	},
}

func definitionsExport(c *cli.Context) error {
	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	definitions, err := client.Definitions().List(c.Context)
	if err != nil {
		return err
	}

	return printJSON(definitions)
}

func definitionsImport(c *cli.Context) error {
	definitionsBytes, err := ioutil.ReadFile(c.String(flagFile))
	if err != nil {
		return errors.Wrapf(
			err,
			"error reading definitions file %s",
			c.String(flagFile),
		)
	}

	validationResult, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(definitionsSchema),
		gojsonschema.NewBytesLoader(definitionsBytes),
	)
	if err != nil {
		return errors.Wrap(err, "error validating definitions file")
	}
	if !validationResult.Valid() {
		verrStrs := make([]string, len(validationResult.Errors()))
		for i, verr := range validationResult.Errors() {
			verrStrs[i] = verr.String()
		}
		return errors.Errorf(
			"definitions file failed validation: %s",
			strings.Join(verrStrs, "; "),
		)
	}

	definitions := rabbitmgmt.Record{}
	if err := json.Unmarshal(definitionsBytes, &definitions); err != nil {
		return errors.Wrap(err, "error parsing definitions file")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting management client")
	}

	if _, err := client.Definitions().Upload(c.Context, definitions); err != nil {
		return err
	}

	fmt.Println("Imported definitions.")
	return nil
}
