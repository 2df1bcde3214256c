package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

func validateOutputFormat(output string) error {
	switch strings.ToLower(output) {
	case "table", "json", "yaml":
		return nil
	}
	return errors.Errorf("unknown output format %q", output)
}

func printJSON(obj interface{}) error {
	prettyJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error formatting output")
	}
	fmt.Println(string(prettyJSON))
	return nil
}

func printYAML(obj interface{}) error {
	yamlBytes, err := yaml.Marshal(obj)
	if err != nil {
		return errors.Wrap(err, "error formatting output")
	}
	fmt.Println(string(yamlBytes))
	return nil
}
