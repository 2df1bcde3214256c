package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const envconfigPrefix = "RABBITMGMT"

// config is resolved from an optional JSON file under the user's home dir,
// with RABBITMGMT_* environment variables layered on top.
type config struct {
	URL      string `json:"url" envconfig:"URL"`
	Username string `json:"username" envconfig:"USERNAME"`
	Password string `json:"password" envconfig:"PASSWORD"`
}

func getConfig() (*config, error) {
	config := &config{
		URL: "http://localhost:15672",
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "error finding home directory")
	}
	configFile := path.Join(home, ".rabbitmgmt", "config")
	if _, err := os.Stat(configFile); err == nil {
		configBytes, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"error reading config file at %s",
				configFile,
			)
		}
		if err := json.Unmarshal(configBytes, config); err != nil {
			return nil, errors.Wrapf(
				err,
				"error parsing config file at %s",
				configFile,
			)
		}
	}

	if err := envconfig.Process(envconfigPrefix, config); err != nil {
		return nil, errors.Wrap(
			err,
			"error getting configuration from environment",
		)
	}

	return config, nil
}
