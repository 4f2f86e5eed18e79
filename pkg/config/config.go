package config

import (
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/erp-tools/odooconn/pkg/log"
	"github.com/erp-tools/odooconn/pkg/odoo"
)

// Configuration defines the structure of the configuration file, e.g.
//
//	connection:
//	  hostname: odoo.example.com
//	  port: 8069
//	  schema: https
//	  database: production
//	  username: admin
//	  password: secret
//	  url: https://odoo.example.com:8069
type Configuration struct {
	Connection map[string]interface{} `json:"connection"`
}

// recognized connection options, also the suffixes of the ODOO_* environment
// variables overriding them
var optionKeys = []string{"hostname", "port", "schema", "database", "username", "password", "url"}

// ReadConfig decodes the YAML configuration from the given source.
func ReadConfig(data []byte) (Configuration, error) {
	var configuration Configuration
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return configuration, errors.Wrap(err, "failed to parse configuration")
	}
	return configuration, nil
}

// LoadConnectionOptions reads the configuration file, applies ODOO_*
// environment overrides and maps the result onto the connection options. A
// missing file is not an error as long as the environment provides the values.
func LoadConnectionOptions(path string) (odoo.ConnectionOptions, error) {
	var options odoo.ConnectionOptions

	configuration := Configuration{Connection: map[string]interface{}{}}
	data, err := os.ReadFile(path)
	if err == nil {
		configuration, err = ReadConfig(data)
		if err != nil {
			return options, err
		}
	} else if !os.IsNotExist(err) {
		return options, errors.Wrapf(err, "failed to read configuration file %v", path)
	}
	if configuration.Connection == nil {
		configuration.Connection = map[string]interface{}{}
	}

	for _, key := range optionKeys {
		if value, found := os.LookupEnv("ODOO_" + strings.ToUpper(key)); found {
			configuration.Connection[key] = value
		}
	}

	options, err = ConnectionOptions(configuration)
	if err != nil {
		return options, err
	}
	log.RegisterSecret(options.Password)
	return options, nil
}

// ConnectionOptions maps the untyped connection section onto the typed
// options. Values are converted weakly so that numbers from YAML and strings
// from the environment both land in the right field.
func ConnectionOptions(configuration Configuration) (odoo.ConnectionOptions, error) {
	var options odoo.ConnectionOptions
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &options,
	})
	if err != nil {
		return options, errors.Wrap(err, "failed to prepare configuration decoder")
	}
	if err := decoder.Decode(configuration.Connection); err != nil {
		return options, errors.Wrap(err, "failed to map connection configuration")
	}
	return options, nil
}
