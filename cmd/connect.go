package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/erp-tools/odooconn/pkg/config"
	"github.com/erp-tools/odooconn/pkg/log"
	"github.com/erp-tools/odooconn/pkg/odoo"
)

func connect() (*odoo.Connection, error) {
	options, err := config.LoadConnectionOptions(generalConfig.configFile)
	if err != nil {
		return nil, err
	}
	return odoo.NewConnection(options)
}

func mustConnect() *odoo.Connection {
	connection, err := connect()
	if err != nil {
		log.Entry().WithError(err).Fatal("failed to connect to the Odoo server")
	}
	return connection
}

// parseList parses a JSON array argument, e.g. a domain or a positional
// argument list. The value is handed to the server unmodified.
func parseList(raw string) ([]interface{}, error) {
	var list []interface{}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, errors.Wrapf(err, "expected a JSON array, got %v", raw)
	}
	return list, nil
}

// parseMap parses a JSON object argument, e.g. field values or keyword
// arguments.
func parseMap(raw string) (map[string]interface{}, error) {
	var values map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, errors.Wrapf(err, "expected a JSON object, got %v", raw)
	}
	return values, nil
}

// parseMatrix parses a JSON array of arrays, the row format of the load
// operation.
func parseMatrix(raw string) ([][]interface{}, error) {
	var rows [][]interface{}
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, errors.Wrapf(err, "expected a JSON array of arrays, got %v", raw)
	}
	return rows, nil
}

func mustParseList(raw string) []interface{} {
	list, err := parseList(raw)
	if err != nil {
		log.Entry().WithError(err).Fatal("invalid argument")
	}
	return list
}

func mustParseMap(raw string) map[string]interface{} {
	values, err := parseMap(raw)
	if err != nil {
		log.Entry().WithError(err).Fatal("invalid argument")
	}
	return values
}

func mustParseMatrix(raw string) [][]interface{} {
	rows, err := parseMatrix(raw)
	if err != nil {
		log.Entry().WithError(err).Fatal("invalid argument")
	}
	return rows
}

func printResult(value interface{}) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Entry().WithError(err).Fatal("failed to render result")
	}
	fmt.Println(string(data))
}
