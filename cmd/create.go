package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type createOptions struct {
	model  string
	values string
}

// CreateCommand creates a single record and prints its id.
func CreateCommand() *cobra.Command {
	var options createOptions

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a single record and returns its id",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			id, err := connection.Create(options.model, mustParseMap(options.values))
			if err != nil {
				log.Entry().WithError(err).Fatal("create failed")
			}
			printResult(id)
		},
	}

	createCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	createCmd.Flags().StringVar(&options.values, "values", "", "Field values as a JSON object")
	createCmd.MarkFlagRequired("model")
	createCmd.MarkFlagRequired("values")
	return createCmd
}
