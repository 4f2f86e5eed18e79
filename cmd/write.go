package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type writeOptions struct {
	model  string
	id     int64
	values string
}

// WriteCommand updates the fields of a single record.
func WriteCommand() *cobra.Command {
	var options writeOptions

	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Updates the fields of the record with the given id",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			ok, err := connection.Write(options.model, options.id, mustParseMap(options.values))
			if err != nil {
				log.Entry().WithError(err).Fatal("write failed")
			}
			printResult(ok)
		},
	}

	writeCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	writeCmd.Flags().Int64Var(&options.id, "id", 0, "Record id")
	writeCmd.Flags().StringVar(&options.values, "values", "", "Field values as a JSON object")
	writeCmd.MarkFlagRequired("model")
	writeCmd.MarkFlagRequired("id")
	writeCmd.MarkFlagRequired("values")
	return writeCmd
}
