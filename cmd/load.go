package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type loadOptions struct {
	model  string
	header []string
	rows   string
}

// LoadCommand bulk-creates records from a header plus a value matrix.
func LoadCommand() *cobra.Command {
	var options loadOptions

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Creates multiple records from a header and a value matrix",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			result, err := connection.Load(options.model, options.header, mustParseMatrix(options.rows))
			if err != nil {
				log.Entry().WithError(err).Fatal("load failed")
			}
			printResult(result)
		},
	}

	loadCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	loadCmd.Flags().StringSliceVar(&options.header, "header", nil, "Field names, e.g. name,email")
	loadCmd.Flags().StringVar(&options.rows, "rows", "", "Rows of field values as a JSON array of arrays")
	loadCmd.MarkFlagRequired("model")
	loadCmd.MarkFlagRequired("header")
	loadCmd.MarkFlagRequired("rows")
	return loadCmd
}
