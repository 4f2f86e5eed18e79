package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type readOptions struct {
	model  string
	ids    []int64
	fields []string
}

// ReadCommand prints the requested fields of the records with the given ids.
func ReadCommand() *cobra.Command {
	var options readOptions

	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Reads the requested fields of the records with the given ids",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			records, err := connection.Read(options.model, options.ids, options.fields)
			if err != nil {
				log.Entry().WithError(err).Fatal("read failed")
			}
			printResult(records)
		},
	}

	readCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	readCmd.Flags().Int64SliceVar(&options.ids, "ids", nil, "Record ids, e.g. 1,2,3")
	readCmd.Flags().StringSliceVar(&options.fields, "fields", nil, "Field names, e.g. name,email")
	readCmd.MarkFlagRequired("model")
	readCmd.MarkFlagRequired("ids")
	return readCmd
}
