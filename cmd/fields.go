package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type fieldsOptions struct {
	model      string
	attributes []string
}

// FieldsCommand prints the field definitions of a model.
func FieldsCommand() *cobra.Command {
	var options fieldsOptions

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "Returns the definition of the fields of the model",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			fields, err := connection.FieldsGet(options.model, options.attributes)
			if err != nil {
				log.Entry().WithError(err).Fatal("fields_get failed")
			}
			printResult(fields)
		},
	}

	fieldsCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	fieldsCmd.Flags().StringSliceVar(&options.attributes, "attributes", nil, "Field attributes to return, e.g. string,help,type; empty returns all")
	fieldsCmd.MarkFlagRequired("model")
	return fieldsCmd
}
