package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type unlinkOptions struct {
	model string
	ids   []int64
}

// UnlinkCommand deletes the records with the given ids.
func UnlinkCommand() *cobra.Command {
	var options unlinkOptions

	unlinkCmd := &cobra.Command{
		Use:   "unlink",
		Short: "Deletes the records with the given ids",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			ok, err := connection.Unlink(options.model, options.ids)
			if err != nil {
				log.Entry().WithError(err).Fatal("unlink failed")
			}
			printResult(ok)
		},
	}

	unlinkCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	unlinkCmd.Flags().Int64SliceVar(&options.ids, "ids", nil, "Record ids, e.g. 1,2,3")
	unlinkCmd.MarkFlagRequired("model")
	unlinkCmd.MarkFlagRequired("ids")
	return unlinkCmd
}
