package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type getIDOptions struct {
	model  string
	domain string
}

// GetIDCommand prints the id of the first record matching a domain, or -1 if
// none matches.
func GetIDCommand() *cobra.Command {
	var options getIDOptions

	getIDCmd := &cobra.Command{
		Use:   "get-id",
		Short: "Returns the id of the first record matching the domain, or -1",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			id, err := connection.GetID(options.model, mustParseList(options.domain))
			if err != nil {
				log.Entry().WithError(err).Fatal("get-id failed")
			}
			printResult(id)
		},
	}

	getIDCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	getIDCmd.Flags().StringVar(&options.domain, "domain", "[]", "Search domain as JSON, passed through unmodified")
	getIDCmd.MarkFlagRequired("model")
	return getIDCmd
}
