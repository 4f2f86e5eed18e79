package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type searchOptions struct {
	model  string
	domain string
}

// SearchCommand prints the ids of the records matching a domain.
func SearchCommand() *cobra.Command {
	var options searchOptions

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Returns the ids of the records matching the domain",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			ids, err := connection.Search(options.model, mustParseList(options.domain))
			if err != nil {
				log.Entry().WithError(err).Fatal("search failed")
			}
			printResult(ids)
		},
	}

	searchCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	searchCmd.Flags().StringVar(&options.domain, "domain", "[]", "Search domain as JSON, passed through unmodified")
	searchCmd.MarkFlagRequired("model")
	return searchCmd
}
