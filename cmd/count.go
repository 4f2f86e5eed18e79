package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type countOptions struct {
	model  string
	domain string
	limit  int
}

// CountCommand counts the records matching a domain.
func CountCommand() *cobra.Command {
	var options countOptions

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Returns the number of records matching the domain",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			count, err := connection.Count(options.model, mustParseList(options.domain), options.limit)
			if err != nil {
				log.Entry().WithError(err).Fatal("count failed")
			}
			printResult(count)
		},
	}

	countCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	countCmd.Flags().StringVar(&options.domain, "domain", "[]", "Search domain as JSON, passed through unmodified")
	countCmd.Flags().IntVar(&options.limit, "limit", 0, "Maximum number of records to count, 0 for no limit")
	countCmd.MarkFlagRequired("model")
	return countCmd
}
