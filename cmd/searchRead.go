package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type searchReadOptions struct {
	model  string
	domain string
	offset int
	limit  int
	fields []string
}

// SearchReadCommand searches and reads in one server-side round trip.
func SearchReadCommand() *cobra.Command {
	var options searchReadOptions

	searchReadCmd := &cobra.Command{
		Use:   "search-read",
		Short: "Returns the requested fields of the records matching the domain",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			records, err := connection.SearchRead(options.model, mustParseList(options.domain), options.offset, options.limit, options.fields)
			if err != nil {
				log.Entry().WithError(err).Fatal("search-read failed")
			}
			printResult(records)
		},
	}

	searchReadCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	searchReadCmd.Flags().StringVar(&options.domain, "domain", "[]", "Search domain as JSON, passed through unmodified")
	searchReadCmd.Flags().IntVar(&options.offset, "offset", 0, "Number of records to skip")
	searchReadCmd.Flags().IntVar(&options.limit, "limit", 0, "Maximum number of records to return, 0 for no limit")
	searchReadCmd.Flags().StringSliceVar(&options.fields, "fields", nil, "Field names, e.g. name,email")
	searchReadCmd.MarkFlagRequired("model")
	return searchReadCmd
}
