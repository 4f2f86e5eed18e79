package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type executeOptions struct {
	model  string
	method string
	args   string
	kwargs string
}

// ExecuteCommand calls an arbitrary method of a model, the generic escape
// hatch for everything without a dedicated subcommand.
func ExecuteCommand() *cobra.Command {
	var options executeOptions

	executeCmd := &cobra.Command{
		Use:   "execute",
		Short: "Calls an arbitrary method of the model",
		Run: func(cmd *cobra.Command, args []string) {
			connection := mustConnect()
			positional := mustParseList(options.args)

			var result interface{}
			var err error
			if len(options.kwargs) > 0 {
				result, err = connection.ExecuteKw(options.model, options.method, positional, mustParseMap(options.kwargs))
			} else {
				result, err = connection.Execute(options.model, options.method, positional)
			}
			if err != nil {
				log.Entry().WithError(err).Fatal("execute failed")
			}
			printResult(result)
		},
	}

	executeCmd.Flags().StringVar(&options.model, "model", "", "Model name, e.g. res.partner")
	executeCmd.Flags().StringVar(&options.method, "method", "", "Method name, e.g. search_read")
	executeCmd.Flags().StringVar(&options.args, "args", "[]", "Positional arguments as a JSON array")
	executeCmd.Flags().StringVar(&options.kwargs, "kwargs", "", "Keyword arguments as a JSON object")
	executeCmd.MarkFlagRequired("model")
	executeCmd.MarkFlagRequired("method")
	return executeCmd
}
