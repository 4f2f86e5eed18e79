package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erp-tools/odooconn/pkg/log"
)

type generalConfigOptions struct {
	configFile string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "odooconn",
	Short: "Talks to the external API of an Odoo server",
	Long: `
odooconn wraps the XML-RPC external API of an Odoo server. It authenticates
with the credentials from the configuration file (or ODOO_* environment
variables) and exposes one subcommand per remote operation. Domains, values
and ids are passed as JSON and results are printed as JSON.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLogger(generalConfig.verbose)
	},
}

var generalConfig generalConfigOptions

// Execute is the starting point of the odooconn command line tool
func Execute() {
	rootCmd.AddCommand(CreateCommand())
	rootCmd.AddCommand(LoadCommand())
	rootCmd.AddCommand(CountCommand())
	rootCmd.AddCommand(FieldsCommand())
	rootCmd.AddCommand(GetIDCommand())
	rootCmd.AddCommand(SearchCommand())
	rootCmd.AddCommand(ReadCommand())
	rootCmd.AddCommand(SearchReadCommand())
	rootCmd.AddCommand(WriteCommand())
	rootCmd.AddCommand(UnlinkCommand())
	rootCmd.AddCommand(ExecuteCommand())
	rootCmd.AddCommand(VersionCommand())
	rootCmd.PersistentFlags().StringVar(&generalConfig.configFile, "config", ".odooconn/config.yml", "Path to the connection configuration file")
	rootCmd.PersistentFlags().BoolVarP(&generalConfig.verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
