package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GitCommit and Tag are filled in at build time via -ldflags.
var (
	GitCommit string
	Tag       string
)

// VersionCommand prints the version of the odooconn binary.
func VersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the odooconn binary",
		Run: func(cmd *cobra.Command, args []string) {
			version := Tag
			if len(version) == 0 {
				version = "dev"
			}
			fmt.Printf("odooconn %v", version)
			if len(GitCommit) > 0 {
				fmt.Printf(" (%v)", GitCommit)
			}
			fmt.Println()
		},
	}
}
