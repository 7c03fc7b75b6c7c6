package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/perfdesk/cmd/perfctl/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "perfctl",
		Short:        "Operator tools for the performance dashboard",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.RemindCmd())
	rootCmd.AddCommand(cmd.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
