package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/perfdesk/internal/app"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/storage"
	"github.com/templui/perfdesk/internal/validation"
)

func ReportCmd() *cobra.Command {
	var archive bool

	reportCmd := &cobra.Command{
		Use:   "report <employee-id>",
		Short: "Print an employee's performance history as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := validation.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("employee id %q: %w", args[0], err)
			}

			cfg, database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			var store storage.Storage
			if archive {
				store, err = storage.New(cmd.Context(), cfg)
				if err != nil {
					return err
				}
			}

			a := app.Build(cfg, database, store)
			// Operator access reads as a manager
			operator := &model.Session{Role: model.RoleManager, UserID: 1}

			if archive {
				url, err := a.ReportService.Archive(cmd.Context(), operator, employeeID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			}

			report, err := a.ReportService.Report(cmd.Context(), operator, employeeID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	reportCmd.Flags().BoolVar(&archive, "archive", false, "Upload the report to S3 storage and print a download link")
	return reportCmd
}
