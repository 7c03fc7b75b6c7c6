package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/perfdesk/internal/app"
	"github.com/templui/perfdesk/internal/db"
)

func RemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the overdue goal check once",
		Long: "Adds one automated reminder to every open goal past its due date that does not have one yet, " +
			"the same check the dashboard runs on each page load.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.RunMigrations(cmd.Context(), database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}

			a := app.Build(cfg, database, nil)
			result, err := a.ReminderService.Scan(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "examined %d overdue goal(s), created %d reminder(s), %d failed\n",
				result.Examined, len(result.Created), result.Failed)
			for _, r := range result.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "  goal %d: %s\n", r.Goal.ID, r.Feedback.Content)
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d reminder(s) could not be written", result.Failed)
			}
			return nil
		},
	}
}
