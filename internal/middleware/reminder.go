package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/service"
)

// ReminderScanner runs the overdue feedback check.
type ReminderScanner interface {
	Scan(ctx context.Context) (service.ScanResult, error)
}

// ReminderScan runs the overdue check before every signed-in page load and
// hands the outcome to the page. A failed scan never fails the page.
func ReminderScan(scanner ReminderScanner) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || ctxkeys.Session(r.Context()) == nil {
				next(w, r)
				return
			}

			result, err := scanner.Scan(r.Context())
			outcome := &model.ScanOutcome{Failed: err != nil || result.Failed > 0}
			for _, reminder := range result.Created {
				outcome.RemindedGoalIDs = append(outcome.RemindedGoalIDs, reminder.Goal.ID)
			}

			if err != nil {
				slog.Error("overdue scan failed", "error", err, "path", r.URL.Path)
			} else if len(result.Created) > 0 || result.Failed > 0 {
				slog.Info("overdue scan finished",
					"examined", result.Examined,
					"created", len(result.Created),
					"failed", result.Failed,
				)
			}

			next(w, r.WithContext(ctxkeys.WithScan(r.Context(), outcome)))
		}
	}
}
