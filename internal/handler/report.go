package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/middleware"
	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/ui"
	"github.com/templui/perfdesk/internal/ui/pages"
	"github.com/templui/perfdesk/internal/validation"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ReportsPage shows the history of ?employee=, defaulting to the caller.
func (h *ReportHandler) ReportsPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	props := pages.ReportsProps{
		EmployeeID:     sess.UserID,
		ArchiveEnabled: h.reportService.ArchiveEnabled(),
		Flash:          flashFrom(r),
	}

	if raw := r.URL.Query().Get("employee"); raw != "" {
		employeeID, err := validation.ParseID(raw)
		if err != nil {
			props.Flash.Error = errorMessages["invalid"]
		} else {
			props.EmployeeID = employeeID
		}
	}

	report, err := h.reportService.Report(r.Context(), sess, props.EmployeeID)
	if err != nil {
		slog.Error("failed to build report", "error", err, "employee_id", props.EmployeeID)
		props.LoadFailed = true
	} else {
		props.Report = report
	}

	ui.Render(w, r, pages.Reports(props))
}

// Export downloads the report as JSON.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	employeeID, err := validation.ParseID(r.PathValue("employee"))
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	report, err := h.reportService.Report(r.Context(), sess, employeeID)
	if err != nil {
		slog.Error("failed to build report for export", "error", err, "employee_id", employeeID)
		http.Error(w, "Failed to export report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=employee-%d-report.json", employeeID))

	err = json.NewEncoder(w).Encode(report)
	if err != nil {
		slog.Error("failed to encode report", "error", err, "employee_id", employeeID)
	}
}

// Archive stores the report in object storage and sends the caller to its
// download link.
func (h *ReportHandler) Archive(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	employeeID, err := validation.ParseID(r.PathValue("employee"))
	if err != nil {
		back(w, r, "/app/reports", "error", "invalid", nil)
		return
	}

	url, err := h.reportService.Archive(r.Context(), sess, employeeID)
	if err != nil {
		slog.Error("failed to archive report", "error", err, "employee_id", employeeID)
		back(w, r, "/app/reports", "error", errorKey(err), map[string][]string{"employee": {r.PathValue("employee")}})
		return
	}

	middleware.Redirect(w, r, url)
}
