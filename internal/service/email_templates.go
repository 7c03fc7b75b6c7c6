package service

import (
	"fmt"
	"strings"

	"github.com/templui/perfdesk/internal/validation"
)

func reminderDigestEmailTemplate(reminders []Reminder, appName string) (string, string) {
	subject := fmt.Sprintf("[%s] %d goal(s) past their due date", appName, len(reminders))

	var lines strings.Builder
	for _, r := range reminders {
		fmt.Fprintf(&lines, "- Goal #%d \"%s\" (employee %d, manager %d), due %s, status %s\n",
			r.Goal.ID,
			r.Goal.Description,
			r.Goal.EmployeeID,
			r.Goal.ManagerID,
			r.Goal.DueDate.Format(validation.DateLayout),
			r.Goal.Status,
		)
	}

	body := fmt.Sprintf(`The overdue check just added an automated reminder to these goals:

%s
Each goal now carries a feedback note starting with "Automated reminder:".
Completing or cancelling a goal stops further reminders.

Best,
%s`, lines.String(), appName)

	return subject, body
}
