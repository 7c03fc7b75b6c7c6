package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/templui/perfdesk/internal/middleware"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/ui/pages"
	"github.com/templui/perfdesk/internal/validation"
)

// Flash keys travel in the redirect query string after a form post.
var notices = map[string]string{
	"goal-created":     "Goal set successfully!",
	"goal-deleted":     "Goal deleted.",
	"goal-status":      "Goal status updated!",
	"task-created":     "Task submitted for manager approval!",
	"task-status":      "Task status updated!",
	"feedback-created": "Feedback submitted!",
}

var errorMessages = map[string]string{
	"failed":    pages.LoadError,
	"forbidden": "Only managers can do that.",
	"invalid":   "Please check the form and try again.",
	"not-found": "That goal or task no longer exists.",
	"storage":   "Report archiving is not configured.",
}

func flashFrom(r *http.Request) pages.Flash {
	q := r.URL.Query()
	return pages.Flash{
		Notice: notices[q.Get("notice")],
		Error:  errorMessages[q.Get("error")],
	}
}

// errorKey maps a service error to the flash shown after the redirect.
func errorKey(err error) string {
	switch {
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrUnauthenticated):
		return "forbidden"
	case errors.Is(err, validation.ErrInvalidStatus),
		errors.Is(err, validation.ErrInvalidID),
		errors.Is(err, validation.ErrInvalidDate):
		return "invalid"
	case errors.Is(err, repository.ErrGoalNotFound), errors.Is(err, repository.ErrTaskNotFound):
		return "not-found"
	case errors.Is(err, service.ErrStorageDisabled):
		return "storage"
	default:
		return "failed"
	}
}

// back redirects to path with one flash parameter and any extra query values.
func back(w http.ResponseWriter, r *http.Request, path, key, value string, extra url.Values) {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set(key, value)
	middleware.Redirect(w, r, path+"?"+q.Encode())
}

// selectGoal picks the goal named by the "goal" query parameter, or the first
// goal when it is absent or not in the list.
func selectGoal(r *http.Request, goals []*model.Goal) *model.Goal {
	if len(goals) == 0 {
		return nil
	}
	id, err := validation.ParseID(r.URL.Query().Get("goal"))
	if err == nil {
		for _, g := range goals {
			if g.ID == id {
				return g
			}
		}
	}
	return goals[0]
}

func goalQuery(goalID int64) url.Values {
	return url.Values{"goal": {strconv.FormatInt(goalID, 10)}}
}
