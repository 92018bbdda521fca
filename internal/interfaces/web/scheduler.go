package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ishehara/autosched-admin/internal/application/usecases"
)

type schedulerData struct {
	From    string
	To      string
	Error   string
	Success string
}

// handleScheduler triggers a backend scheduling run over a date range and
// reports how many presentations the run placed.
func (s *Server) handleScheduler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, "scheduler.html", schedulerData{})
	case http.MethodPost:
		_ = r.ParseForm()
		fromStr := strings.TrimSpace(r.PostFormValue("from"))
		toStr := strings.TrimSpace(r.PostFormValue("to"))
		data := schedulerData{From: fromStr, To: toStr}

		from, err1 := time.Parse("2006-01-02", fromStr)
		to, err2 := time.Parse("2006-01-02", toStr)
		if fromStr == "" || toStr == "" || err1 != nil || err2 != nil {
			data.Error = "Both dates are required, as YYYY-MM-DD."
			s.render(w, "scheduler.html", data)
			return
		}

		if to.Before(from) {
			data.Error = "End date must not precede start date."
			s.render(w, "scheduler.html", data)
			return
		}

		res, err := usecases.TriggerSchedule{API: s.api}.Execute(r.Context(), from, to)
		if err != nil {
			data.Error = bannerMessage(err)
			s.render(w, "scheduler.html", data)
			return
		}
		if res.Reported {
			data.Success = fmt.Sprintf("Scheduled %d presentations.", res.Count)
		} else {
			data.Success = "Scheduling completed. The backend did not report how many presentations were placed."
		}
		s.render(w, "scheduler.html", data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
