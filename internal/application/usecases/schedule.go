package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ishehara/autosched-admin/internal/infrastructure/autosched"
)

// Scheduler triggers a backend scheduling run over a date range.
type SchedulerAPI interface {
	Schedule(ctx context.Context, from, to time.Time) (autosched.ScheduleResult, error)
}

type TriggerSchedule struct {
	API SchedulerAPI
}

// Execute validates the window and asks the backend to schedule it. The
// range is inclusive on both ends; the end may equal the start for a
// single-day run.
func (u TriggerSchedule) Execute(ctx context.Context, from, to time.Time) (autosched.ScheduleResult, error) {
	if from.IsZero() || to.IsZero() {
		return autosched.ScheduleResult{}, fmt.Errorf("both dates are required")
	}
	if to.Before(from) {
		return autosched.ScheduleResult{}, fmt.Errorf("end date must not precede start date")
	}
	return u.API.Schedule(ctx, from, to)
}
