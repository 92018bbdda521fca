package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/domain/presentation"
	"github.com/ishehara/autosched-admin/internal/domain/venue"
)

type stubDirectory struct {
	presentations []presentation.Presentation
	examiners     []examiner.Examiner
	venues        []venue.Venue

	presentationsErr error
	examinersErr     error
	venuesErr        error
}

func (s stubDirectory) ListPresentations(context.Context) ([]presentation.Presentation, error) {
	return s.presentations, s.presentationsErr
}
func (s stubDirectory) ListExaminers(context.Context) ([]examiner.Examiner, error) {
	return s.examiners, s.examinersErr
}
func (s stubDirectory) ListVenues(context.Context) ([]venue.Venue, error) {
	return s.venues, s.venuesErr
}

func TestBootstrapLoadsAllThree(t *testing.T) {
	dir := stubDirectory{
		presentations: []presentation.Presentation{{Title: "Final demo"}},
		examiners:     []examiner.Examiner{{Name: "Alice Smith"}, {Name: "Bob Jones"}},
		venues:        []venue.Venue{{Name: "Main Hall"}},
	}
	d, err := Bootstrap{API: dir}.Execute(context.Background())
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if len(d.Presentations) != 1 || len(d.Examiners) != 2 || len(d.Venues) != 1 {
		t.Errorf("unexpected dashboard: %+v", d)
	}
}

// A partial failure fails the whole bootstrap; no partial result leaks out.
func TestBootstrapFailsJointly(t *testing.T) {
	boom := errors.New("backend down")
	dir := stubDirectory{
		presentations: []presentation.Presentation{{Title: "Final demo"}},
		examinersErr:  boom,
		venues:        []venue.Venue{{Name: "Main Hall"}},
	}
	d, err := Bootstrap{API: dir}.Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the fetch error", err)
	}
	if d.Presentations != nil || d.Venues != nil {
		t.Errorf("partial results must not be returned: %+v", d)
	}
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTriggerScheduleValidatesWindow(t *testing.T) {
	_, err := TriggerSchedule{}.Execute(context.Background(),
		mustDate("2026-09-05"), mustDate("2026-09-01"))
	if err == nil {
		t.Fatal("reversed window must be rejected before any network call")
	}
}
