package autosched

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/domain/venue"
)

func TestCreateExaminerPayload(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "ex1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	e := examiner.Examiner{
		Name:       "Alice Smith",
		Email:      "alice@x.com",
		Phone:      "0712345678",
		Department: "IT",
		Position:   "Lecturer",
		Expertise:  []string{"Web Development"},
		Availability: []examiner.Slot{
			{Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00"},
		},
	}
	out, err := c.CreateExaminer(context.Background(), e)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if out.ID != "ex1" {
		t.Errorf("id = %q, want ex1", out.ID)
	}
	if gotMethod != http.MethodPost || gotPath != "/examiners/" {
		t.Errorf("request = %s %s, want POST /examiners/", gotMethod, gotPath)
	}
	if gotBody["name"] != "Alice Smith" || gotBody["phone"] != "0712345678" {
		t.Errorf("unexpected body: %v", gotBody)
	}
	if _, present := gotBody["id"]; present {
		t.Error("create body must not carry an id")
	}
	slots, ok := gotBody["availability"].([]any)
	if !ok || len(slots) != 1 {
		t.Fatalf("availability not serialized: %v", gotBody["availability"])
	}
	slot := slots[0].(map[string]any)
	if slot["date"] != "2026-09-02" || slot["startTime"] != "09:00" {
		t.Errorf("unexpected slot shape: %v", slot)
	}
}

func TestUpdateExaminerStripsIdentity(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	e := examiner.Examiner{ID: "ex1", Name: "Alice Smith", Email: "alice@x.com"}
	if err := c.UpdateExaminer(context.Background(), "ex1", e); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, present := gotBody["id"]; present {
		t.Error("update body must not carry the identity field")
	}
}

func TestServerRejectionSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "venue name already exists"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateVenue(context.Background(), venue.Venue{Name: "Main Hall"})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Status != http.StatusConflict || se.Message != "venue name already exists" {
		t.Errorf("unexpected status error: %+v", se)
	}
}

func TestServerRejectionWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteVenue(context.Background(), "v1")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Message != "" {
		t.Errorf("message = %q, want empty for a non-JSON body", se.Message)
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := New(srv.URL).ListVenues(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestScheduleReportsCount(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/presentations/schedule" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"scheduled_presentations": []any{map[string]any{}, map[string]any{}, map[string]any{}},
		})
	}))
	defer srv.Close()

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	res, err := New(srv.URL).Schedule(context.Background(), from, to)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if !res.Reported || res.Count != 3 {
		t.Errorf("result = %+v, want 3 reported", res)
	}
	dr, ok := gotBody["date_range"].([]any)
	if !ok || len(dr) != 2 || dr[0] != "2026-09-01" || dr[1] != "2026-09-05" {
		t.Errorf("date_range = %v", gotBody["date_range"])
	}
}

// A 2xx response without the scheduled_presentations array is treated as an
// unreported count, not a failure.
func TestScheduleMissingCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	res, err := New(srv.URL).Schedule(context.Background(), time.Now(), time.Now())
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if res.Reported {
		t.Errorf("result = %+v, want unreported", res)
	}
}
