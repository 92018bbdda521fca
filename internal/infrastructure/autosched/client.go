// Package autosched is the REST client for the AutoSched backend. It is the
// single boundary through which drafts become backend writes; nothing in the
// front-end persists scheduling data itself.
package autosched

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/domain/presentation"
	"github.com/ishehara/autosched-admin/internal/domain/venue"
)

// ErrUnreachable wraps transport-level failures: the backend never produced a
// response. Non-2xx responses are reported as *StatusError instead.
var ErrUnreachable = errors.New("autosched backend unreachable")

// StatusError is a non-2xx response. Message carries the backend's own
// message field when the body had a usable one, otherwise it is empty and
// callers fall back to generic wording.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("autosched backend rejected the request: %s (status=%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("autosched backend rejected the request (status=%d)", e.Status)
}

type Client struct {
	hc      *http.Client
	baseURL string
}

// New builds a client for the given base URL, e.g. "http://localhost:5000/api".
func New(baseURL string) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	var out []venue.Venue
	return out, c.do(ctx, http.MethodGet, "/venues", nil, &out)
}

func (c *Client) GetVenue(ctx context.Context, id string) (venue.Venue, error) {
	var out venue.Venue
	return out, c.do(ctx, http.MethodGet, "/venues/"+id, nil, &out)
}

func (c *Client) CreateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	var out venue.Venue
	return out, c.do(ctx, http.MethodPost, "/venues/", v, &out)
}

func (c *Client) UpdateVenue(ctx context.Context, id string, v venue.Venue) error {
	return c.do(ctx, http.MethodPut, "/venues/"+id, v, nil)
}

func (c *Client) DeleteVenue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/venues/"+id, nil, nil)
}

func (c *Client) ListExaminers(ctx context.Context) ([]examiner.Examiner, error) {
	var out []examiner.Examiner
	return out, c.do(ctx, http.MethodGet, "/examiners", nil, &out)
}

func (c *Client) GetExaminer(ctx context.Context, id string) (examiner.Examiner, error) {
	var out examiner.Examiner
	return out, c.do(ctx, http.MethodGet, "/examiners/"+id, nil, &out)
}

func (c *Client) CreateExaminer(ctx context.Context, e examiner.Examiner) (examiner.Examiner, error) {
	var out examiner.Examiner
	return out, c.do(ctx, http.MethodPost, "/examiners/", e, &out)
}

// UpdateExaminer strips the identity field from the body; the backend takes
// the id from the path only.
func (c *Client) UpdateExaminer(ctx context.Context, id string, e examiner.Examiner) error {
	e.ID = ""
	return c.do(ctx, http.MethodPut, "/examiners/"+id, e, nil)
}

func (c *Client) DeleteExaminer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/examiners/"+id, nil, nil)
}

func (c *Client) ListPresentations(ctx context.Context) ([]presentation.Presentation, error) {
	var out []presentation.Presentation
	return out, c.do(ctx, http.MethodGet, "/presentations", nil, &out)
}

func (c *Client) GetPresentation(ctx context.Context, id string) (presentation.Presentation, error) {
	var out presentation.Presentation
	return out, c.do(ctx, http.MethodGet, "/presentations/"+id, nil, &out)
}

func (c *Client) CreatePresentation(ctx context.Context, p presentation.Presentation) (presentation.Presentation, error) {
	var out presentation.Presentation
	return out, c.do(ctx, http.MethodPost, "/presentations/", p, &out)
}

func (c *Client) UpdatePresentation(ctx context.Context, id string, p presentation.Presentation) error {
	return c.do(ctx, http.MethodPut, "/presentations/"+id, p, nil)
}

func (c *Client) DeletePresentation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/presentations/"+id, nil, nil)
}

// ScheduleResult reports the outcome of a scheduler run. Reported is false
// when the backend answered 2xx but did not include a scheduled_presentations
// array, in which case Count is zero and means "unknown".
type ScheduleResult struct {
	Count    int
	Reported bool
}

type scheduleRequest struct {
	DateRange [2]string `json:"date_range"`
}

type scheduleResponse struct {
	ScheduledPresentations []json.RawMessage `json:"scheduled_presentations"`
}

// Schedule triggers a server-side scheduling run over the inclusive date
// range [from, to].
func (c *Client) Schedule(ctx context.Context, from, to time.Time) (ScheduleResult, error) {
	req := scheduleRequest{DateRange: [2]string{
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	}}
	body, err := c.raw(ctx, http.MethodPost, "/presentations/schedule", req)
	if err != nil {
		return ScheduleResult{}, err
	}
	var res scheduleResponse
	if err := json.Unmarshal(body, &res); err != nil || res.ScheduledPresentations == nil {
		return ScheduleResult{}, nil
	}
	return ScheduleResult{Count: len(res.ScheduledPresentations), Reported: true}, nil
}

// Ping checks backend reachability with a cheap list call.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/venues", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	body, err := c.raw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) raw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var rd io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("content-type", "application/json")
	}
	req.Header.Set("accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if res.StatusCode >= 400 {
		return nil, &StatusError{Status: res.StatusCode, Message: serverMessage(b)}
	}
	return b, nil
}

// serverMessage digs a human-readable message out of an error body. Backends
// in front of this UI have answered with either {"message": ...} or
// {"error": ...}.
func serverMessage(body []byte) string {
	var r struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return ""
	}
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}
