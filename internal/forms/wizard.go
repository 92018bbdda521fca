package forms

import (
	"errors"
	"sync"
)

type Step int

const (
	StepEditing Step = iota
	StepReviewing
	StepSubmitted
)

var (
	ErrNotReviewing   = errors.New("wizard is not at the review step")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// Wizard gates a form behind an explicit review step. It never advances on
// its own: ContinueToReview moves forward only when the whole form validates,
// Back always returns to editing, and Confirm performs the submission exactly
// once at a time.
type Wizard struct {
	mu       sync.Mutex
	store    *Store
	step     Step
	inFlight bool
}

func NewWizard(store *Store) *Wizard {
	return &Wizard{store: store}
}

func (w *Wizard) Store() *Store { return w.store }

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// ContinueToReview touches every field, runs full validation and advances to
// the review step only when no field is in error and all required fields are
// filled. On failure the wizard stays at the editing step with every error
// now visible.
func (w *Wizard) ContinueToReview() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepEditing {
		return w.step == StepReviewing
	}
	w.store.TouchAll()
	if !w.store.Valid() || !w.store.Complete() {
		return false
	}
	w.step = StepReviewing
	return true
}

// Back returns to the editing step. It is a no-op after submission.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepReviewing {
		w.step = StepEditing
	}
}

// Confirm runs the submission. While submit is executing, further Confirm
// calls fail with ErrSubmitInFlight, so a double post performs at most one
// backend write. On success the draft is cleared and the wizard is terminal;
// on failure the wizard stays at the review step with the draft intact for a
// retry.
func (w *Wizard) Confirm(submit func() error) error {
	w.mu.Lock()
	if w.step != StepReviewing {
		w.mu.Unlock()
		return ErrNotReviewing
	}
	if w.inFlight {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	w.inFlight = true
	w.mu.Unlock()

	err := submit()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false
	if err != nil {
		return err
	}
	w.step = StepSubmitted
	w.store.Reset()
	return nil
}
