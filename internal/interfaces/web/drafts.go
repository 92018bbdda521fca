package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/forms"
)

// draftTTL bounds how long an abandoned draft survives. Drafts live only in
// memory; navigating away and never coming back must not leak them.
const draftTTL = time.Hour

// Draft is one in-progress form: the wizard, its store, and (for examiner
// forms) the availability slots accumulated so far. RecordID is set when the
// draft edits an existing record.
type Draft struct {
	ID        string
	RecordID  string
	Wizard    *forms.Wizard
	Slots     []examiner.Slot
	CreatedAt time.Time

	mu sync.Mutex
}

func (d *Draft) Store() *forms.Store { return d.Wizard.Store() }

// lockDraft claims a draft for the remainder of a post request, serializing
// posts that carry the same draft id: the store maps and the slot list are
// only ever mutated under this lock. A draft whose wizard has already
// submitted was consumed by a concurrent post and reads as gone; the caller
// redirects exactly as for an unknown draft id. On true the caller owns the
// lock and must release it with d.mu.Unlock.
func lockDraft(d *Draft) bool {
	d.mu.Lock()
	if d.Wizard.Step() == forms.StepSubmitted {
		d.mu.Unlock()
		return false
	}
	return true
}

// DraftStore holds live drafts keyed by id. A draft is created on form entry,
// resumed on every post via its hidden id field, and dropped on successful
// submission.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*Draft
	now    func() time.Time
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*Draft), now: time.Now}
}

func (ds *DraftStore) Create(schema forms.Schema) *Draft {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.pruneLocked()
	d := &Draft{
		ID:        uuid.NewString(),
		Wizard:    forms.NewWizard(forms.NewStore(schema)),
		CreatedAt: ds.now(),
	}
	ds.drafts[d.ID] = d
	return d
}

func (ds *DraftStore) Get(id string) (*Draft, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	d, ok := ds.drafts[id]
	return d, ok
}

func (ds *DraftStore) Drop(id string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.drafts, id)
}

func (ds *DraftStore) pruneLocked() {
	cutoff := ds.now().Add(-draftTTL)
	for id, d := range ds.drafts {
		if d.CreatedAt.Before(cutoff) {
			delete(ds.drafts, id)
		}
	}
}
