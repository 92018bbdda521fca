package web

import (
	"net/http"

	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/domain/presentation"
	"github.com/ishehara/autosched-admin/internal/domain/venue"
	"github.com/ishehara/autosched-admin/internal/forms"
)

type presentationListData struct {
	Presentations []presentation.Presentation
	Banner        string
}

func (s *Server) handlePresentationList(w http.ResponseWriter, r *http.Request) {
	ps, err := s.api.ListPresentations(r.Context())
	if err != nil {
		s.renderFetchError(w, "Presentations", err, "/presentations")
		return
	}
	s.render(w, "presentations.html", presentationListData{Presentations: ps})
}

type presentationFormData struct {
	Draft             *Draft
	Store             *forms.Store
	Examiners         []examiner.Examiner
	Venues            []venue.Venue
	CompletionPercent int
	Banner            string
	IsEdit            bool
}

// presentationFormData loads the examiner and venue catalogs the selects
// need; a failure here is a fetch error, not a form error.
func (s *Server) presentationFormData(r *http.Request, d *Draft, banner string, isEdit bool) (presentationFormData, error) {
	es, err := s.api.ListExaminers(r.Context())
	if err != nil {
		return presentationFormData{}, err
	}
	vs, err := s.api.ListVenues(r.Context())
	if err != nil {
		return presentationFormData{}, err
	}
	return presentationFormData{
		Draft:             d,
		Store:             d.Store(),
		Examiners:         es,
		Venues:            vs,
		CompletionPercent: d.Store().CompletionPercent(),
		Banner:            banner,
		IsEdit:            isEdit,
	}, nil
}

func (s *Server) renderPresentationForm(w http.ResponseWriter, r *http.Request, d *Draft, banner string, isEdit bool) {
	data, err := s.presentationFormData(r, d, banner, isEdit)
	if err != nil {
		s.renderFetchError(w, "Presentation form", err, r.URL.Path)
		return
	}
	s.render(w, "presentation_form.html", data)
}

// Presentations use a single-step validate-and-submit form; the review step
// is reserved for the larger intake flows.
func (s *Server) handlePresentationNew(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		d := s.drafts.Create(presentation.IntakeSchema(s.now))
		s.renderPresentationForm(w, r, d, "", false)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	_ = r.ParseForm()
	d, ok := s.drafts.Get(r.PostFormValue("draft"))
	if !ok || !lockDraft(d) {
		http.Redirect(w, r, "/presentations/new", http.StatusSeeOther)
		return
	}
	defer d.mu.Unlock()
	applyForm(d.Store(), r.PostForm)

	if !d.Wizard.ContinueToReview() {
		s.renderPresentationForm(w, r, d, "Please fix the highlighted fields.", false)
		return
	}
	p := presentation.FromStore(d.Store())
	err := d.Wizard.Confirm(func() error {
		_, err := s.api.CreatePresentation(r.Context(), p)
		return err
	})
	if err != nil {
		d.Wizard.Back()
		s.renderPresentationForm(w, r, d, bannerMessage(err), false)
		return
	}
	s.drafts.Drop(d.ID)
	s.renderSuccess(w, "Presentation created successfully.", "/presentations")
}

func (s *Server) handlePresentationEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if r.Method == http.MethodGet {
		rec, err := s.api.GetPresentation(r.Context(), id)
		if err != nil {
			s.renderFetchError(w, "Edit presentation", err, r.URL.Path)
			return
		}
		d := s.drafts.Create(presentation.IntakeSchema(s.now))
		d.RecordID = id
		presentation.FillStore(d.Store(), rec)
		s.renderPresentationForm(w, r, d, "", true)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	_ = r.ParseForm()
	d, ok := s.drafts.Get(r.PostFormValue("draft"))
	if !ok || d.RecordID != id || !lockDraft(d) {
		http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		return
	}
	defer d.mu.Unlock()
	applyForm(d.Store(), r.PostForm)

	if !d.Wizard.ContinueToReview() {
		s.renderPresentationForm(w, r, d, "Please fix the highlighted fields.", true)
		return
	}
	p := presentation.FromStore(d.Store())
	err := d.Wizard.Confirm(func() error {
		return s.api.UpdatePresentation(r.Context(), id, p)
	})
	if err != nil {
		d.Wizard.Back()
		s.renderPresentationForm(w, r, d, bannerMessage(err), true)
		return
	}
	s.drafts.Drop(d.ID)
	s.renderSuccess(w, "Presentation updated successfully.", "/presentations")
}

func (s *Server) handlePresentationDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.api.DeletePresentation(r.Context(), id); err != nil {
		ps, lerr := s.api.ListPresentations(r.Context())
		if lerr != nil {
			s.renderFetchError(w, "Presentations", lerr, "/presentations")
			return
		}
		s.render(w, "presentations.html", presentationListData{Presentations: ps, Banner: bannerMessage(err)})
		return
	}
	http.Redirect(w, r, "/presentations", http.StatusSeeOther)
}
