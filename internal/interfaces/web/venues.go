package web

import (
	"net/http"
	"net/url"

	"github.com/ishehara/autosched-admin/internal/domain/venue"
	"github.com/ishehara/autosched-admin/internal/forms"
)

// applyForm copies posted values into the store for every schema field. An
// absent key (an unchecked checkbox group) clears the field, which is the
// correct reading of a full-form post.
func applyForm(st *forms.Store, form url.Values) {
	for _, name := range st.FieldNames() {
		st.SetField(name, form[name]...)
	}
}

type venueListData struct {
	Venues []venue.Venue
	Banner string
}

func (s *Server) handleVenueList(w http.ResponseWriter, r *http.Request) {
	vs, err := s.api.ListVenues(r.Context())
	if err != nil {
		s.renderFetchError(w, "Venues", err, "/venues")
		return
	}
	s.render(w, "venues.html", venueListData{Venues: vs})
}

type venueFormData struct {
	Draft             *Draft
	Store             *forms.Store
	RoomTypes         []venue.RoomType
	Availabilities    []venue.Availability
	Facilities        []string
	CompletionPercent int
	Banner            string
	IsEdit            bool
	Review            *venue.Venue
}

func (s *Server) venueFormData(d *Draft, banner string, isEdit bool) venueFormData {
	return venueFormData{
		Draft:             d,
		Store:             d.Store(),
		RoomTypes:         venue.RoomTypes,
		Availabilities:    venue.Availabilities,
		Facilities:        venue.Facilities,
		CompletionPercent: d.Store().CompletionPercent(),
		Banner:            banner,
		IsEdit:            isEdit,
	}
}

func (s *Server) handleVenueNew(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		d := s.drafts.Create(venue.IntakeSchema())
		s.render(w, "venue_form.html", s.venueFormData(d, "", false))
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	_ = r.ParseForm()
	d, ok := s.drafts.Get(r.PostFormValue("draft"))
	if !ok || !lockDraft(d) {
		// Draft expired, already submitted, or the server restarted; start over.
		http.Redirect(w, r, "/venues/new", http.StatusSeeOther)
		return
	}
	defer d.mu.Unlock()

	if d.Wizard.Step() == forms.StepEditing {
		applyForm(d.Store(), r.PostForm)
	}

	switch r.PostFormValue("action") {
	case "continue":
		if !d.Wizard.ContinueToReview() {
			s.render(w, "venue_form.html", s.venueFormData(d, "Please fix the highlighted fields before continuing.", false))
			return
		}
		s.renderVenueReview(w, d, "")
	case "back":
		d.Wizard.Back()
		s.render(w, "venue_form.html", s.venueFormData(d, "", false))
	case "confirm":
		v := venue.FromStore(d.Store())
		err := d.Wizard.Confirm(func() error {
			_, err := s.api.CreateVenue(r.Context(), v)
			return err
		})
		if err != nil {
			s.renderVenueReview(w, d, bannerMessage(err))
			return
		}
		s.drafts.Drop(d.ID)
		s.renderSuccess(w, "Venue created successfully.", "/venues")
	default:
		s.render(w, "venue_form.html", s.venueFormData(d, "", false))
	}
}

func (s *Server) renderVenueReview(w http.ResponseWriter, d *Draft, banner string) {
	data := s.venueFormData(d, banner, false)
	v := venue.FromStore(d.Store())
	data.Review = &v
	s.render(w, "venue_review.html", data)
}

func (s *Server) handleVenueEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if r.Method == http.MethodGet {
		rec, err := s.api.GetVenue(r.Context(), id)
		if err != nil {
			s.renderFetchError(w, "Edit venue", err, r.URL.Path)
			return
		}
		d := s.drafts.Create(venue.IntakeSchema())
		d.RecordID = id
		venue.FillStore(d.Store(), rec)
		s.render(w, "venue_form.html", s.venueFormData(d, "", true))
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

	// Edits are single-step: validate and submit in one action, with the same
	// in-flight guard the wizard gives the create flow.
	if !d.Wizard.ContinueToReview() {
		s.render(w, "venue_form.html", s.venueFormData(d, "Please fix the highlighted fields.", true))
		return
	}
	v := venue.FromStore(d.Store())
	err := d.Wizard.Confirm(func() error {
		return s.api.UpdateVenue(r.Context(), id, v)
	})
	if err != nil {
		d.Wizard.Back()
		s.render(w, "venue_form.html", s.venueFormData(d, bannerMessage(err), true))
		return
	}
	s.drafts.Drop(d.ID)
	s.renderSuccess(w, "Venue updated successfully.", "/venues")
}

func (s *Server) handleVenueDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.api.DeleteVenue(r.Context(), id); err != nil {
		vs, lerr := s.api.ListVenues(r.Context())
		if lerr != nil {
			s.renderFetchError(w, "Venues", lerr, "/venues")
			return
		}
		s.render(w, "venues.html", venueListData{Venues: vs, Banner: bannerMessage(err)})
		return
	}
	http.Redirect(w, r, "/venues", http.StatusSeeOther)
}
