package web

import (
	"net/http"
	"strconv"

	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/forms"
)

type examinerListData struct {
	Examiners []examiner.Examiner
	Banner    string
}

func (s *Server) handleExaminerList(w http.ResponseWriter, r *http.Request) {
	es, err := s.api.ListExaminers(r.Context())
	if err != nil {
		s.renderFetchError(w, "Examiners", err, "/examiners")
		return
	}
	s.render(w, "examiners.html", examinerListData{Examiners: es})
}

type examinerFormData struct {
	Draft             *Draft
	Store             *forms.Store
	Departments       []string
	Positions         []string
	ExpertiseAreas    []string
	Slots             []examiner.Slot
	SlotError         string
	CompletionPercent int
	Banner            string
	IsEdit            bool
	Review            *examiner.Examiner
}

func (s *Server) examinerFormData(d *Draft, banner, slotError string, isEdit bool) examinerFormData {
	return examinerFormData{
		Draft:             d,
		Store:             d.Store(),
		Departments:       examiner.Departments,
		Positions:         examiner.Positions,
		ExpertiseAreas:    examiner.ExpertiseAreas,
		Slots:             d.Slots,
		SlotError:         slotError,
		CompletionPercent: d.Store().CompletionPercent(),
		Banner:            banner,
		IsEdit:            isEdit,
	}
}

func (s *Server) handleExaminerNew(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		d := s.drafts.Create(examiner.IntakeSchema())
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", false))
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	_ = r.ParseForm()
	d, ok := s.drafts.Get(r.PostFormValue("draft"))
	if !ok || !lockDraft(d) {
		http.Redirect(w, r, "/examiners/new", http.StatusSeeOther)
		return
	}
	defer d.mu.Unlock()
	if d.Wizard.Step() == forms.StepEditing {
		applyForm(d.Store(), r.PostForm)
	}

	switch r.PostFormValue("action") {
	case "add_slot":
		slot := examiner.Slot{
			Date:      r.PostFormValue("slot_date"),
			StartTime: r.PostFormValue("slot_start"),
			EndTime:   r.PostFormValue("slot_end"),
		}
		if err := slot.Validate(s.now()); err != nil {
			s.render(w, "examiner_form.html", s.examinerFormData(d, "", err.Error(), false))
			return
		}
		d.Slots = append(d.Slots, slot)
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", false))
	case "remove_slot":
		if i, err := strconv.Atoi(r.PostFormValue("slot_index")); err == nil && i >= 0 && i < len(d.Slots) {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
		}
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", false))
	case "continue":
		if !d.Wizard.ContinueToReview() {
			s.render(w, "examiner_form.html", s.examinerFormData(d, "Please fix the highlighted fields before continuing.", "", false))
			return
		}
		s.renderExaminerReview(w, d, "")
	case "back":
		d.Wizard.Back()
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", false))
	case "confirm":
		e := examiner.FromStore(d.Store(), d.Slots)
		err := d.Wizard.Confirm(func() error {
			_, err := s.api.CreateExaminer(r.Context(), e)
			return err
		})
		if err != nil {
			s.renderExaminerReview(w, d, bannerMessage(err))
			return
		}
		s.drafts.Drop(d.ID)
		s.renderSuccess(w, "Examiner created successfully.", "/examiners")
	default:
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", false))
	}
}

func (s *Server) renderExaminerReview(w http.ResponseWriter, d *Draft, banner string) {
	data := s.examinerFormData(d, banner, "", false)
	e := examiner.FromStore(d.Store(), d.Slots)
	data.Review = &e
	s.render(w, "examiner_review.html", data)
}

func (s *Server) handleExaminerEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if r.Method == http.MethodGet {
		rec, err := s.api.GetExaminer(r.Context(), id)
		if err != nil {
			s.renderFetchError(w, "Edit examiner", err, r.URL.Path)
			return
		}
		d := s.drafts.Create(examiner.IntakeSchema())
		d.RecordID = id
		d.Slots = rec.Availability
		examiner.FillStore(d.Store(), rec)
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", true))
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

	switch r.PostFormValue("action") {
	case "add_slot":
		slot := examiner.Slot{
			Date:      r.PostFormValue("slot_date"),
			StartTime: r.PostFormValue("slot_start"),
			EndTime:   r.PostFormValue("slot_end"),
		}
		if err := slot.Validate(s.now()); err != nil {
			s.render(w, "examiner_form.html", s.examinerFormData(d, "", err.Error(), true))
			return
		}
		d.Slots = append(d.Slots, slot)
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", true))
	case "remove_slot":
		if i, err := strconv.Atoi(r.PostFormValue("slot_index")); err == nil && i >= 0 && i < len(d.Slots) {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
		}
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", true))
	case "save":
		if !d.Wizard.ContinueToReview() {
			s.render(w, "examiner_form.html", s.examinerFormData(d, "Please fix the highlighted fields.", "", true))
			return
		}
		e := examiner.FromStore(d.Store(), d.Slots)
		err := d.Wizard.Confirm(func() error {
			return s.api.UpdateExaminer(r.Context(), id, e)
		})
		if err != nil {
			d.Wizard.Back()
			s.render(w, "examiner_form.html", s.examinerFormData(d, bannerMessage(err), "", true))
			return
		}
		s.drafts.Drop(d.ID)
		s.renderSuccess(w, "Examiner updated successfully.", "/examiners")
	default:
		s.render(w, "examiner_form.html", s.examinerFormData(d, "", "", true))
	}
}

func (s *Server) handleExaminerDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.api.DeleteExaminer(r.Context(), id); err != nil {
		es, lerr := s.api.ListExaminers(r.Context())
		if lerr != nil {
			s.renderFetchError(w, "Examiners", lerr, "/examiners")
			return
		}
		s.render(w, "examiners.html", examinerListData{Examiners: es, Banner: bannerMessage(err)})
		return
	}
	http.Redirect(w, r, "/examiners", http.StatusSeeOther)
}
