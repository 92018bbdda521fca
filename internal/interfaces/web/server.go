package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/ishehara/autosched-admin/internal/application/usecases"
	"github.com/ishehara/autosched-admin/internal/infrastructure/autosched"
	"go.uber.org/zap"
)

// successRedirectDelay is how long the success notice stays on screen before
// the browser is sent back to the listing page.
const successRedirectDelay = 2 * time.Second

type Server struct {
	addr     string
	sessions *SessionManager
	auth     usecases.AuthService
	api      *autosched.Client
	drafts   *DraftStore
	tmpl     *template.Template
	log      *zap.Logger
	now      func() time.Time
}

func New(addr string, sessions *SessionManager, auth usecases.AuthService, api *autosched.Client, tmpl *template.Template, log *zap.Logger) *Server {
	return &Server{
		addr:     addr,
		sessions: sessions,
		auth:     auth,
		api:      api,
		drafts:   NewDraftStore(),
		tmpl:     tmpl,
		log:      log,
		now:      time.Now,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)

	mux.HandleFunc("GET /{$}", s.requireAuth(s.handleDashboard))

	mux.HandleFunc("GET /venues", s.requireAuth(s.handleVenueList))
	mux.HandleFunc("/venues/new", s.requireAuth(s.handleVenueNew))
	mux.HandleFunc("/venues/{id}/edit", s.requireAuth(s.handleVenueEdit))
	mux.HandleFunc("POST /venues/{id}/delete", s.requireAuth(s.handleVenueDelete))

	mux.HandleFunc("GET /examiners", s.requireAuth(s.handleExaminerList))
	mux.HandleFunc("/examiners/new", s.requireAuth(s.handleExaminerNew))
	mux.HandleFunc("/examiners/{id}/edit", s.requireAuth(s.handleExaminerEdit))
	mux.HandleFunc("POST /examiners/{id}/delete", s.requireAuth(s.handleExaminerDelete))

	mux.HandleFunc("GET /presentations", s.requireAuth(s.handlePresentationList))
	mux.HandleFunc("/presentations/new", s.requireAuth(s.handlePresentationNew))
	mux.HandleFunc("/presentations/{id}/edit", s.requireAuth(s.handlePresentationEdit))
	mux.HandleFunc("POST /presentations/{id}/delete", s.requireAuth(s.handlePresentationDelete))

	mux.HandleFunc("/scheduler", s.requireAuth(s.handleScheduler))

	return s.logging(mux)
}

func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("http listening", zap.String("addr", s.addr))
	return srv.ListenAndServe()
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.sessions.GetUserID(r); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("content-type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render failed", zap.String("template", name), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}
}

type errorData struct {
	Title    string
	Message  string
	RetryURL string
}

// renderFetchError is the full-page error state used when a bootstrap or list
// fetch fails; recovery is a user-initiated retry.
func (s *Server) renderFetchError(w http.ResponseWriter, title string, err error, retryURL string) {
	s.log.Warn("fetch failed", zap.String("page", title), zap.Error(err))
	s.render(w, "error.html", errorData{
		Title:    title,
		Message:  bannerMessage(err),
		RetryURL: retryURL,
	})
}

type successData struct {
	Message string
	Target  string
}

// renderSuccess shows a success notice and schedules the redirect back to the
// listing page via a Refresh header, so there is no timer to leak when the
// user navigates away first.
func (s *Server) renderSuccess(w http.ResponseWriter, message, target string) {
	w.Header().Set("Refresh", refreshHeader(successRedirectDelay, target))
	s.render(w, "success.html", successData{Message: message, Target: target})
}

func refreshHeader(delay time.Duration, target string) string {
	return fmt.Sprintf("%d; url=%s", int(delay/time.Second), target)
}

// bannerMessage maps a gateway failure to user-facing banner text. The three
// cases all share the same visual treatment and differ only in wording.
func bannerMessage(err error) string {
	var se *autosched.StatusError
	switch {
	case errors.Is(err, autosched.ErrUnreachable):
		return "Cannot reach the AutoSched backend. Check that it is running, then try again."
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
		return "The backend rejected the request. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

type loginData struct {
	Error    string
	Username string
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, "login.html", loginData{})
	case http.MethodPost:
		_ = r.ParseForm()
		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		u, err := s.auth.VerifyPassword(ctx, username, password)
		if err != nil {
			s.render(w, "login.html", loginData{Error: "Invalid username or password", Username: username})
			return
		}
		if err := s.sessions.SetUserID(w, r, u.ID); err != nil {
			s.log.Error("set session failed", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

type dashboardData struct {
	PresentationCount int
	ExaminerCount     int
	VenueCount        int
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	d, err := usecases.Bootstrap{API: s.api}.Execute(ctx)
	if err != nil {
		s.renderFetchError(w, "Dashboard", err, "/")
		return
	}
	s.render(w, "dashboard.html", dashboardData{
		PresentationCount: len(d.Presentations),
		ExaminerCount:     len(d.Examiners),
		VenueCount:        len(d.Venues),
	})
}
