package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/web"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/lotfi-dotcom/artztTerminapp/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// PageHandler serves the server-rendered dashboard. Every POST changes the
// session and redirects back to the dashboard.
type PageHandler struct {
	dashboard usecase.DashboardUsecase
	templates *template.Template
	log       *logrus.Logger
}

func NewPageHandler(dashboard usecase.DashboardUsecase, log *logrus.Logger) (*PageHandler, error) {
	templates, err := template.New("pages").Funcs(template.FuncMap{
		"germanDate": germanDate,
	}).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		dashboard: dashboard,
		templates: templates,
		log:       log,
	}, nil
}

// Dashboard handles GET /
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view := h.dashboard.View(r.Context())

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "dashboard", view); err != nil {
		h.log.Errorf("Failed to render dashboard: %+v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// DeepLink handles GET /termin/{id}. Known ids open the form in editing
// mode; unknown ids leave a notice.
func (h *PageHandler) DeepLink(w http.ResponseWriter, r *http.Request) {
	h.dashboard.OpenDeepLink(mux.Vars(r)["id"])
	redirectHome(w, r)
}

func (h *PageHandler) ChooseSpecialty(w http.ResponseWriter, r *http.Request) {
	if !h.captureDraft(w, r) {
		return
	}
	h.dashboard.ChooseSpecialty(r.PostFormValue("specialty"))
	redirectHome(w, r)
}

func (h *PageHandler) ChooseCity(w http.ResponseWriter, r *http.Request) {
	if !h.captureDraft(w, r) {
		return
	}
	h.dashboard.ChooseCity(r.PostFormValue("city"))
	redirectHome(w, r)
}

func (h *PageHandler) ChooseDoctor(w http.ResponseWriter, r *http.Request) {
	if !h.captureDraft(w, r) {
		return
	}
	h.dashboard.ChooseDoctor(formInt(r, "doctorId"))
	redirectHome(w, r)
}

// Submit handles POST /form/submit. Failures surface as notices.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !h.captureDraft(w, r) {
		return
	}
	if doctorID := formInt(r, "doctorId"); doctorID > 0 {
		if err := h.dashboard.ChooseDoctor(doctorID); err != nil {
			redirectHome(w, r)
			return
		}
	}
	if err := h.dashboard.Submit(r.Context()); err != nil {
		h.log.Debugf("Submit rejected: %v", err)
	}
	redirectHome(w, r)
}

func (h *PageHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Cancel()
	redirectHome(w, r)
}

// ApplyListControls handles POST /list
func (h *PageHandler) ApplyListControls(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	h.dashboard.ApplyListControls(r.PostFormValue("search"), r.PostFormValue("doctor"), r.PostFormValue("sort"))
	redirectHome(w, r)
}

// SetPage handles POST /list/page
func (h *PageHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	h.dashboard.SetPage(r.Context(), formInt(r, "page"))
	redirectHome(w, r)
}

func (h *PageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Edit(mux.Vars(r)["id"])
	redirectHome(w, r)
}

func (h *PageHandler) Share(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Share(r.Context(), mux.Vars(r)["id"])
	redirectHome(w, r)
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Delete(r.Context(), mux.Vars(r)["id"])
	redirectHome(w, r)
}

// captureDraft keeps the typed form fields across the cascade posts.
func (h *PageHandler) captureDraft(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return false
	}
	h.dashboard.UpdateDraft(r.PostFormValue("patientName"), r.PostFormValue("date"), r.PostFormValue("time"))
	return true
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func formInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.PostFormValue(key))
	if err != nil {
		return 0
	}
	return value
}

// germanDate renders 2030-05-01 as 01.05.2030. Unparseable values are shown as stored.
func germanDate(date string) string {
	parsed, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("02.01.2006")
}
