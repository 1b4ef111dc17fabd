package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/internal/repository"
	"github.com/lotfi-dotcom/artztTerminapp/internal/service"
	"github.com/lotfi-dotcom/artztTerminapp/internal/usecase"
	"github.com/lotfi-dotcom/artztTerminapp/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testClipboard struct {
	err error
}

func (c *testClipboard) WriteAll(text string) error {
	return c.err
}

type testEnv struct {
	router    *mux.Router
	clipboard *testClipboard
	dashboard usecase.DashboardUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	doctors := repository.NewDoctorRepository()
	appointments := repository.NewAppointmentRepository(repository.NewMemorySlotStore(), "appointments", log)

	selection := service.NewSelectionService(doctors, time.Millisecond, log, nil)
	confirmation := service.NewConfirmationService(time.Minute, log)
	clip := &testClipboard{}
	share := service.NewShareService("http://localhost:8080", clip, log, nil)

	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointments, doctors, confirmation, share, nil)
	dashboard := usecase.NewDashboardUsecase(log, appointmentUsecase, appointments, doctors, selection, confirmation)
	t.Cleanup(dashboard.Close)

	v := validator.NewValidator()
	appointmentHandler := NewAppointmentHandler(appointmentUsecase, v)
	doctorHandler := NewDoctorHandler(usecase.NewDoctorUsecase(log, doctors), v)
	pageHandler, err := NewPageHandler(dashboard, log)
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/", pageHandler.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/termin/{id}", pageHandler.DeepLink).Methods(http.MethodGet)
	r.HandleFunc("/form/specialty", pageHandler.ChooseSpecialty).Methods(http.MethodPost)
	r.HandleFunc("/form/city", pageHandler.ChooseCity).Methods(http.MethodPost)
	r.HandleFunc("/form/doctor", pageHandler.ChooseDoctor).Methods(http.MethodPost)
	r.HandleFunc("/form/submit", pageHandler.Submit).Methods(http.MethodPost)
	r.HandleFunc("/form/cancel", pageHandler.Cancel).Methods(http.MethodPost)
	r.HandleFunc("/list", pageHandler.ApplyListControls).Methods(http.MethodPost)
	r.HandleFunc("/list/page", pageHandler.SetPage).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}/edit", pageHandler.Edit).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}/share", pageHandler.Share).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}/delete", pageHandler.Delete).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/doctors", doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialties", doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors/cities", doctorHandler.GetCities).Methods(http.MethodGet)
	api.HandleFunc("/doctors/lookup", doctorHandler.LookupDoctors).Methods(http.MethodGet)
	api.HandleFunc("/appointments", appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/share", appointmentHandler.ShareAppointment).Methods(http.MethodPost)

	return &testEnv{router: r, clipboard: clip, dashboard: dashboard}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    json.RawMessage `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

var errNoClipboard = errors.New("no clipboard")
