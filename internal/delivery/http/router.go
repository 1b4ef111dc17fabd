package http

import (
	"net/http"

	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/http/handler"
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router             *mux.Router
	pageHandler        *handler.PageHandler
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	gatherer           prometheus.Gatherer
}

func NewRouter(
	pageHandler *handler.PageHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		pageHandler:        pageHandler,
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
		gatherer:           gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.loggingMiddleware.Handle)

	// Dashboard
	r.router.HandleFunc("/", r.pageHandler.Dashboard).Methods(http.MethodGet)
	r.router.HandleFunc("/termin/{id}", r.pageHandler.DeepLink).Methods(http.MethodGet)

	form := r.router.PathPrefix("/form").Subrouter()
	form.HandleFunc("/specialty", r.pageHandler.ChooseSpecialty).Methods(http.MethodPost)
	form.HandleFunc("/city", r.pageHandler.ChooseCity).Methods(http.MethodPost)
	form.HandleFunc("/doctor", r.pageHandler.ChooseDoctor).Methods(http.MethodPost)
	form.HandleFunc("/submit", r.pageHandler.Submit).Methods(http.MethodPost)
	form.HandleFunc("/cancel", r.pageHandler.Cancel).Methods(http.MethodPost)

	r.router.HandleFunc("/list", r.pageHandler.ApplyListControls).Methods(http.MethodPost)
	r.router.HandleFunc("/list/page", r.pageHandler.SetPage).Methods(http.MethodPost)

	r.router.HandleFunc("/appointments/{id}/edit", r.pageHandler.Edit).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments/{id}/share", r.pageHandler.Share).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments/{id}/delete", r.pageHandler.Delete).Methods(http.MethodPost)

	// Metrics
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors/cities", r.doctorHandler.GetCities).Methods(http.MethodGet)
	api.HandleFunc("/doctors/lookup", r.doctorHandler.LookupDoctors).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/share", r.appointmentHandler.ShareAppointment).Methods(http.MethodPost, http.MethodOptions)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
