package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/dto"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/lotfi-dotcom/artztTerminapp/internal/usecase"
	"github.com/lotfi-dotcom/artztTerminapp/pkg/response"
	"github.com/lotfi-dotcom/artztTerminapp/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment handles POST /appointments
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, usecase.ConfirmationCreated, appointment)
}

// ListAppointments handles GET /appointments?search=&doctor=&sort=&page=
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.AppointmentListQuery{
		Search: q.Get("search"),
		Doctor: q.Get("doctor"),
		Sort:   q.Get("sort"),
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid page", nil)
			return
		}
		query.Page = page
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list := h.appointmentUsecase.ListAppointments(r.Context(), entity.AppointmentQuery{
		SearchTerm:   query.Search,
		DoctorFilter: query.Doctor,
		Sort:         entity.NormalizeSortOrder(query.Sort),
		Page:         query.Page,
	})

	meta := &response.Meta{
		Page:       list.Page,
		Limit:      entity.PageSize,
		Total:      list.Total,
		TotalPages: list.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", list, meta)
}

// GetAppointment handles GET /appointments/{id}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// UpdateAppointment handles PUT /appointments/{id}
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, usecase.ConfirmationUpdated, appointment)
}

// DeleteAppointment handles DELETE /appointments/{id}. Unknown ids succeed.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

// ShareAppointment handles POST /appointments/{id}/share
func (h *AppointmentHandler) ShareAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	share, err := h.appointmentUsecase.ShareAppointment(r.Context(), id)
	if err != nil {
		writeAppointmentError(w, err, "Failed to share appointment")
		return
	}

	response.Success(w, http.StatusOK, share.Message, share)
}

func writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrIncompleteDraft),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidTime),
		errors.Is(err, usecase.ErrDoctorMismatch):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrAppointmentInPast):
		response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
