package handler

import (
	"net/http"

	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/dto"
	"github.com/lotfi-dotcom/artztTerminapp/internal/usecase"
	"github.com/lotfi-dotcom/artztTerminapp/pkg/response"
	"github.com/lotfi-dotcom/artztTerminapp/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors := h.doctorUsecase.GetAllDoctors(r.Context())
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := h.doctorUsecase.GetSpecialties(r.Context())
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities := h.doctorUsecase.GetCities(r.Context())
	response.Success(w, http.StatusOK, "Cities retrieved successfully", cities)
}

// LookupDoctors handles GET /doctors/lookup?specialty=&city=
func (h *DoctorHandler) LookupDoctors(w http.ResponseWriter, r *http.Request) {
	query := dto.DoctorLookupQuery{
		Specialty: r.URL.Query().Get("specialty"),
		City:      r.URL.Query().Get("city"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors := h.doctorUsecase.LookupDoctors(r.Context(), query.Specialty, query.City)
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
