package converter

import (
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/dto"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/lotfi-dotcom/artztTerminapp/internal/service"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientName: appointment.PatientName,
		Doctor:      *DoctorToResponse(&appointment.Doctor),
		Date:        appointment.Date,
		Time:        appointment.Time,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// PageToListResponse converts one page of the query pipeline to AppointmentListResponse DTO
func PageToListResponse(page service.Page) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments:   AppointmentsToResponses(page.Items),
		Total:          page.Total,
		Page:           page.Page,
		TotalPages:     page.TotalPages,
		ShowEmptyState: page.ShowEmptyState(),
		ShowPagination: page.ShowPagination(),
	}
}

// AppointmentRequestToEntity builds the stored record with an embedded doctor snapshot.
func AppointmentRequestToEntity(id string, req *dto.AppointmentRequest, doctor entity.Doctor) *entity.Appointment {
	return &entity.Appointment{
		ID:          id,
		PatientName: req.PatientName,
		Doctor:      doctor,
		Date:        req.Date,
		Time:        req.Time,
	}
}
