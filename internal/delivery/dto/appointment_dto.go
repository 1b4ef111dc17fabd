package dto

// Request DTOs

// AppointmentRequest is the submitted form draft, for both create and update.
type AppointmentRequest struct {
	PatientName string `json:"patientName" validate:"required"`
	Specialty   string `json:"specialty" validate:"required"`
	City        string `json:"city" validate:"required"`
	DoctorID    int    `json:"doctorId" validate:"required,min=1"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Time        string `json:"time" validate:"required,datetime=15:04"`      // Format: HH:MM
}

type AppointmentListQuery struct {
	Search string `validate:"omitempty"`
	Doctor string `validate:"omitempty"`
	Sort   string `validate:"omitempty,oneof=asc desc"`
	Page   int    `validate:"omitempty,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string         `json:"id"`
	PatientName string         `json:"patientName"`
	Doctor      DoctorResponse `json:"doctor"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
}

type AppointmentListResponse struct {
	Appointments   []AppointmentResponse `json:"appointments"`
	Total          int                   `json:"total"`
	Page           int                   `json:"page"`
	TotalPages     int                   `json:"total_pages"`
	ShowEmptyState bool                  `json:"show_empty_state"`
	ShowPagination bool                  `json:"show_pagination"`
}

type ShareResponse struct {
	URL     string `json:"url"`
	Copied  bool   `json:"copied"`
	Message string `json:"message"`
}
