package dto

// Request DTOs

type DoctorLookupQuery struct {
	Specialty string `validate:"required"`
	City      string `validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	City      string `json:"city"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type ValueListResponse struct {
	Values []string `json:"values"`
	Total  int      `json:"total"`
}
