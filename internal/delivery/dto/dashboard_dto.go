package dto

// DashboardView is everything the dashboard page renders in one request.
type DashboardView struct {
	Form         FormView
	List         ListView
	Confirmation string
	Notice       string
}

type FormView struct {
	Editing       bool
	EditingID     string
	PatientName   string
	Specialty     string
	City          string
	DoctorID      int
	Date          string
	Time          string
	MinDate       string
	Specialties   []string
	Cities        []string
	Candidates    []DoctorResponse
	Loading       bool
	DoctorBlocked bool
}

type ListView struct {
	Appointments   []AppointmentResponse
	Doctors        []DoctorResponse
	SearchTerm     string
	DoctorFilter   string
	SortOrder      string
	CurrentPage    int
	TotalPages     int
	Pages          []int
	PrevPage       int // 0 on the first page
	NextPage       int // 0 on the last page
	ShowEmptyState bool
	ShowPagination bool
}
