package entity

// SortOrder orders appointments by their date and time.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// PageSize is the number of appointments shown per list page.
const PageSize = 6

// AppointmentQuery is a domain-level description of the appointment list view.
// Used by the query pipeline to avoid coupling with delivery DTOs.
type AppointmentQuery struct {
	SearchTerm   string    // Case-insensitive substring of the patient name
	DoctorFilter string    // Exact doctor name, empty means no filter
	Sort         SortOrder // asc or desc
	Page         int       // 1-based
}

// NormalizeSortOrder maps anything but "desc" to ascending order.
func NormalizeSortOrder(s string) SortOrder {
	if SortOrder(s) == SortDescending {
		return SortDescending
	}
	return SortAscending
}
