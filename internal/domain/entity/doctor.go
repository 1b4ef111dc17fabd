package entity

// Doctor is a read-only entry of the doctor directory. Appointments embed a
// copy of it, so later directory changes never alter existing bookings.
type Doctor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	City      string `json:"city"`
}

// Matches reports whether the doctor practises the given specialty in the given city.
func (d Doctor) Matches(specialty, city string) bool {
	return d.Specialty == specialty && d.City == city
}
