package repository

import (
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	domainRepo "github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"
)

var seededDoctors = []entity.Doctor{
	{ID: 1, Name: "Dr. med. Anke Müller", Specialty: "Allgemeinmedizin", City: "Berlin"},
	{ID: 2, Name: "Dr. med. dent. Peter Schmidt", Specialty: "Zahnarzt", City: "Berlin"},
	{ID: 3, Name: "Dr. med. Sabine Wagner", Specialty: "Augenarzt", City: "Berlin"},
	{ID: 4, Name: "Dr. med. Klaus Weber", Specialty: "Allgemeinmedizin", City: "Hamburg"},
	{ID: 5, Name: "Dr. med. dent. Julia Becker", Specialty: "Zahnarzt", City: "Hamburg"},
	{ID: 6, Name: "Dr. med. Michael Koch", Specialty: "Orthopäde", City: "Hamburg"},
	{ID: 7, Name: "Dr. med. Andreas Richter", Specialty: "Allgemeinmedizin", City: "München"},
	{ID: 8, Name: "Dr. med. dent. Laura Klein", Specialty: "Zahnarzt", City: "München"},
	{ID: 9, Name: "Dr. med. Thomas Wolf", Specialty: "Augenarzt", City: "München"},
	{ID: 10, Name: "Dr. med. Susanne Neumann", Specialty: "Orthopäde", City: "München"},
	{ID: 11, Name: "Dr. med. Markus Schulz", Specialty: "Allgemeinmedizin", City: "Köln"},
	{ID: 12, Name: "Dr. med. dent. Birgit Lehmann", Specialty: "Zahnarzt", City: "Köln"},
}

type doctorRepository struct {
	doctors     []entity.Doctor
	specialties []string
	cities      []string
}

// NewDoctorRepository returns the built-in doctor directory.
func NewDoctorRepository() domainRepo.DoctorRepository {
	return NewStaticDoctorRepository(seededDoctors)
}

// NewStaticDoctorRepository builds a read-only directory over the given doctors.
func NewStaticDoctorRepository(doctors []entity.Doctor) domainRepo.DoctorRepository {
	r := &doctorRepository{
		doctors: append([]entity.Doctor(nil), doctors...),
	}
	r.specialties = distinct(r.doctors, func(d entity.Doctor) string { return d.Specialty })
	r.cities = distinct(r.doctors, func(d entity.Doctor) string { return d.City })
	return r
}

func (r *doctorRepository) FindAll() []entity.Doctor {
	return append([]entity.Doctor(nil), r.doctors...)
}

func (r *doctorRepository) FindByID(id int) (*entity.Doctor, bool) {
	for _, doctor := range r.doctors {
		if doctor.ID == id {
			d := doctor
			return &d, true
		}
	}
	return nil, false
}

func (r *doctorRepository) FindBySpecialtyAndCity(specialty, city string) []entity.Doctor {
	doctors := []entity.Doctor{}
	for _, doctor := range r.doctors {
		if doctor.Matches(specialty, city) {
			doctors = append(doctors, doctor)
		}
	}
	return doctors
}

func (r *doctorRepository) Specialties() []string {
	return append([]string(nil), r.specialties...)
}

func (r *doctorRepository) Cities() []string {
	return append([]string(nil), r.cities...)
}

// distinct keeps the first occurrence of every value, in source order.
func distinct(doctors []entity.Doctor, value func(entity.Doctor) string) []string {
	seen := make(map[string]struct{}, len(doctors))
	values := []string{}
	for _, doctor := range doctors {
		v := value(doctor)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
