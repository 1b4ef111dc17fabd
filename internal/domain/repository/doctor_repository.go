package repository

import "github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"

type DoctorRepository interface {
	FindAll() []entity.Doctor
	FindByID(id int) (*entity.Doctor, bool)
	FindBySpecialtyAndCity(specialty, city string) []entity.Doctor
	Specialties() []string
	Cities() []string
}
