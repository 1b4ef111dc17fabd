package repository

import (
	"context"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
)

// AppointmentRepository keeps the appointment collection in memory and
// rewrites the whole collection to its storage slot on every mutation.
type AppointmentRepository interface {
	Load(ctx context.Context) error
	FindAll() []entity.Appointment
	FindByID(id string) (*entity.Appointment, bool)
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) (bool, error)
	Delete(ctx context.Context, id string) error
}
