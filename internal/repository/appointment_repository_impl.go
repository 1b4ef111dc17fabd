package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	domainRepo "github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// appointmentRepository holds the session's source of truth in memory. The
// storage slot always mirrors the collection: a failed write rolls back the
// in-memory change.
type appointmentRepository struct {
	mu           sync.RWMutex
	slots        domainRepo.SlotStore
	key          string
	log          *logrus.Logger
	appointments []entity.Appointment
}

func NewAppointmentRepository(slots domainRepo.SlotStore, key string, log *logrus.Logger) domainRepo.AppointmentRepository {
	return &appointmentRepository{
		slots:        slots,
		key:          key,
		log:          log,
		appointments: []entity.Appointment{},
	}
}

// Load replaces the in-memory collection with the persisted one. An absent
// or malformed slot yields an empty collection.
func (r *appointmentRepository) Load(ctx context.Context) error {
	raw, found, err := r.slots.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("load appointments: %w", err)
	}

	appointments := []entity.Appointment{}
	if found {
		if err := json.Unmarshal(raw, &appointments); err != nil {
			r.log.Warnf("Malformed appointments in slot %q, starting empty: %+v", r.key, err)
			appointments = []entity.Appointment{}
		}
		if appointments == nil {
			appointments = []entity.Appointment{}
		}
	}

	r.mu.Lock()
	r.appointments = appointments
	r.mu.Unlock()

	r.log.Infof("Loaded %d appointments from slot %q", len(appointments), r.key)
	return nil
}

func (r *appointmentRepository) FindAll() []entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Appointment{}, r.appointments...)
}

func (r *appointmentRepository) FindByID(id string) (*entity.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, appointment := range r.appointments {
		if appointment.ID == id {
			a := appointment
			return &a, true
		}
	}
	return nil, false
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]entity.Appointment(nil), r.appointments...), *appointment)
	return r.commit(ctx, next)
}

// Update replaces every field but the identifier. It reports false and
// leaves the collection untouched when no appointment has that identifier.
func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOf(appointment.ID)
	if index < 0 {
		return false, nil
	}

	next := append([]entity.Appointment(nil), r.appointments...)
	next[index] = *appointment
	if err := r.commit(ctx, next); err != nil {
		return true, err
	}
	return true, nil
}

// Delete removes the appointment if present; an unknown identifier is not an error.
func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]entity.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		if appointment.ID != id {
			next = append(next, appointment)
		}
	}
	return r.commit(ctx, next)
}

// commit persists next and only then makes it the in-memory collection.
// Caller must hold r.mu.
func (r *appointmentRepository) commit(ctx context.Context, next []entity.Appointment) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := r.slots.Set(ctx, r.key, raw); err != nil {
		r.log.Warnf("Failed to persist %d appointments: %+v", len(next), err)
		return fmt.Errorf("persist appointments: %w", err)
	}
	r.appointments = next
	return nil
}

func (r *appointmentRepository) indexOf(id string) int {
	for i, appointment := range r.appointments {
		if appointment.ID == id {
			return i
		}
	}
	return -1
}
