package service

import (
	"errors"
	"sync"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"
	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// ErrDoctorNotCandidate is returned when a doctor outside the current candidate list is chosen.
var ErrDoctorNotCandidate = errors.New("doctor is not available for the selected specialty and city")

// SelectionState is the position of the specialty -> city -> doctor cascade.
type SelectionState string

const (
	SelectionEmpty            SelectionState = "empty"
	SelectionSpecialtyChosen  SelectionState = "specialty_chosen"
	SelectionCityChosen       SelectionState = "city_chosen"
	SelectionSpecialtyAndCity SelectionState = "specialty_and_city_chosen"
	SelectionDoctorListLoaded SelectionState = "doctor_list_loaded"
)

// SelectionSnapshot is a consistent copy of the selection for rendering.
type SelectionSnapshot struct {
	State                SelectionState
	Specialty            string
	City                 string
	DoctorID             int // 0 means no doctor chosen
	Candidates           []entity.Doctor
	Loading              bool
	Editing              bool
	DoctorSelectDisabled bool
}

// SelectionService drives the cascading specialty, city and doctor choice of
// the appointment form.
//
// Once specialty and city are both set, the candidate list is looked up
// after a fixed delay. At most one lookup is pending: every new selection
// stops the pending timer and bumps the generation, so a timer that already
// fired for an older (specialty, city) pair is ignored.
type SelectionService struct {
	doctors repository.DoctorRepository
	delay   time.Duration
	log     *logrus.Logger
	metrics *metrics.BookingMetrics

	mu         sync.Mutex
	specialty  string
	city       string
	doctorID   int
	candidates []entity.Doctor
	loaded     bool
	loading    bool
	editing    bool
	pending    *time.Timer
	generation uint64
}

func NewSelectionService(doctors repository.DoctorRepository, delay time.Duration, log *logrus.Logger, m *metrics.BookingMetrics) *SelectionService {
	return &SelectionService{
		doctors: doctors,
		delay:   delay,
		log:     log,
		metrics: m,
	}
}

// ChooseSpecialty sets the specialty and clears any chosen doctor.
func (s *SelectionService) ChooseSpecialty(specialty string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if specialty == s.specialty {
		return
	}
	s.specialty = specialty
	s.reselect()
}

// ChooseCity sets the city and clears any chosen doctor.
func (s *SelectionService) ChooseCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if city == s.city {
		return
	}
	s.city = city
	s.reselect()
}

// ChooseDoctor picks a doctor from the candidate list. Zero clears the choice.
func (s *SelectionService) ChooseDoctor(doctorID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doctorID == 0 {
		s.doctorID = 0
		return nil
	}
	if s.loading {
		return ErrDoctorNotCandidate
	}
	for _, doctor := range s.candidates {
		if doctor.ID == doctorID {
			s.doctorID = doctorID
			return nil
		}
	}
	return ErrDoctorNotCandidate
}

// BeginEdit seeds the selection from an appointment's doctor snapshot. The
// candidate list is derived immediately, without the lookup delay.
func (s *SelectionService) BeginEdit(doctor entity.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPending()
	s.editing = true
	s.specialty = doctor.Specialty
	s.city = doctor.City
	s.candidates = s.doctors.FindBySpecialtyAndCity(doctor.Specialty, doctor.City)
	s.loaded = true
	s.loading = false
	s.doctorID = doctor.ID
	s.metrics.ObserveDoctorLookup("sync")
}

// Reset returns to the empty state and leaves editing mode.
func (s *SelectionService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPending()
	s.specialty = ""
	s.city = ""
	s.doctorID = 0
	s.candidates = nil
	s.loaded = false
	s.loading = false
	s.editing = false
}

// Stop cancels a pending lookup without touching the selection.
func (s *SelectionService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPending()
	s.loading = false
}

func (s *SelectionService) Snapshot() SelectionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SelectionSnapshot{
		State:                s.state(),
		Specialty:            s.specialty,
		City:                 s.city,
		DoctorID:             s.doctorID,
		Candidates:           append([]entity.Doctor{}, s.candidates...),
		Loading:              s.loading,
		Editing:              s.editing,
		DoctorSelectDisabled: s.loading || (len(s.candidates) == 0 && !s.editing),
	}
}

// reselect recomputes the candidates after specialty or city changed.
// Caller must hold s.mu.
func (s *SelectionService) reselect() {
	s.cancelPending()
	s.doctorID = 0
	s.candidates = nil
	s.loaded = false
	s.loading = false

	if s.specialty == "" || s.city == "" {
		return
	}

	if s.editing {
		s.candidates = s.doctors.FindBySpecialtyAndCity(s.specialty, s.city)
		s.loaded = true
		s.metrics.ObserveDoctorLookup("sync")
		return
	}

	s.loading = true
	generation := s.generation
	specialty, city := s.specialty, s.city
	s.pending = time.AfterFunc(s.delay, func() {
		s.finishLookup(generation, specialty, city)
	})
	s.log.Debugf("Doctor lookup scheduled: specialty=%s, city=%s, delay=%v", specialty, city, s.delay)
}

func (s *SelectionService) finishLookup(generation uint64, specialty, city string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || specialty != s.specialty || city != s.city {
		s.metrics.ObserveDoctorLookup("stale")
		return
	}

	s.pending = nil
	s.candidates = s.doctors.FindBySpecialtyAndCity(specialty, city)
	s.loaded = true
	s.loading = false
	s.metrics.ObserveDoctorLookup("loaded")
	s.log.Debugf("Doctor lookup finished: specialty=%s, city=%s, candidates=%d", specialty, city, len(s.candidates))
}

// cancelPending stops the pending lookup and invalidates one that already fired.
// Caller must hold s.mu.
func (s *SelectionService) cancelPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.generation++
}

// Caller must hold s.mu.
func (s *SelectionService) state() SelectionState {
	switch {
	case s.loaded:
		return SelectionDoctorListLoaded
	case s.specialty != "" && s.city != "":
		return SelectionSpecialtyAndCity
	case s.specialty != "":
		return SelectionSpecialtyChosen
	case s.city != "":
		return SelectionCityChosen
	default:
		return SelectionEmpty
	}
}
