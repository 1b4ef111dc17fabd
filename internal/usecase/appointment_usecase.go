package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/internal/converter"
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/dto"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"
	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/metrics"
	"github.com/lotfi-dotcom/artztTerminapp/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrIncompleteDraft     = errors.New("all appointment fields are required")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime         = errors.New("invalid time format, use HH:MM")
	ErrAppointmentInPast   = errors.New("appointments cannot be created in the past")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorMismatch      = errors.New("doctor does not match the selected specialty and city")
)

const (
	ConfirmationCreated    = "Termin erfolgreich hinzugefügt!"
	ConfirmationUpdated    = "Termin erfolgreich aktualisiert!"
	ConfirmationLinkCopied = "Link in die Zwischenablage kopiert!"
	NoticeCopyManually     = "Link konnte nicht automatisch kopiert werden. Bitte manuell kopieren: "
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) error
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query entity.AppointmentQuery) *dto.AppointmentListResponse
	ShareAppointment(ctx context.Context, id string) (*dto.ShareResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	confirmation    *service.ConfirmationService
	share           *service.ShareService
	metrics         *metrics.BookingMetrics
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	confirmation *service.ConfirmationService,
	share *service.ShareService,
	m *metrics.BookingMetrics,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		confirmation:    confirmation,
		share:           share,
		metrics:         m,
		now:             time.Now,
	}
}

// CreateAppointment books a new appointment.
//
// Flow:
// 1. Validate the draft is complete and well-formed
// 2. Reject date+time before the current minute
// 3. Resolve the doctor and embed a snapshot of it
// 4. Assign a fresh identifier and persist the whole collection
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.create(ctx, req)
	u.metrics.ObserveMutation("create", err)
	if err != nil {
		return nil, err
	}

	u.confirmation.Show(ConfirmationCreated)
	u.log.Infof("Appointment created: id=%s, doctor=%d, at=%s %s", appointment.ID, appointment.Doctor.ID, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) create(ctx context.Context, req *dto.AppointmentRequest) (*entity.Appointment, error) {
	scheduledAt, err := validateDraft(req)
	if err != nil {
		return nil, err
	}

	// Seconds are ignored so the current minute is still bookable.
	if scheduledAt.Before(u.now().Truncate(time.Minute)) {
		return nil, ErrAppointmentInPast
	}

	doctor, err := u.resolveDoctor(req)
	if err != nil {
		return nil, err
	}

	appointment := converter.AppointmentRequestToEntity(uuid.NewString(), req, *doctor)
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	return appointment, nil
}

// UpdateAppointment replaces every field except the identifier. Past dates
// are allowed here so existing appointments stay editable.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.update(ctx, id, req)
	u.metrics.ObserveMutation("update", err)
	if err != nil {
		return nil, err
	}

	u.confirmation.Show(ConfirmationUpdated)
	u.log.Infof("Appointment updated: id=%s, doctor=%d, at=%s %s", appointment.ID, appointment.Doctor.ID, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) update(ctx context.Context, id string, req *dto.AppointmentRequest) (*entity.Appointment, error) {
	if _, err := validateDraft(req); err != nil {
		return nil, err
	}

	doctor, err := u.resolveDoctor(req)
	if err != nil {
		return nil, err
	}

	appointment := converter.AppointmentRequestToEntity(id, req, *doctor)
	found, err := u.appointmentRepo.Update(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if !found {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// DeleteAppointment removes the appointment; an unknown id is not an error.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	err := u.appointmentRepo.Delete(ctx, id)
	u.metrics.ObserveMutation("delete", err)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, ok := u.appointmentRepo.FindByID(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

// ListAppointments runs the filter, search, sort and paginate pipeline over
// the current collection.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, query entity.AppointmentQuery) *dto.AppointmentListResponse {
	page := service.RunQuery(u.appointmentRepo.FindAll(), query)
	u.metrics.ObserveQueryResult(page.Total)
	return converter.PageToListResponse(page)
}

// ShareAppointment copies the deep link of an appointment to the clipboard.
// A clipboard failure is not an error: the link comes back with Copied unset
// so the user can copy it by hand.
func (u *appointmentUsecase) ShareAppointment(ctx context.Context, id string) (*dto.ShareResponse, error) {
	if _, ok := u.appointmentRepo.FindByID(id); !ok {
		return nil, ErrAppointmentNotFound
	}

	result, err := u.share.Share(id)
	if err != nil {
		return &dto.ShareResponse{URL: result.URL, Copied: false, Message: NoticeCopyManually + result.URL}, nil
	}

	u.confirmation.Show(ConfirmationLinkCopied)
	return &dto.ShareResponse{URL: result.URL, Copied: true, Message: ConfirmationLinkCopied}, nil
}

func (u *appointmentUsecase) resolveDoctor(req *dto.AppointmentRequest) (*entity.Doctor, error) {
	doctor, ok := u.doctorRepo.FindByID(req.DoctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	if !doctor.Matches(req.Specialty, req.City) {
		return nil, ErrDoctorMismatch
	}
	return doctor, nil
}

// validateDraft checks that every field is filled and that date and time
// parse, returning the combined local date-time.
func validateDraft(req *dto.AppointmentRequest) (time.Time, error) {
	if req == nil || req.PatientName == "" || req.Specialty == "" || req.City == "" ||
		req.DoctorID == 0 || req.Date == "" || req.Time == "" {
		return time.Time{}, ErrIncompleteDraft
	}
	if _, err := time.Parse(entity.DateLayout, req.Date); err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if _, err := time.Parse(entity.TimeLayout, req.Time); err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return entity.ParseDateTime(req.Date, req.Time)
}
