package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/internal/converter"
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/dto"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"
	"github.com/lotfi-dotcom/artztTerminapp/internal/service"

	"github.com/sirupsen/logrus"
)

// Blocking notices shown to the user.
const (
	NoticeIncompleteDraft   = "Bitte füllen Sie alle Felder aus."
	NoticeAppointmentInPast = "Termine können nicht in der Vergangenheit angelegt werden."
	NoticeInvalidDateTime   = "Bitte geben Sie ein gültiges Datum und eine gültige Uhrzeit ein."
	NoticeChooseDoctor      = "Bitte wählen Sie einen Arzt aus der Liste."
	NoticeNotFound          = "Termin nicht gefunden."
	NoticeSaveFailed        = "Der Termin konnte nicht gespeichert werden."
)

// DashboardUsecase is the state of the single user's dashboard: the form
// draft with its doctor selection, the list controls and a pending notice.
type DashboardUsecase interface {
	View(ctx context.Context) *dto.DashboardView
	SetSearchTerm(term string)
	SetDoctorFilter(doctorName string)
	SetSortOrder(order string)
	ApplyListControls(term, doctorName, order string)
	SetPage(ctx context.Context, page int)
	UpdateDraft(patientName, date, clock string)
	ChooseSpecialty(specialty string)
	ChooseCity(city string)
	ChooseDoctor(doctorID int) error
	Submit(ctx context.Context) error
	Cancel()
	Edit(id string) error
	OpenDeepLink(id string) error
	Share(ctx context.Context, id string) (*dto.ShareResponse, error)
	Delete(ctx context.Context, id string) error
	TakeNotice() string
	Close()
}

type formDraft struct {
	PatientName string
	Date        string
	Time        string
}

type dashboardUsecase struct {
	log                *logrus.Logger
	appointmentUsecase AppointmentUsecase
	appointmentRepo    repository.AppointmentRepository
	doctorRepo         repository.DoctorRepository
	selection          *service.SelectionService
	confirmation       *service.ConfirmationService
	now                func() time.Time

	mu        sync.Mutex
	query     entity.AppointmentQuery
	draft     formDraft
	editingID string
	notice    string
}

func NewDashboardUsecase(
	log *logrus.Logger,
	appointmentUsecase AppointmentUsecase,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	selection *service.SelectionService,
	confirmation *service.ConfirmationService,
) DashboardUsecase {
	return &dashboardUsecase{
		log:                log,
		appointmentUsecase: appointmentUsecase,
		appointmentRepo:    appointmentRepo,
		doctorRepo:         doctorRepo,
		selection:          selection,
		confirmation:       confirmation,
		now:                time.Now,
		query:              entity.AppointmentQuery{Sort: entity.SortAscending, Page: 1},
	}
}

// View renders the current state. A pending notice is delivered once.
func (u *dashboardUsecase) View(ctx context.Context) *dto.DashboardView {
	u.mu.Lock()
	defer u.mu.Unlock()

	selection := u.selection.Snapshot()
	list := u.appointmentUsecase.ListAppointments(ctx, u.query)
	// Deletions can leave the current page past the end.
	if list.TotalPages > 0 && u.query.Page > list.TotalPages {
		u.query.Page = list.TotalPages
		list = u.appointmentUsecase.ListAppointments(ctx, u.query)
	}

	pages := make([]int, list.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	var prevPage, nextPage int
	if u.query.Page > 1 {
		prevPage = u.query.Page - 1
	}
	if u.query.Page < list.TotalPages {
		nextPage = u.query.Page + 1
	}

	view := &dto.DashboardView{
		Form: dto.FormView{
			Editing:       u.editingID != "",
			EditingID:     u.editingID,
			PatientName:   u.draft.PatientName,
			Specialty:     selection.Specialty,
			City:          selection.City,
			DoctorID:      selection.DoctorID,
			Date:          u.draft.Date,
			Time:          u.draft.Time,
			MinDate:       u.now().Format(entity.DateLayout),
			Specialties:   u.doctorRepo.Specialties(),
			Cities:        u.doctorRepo.Cities(),
			Candidates:    converter.DoctorsToResponses(selection.Candidates),
			Loading:       selection.Loading,
			DoctorBlocked: selection.DoctorSelectDisabled,
		},
		List: dto.ListView{
			Appointments:   list.Appointments,
			Doctors:        converter.DoctorsToResponses(u.doctorRepo.FindAll()),
			SearchTerm:     u.query.SearchTerm,
			DoctorFilter:   u.query.DoctorFilter,
			SortOrder:      string(u.query.Sort),
			CurrentPage:    u.query.Page,
			TotalPages:     list.TotalPages,
			Pages:          pages,
			PrevPage:       prevPage,
			NextPage:       nextPage,
			ShowEmptyState: list.ShowEmptyState,
			ShowPagination: list.ShowPagination,
		},
		Confirmation: u.confirmation.Current(),
		Notice:       u.notice,
	}
	u.notice = ""
	return view
}

func (u *dashboardUsecase) SetSearchTerm(term string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if term != u.query.SearchTerm {
		u.query.SearchTerm = term
		u.query.Page = 1
	}
}

func (u *dashboardUsecase) SetDoctorFilter(doctorName string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if doctorName != u.query.DoctorFilter {
		u.query.DoctorFilter = doctorName
		u.query.Page = 1
	}
}

func (u *dashboardUsecase) SetSortOrder(order string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sort := entity.NormalizeSortOrder(order)
	if sort != u.query.Sort {
		u.query.Sort = sort
		u.query.Page = 1
	}
}

// ApplyListControls sets all list controls at once, as submitted by the list form.
func (u *dashboardUsecase) ApplyListControls(term, doctorName, order string) {
	u.SetSearchTerm(term)
	u.SetDoctorFilter(doctorName)
	u.SetSortOrder(order)
}

// SetPage moves to a page, clamped to the pages that exist.
func (u *dashboardUsecase) SetPage(ctx context.Context, page int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	list := u.appointmentUsecase.ListAppointments(ctx, u.query)
	if page > list.TotalPages {
		page = list.TotalPages
	}
	if page < 1 {
		page = 1
	}
	u.query.Page = page
}

func (u *dashboardUsecase) UpdateDraft(patientName, date, clock string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.draft = formDraft{PatientName: patientName, Date: date, Time: clock}
}

func (u *dashboardUsecase) ChooseSpecialty(specialty string) {
	u.selection.ChooseSpecialty(specialty)
}

func (u *dashboardUsecase) ChooseCity(city string) {
	u.selection.ChooseCity(city)
}

func (u *dashboardUsecase) ChooseDoctor(doctorID int) error {
	if err := u.selection.ChooseDoctor(doctorID); err != nil {
		u.setNotice(NoticeChooseDoctor)
		return err
	}
	return nil
}

// Submit creates or, in editing mode, updates the appointment from the
// draft. On success the form is reset; on failure a notice is raised and
// nothing changes.
func (u *dashboardUsecase) Submit(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	selection := u.selection.Snapshot()
	req := &dto.AppointmentRequest{
		PatientName: u.draft.PatientName,
		Specialty:   selection.Specialty,
		City:        selection.City,
		DoctorID:    selection.DoctorID,
		Date:        u.draft.Date,
		Time:        u.draft.Time,
	}

	var err error
	if u.editingID != "" {
		_, err = u.appointmentUsecase.UpdateAppointment(ctx, u.editingID, req)
	} else {
		_, err = u.appointmentUsecase.CreateAppointment(ctx, req)
	}
	if err != nil {
		u.notice = noticeFor(err)
		return err
	}

	u.resetForm()
	return nil
}

func (u *dashboardUsecase) Cancel() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resetForm()
}

// Edit seeds the form from an existing appointment.
func (u *dashboardUsecase) Edit(id string) error {
	appointment, ok := u.appointmentRepo.FindByID(id)
	if !ok {
		u.setNotice(NoticeNotFound)
		return ErrAppointmentNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.editingID = appointment.ID
	u.draft = formDraft{
		PatientName: appointment.PatientName,
		Date:        appointment.Date,
		Time:        appointment.Time,
	}
	u.selection.BeginEdit(appointment.Doctor)
	u.log.Debugf("Editing appointment %s", appointment.ID)
	return nil
}

// OpenDeepLink resolves a shared link. A miss raises the "not found" notice
// and leaves the collection and the form untouched.
func (u *dashboardUsecase) OpenDeepLink(id string) error {
	if err := u.Edit(id); err != nil {
		u.log.Infof("Deep link to unknown appointment %q", id)
		return err
	}
	return nil
}

// Share copies the deep link. When copying fails the link is raised as a
// notice for manual copying.
func (u *dashboardUsecase) Share(ctx context.Context, id string) (*dto.ShareResponse, error) {
	resp, err := u.appointmentUsecase.ShareAppointment(ctx, id)
	if err != nil {
		u.setNotice(noticeFor(err))
		return nil, err
	}
	if !resp.Copied {
		u.setNotice(resp.Message)
	}
	return resp, nil
}

// Delete removes the appointment and leaves editing mode if it was being edited.
func (u *dashboardUsecase) Delete(ctx context.Context, id string) error {
	if err := u.appointmentUsecase.DeleteAppointment(ctx, id); err != nil {
		u.setNotice(NoticeSaveFailed)
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.editingID == id {
		u.resetForm()
	}
	return nil
}

// TakeNotice returns the pending notice and clears it.
func (u *dashboardUsecase) TakeNotice() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	notice := u.notice
	u.notice = ""
	return notice
}

// Close stops pending timers.
func (u *dashboardUsecase) Close() {
	u.selection.Stop()
	u.confirmation.Clear()
}

func (u *dashboardUsecase) setNotice(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.notice = message
}

// Caller must hold u.mu.
func (u *dashboardUsecase) resetForm() {
	u.draft = formDraft{}
	u.editingID = ""
	u.selection.Reset()
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteDraft):
		return NoticeIncompleteDraft
	case errors.Is(err, ErrAppointmentInPast):
		return NoticeAppointmentInPast
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTime):
		return NoticeInvalidDateTime
	case errors.Is(err, ErrDoctorNotFound), errors.Is(err, ErrDoctorMismatch), errors.Is(err, service.ErrDoctorNotCandidate):
		return NoticeChooseDoctor
	case errors.Is(err, ErrAppointmentNotFound):
		return NoticeNotFound
	default:
		return NoticeSaveFailed
	}
}
