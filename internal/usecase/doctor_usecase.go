package usecase

import (
	"context"

	"github.com/lotfi-dotcom/artztTerminapp/internal/converter"
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/dto"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) *dto.DoctorListResponse
	GetSpecialties(ctx context.Context) *dto.ValueListResponse
	GetCities(ctx context.Context) *dto.ValueListResponse
	LookupDoctors(ctx context.Context, specialty, city string) *dto.DoctorListResponse
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) *dto.DoctorListResponse {
	doctors := u.doctorRepo.FindAll()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

func (u *doctorUsecase) GetSpecialties(ctx context.Context) *dto.ValueListResponse {
	specialties := u.doctorRepo.Specialties()
	return &dto.ValueListResponse{Values: specialties, Total: len(specialties)}
}

func (u *doctorUsecase) GetCities(ctx context.Context) *dto.ValueListResponse {
	cities := u.doctorRepo.Cities()
	return &dto.ValueListResponse{Values: cities, Total: len(cities)}
}

// LookupDoctors returns the doctors of a specialty in a city, in directory order.
func (u *doctorUsecase) LookupDoctors(ctx context.Context, specialty, city string) *dto.DoctorListResponse {
	doctors := u.doctorRepo.FindBySpecialtyAndCity(specialty, city)
	u.log.Debugf("Doctor lookup: specialty=%s, city=%s, found=%d", specialty, city, len(doctors))
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}
