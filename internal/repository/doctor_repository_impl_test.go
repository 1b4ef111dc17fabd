package repository

import (
	"testing"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository_SeededDirectory(t *testing.T) {
	repo := NewDoctorRepository()

	assert.Len(t, repo.FindAll(), 12)
	assert.Equal(t, []string{"Allgemeinmedizin", "Zahnarzt", "Augenarzt", "Orthopäde"}, repo.Specialties())
	assert.Equal(t, []string{"Berlin", "Hamburg", "München", "Köln"}, repo.Cities())
}

func TestDoctorRepository_FindByID(t *testing.T) {
	repo := NewDoctorRepository()

	doctor, ok := repo.FindByID(6)
	require.True(t, ok)
	assert.Equal(t, "Dr. med. Michael Koch", doctor.Name)

	_, ok = repo.FindByID(99)
	assert.False(t, ok)
}

func TestDoctorRepository_FindBySpecialtyAndCity(t *testing.T) {
	repo := NewStaticDoctorRepository([]entity.Doctor{
		{ID: 1, Name: "A", Specialty: "X", City: "Berlin"},
		{ID: 2, Name: "B", Specialty: "X", City: "Berlin"},
		{ID: 3, Name: "C", Specialty: "Y", City: "Berlin"},
		{ID: 4, Name: "D", Specialty: "X", City: "Köln"},
	})

	doctors := repo.FindBySpecialtyAndCity("X", "Berlin")
	require.Len(t, doctors, 2)
	assert.Equal(t, "A", doctors[0].Name)
	assert.Equal(t, "B", doctors[1].Name)

	assert.Empty(t, repo.FindBySpecialtyAndCity("Y", "Köln"))
}

func TestDoctorRepository_ReturnsCopies(t *testing.T) {
	repo := NewDoctorRepository()

	all := repo.FindAll()
	all[0].Name = "changed"
	specialties := repo.Specialties()
	specialties[0] = "changed"

	assert.Equal(t, "Dr. med. Anke Müller", repo.FindAll()[0].Name)
	assert.Equal(t, "Allgemeinmedizin", repo.Specialties()[0])
}
