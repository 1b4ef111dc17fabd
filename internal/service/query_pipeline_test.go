package service

import (
	"fmt"
	"testing"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	drMueller = entity.Doctor{ID: 1, Name: "Dr. med. Anke Müller", Specialty: "Allgemeinmedizin", City: "Berlin"}
	drSchmidt = entity.Doctor{ID: 2, Name: "Dr. med. dent. Peter Schmidt", Specialty: "Zahnarzt", City: "Berlin"}
)

func appointment(id, patient string, doctor entity.Doctor, date, clock string) entity.Appointment {
	return entity.Appointment{ID: id, PatientName: patient, Doctor: doctor, Date: date, Time: clock}
}

func ids(appointments []entity.Appointment) []string {
	out := make([]string, len(appointments))
	for i, a := range appointments {
		out[i] = a.ID
	}
	return out
}

func TestFilterAndSort_DoctorFilterExactName(t *testing.T) {
	appointments := []entity.Appointment{
		appointment("1", "Anna", drMueller, "2030-01-02", "10:00"),
		appointment("2", "Bernd", drSchmidt, "2030-01-01", "10:00"),
	}

	got := FilterAndSort(appointments, entity.AppointmentQuery{DoctorFilter: drSchmidt.Name})
	assert.Equal(t, []string{"2"}, ids(got))

	got = FilterAndSort(appointments, entity.AppointmentQuery{DoctorFilter: "Dr. med. dent."})
	assert.Empty(t, got)
}

func TestFilterAndSort_SearchIsCaseInsensitiveOnPatientOnly(t *testing.T) {
	appointments := []entity.Appointment{
		appointment("1", "Anna Schmidt", drMueller, "2030-01-01", "10:00"),
		appointment("2", "Bernd Bauer", drSchmidt, "2030-01-02", "10:00"),
		appointment("3", "", drMueller, "2030-01-03", "10:00"),
	}

	assert.Equal(t, []string{"1"}, ids(FilterAndSort(appointments, entity.AppointmentQuery{SearchTerm: "SCHMIDT"})))
	assert.Equal(t, []string{"1", "2"}, ids(FilterAndSort(appointments, entity.AppointmentQuery{})))
	assert.Empty(t, FilterAndSort(appointments, entity.AppointmentQuery{SearchTerm: "peter"}))
}

func TestFilterAndSort_SortsByDateAndTime(t *testing.T) {
	appointments := []entity.Appointment{
		appointment("late", "A", drMueller, "2030-03-01", "08:00"),
		appointment("early", "B", drMueller, "2030-01-01", "17:45"),
		appointment("mid-morning", "C", drMueller, "2030-02-01", "09:00"),
		appointment("mid-noon", "D", drMueller, "2030-02-01", "12:00"),
	}

	asc := FilterAndSort(appointments, entity.AppointmentQuery{Sort: entity.SortAscending})
	assert.Equal(t, []string{"early", "mid-morning", "mid-noon", "late"}, ids(asc))

	desc := FilterAndSort(appointments, entity.AppointmentQuery{Sort: entity.SortDescending})
	assert.Equal(t, []string{"late", "mid-noon", "mid-morning", "early"}, ids(desc))
}

func TestFilterAndSort_StableForEqualDateTime(t *testing.T) {
	appointments := []entity.Appointment{
		appointment("first", "A", drMueller, "2030-01-01", "10:00"),
		appointment("other", "B", drMueller, "2029-01-01", "10:00"),
		appointment("second", "C", drSchmidt, "2030-01-01", "10:00"),
		appointment("third", "D", drMueller, "2030-01-01", "10:00"),
	}

	asc := FilterAndSort(appointments, entity.AppointmentQuery{Sort: entity.SortAscending})
	assert.Equal(t, []string{"other", "first", "second", "third"}, ids(asc))

	desc := FilterAndSort(appointments, entity.AppointmentQuery{Sort: entity.SortDescending})
	assert.Equal(t, []string{"first", "second", "third", "other"}, ids(desc))
}

func TestFilterAndSort_IdempotentAndDoesNotMutateInput(t *testing.T) {
	appointments := []entity.Appointment{
		appointment("b", "B", drMueller, "2030-02-01", "10:00"),
		appointment("a", "A", drMueller, "2030-01-01", "10:00"),
	}
	query := entity.AppointmentQuery{Sort: entity.SortAscending}

	first := FilterAndSort(appointments, query)
	second := FilterAndSort(appointments, query)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"b", "a"}, ids(appointments))
}

func TestRunQuery_SevenAppointmentsTwoPages(t *testing.T) {
	var appointments []entity.Appointment
	for i := 7; i >= 1; i-- {
		appointments = append(appointments, appointment(fmt.Sprint(i), "Patient", drMueller, fmt.Sprintf("2030-01-%02d", i), "10:00"))
	}

	page1 := RunQuery(appointments, entity.AppointmentQuery{Sort: entity.SortAscending, Page: 1})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(page1.Items))
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 7, page1.Total)
	assert.True(t, page1.ShowPagination())

	page2 := RunQuery(appointments, entity.AppointmentQuery{Sort: entity.SortAscending, Page: 2})
	assert.Equal(t, []string{"7"}, ids(page2.Items))
	assert.Equal(t, 2, page2.TotalPages)
}

func TestPaginate_PagesConcatenateToWholeSequence(t *testing.T) {
	for n := 0; n <= 20; n++ {
		var items []entity.Appointment
		for i := 0; i < n; i++ {
			items = append(items, appointment(fmt.Sprint(i), "P", drMueller, "2030-01-01", "10:00"))
		}

		first := Paginate(items, 1, entity.PageSize)
		require.Equal(t, (n+entity.PageSize-1)/entity.PageSize, first.TotalPages, "n=%d", n)

		var all []entity.Appointment
		for p := 1; p <= first.TotalPages; p++ {
			all = append(all, Paginate(items, p, entity.PageSize).Items...)
		}
		assert.Equal(t, ids(items), ids(all), "n=%d", n)
	}
}

func TestPaginate_EdgeCases(t *testing.T) {
	empty := Paginate(nil, 1, entity.PageSize)
	assert.Equal(t, 0, empty.TotalPages)
	assert.True(t, empty.ShowEmptyState())
	assert.False(t, empty.ShowPagination())

	items := []entity.Appointment{appointment("1", "P", drMueller, "2030-01-01", "10:00")}

	beyond := Paginate(items, 3, entity.PageSize)
	assert.Empty(t, beyond.Items)
	assert.False(t, beyond.ShowEmptyState())

	belowOne := Paginate(items, 0, entity.PageSize)
	assert.Equal(t, 1, belowOne.Page)
	assert.Len(t, belowOne.Items, 1)
	assert.False(t, belowOne.ShowPagination())
}
