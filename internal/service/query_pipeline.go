package service

import (
	"sort"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
)

// Page is one slice of the filtered and sorted appointment list.
type Page struct {
	Items      []entity.Appointment
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// ShowEmptyState reports whether the list area should show the empty-state message.
func (p Page) ShowEmptyState() bool {
	return len(p.Items) == 0 && p.Page == 1
}

// ShowPagination reports whether pagination controls are rendered at all.
func (p Page) ShowPagination() bool {
	return p.TotalPages > 1
}

// FilterAndSort applies doctor filter, patient search and a stable date/time
// sort. The input slice is never modified.
func FilterAndSort(appointments []entity.Appointment, query entity.AppointmentQuery) []entity.Appointment {
	type keyed struct {
		appointment entity.Appointment
		at          time.Time
	}

	matched := make([]keyed, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		if query.DoctorFilter != "" && a.Doctor.Name != query.DoctorFilter {
			continue
		}
		if !a.MatchesPatient(query.SearchTerm) {
			continue
		}
		// Unparseable values compare as the zero time.
		matched = append(matched, keyed{appointment: *a, at: a.ScheduledAtOrZero()})
	}

	descending := query.Sort == entity.SortDescending
	sort.SliceStable(matched, func(i, j int) bool {
		if descending {
			return matched[i].at.After(matched[j].at)
		}
		return matched[i].at.Before(matched[j].at)
	})

	result := make([]entity.Appointment, len(matched))
	for i, m := range matched {
		result[i] = m.appointment
	}
	return result
}

// Paginate slices items into pages of size entries. Pages below 1 are
// treated as page 1; pages past the end are empty.
func Paginate(items []entity.Appointment, page, size int) Page {
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page{
		Items:      append([]entity.Appointment{}, items[start:end]...),
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// RunQuery is the complete list pipeline: filter, search, sort, paginate.
func RunQuery(appointments []entity.Appointment, query entity.AppointmentQuery) Page {
	return Paginate(FilterAndSort(appointments, query), query.Page, entity.PageSize)
}
