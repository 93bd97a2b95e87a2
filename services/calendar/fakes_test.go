package calendar

import (
	"context"
	"sort"
	"time"

	appointmentRepo "dhara/database/repository/appointment"
	availabilityRepo "dhara/database/repository/availability"
	"dhara/models"
)

type fakeSlotRepo struct {
	slots     []models.AvailabilitySlot
	listCalls int
	err       error
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *models.AvailabilitySlot) error {
	if f.err != nil {
		return f.err
	}
	if slot.ID == "" {
		slot.ID = "generated"
	}
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeSlotRepo) ListByProfessional(_ context.Context, professionalID string) ([]models.AvailabilitySlot, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.AvailabilitySlot{}
	for _, s := range f.slots {
		if s.ProfessionalID == professionalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, professionalID, slotID string) (*models.AvailabilitySlot, error) {
	for _, s := range f.slots {
		if s.ID == slotID && s.ProfessionalID == professionalID {
			s := s
			return &s, nil
		}
	}
	return nil, availabilityRepo.ErrNotFound
}

func (f *fakeSlotRepo) Update(_ context.Context, slot *models.AvailabilitySlot) error {
	for i, s := range f.slots {
		if s.ID == slot.ID && s.ProfessionalID == slot.ProfessionalID {
			f.slots[i] = *slot
			return nil
		}
	}
	return availabilityRepo.ErrNotFound
}

func (f *fakeSlotRepo) Delete(_ context.Context, professionalID, slotID string) error {
	for i, s := range f.slots {
		if s.ID == slotID && s.ProfessionalID == professionalID {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return availabilityRepo.ErrNotFound
}

func (f *fakeSlotRepo) EnsureIndexes(context.Context) error { return nil }

type fakeAppointmentRepo struct {
	appts []models.Appointment
	err   error
}

func (f *fakeAppointmentRepo) ListByProfessional(_ context.Context, professionalID string) ([]models.Appointment, error) {
	return f.ListByProfessionalInRange(context.Background(), professionalID, "0000-00-00", "9999-99-99")
}

func (f *fakeAppointmentRepo) ListByProfessionalInRange(_ context.Context, professionalID, from, to string) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Appointment{}
	for _, a := range f.appts {
		if a.ProfessionalID == professionalID && a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, professionalID, appointmentID string) (*models.Appointment, error) {
	for _, a := range f.appts {
		if a.ID == appointmentID && a.ProfessionalID == professionalID {
			a := a
			return &a, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, professionalID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	for i, a := range f.appts {
		if a.ID == appointmentID && a.ProfessionalID == professionalID {
			f.appts[i].Status = status
			updated := f.appts[i]
			return &updated, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) DistinctProfessionalIDs(_ context.Context, from, to string) ([]string, error) {
	seen := map[string]bool{}
	for _, a := range f.appts {
		if a.Date >= from && a.Date <= to {
			seen[a.ProfessionalID] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeAppointmentRepo) EnsureIndexes(context.Context) error { return nil }

type memoryViewCache struct {
	views       map[string]models.CalendarView
	invalidated []string
}

func newMemoryViewCache() *memoryViewCache {
	return &memoryViewCache{views: map[string]models.CalendarView{}}
}

func (m *memoryViewCache) Get(_ context.Context, key string) (*models.CalendarView, bool, error) {
	v, ok := m.views[key]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (m *memoryViewCache) Set(_ context.Context, key string, view *models.CalendarView, _ time.Duration) error {
	m.views[key] = *view
	return nil
}

func (m *memoryViewCache) InvalidateProfessional(_ context.Context, professionalID string) error {
	m.invalidated = append(m.invalidated, professionalID)
	m.views = map[string]models.CalendarView{}
	return nil
}
