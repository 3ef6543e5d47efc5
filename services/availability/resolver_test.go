package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"mediq/models"
	"mediq/utils"
)

// -- Fakes --

type fakeScheduleRepo struct {
	mu      sync.Mutex
	entries map[string]*models.ScheduleEntry // keyed doctorID|date
	reads   int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{entries: make(map[string]*models.ScheduleEntry)}
}

func (f *fakeScheduleRepo) put(entry *models.ScheduleEntry) {
	f.entries[entry.DoctorID+"|"+entry.Date] = entry
}

func (f *fakeScheduleRepo) CreateDay(_ context.Context, entry *models.ScheduleEntry) error {
	key := entry.DoctorID + "|" + entry.Date
	if _, ok := f.entries[key]; ok {
		return utils.NewConflictError("schedule already exists for doctor %s on %s", entry.DoctorID, entry.Date)
	}
	f.entries[key] = entry
	return nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, entryID string) (*models.ScheduleEntry, error) {
	for _, e := range f.entries {
		if e.ID == entryID {
			return e, nil
		}
	}
	return nil, utils.NewNotFoundError("schedule entry %s", entryID)
}

func (f *fakeScheduleRepo) GetByDoctor(_ context.Context, doctorID string) ([]models.ScheduleEntry, error) {
	var out []models.ScheduleEntry
	for _, e := range f.entries {
		if e.DoctorID == doctorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetByDoctorAndDate(_ context.Context, doctorID, date string) (*models.ScheduleEntry, error) {
	f.mu.Lock()
	f.reads++
	f.mu.Unlock()
	entry, ok := f.entries[doctorID+"|"+date]
	if !ok {
		return nil, utils.NewNotFoundError("no schedule for doctor %s on %s", doctorID, date)
	}
	return entry, nil
}

func (f *fakeScheduleRepo) GetBySlotID(_ context.Context, slotID string) (*models.ScheduleEntry, error) {
	for _, e := range f.entries {
		for _, slot := range e.TimeSlots {
			if slot.ID == slotID {
				return e, nil
			}
		}
	}
	return nil, utils.NewNotFoundError("slot %s", slotID)
}

func (f *fakeScheduleRepo) DeleteDay(_ context.Context, entryID string, force bool) (*models.ScheduleEntry, error) {
	for key, e := range f.entries {
		if e.ID == entryID {
			if !force && e.BookedSlotCount() > 0 {
				return nil, utils.NewConflictError("cannot delete a day with active bookings")
			}
			delete(f.entries, key)
			return e, nil
		}
	}
	return nil, utils.NewNotFoundError("schedule entry %s", entryID)
}

func (f *fakeScheduleRepo) SetSlotBooked(_ context.Context, slotID string, booked bool) (*models.ScheduleEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		for i, slot := range e.TimeSlots {
			if slot.ID == slotID {
				if slot.IsBooked == booked {
					return nil, utils.NewConflictError("slot %s is no longer available", slotID)
				}
				e.TimeSlots[i].IsBooked = booked
				return e, nil
			}
		}
	}
	return nil, utils.NewNotFoundError("slot %s", slotID)
}

func (f *fakeScheduleRepo) EnsureIndexes() error { return nil }

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func newFakeDoctorRepo(doctors ...*models.Doctor) *fakeDoctorRepo {
	f := &fakeDoctorRepo{doctors: make(map[string]*models.Doctor)}
	for _, d := range doctors {
		f.doctors[d.ID] = d
	}
	return f
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, utils.NewNotFoundError("doctor %s", id)
	}
	return d, nil
}

func (f *fakeDoctorRepo) GetBySpecialty(_ context.Context, specialtyID string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.doctors {
		if d.SpecialtyID == specialtyID && d.Active {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) EnsureIndexes() error { return nil }

type memoryCache struct {
	mu          sync.Mutex
	data        map[string]string
	sets        int
	invalidated []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", utils.ErrCacheMiss
	}
	return val, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
		m.invalidated = append(m.invalidated, key)
	}
	return nil
}

// -- helpers --

func entryWith(doctorID, date string, slots ...models.SlotInstance) *models.ScheduleEntry {
	return &models.ScheduleEntry{
		ID:        "entry-" + doctorID + "-" + date,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlots: slots,
	}
}

func newService(repo *fakeScheduleRepo, doctors *fakeDoctorRepo, cache utils.Cache) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Schedules: repo,
		Doctors:   doctors,
		Cache:     cache,
		CacheTTL:  time.Minute,
	}
}

// -- Single-doctor resolver --

func TestGetAvailableNoSchedule(t *testing.T) {
	svc := newService(newFakeScheduleRepo(), newFakeDoctorRepo(), nil)

	slots, err := svc.GetAvailable(context.Background(), "doc2", "2025-06-01", models.ShiftMorning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty result for unpublished day, got %d slots", len(slots))
	}
}

func TestGetAvailableFiltersBookedAndShift(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(entryWith("doc1", "2025-06-01",
		models.SlotInstance{ID: "s1", StartTime: "08:00", EndTime: "08:30"},
		models.SlotInstance{ID: "s2", StartTime: "08:30", EndTime: "09:00", IsBooked: true},
		models.SlotInstance{ID: "s3", StartTime: "09:00", EndTime: "09:30"},
		models.SlotInstance{ID: "s4", StartTime: "13:00", EndTime: "13:30"},
	))
	svc := newService(repo, newFakeDoctorRepo(), nil)

	slots, err := svc.GetAvailable(context.Background(), "doc1", "2025-06-01", models.ShiftMorning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 free morning slots, got %d", len(slots))
	}
	if slots[0].StartTime != "08:00" || slots[1].StartTime != "09:00" {
		t.Errorf("unexpected slots: %+v", slots)
	}
	for _, slot := range slots {
		if slot.IsBooked {
			t.Errorf("booked slot %s leaked into availability", slot.ID)
		}
	}
}

func TestGetAvailableWholeDayWhenShiftEmpty(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(entryWith("doc1", "2025-06-01",
		models.SlotInstance{ID: "s1", StartTime: "08:00", EndTime: "08:30"},
		models.SlotInstance{ID: "s2", StartTime: "13:00", EndTime: "13:30"},
	))
	svc := newService(repo, newFakeDoctorRepo(), nil)

	slots, err := svc.GetAvailable(context.Background(), "doc1", "2025-06-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected both shifts, got %d slots", len(slots))
	}
}

func TestGetAvailableValidation(t *testing.T) {
	svc := newService(newFakeScheduleRepo(), newFakeDoctorRepo(), nil)

	if _, err := svc.GetAvailable(context.Background(), "doc1", "01-06-2025", ""); !utils.IsValidation(err) {
		t.Errorf("expected validation error for malformed date, got %v", err)
	}
	if _, err := svc.GetAvailable(context.Background(), "doc1", "2025-06-01", "evening"); !utils.IsValidation(err) {
		t.Errorf("expected validation error for unknown shift, got %v", err)
	}
}

func TestGetAvailableReadThroughCache(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(entryWith("doc1", "2025-06-01",
		models.SlotInstance{ID: "s1", StartTime: "08:00", EndTime: "08:30"},
	))
	cache := newMemoryCache()
	svc := newService(repo, newFakeDoctorRepo(), cache)

	ctx := context.Background()
	if _, err := svc.GetAvailable(ctx, "doc1", "2025-06-01", models.ShiftMorning); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.sets)
	}

	if _, err := svc.GetAvailable(ctx, "doc1", "2025-06-01", models.ShiftMorning); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.reads != 1 {
		t.Fatalf("expected second read to come from cache, store was hit %d times", repo.reads)
	}
}

func TestInvalidateDayDropsCachedViews(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(entryWith("doc1", "2025-06-01",
		models.SlotInstance{ID: "s1", StartTime: "08:00", EndTime: "08:30"},
	))
	cache := newMemoryCache()
	svc := newService(repo, newFakeDoctorRepo(), cache)

	ctx := context.Background()
	if _, err := svc.GetAvailable(ctx, "doc1", "2025-06-01", models.ShiftMorning); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := InvalidateDay(ctx, cache, "doc1", "cardiology", "2025-06-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetAvailable(ctx, "doc1", "2025-06-01", models.ShiftMorning); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.reads != 2 {
		t.Fatalf("expected store hit after invalidation, reads = %d", repo.reads)
	}
}
