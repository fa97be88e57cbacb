package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/persistence"
)

// DefaultUpcomingLimit caps ListUpcoming when the caller passes limit <= 0.
const DefaultUpcomingLimit = 10

// AppointmentStore owns the appointment collection. A patient resolver is
// injected so Add can reject drafts whose patientId points nowhere.
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments []model.Appointment
	adapter      persistence.Adapter
	patientKnown func(patientID string) bool
}

// List returns the full appointment collection in insertion order.
func (s *AppointmentStore) List() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Appointment(nil), s.appointments...)
}

// GetByID returns the appointment with the given id.
func (s *AppointmentStore) GetByID(id string) (model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
}

// ListForPatient returns the appointments referencing patientID, preserving
// their relative order in the collection.
func (s *AppointmentStore) ListForPatient(patientID string) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]model.Appointment, 0)
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			matches = append(matches, a)
		}
	}
	return matches
}

// ListUpcoming returns appointments at or after now that are not Completed,
// ascending by appointmentDate, at most limit entries. Equal timestamps keep
// their original relative order.
func (s *AppointmentStore) ListUpcoming(now time.Time, limit int) []model.Appointment {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	s.mu.RLock()
	upcoming := make([]model.Appointment, 0)
	when := make(map[string]time.Time)
	for _, a := range s.appointments {
		t, err := time.Parse(model.DateTimeLayout, a.AppointmentDate)
		if err != nil || t.Before(now) || a.Status == model.StatusCompleted {
			continue
		}
		upcoming = append(upcoming, a)
		when[a.ID] = t
	}
	s.mu.RUnlock()

	sort.SliceStable(upcoming, func(i, j int) bool {
		return when[upcoming[i].ID].Before(when[upcoming[j].ID])
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Add validates the draft, assigns a fresh id, appends and persists.
func (s *AppointmentStore) Add(draft model.AppointmentDraft) (model.Appointment, error) {
	if err := validateAppointmentDraft(draft, true); err != nil {
		return model.Appointment{}, err
	}
	if s.patientKnown != nil && !s.patientKnown(draft.PatientID) {
		return model.Appointment{}, fmt.Errorf("%w: patientId %s does not reference an existing patient", ErrValidation, draft.PatientID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment := draftToAppointment(draft)
	appointment.ID = newID("i", s.takenLocked)
	appointment.PatientID = draft.PatientID

	next := append(append([]model.Appointment(nil), s.appointments...), appointment)
	if err := s.persist(next); err != nil {
		return model.Appointment{}, err
	}
	s.appointments = next
	return appointment, nil
}

// Update replaces the fields of the matching record. Both the stored id and
// the stored patientId survive the update; reassigning an appointment to
// another patient is not supported.
func (s *AppointmentStore) Update(id string, draft model.AppointmentDraft) (model.Appointment, error) {
	if err := validateAppointmentDraft(draft, false); err != nil {
		return model.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}

	updated := draftToAppointment(draft)
	updated.ID = id
	updated.PatientID = s.appointments[idx].PatientID

	next := append([]model.Appointment(nil), s.appointments...)
	next[idx] = updated
	if err := s.persist(next); err != nil {
		return model.Appointment{}, err
	}
	s.appointments = next
	return updated, nil
}

// Remove deletes the appointment with the given id and persists.
func (s *AppointmentStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}

	next := append([]model.Appointment(nil), s.appointments[:idx]...)
	next = append(next, s.appointments[idx+1:]...)
	if err := s.persist(next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}

// removeForPatient drops every appointment referencing patientID and
// persists the result. The previous collection is returned so the cascade
// caller can roll back via restore if its own persist fails.
func (s *AppointmentStore) removeForPatient(patientID string) ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.appointments
	next := make([]model.Appointment, 0, len(prev))
	for _, a := range prev {
		if a.PatientID != patientID {
			next = append(next, a)
		}
	}
	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.appointments = next
	return prev, nil
}

// restore reinstates a previous collection snapshot, persisting best effort.
func (s *AppointmentStore) restore(prev []model.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = prev
	// The sink already failed once during the cascade; keep memory
	// authoritative even if this write fails too.
	_ = s.persist(prev)
}

func (s *AppointmentStore) indexLocked(id string) int {
	for i, a := range s.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *AppointmentStore) takenLocked(id string) bool {
	return s.indexLocked(id) >= 0
}

func (s *AppointmentStore) persist(appointments []model.Appointment) error {
	payload, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := s.adapter.Save(persistence.KeyAppointments, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func draftToAppointment(draft model.AppointmentDraft) model.Appointment {
	status := draft.Status
	if status == "" {
		status = model.StatusScheduled
	}
	files := draft.Files
	if files == nil {
		files = []model.Attachment{}
	}
	return model.Appointment{
		Title:           draft.Title,
		Description:     draft.Description,
		Comments:        draft.Comments,
		AppointmentDate: draft.AppointmentDate,
		Cost:            draft.Cost,
		Treatment:       draft.Treatment,
		Status:          status,
		NextDate:        draft.NextDate,
		Files:           files,
	}
}

func validateAppointmentDraft(draft model.AppointmentDraft, creating bool) error {
	if creating && draft.PatientID == "" {
		return fmt.Errorf("%w: patientId is required", ErrValidation)
	}
	switch {
	case draft.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case draft.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case draft.AppointmentDate == "":
		return fmt.Errorf("%w: appointmentDate is required", ErrValidation)
	}
	if _, err := time.Parse(model.DateTimeLayout, draft.AppointmentDate); err != nil {
		return fmt.Errorf("%w: appointmentDate must be formatted as %s", ErrValidation, model.DateTimeLayout)
	}
	if draft.NextDate != "" {
		if _, err := time.Parse(model.DateTimeLayout, draft.NextDate); err != nil {
			return fmt.Errorf("%w: nextDate must be formatted as %s", ErrValidation, model.DateTimeLayout)
		}
	}
	if draft.Status != "" && !model.ValidStatus(draft.Status) {
		return fmt.Errorf("%w: status must be %s, %s or %s", ErrValidation, model.StatusScheduled, model.StatusCompleted, model.StatusCancelled)
	}
	if draft.Cost != nil && *draft.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative", ErrValidation)
	}
	return nil
}
