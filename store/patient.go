package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/persistence"
)

// PatientStore owns the patient collection. Listing preserves insertion
// order; every mutation rewrites the whole persisted collection.
type PatientStore struct {
	mu           sync.RWMutex
	patients     []model.Patient
	adapter      persistence.Adapter
	appointments *AppointmentStore
}

// List returns the full patient collection in insertion order.
func (s *PatientStore) List() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Patient(nil), s.patients...)
}

// GetByID returns the patient with the given id.
func (s *PatientStore) GetByID(id string) (model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Patient{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
}

// Exists reports whether a patient with the given id is in the collection.
func (s *PatientStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Add validates the draft, assigns a fresh id, appends and persists. The
// created record is returned.
func (s *PatientStore) Add(draft model.PatientDraft) (model.Patient, error) {
	if err := validatePatientDraft(draft); err != nil {
		return model.Patient{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patient := model.Patient{
		ID:               newID("p", s.takenLocked),
		Name:             draft.Name,
		DateOfBirth:      draft.DateOfBirth,
		Contact:          draft.Contact,
		Email:            draft.Email,
		Address:          draft.Address,
		HealthInfo:       draft.HealthInfo,
		EmergencyContact: draft.EmergencyContact,
	}

	next := append(append([]model.Patient(nil), s.patients...), patient)
	if err := s.persist(next); err != nil {
		return model.Patient{}, err
	}
	s.patients = next
	return patient, nil
}

// Update replaces every mutable field of the matching record. The stored id
// always wins over whatever the draft carries.
func (s *PatientStore) Update(id string, draft model.PatientDraft) (model.Patient, error) {
	if err := validatePatientDraft(draft); err != nil {
		return model.Patient{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Patient{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}

	next := append([]model.Patient(nil), s.patients...)
	next[idx] = model.Patient{
		ID:               id,
		Name:             draft.Name,
		DateOfBirth:      draft.DateOfBirth,
		Contact:          draft.Contact,
		Email:            draft.Email,
		Address:          draft.Address,
		HealthInfo:       draft.HealthInfo,
		EmergencyContact: draft.EmergencyContact,
	}
	if err := s.persist(next); err != nil {
		return model.Patient{}, err
	}
	s.patients = next
	return next[idx], nil
}

// Remove deletes the patient and every appointment referencing it in one
// logical operation. Appointments are removed and persisted first so the
// intermediate state never contains an orphan; if persisting the patient
// collection then fails, the appointment collection is restored.
func (s *PatientStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}

	prevAppointments, err := s.appointments.removeForPatient(id)
	if err != nil {
		return err
	}

	next := append([]model.Patient(nil), s.patients[:idx]...)
	next = append(next, s.patients[idx+1:]...)
	if err := s.persist(next); err != nil {
		s.appointments.restore(prevAppointments)
		return err
	}
	s.patients = next
	return nil
}

func (s *PatientStore) indexLocked(id string) int {
	for i, p := range s.patients {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *PatientStore) takenLocked(id string) bool {
	return s.indexLocked(id) >= 0
}

func (s *PatientStore) persist(patients []model.Patient) error {
	payload, err := json.Marshal(patients)
	if err != nil {
		return fmt.Errorf("encode patients: %w", err)
	}
	if err := s.adapter.Save(persistence.KeyPatients, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func validatePatientDraft(draft model.PatientDraft) error {
	switch {
	case draft.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case draft.DateOfBirth == "":
		return fmt.Errorf("%w: dob is required", ErrValidation)
	case draft.Contact == "":
		return fmt.Errorf("%w: contact is required", ErrValidation)
	case draft.Email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case draft.Address == "":
		return fmt.Errorf("%w: address is required", ErrValidation)
	case draft.HealthInfo == "":
		return fmt.Errorf("%w: healthInfo is required", ErrValidation)
	}
	if _, err := time.Parse(model.DateLayout, draft.DateOfBirth); err != nil {
		return fmt.Errorf("%w: dob must be formatted as %s", ErrValidation, model.DateLayout)
	}
	return nil
}
