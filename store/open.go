package store

import (
	"encoding/json"
	"fmt"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/persistence"
)

// Stores bundles the two record stores opened over one persistence adapter.
type Stores struct {
	Patients     *PatientStore
	Appointments *AppointmentStore
}

// Open loads both collections from the adapter, seeding and immediately
// persisting the fixed initial dataset for any key that has never been
// written. The appointment store gets the patient store as its reference
// resolver, and the patient store gets the appointment store for cascade
// deletes.
func Open(adapter persistence.Adapter) (*Stores, error) {
	patients := &PatientStore{adapter: adapter}
	appointments := &AppointmentStore{adapter: adapter}
	patients.appointments = appointments
	appointments.patientKnown = patients.Exists

	if err := loadCollection(adapter, persistence.KeyPatients, &patients.patients, model.SeedPatients); err != nil {
		return nil, err
	}
	if err := loadCollection(adapter, persistence.KeyAppointments, &appointments.appointments, model.SeedAppointments); err != nil {
		return nil, err
	}
	return &Stores{Patients: patients, Appointments: appointments}, nil
}

func loadCollection[T any](adapter persistence.Adapter, key string, into *[]T, seed func() []T) error {
	payload, found, err := adapter.Load(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		*into = seed()
		encoded, err := json.Marshal(*into)
		if err != nil {
			return fmt.Errorf("encode seed for %s: %w", key, err)
		}
		if err := adapter.Save(key, encoded); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	}
	if err := json.Unmarshal(payload, into); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
