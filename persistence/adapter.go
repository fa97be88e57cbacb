// Package persistence provides the durable key-value sink the record stores
// write their collections to. Backends store payload bytes verbatim and never
// interpret them; serialization is owned by the stores.
package persistence

// Persisted collection keys. The names match the original browser-local
// storage keys so an exported dataset stays readable across deployments.
const (
	KeyPatients     = "dental_patients"
	KeyAppointments = "dental_incidents"
)

// Adapter is a durable key-value sink. Save followed by Load with no
// intervening Save must return an identical payload; Load on a key never
// written reports found == false with a nil error.
type Adapter interface {
	Load(key string) (payload []byte, found bool, err error)
	Save(key string, payload []byte) error
}
