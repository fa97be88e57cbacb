package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLoadAbsentKey(t *testing.T) {
	adapter := NewMemory()

	payload, found, err := adapter.Load("never_written")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, payload)
}

func TestMemoryRoundTrip(t *testing.T) {
	adapter := NewMemory()

	original := []byte(`[{"id":"p1","name":"John Doe"}]`)
	assert.NoError(t, adapter.Save(KeyPatients, original))

	loaded, found, err := adapter.Load(KeyPatients)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, original, loaded)

	// Overwrites replace the stored payload.
	replacement := []byte(`[]`)
	assert.NoError(t, adapter.Save(KeyPatients, replacement))
	loaded, found, err = adapter.Load(KeyPatients)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, replacement, loaded)
}

func TestMemoryCopiesPayload(t *testing.T) {
	adapter := NewMemory()

	payload := []byte(`[1,2,3]`)
	assert.NoError(t, adapter.Save(KeyAppointments, payload))
	payload[0] = 'x'

	loaded, _, err := adapter.Load(KeyAppointments)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), loaded)
}
