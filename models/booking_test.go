package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBeforeCreateDefaults(t *testing.T) {
	booking := &Booking{}
	require.NoError(t, booking.BeforeCreate(nil))

	assert.Equal(t, StatusPending, booking.Status)
	assert.NotEmpty(t, booking.Reference)
	assert.True(t, strings.HasPrefix(booking.Reference, "GD-"))
}

func TestBookingBeforeCreateKeepsExplicitValues(t *testing.T) {
	booking := &Booking{Status: StatusConfirmed, Reference: "GD-ABC123"}
	require.NoError(t, booking.BeforeCreate(nil))

	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Equal(t, "GD-ABC123", booking.Reference)
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestServiceEffectiveDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, (&Service{DurationMinutes: 90}).EffectiveDuration())
	// Zero falls back to the default hour
	assert.Equal(t, 60*time.Minute, (&Service{}).EffectiveDuration())
}

func TestGenerateReferenceIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.True(t, strings.HasPrefix(ref, "GD-"))
		seen[ref] = true
	}
	// Random 3-byte suffixes: collisions across 100 draws are overwhelmingly unlikely
	assert.Greater(t, len(seen), 95)
}
