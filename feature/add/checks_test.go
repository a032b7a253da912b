package add

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksSetUnset(t *testing.T) {
	check := NewChecks()

	assert.False(t, check.PerformChecks())
	assert.False(t, check.GameVersion())
	assert.False(t, check.ModLoader())

	check.SetPerformChecks()
	check.SetModLoader()
	check.SetGameVersion()

	assert.True(t, check.PerformChecks())
	assert.True(t, check.GameVersion())
	assert.True(t, check.ModLoader())

	// Unset after set
	check.UnsetPerformChecks()
	assert.False(t, check.PerformChecks())
	assert.True(t, check.GameVersion())
	assert.True(t, check.ModLoader())

	// Unset after unset is a no-op
	check.UnsetPerformChecks()
	assert.False(t, check.PerformChecks())

	// Set after set is a no-op
	check.SetGameVersion()
	check.SetGameVersion()
	assert.True(t, check.GameVersion())

	check.UnsetGameVersion()
	check.UnsetModLoader()
	assert.False(t, check.GameVersion())
	assert.False(t, check.ModLoader())
}

func TestChecksAllSet(t *testing.T) {
	check := NewChecksAllSet()

	assert.True(t, check.PerformChecks())
	assert.True(t, check.GameVersion())
	assert.True(t, check.ModLoader())
}

func TestChecksFrom(t *testing.T) {
	bools := []bool{false, true}
	for _, performChecks := range bools {
		for _, gameVersion := range bools {
			for _, modLoader := range bools {
				check := ChecksFrom(performChecks, gameVersion, modLoader)

				assert.Equal(t, performChecks, check.PerformChecks())
				assert.Equal(t, gameVersion, check.GameVersion())
				assert.Equal(t, modLoader, check.ModLoader())
			}
		}
	}
}

func TestChecksReset(t *testing.T) {
	check := NewChecksAllSet()
	check.Reset()

	assert.False(t, check.PerformChecks())
	assert.False(t, check.GameVersion())
	assert.False(t, check.ModLoader())

	// Reset from partial state
	check = ChecksFrom(true, false, true)
	check.Reset()

	assert.False(t, check.PerformChecks())
	assert.False(t, check.GameVersion())
	assert.False(t, check.ModLoader())
}
