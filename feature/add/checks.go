package add

// Bit layout of the Checks register (LSB first):
// 0: perform checks at all
// 1: match the profile's game version
// 2: match the profile's mod loader
const (
	bitPerformChecks uint8 = 1 << iota
	bitGameVersion
	bitModLoader
)

// Checks condenses the compatibility check flags for game version, mod loader
// and whether to check at all into a single byte. One register is shared by
// pointer across every adapter call of an operation; all access is sequential
// by construction, so no synchronization is needed.
//
// The zero value has all flags unset.
type Checks struct {
	bits uint8
}

// NewChecks returns a register with all flags unset.
func NewChecks() *Checks {
	return &Checks{}
}

// NewChecksAllSet returns a register with all three flags set.
func NewChecksAllSet() *Checks {
	return &Checks{bits: bitPerformChecks | bitGameVersion | bitModLoader}
}

// ChecksFrom returns a register with exactly the flags whose argument is true
// set.
func ChecksFrom(performChecks, gameVersion, modLoader bool) *Checks {
	c := NewChecks()
	if performChecks {
		c.SetPerformChecks()
	}
	if gameVersion {
		c.SetGameVersion()
	}
	if modLoader {
		c.SetModLoader()
	}
	return c
}

// SetPerformChecks sets the "perform checks" flag. Idempotent.
func (c *Checks) SetPerformChecks() { c.bits |= bitPerformChecks }

// SetGameVersion sets the "game version" flag. Idempotent.
func (c *Checks) SetGameVersion() { c.bits |= bitGameVersion }

// SetModLoader sets the "mod loader" flag. Idempotent.
func (c *Checks) SetModLoader() { c.bits |= bitModLoader }

// UnsetPerformChecks clears the "perform checks" flag. Idempotent.
func (c *Checks) UnsetPerformChecks() { c.bits &^= bitPerformChecks }

// UnsetGameVersion clears the "game version" flag. Idempotent.
func (c *Checks) UnsetGameVersion() { c.bits &^= bitGameVersion }

// UnsetModLoader clears the "mod loader" flag. Idempotent.
func (c *Checks) UnsetModLoader() { c.bits &^= bitModLoader }

// PerformChecks reports whether compatibility checks run at all.
func (c *Checks) PerformChecks() bool { return c.bits&bitPerformChecks != 0 }

// GameVersion reports whether the game version comparison runs.
func (c *Checks) GameVersion() bool { return c.bits&bitGameVersion != 0 }

// ModLoader reports whether the mod loader comparison runs.
func (c *Checks) ModLoader() bool { return c.bits&bitModLoader != 0 }

// Reset clears all three flags.
func (c *Checks) Reset() { c.bits = 0 }
