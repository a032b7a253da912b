package profile

import "strings"

// Platform identifies the metadata provider a mod was resolved through.
type Platform string

const (
	PlatformCurseForge Platform = "curseforge"
	PlatformGitHub     Platform = "github"
	PlatformModrinth   Platform = "modrinth"
)

// Mod is one recorded entry of a profile's mod list.
type Mod struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	ProfileID uint `gorm:"index" json:"-"`

	// Position preserves the order in which mods were added.
	Position int `json:"-"`

	// Name is the project's display name as reported by the provider.
	Name string `json:"name"`

	// Platform is the provider the mod was resolved through.
	Platform Platform `json:"platform"`

	// ProjectKey is the provider's canonical project identifier:
	// the numeric id for CurseForge, the project id for Modrinth,
	// and owner/repo for GitHub.
	ProjectKey string `json:"project_key"`
}

// Profile is the user's mod collection together with the declared target
// environment the compatibility checks compare against. It is owned by the
// caller; the add core only borrows it for the duration of one operation.
type Profile struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// Name uniquely identifies the profile.
	Name string `gorm:"uniqueIndex" json:"name"`

	// GameVersion is the Minecraft version this profile targets.
	GameVersion string `json:"game_version"`

	// ModLoader is the mod loader this profile targets (e.g. fabric, forge).
	ModLoader string `json:"mod_loader"`

	// OutputDir is the directory mod files are placed in.
	OutputDir string `json:"output_dir"`

	// Active marks the profile add operations apply to.
	Active bool `json:"active"`

	// Mods is the ordered list of recorded mods.
	Mods []Mod `gorm:"constraint:OnDelete:CASCADE" json:"mods"`
}

// HasMod reports whether a mod with the given platform and project key is
// already recorded. Keys compare case-insensitively.
func (p *Profile) HasMod(platform Platform, projectKey string) bool {
	for _, m := range p.Mods {
		if m.Platform == platform && strings.EqualFold(m.ProjectKey, projectKey) {
			return true
		}
	}
	return false
}

// HasModNamed reports whether a mod with the given display name is already
// recorded, regardless of platform. Names compare case-insensitively.
func (p *Profile) HasModNamed(name string) bool {
	for _, m := range p.Mods {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}

// AddMod appends a mod to the profile, keeping insertion order.
func (p *Profile) AddMod(m Mod) {
	m.Position = len(p.Mods)
	p.Mods = append(p.Mods, m)
}
