package add

import (
	"context"

	"mod-manager/core/profile"
)

// AddModrinth resolves a Modrinth project id or slug, validates it against
// the profile and the checks register, and records it on success.
func (p *ModProvider) AddModrinth(ctx context.Context, idOrSlug string) (string, error) {
	project, err := p.modrinth.GetProject(ctx, idOrSlug)
	if err != nil {
		return "", fromModrinth(err)
	}

	if p.profile.HasMod(profile.PlatformModrinth, project.ID) ||
		p.profile.HasMod(profile.PlatformModrinth, project.Slug) ||
		p.profile.HasModNamed(project.Title) {
		return "", ErrAlreadyAdded
	}

	if project.ProjectType != "mod" {
		return "", ErrNotAMod
	}

	if p.checks.PerformChecks() {
		versionOK := !p.checks.GameVersion() || containsFold(project.GameVersions, p.profile.GameVersion)
		loaderOK := !p.checks.ModLoader() || containsFold(project.Loaders, p.profile.ModLoader)
		if !versionOK || !loaderOK {
			return "", ErrIncompatible
		}
	}

	p.profile.AddMod(profile.Mod{
		Name:       project.Title,
		Platform:   profile.PlatformModrinth,
		ProjectKey: project.ID,
	})
	return project.Title, nil
}
