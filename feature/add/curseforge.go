package add

import (
	"context"
	"strconv"
	"strings"

	"mod-manager/core/curseforge"
	"mod-manager/core/profile"
)

// AddCurseForge resolves a CurseForge project id, validates it against the
// profile and the checks register, and records it on success.
func (p *ModProvider) AddCurseForge(ctx context.Context, projectID int32) (string, error) {
	project, err := p.curseforge.GetMod(ctx, projectID)
	if err != nil {
		return "", fromCurseForge(err)
	}

	key := strconv.Itoa(int(project.ID))
	if p.profile.HasMod(profile.PlatformCurseForge, key) || p.profile.HasModNamed(project.Name) {
		return "", ErrAlreadyAdded
	}

	if project.ClassID != curseforge.ClassIDMods {
		return "", ErrNotAMod
	}

	if project.AllowModDistribution != nil && !*project.AllowModDistribution {
		return "", ErrDistributionDenied
	}

	if p.checks.PerformChecks() {
		files, err := p.curseforge.GetModFiles(ctx, project.ID)
		if err != nil {
			return "", fromCurseForge(err)
		}
		if !p.curseforgeCompatible(files) {
			return "", ErrIncompatible
		}
	}

	p.profile.AddMod(profile.Mod{
		Name:       project.Name,
		Platform:   profile.PlatformCurseForge,
		ProjectKey: key,
	})
	return project.Name, nil
}

// curseforgeCompatible reports whether any uploaded file satisfies the
// enabled checks. CurseForge mixes Minecraft versions and loader names in one
// game_versions list, so both comparisons probe the same list.
func (p *ModProvider) curseforgeCompatible(files []curseforge.File) bool {
	for _, f := range files {
		versionOK := !p.checks.GameVersion() || containsFold(f.GameVersions, p.profile.GameVersion)
		loaderOK := !p.checks.ModLoader() || containsFold(f.GameVersions, p.profile.ModLoader)
		if versionOK && loaderOK {
			return true
		}
	}
	return false
}

// containsFold reports whether values contains want, ignoring case.
func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
