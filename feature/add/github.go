package add

import (
	"context"
	"strings"

	"mod-manager/core/github"
	"mod-manager/core/profile"
)

// AddGitHub resolves an owner/repo reference, validates that the repository
// distributes a mod through release assets, and records it on success.
func (p *ModProvider) AddGitHub(ctx context.Context, owner, repo string) (string, error) {
	repository, err := p.github.GetRepository(ctx, owner, repo)
	if err != nil {
		return "", fromGitHub(err)
	}

	key := strings.ToLower(repository.FullName)
	if p.profile.HasMod(profile.PlatformGitHub, key) || p.profile.HasModNamed(repository.Name) {
		return "", ErrAlreadyAdded
	}

	releases, err := p.github.ListReleases(ctx, owner, repo)
	if err != nil {
		return "", fromGitHub(err)
	}

	// A repository counts as a mod only if some release ships a jar.
	if !hasJarAsset(releases) {
		return "", ErrNotAMod
	}

	if p.checks.PerformChecks() && !p.githubCompatible(releases) {
		return "", ErrIncompatible
	}

	p.profile.AddMod(profile.Mod{
		Name:       repository.Name,
		Platform:   profile.PlatformGitHub,
		ProjectKey: key,
	})
	return repository.Name, nil
}

func hasJarAsset(releases []github.Release) bool {
	for _, r := range releases {
		for _, a := range r.Assets {
			if strings.HasSuffix(strings.ToLower(a.Name), ".jar") {
				return true
			}
		}
	}
	return false
}

// githubCompatible reports whether any jar asset name satisfies the enabled
// checks. GitHub publishes no structured compatibility metadata, so the
// comparison inspects asset file names, which mod authors conventionally tag
// with the game version and loader.
func (p *ModProvider) githubCompatible(releases []github.Release) bool {
	for _, r := range releases {
		for _, a := range r.Assets {
			name := strings.ToLower(a.Name)
			if !strings.HasSuffix(name, ".jar") {
				continue
			}
			versionOK := !p.checks.GameVersion() || strings.Contains(name, strings.ToLower(p.profile.GameVersion))
			loaderOK := !p.checks.ModLoader() || strings.Contains(name, strings.ToLower(p.profile.ModLoader))
			if versionOK && loaderOK {
				return true
			}
		}
	}
	return false
}
