package add

import (
	"context"
	"strconv"
	"strings"

	"mod-manager/core/curseforge"
	"mod-manager/core/github"
	"mod-manager/core/modrinth"
	"mod-manager/core/profile"

	"go.uber.org/zap"
)

// CurseForgeClient is the slice of the CurseForge API the add flow needs.
type CurseForgeClient interface {
	GetMod(ctx context.Context, modID int32) (*curseforge.Mod, error)
	GetModFiles(ctx context.Context, modID int32) ([]curseforge.File, error)
}

// GitHubClient is the slice of the GitHub API the add flow needs.
type GitHubClient interface {
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
	ListReleases(ctx context.Context, owner, repo string) ([]github.Release, error)
}

// ModrinthClient is the slice of the Modrinth API the add flow needs.
type ModrinthClient interface {
	GetProject(ctx context.Context, idOrSlug string) (*modrinth.Project, error)
}

// ModProvider routes one identifier string to the matching provider adapter.
// It borrows the three clients, the checks register and the profile for the
// duration of one operation; the profile is mutated only on success.
type ModProvider struct {
	modrinth   ModrinthClient
	curseforge CurseForgeClient
	github     GitHubClient
	checks     *Checks
	profile    *profile.Profile
	logger     *zap.Logger
}

// NewModProvider creates a dispatcher over the given collaborators.
// A nil logger disables logging.
func NewModProvider(modrinthClient ModrinthClient, curseforgeClient CurseForgeClient, githubClient GitHubClient, checks *Checks, prof *profile.Profile, logger *zap.Logger) *ModProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModProvider{
		modrinth:   modrinthClient,
		curseforge: curseforgeClient,
		github:     githubClient,
		checks:     checks,
		profile:    prof,
		logger:     logger,
	}
}

// Add resolves one identifier and records the mod into the profile.
//
// Routing is syntactic, first match wins:
//  1. parses as a signed 32-bit integer -> CurseForge project id
//  2. contains exactly one '/' -> GitHub owner/repo
//  3. anything else -> Modrinth project id or slug
//
// The order matters: numeric strings are never treated as slugs, and
// single-slash strings are never treated as Modrinth slugs even though
// Modrinth accepts arbitrary strings.
func (p *ModProvider) Add(ctx context.Context, identifier string) (string, error) {
	if projectID, err := strconv.ParseInt(identifier, 10, 32); err == nil {
		p.logger.Debug("routing identifier",
			zap.String("identifier", identifier),
			zap.String("provider", "curseforge"))
		return p.AddCurseForge(ctx, int32(projectID))
	}

	if strings.Count(identifier, "/") == 1 {
		owner, repo, _ := strings.Cut(identifier, "/")
		if owner == "" || repo == "" {
			// An empty owner or repo segment cannot name a repository;
			// reject before dispatch rather than burning an API call.
			return "", ErrInvalidIdentifier
		}
		p.logger.Debug("routing identifier",
			zap.String("identifier", identifier),
			zap.String("provider", "github"))
		return p.AddGitHub(ctx, owner, repo)
	}

	p.logger.Debug("routing identifier",
		zap.String("identifier", identifier),
		zap.String("provider", "modrinth"))
	return p.AddModrinth(ctx, identifier)
}
