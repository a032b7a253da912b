package add

import (
	"context"

	"mod-manager/core/curseforge"
	"mod-manager/core/github"
	"mod-manager/core/modrinth"

	"github.com/stretchr/testify/mock"
)

// mockCurseForge is a mock implementation of CurseForgeClient
type mockCurseForge struct {
	mock.Mock
}

func (m *mockCurseForge) GetMod(ctx context.Context, modID int32) (*curseforge.Mod, error) {
	args := m.Called(ctx, modID)
	if p, ok := args.Get(0).(*curseforge.Mod); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCurseForge) GetModFiles(ctx context.Context, modID int32) ([]curseforge.File, error) {
	args := m.Called(ctx, modID)
	if f, ok := args.Get(0).([]curseforge.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

// mockGitHub is a mock implementation of GitHubClient
type mockGitHub struct {
	mock.Mock
}

func (m *mockGitHub) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	args := m.Called(ctx, owner, repo)
	if r, ok := args.Get(0).(*github.Repository); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGitHub) ListReleases(ctx context.Context, owner, repo string) ([]github.Release, error) {
	args := m.Called(ctx, owner, repo)
	if r, ok := args.Get(0).([]github.Release); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// mockModrinth is a mock implementation of ModrinthClient
type mockModrinth struct {
	mock.Mock
}

func (m *mockModrinth) GetProject(ctx context.Context, idOrSlug string) (*modrinth.Project, error) {
	args := m.Called(ctx, idOrSlug)
	if p, ok := args.Get(0).(*modrinth.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
