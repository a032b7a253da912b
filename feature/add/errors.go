package add

import (
	"errors"
	"net/http"

	"mod-manager/core/curseforge"
	"mod-manager/core/github"
	"mod-manager/core/modrinth"
)

// The closed set of normalized error kinds every add operation resolves to.
// Anything a provider client reports that is not recognized here is carried
// verbatim inside the matching provider wrapper type below.
var (
	// ErrDistributionDenied means the project owner forbids third-party
	// downloads. The user can download the mod manually and place it in the
	// profile's output directory, but will then have to update it manually too.
	ErrDistributionDenied = errors.New("the developer of this project has denied third party applications from downloading it")

	// ErrAlreadyAdded means the project is already recorded in the profile.
	ErrAlreadyAdded = errors.New("the project has already been added")

	// ErrDoesNotExist is the normalized "not found" across all three providers.
	ErrDoesNotExist = errors.New("the project does not exist")

	// ErrIncompatible means the project fails the profile's declared game
	// version or mod loader checks.
	ErrIncompatible = errors.New("the project is not compatible")

	// ErrNotAMod means the identifier resolved to some other content type.
	ErrNotAMod = errors.New("the project is not a mod")

	// ErrInvalidIdentifier means the identifier is malformed.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// CurseForgeError wraps an unrecognized CurseForge client error verbatim.
type CurseForgeError struct {
	Err error
}

func (e *CurseForgeError) Error() string { return e.Err.Error() }

func (e *CurseForgeError) Unwrap() error { return e.Err }

// GitHubError wraps an unrecognized GitHub client error verbatim.
type GitHubError struct {
	Err error
}

func (e *GitHubError) Error() string { return e.Err.Error() }

func (e *GitHubError) Unwrap() error { return e.Err }

// ModrinthError wraps an unrecognized Modrinth client error verbatim.
type ModrinthError struct {
	Err error
}

func (e *ModrinthError) Error() string { return e.Err.Error() }

func (e *ModrinthError) Unwrap() error { return e.Err }

// fromCurseForge normalizes a CurseForge client error. A 404 means the
// project does not exist; everything else is wrapped verbatim.
func fromCurseForge(err error) error {
	var status *curseforge.StatusError
	if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
		return ErrDoesNotExist
	}
	return &CurseForgeError{Err: err}
}

// fromModrinth normalizes a Modrinth client error. A 404 means the project
// does not exist; everything else is wrapped verbatim.
func fromModrinth(err error) error {
	var status *modrinth.StatusError
	if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
		return ErrDoesNotExist
	}
	return &ModrinthError{Err: err}
}

// fromGitHub normalizes a GitHub client error. The API reports missing
// repositories with the literal message "Not Found"; everything else is
// wrapped verbatim.
func fromGitHub(err error) error {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) && apiErr.Message == "Not Found" {
		return ErrDoesNotExist
	}
	return &GitHubError{Err: err}
}
