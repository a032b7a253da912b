package add

import (
	"errors"
	"net/http"
	"testing"

	"mod-manager/core/curseforge"
	"mod-manager/core/github"
	"mod-manager/core/modrinth"

	"github.com/stretchr/testify/assert"
)

func TestFromCurseForge(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		err := fromCurseForge(&curseforge.StatusError{StatusCode: http.StatusNotFound, URL: "https://api.curseforge.com/v1/mods/1"})
		assert.Equal(t, ErrDoesNotExist, err)
	})

	t.Run("Other Status Wrapped Verbatim", func(t *testing.T) {
		inner := &curseforge.StatusError{StatusCode: http.StatusForbidden, URL: "https://api.curseforge.com/v1/mods/1"}
		err := fromCurseForge(inner)

		var wrapped *CurseForgeError
		assert.ErrorAs(t, err, &wrapped)
		assert.Equal(t, inner, wrapped.Err)
		assert.Equal(t, inner.Error(), err.Error())
	})

	t.Run("Transport Error Wrapped Verbatim", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := fromCurseForge(inner)

		var wrapped *CurseForgeError
		assert.ErrorAs(t, err, &wrapped)
		assert.ErrorIs(t, err, inner)
	})
}

func TestFromModrinth(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		err := fromModrinth(&modrinth.StatusError{StatusCode: http.StatusNotFound, URL: "https://api.modrinth.com/v2/project/x"})
		assert.Equal(t, ErrDoesNotExist, err)
	})

	t.Run("Other Status Wrapped Verbatim", func(t *testing.T) {
		inner := &modrinth.StatusError{StatusCode: http.StatusTooManyRequests, URL: "https://api.modrinth.com/v2/project/x"}
		err := fromModrinth(inner)

		var wrapped *ModrinthError
		assert.ErrorAs(t, err, &wrapped)
		assert.Equal(t, inner, wrapped.Err)
	})

	t.Run("Invalid Slug Wrapped Verbatim", func(t *testing.T) {
		// The re-kinding to ErrInvalidIdentifier happens in AddMultiple,
		// not at the conversion boundary.
		err := fromModrinth(modrinth.ErrInvalidIDOrSlug)

		var wrapped *ModrinthError
		assert.ErrorAs(t, err, &wrapped)
		assert.ErrorIs(t, err, modrinth.ErrInvalidIDOrSlug)
	})
}

func TestFromGitHub(t *testing.T) {
	t.Run("Not Found Message", func(t *testing.T) {
		err := fromGitHub(&github.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"})
		assert.Equal(t, ErrDoesNotExist, err)
	})

	t.Run("Other Message Wrapped Verbatim", func(t *testing.T) {
		// Same status, different message: the mapping keys on the message.
		inner := &github.APIError{StatusCode: http.StatusNotFound, Message: "This repository is empty."}
		err := fromGitHub(inner)

		var wrapped *GitHubError
		assert.ErrorAs(t, err, &wrapped)
		assert.Equal(t, inner, wrapped.Err)
		assert.Equal(t, inner.Error(), err.Error())
	})

	t.Run("Rate Limit Wrapped Verbatim", func(t *testing.T) {
		inner := &github.APIError{StatusCode: http.StatusForbidden, Message: "API rate limit exceeded"}
		err := fromGitHub(inner)

		var wrapped *GitHubError
		assert.ErrorAs(t, err, &wrapped)
		assert.ErrorIs(t, err, inner)
	})
}
