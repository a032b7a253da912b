package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRepository(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/CaffeineMC/lithium-fabric", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "lithium-fabric",
				"full_name": "CaffeineMC/lithium-fabric",
				"owner": {"login": "CaffeineMC"}
			}`))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL, Token: "test-token"})

		repo, err := client.GetRepository(context.Background(), "CaffeineMC", "lithium-fabric")
		assert.NoError(t, err)
		assert.Equal(t, "lithium-fabric", repo.Name)
		assert.Equal(t, "CaffeineMC/lithium-fabric", repo.FullName)
		assert.Equal(t, "CaffeineMC", repo.Owner.Login)
	})

	t.Run("Not Found Carries API Message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found", "documentation_url": "https://docs.github.com/rest"}`))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})

		_, err := client.GetRepository(context.Background(), "nobody", "nothing")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Not Found", apiErr.Message)
	})

	t.Run("Error Without Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})

		_, err := client.GetRepository(context.Background(), "a", "b")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Message)
	})
}

func TestListReleases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/releases", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"tag_name": "mc1.21.1-0.13.0",
				"name": "Lithium 0.13.0",
				"assets": [
					{"name": "lithium-fabric-mc1.21.1-0.13.0.jar", "browser_download_url": "https://example.com/lithium.jar"}
				]
			}
		]`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	releases, err := client.ListReleases(context.Background(), "owner", "repo")
	assert.NoError(t, err)
	assert.Len(t, releases, 1)
	assert.Equal(t, "mc1.21.1-0.13.0", releases[0].TagName)
	assert.Len(t, releases[0].Assets, 1)
	assert.Equal(t, "lithium-fabric-mc1.21.1-0.13.0.jar", releases[0].Assets[0].Name)
}
