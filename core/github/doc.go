// Package github provides a minimal GitHub REST API client for repositories
// that distribute mods as release assets.
//
// Only repository metadata and release listing are implemented. API failures
// surface as *APIError carrying GitHub's own message field verbatim, which is
// what the add flow inspects to recognize missing repositories.
package github
