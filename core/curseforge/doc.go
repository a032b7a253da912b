// Package curseforge provides a minimal CurseForge API client.
//
// Only the two endpoints the add flow needs are implemented: project metadata
// and project files. Responses are unwrapped from CurseForge's {"data": ...}
// envelope. Non-success HTTP statuses surface as *StatusError so callers can
// distinguish a missing project (404) from other API failures.
//
// An API key is required by CurseForge for all requests; it is configured via
// CURSEFORGE_API_KEY and sent in the x-api-key header.
package curseforge
