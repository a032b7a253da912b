// Package modrinth provides a minimal Modrinth API client.
//
// Project ids and slugs are validated client-side against Modrinth's
// published shape before any request is made; identifiers that cannot name a
// project fail fast with ErrInvalidIDOrSlug. Non-success HTTP statuses
// surface as *StatusError.
package modrinth
