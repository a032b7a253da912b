// Package add implements resolving mod identifiers and recording them into a
// profile.
//
// One identifier string is routed to exactly one of three metadata providers:
//
//   - a signed 32-bit integer is a CurseForge project id,
//   - a string with exactly one '/' is a GitHub owner/repo reference,
//   - anything else is a Modrinth project id or slug.
//
// The selected adapter fetches the project, validates it (idempotency against
// the profile, content type, distribution policy, and the compatibility
// checks gated by the Checks register), and appends a profile.Mod entry on
// success.
//
// # Error Taxonomy
//
// The three providers report failures in three different shapes. They are
// normalized into one closed set at the point they cross into this package:
// the Err* sentinels plus CurseForgeError/GitHubError/ModrinthError wrappers
// that carry anything unrecognized verbatim. A "not found" from any provider
// becomes ErrDoesNotExist.
//
// # Batches
//
// AddMultiple drives the dispatcher sequentially over many identifiers and
// never short-circuits: the result is an ordered success list and an ordered
// (identifier, error) failure list that together account for every input
// exactly once. AddSingle is the one-identifier entry point.
//
// Nothing here persists the profile; the caller saves it through
// profile.Store after the batch completes.
package add
