package add

import (
	"context"
	"errors"

	"mod-manager/core/modrinth"
	"mod-manager/core/profile"
)

// Failure pairs an identifier with the normalized error it failed with.
type Failure struct {
	Identifier string
	Err        error
}

// AddMultiple processes identifiers strictly sequentially through the
// dispatcher and partitions the outcomes. One identifier's failure has no
// effect on the rest of the batch. Every input identifier lands in exactly
// one of the two returned sequences, each preserving input order.
//
// A Modrinth invalid-id-or-slug failure is re-kinded to ErrInvalidIdentifier:
// that condition is reachable from any routing branch once the identifier
// reaches Modrinth, and is most informative as a plain identifier-format
// problem.
func AddMultiple(ctx context.Context, provider *ModProvider, identifiers []string) ([]string, []Failure) {
	var successes []string
	var failures []Failure

	for _, identifier := range identifiers {
		name, err := provider.Add(ctx, identifier)
		if err != nil {
			if errors.Is(err, modrinth.ErrInvalidIDOrSlug) {
				err = ErrInvalidIdentifier
			}
			failures = append(failures, Failure{Identifier: identifier, Err: err})
			continue
		}
		successes = append(successes, name)
	}

	return successes, failures
}

// AddSingle resolves and records exactly one mod, without batch accumulation.
func AddSingle(ctx context.Context, modrinthClient ModrinthClient, curseforgeClient CurseForgeClient, githubClient GitHubClient, prof *profile.Profile, identifier string, checks *Checks) (string, error) {
	return NewModProvider(modrinthClient, curseforgeClient, githubClient, checks, prof, nil).Add(ctx, identifier)
}
