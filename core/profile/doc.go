// Package profile defines the user's mod collection and its persistence.
//
// A Profile bundles the declared target environment (game version, mod
// loader) with the ordered list of recorded mods. The add feature borrows a
// profile mutably for the duration of one operation and appends Mod entries;
// it never persists anything itself. Persistence is this package's Store,
// which saves the whole profile once after a batch completes.
//
// # Store
//
// The Store is GORM-backed and works with the sqlite (default) and mysql
// drivers configured through core/database. Exactly one profile is active at
// a time; add operations apply to the active profile.
//
// # Usage
//
//	store := profile.NewStore(db)
//	prof, err := store.Active(ctx)
//	// ... adapters append to prof.Mods ...
//	err = store.Save(ctx, prof)
package profile
