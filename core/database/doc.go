// Package database handles database connections for the profile store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure the connection based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection for the configured
// driver. The sqlite driver (default) stores profiles in a local file, which
// is the normal mode for a single-user CLI. The mysql driver is available for
// shared installations where several machines use one profile database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
