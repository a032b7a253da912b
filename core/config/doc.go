// Package config provides configuration management for the mod manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Log: logging level and format
//   - Database: profile database connection (sqlite by default)
//   - Profile: defaults for newly created profiles
//   - CurseForge / GitHub / Modrinth: provider API settings and credentials
//
// Environment variables map onto nested keys with underscores, e.g.
// CURSEFORGE_API_KEY sets curseforge.api_key and GITHUB_TOKEN sets
// github.token.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config
