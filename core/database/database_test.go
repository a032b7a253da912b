package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("SQLite In Memory", func(t *testing.T) {
		cfg := Config{
			Driver: "sqlite",
			Path:   ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("Invalid MySQL Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "mods",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
