package profile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStoreList_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "game_version", "mod_loader", "output_dir", "active"})
	rows.AddRow(1, "main", "1.21.1", "fabric", "mods", true)
	rows.AddRow(2, "forge-pack", "1.20.4", "forge", "mods", false)

	mock.ExpectQuery("SELECT \\* FROM `profiles`").WillReturnRows(rows)

	profiles, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "main", profiles[0].Name)
	assert.True(t, profiles[0].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGet_MySQLNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `profiles`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "game_version", "mod_loader", "output_dir", "active"}))

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
