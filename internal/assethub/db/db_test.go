package db

import (
	"testing"

	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite database for testing.
func SetupTestDB(t *testing.T) *Repository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(&models.Company{}, &models.Employee{}, &models.Asset{})
	require.NoError(t, err, "failed to migrate test database")

	return &Repository{db: db}
}
