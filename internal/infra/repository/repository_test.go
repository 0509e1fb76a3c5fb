package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/fadebook/fadebook-api/internal/db"
	"github.com/fadebook/fadebook-api/internal/models"
)

// setupTestDB opens a fresh in-memory database per test. A single open
// connection keeps every statement on the same sqlite memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func seedCustomer(t *testing.T, gdb *gorm.DB, username string) *models.Customer {
	t.Helper()
	c := &models.Customer{Username: username, Name: "Test Customer", ContactInfo: "555-0100"}
	require.NoError(t, gdb.Create(c).Error)
	return c
}

func seedBarber(t *testing.T, gdb *gorm.DB, username string) *models.Barber {
	t.Helper()
	b := &models.Barber{Username: username, Name: "Test Barber", Specialty: "Fades", ContactInfo: "555-0200"}
	require.NoError(t, gdb.Create(b).Error)
	return b
}

func seedService(t *testing.T, gdb *gorm.DB, name string) *models.Service {
	t.Helper()
	s := &models.Service{Name: name, Price: 20}
	require.NoError(t, gdb.Create(s).Error)
	return s
}
