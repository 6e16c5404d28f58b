package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "booktable.db")),
		&gorm.Config{Logger: logger.Discard},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Restaurant{},
		&models.OperatingHours{},
		&models.TimeSlot{},
		&models.TableConfiguration{},
		&models.Booking{},
		&models.Photo{},
		&models.Review{},
		&models.AuditLog{},
	))
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, lat, lng float64) *models.Restaurant {
	t.Helper()

	r := &models.Restaurant{
		ManagerID:   "manager-1",
		Name:        name,
		CuisineType: "italian",
		Latitude:    lat,
		Longitude:   lng,
		Timezone:    "UTC",
		Approved:    true,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func tod(s string) *clock.TimeOfDay {
	t := clock.MustParse(s)
	return &t
}
