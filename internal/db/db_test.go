package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booktable/internal/models"
)

func TestMigrate_BackfillsTimezone(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "m.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&models.Restaurant{}))
	require.NoError(t, gdb.Create(&models.Restaurant{ManagerID: "m", Name: "No TZ"}).Error)

	require.NoError(t, Migrate(gdb, "Europe/Lisbon"))

	var r models.Restaurant
	require.NoError(t, gdb.First(&r).Error)
	assert.Equal(t, "Europe/Lisbon", r.Timezone)

	for _, m := range Models() {
		assert.True(t, gdb.Migrator().HasTable(m))
	}
}
