package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"office-leasing-backend/config"
	"office-leasing-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createOffice(t *testing.T, db *gorm.DB, number int) models.Office {
	t.Helper()
	office := models.Office{
		OfficeNumber: number,
		SizeSqft:     decimal.RequireFromString("88.26"),
		AnnualRent:   52958,
		Status:       models.OfficeAvailable,
	}
	require.NoError(t, db.Create(&office).Error)
	return office
}

func createRoom(t *testing.T, db *gorm.DB, name string) models.MeetingRoom {
	t.Helper()
	room := models.MeetingRoom{Name: name, Capacity: 8}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "x",
		FullName: username,
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}
