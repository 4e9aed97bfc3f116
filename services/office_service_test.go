package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-leasing-backend/models"
	"office-leasing-backend/services"
)

func strPtr(s string) *string { return &s }

func TestOfficeGetUnknownNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOfficeService(db)

	_, err := svc.Get(999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOfficeListOrderedByNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOfficeService(db)
	createOffice(t, db, 12)
	createOffice(t, db, 3)
	createOffice(t, db, 7)

	offices, err := svc.List()
	require.NoError(t, err)
	require.Len(t, offices, 3)
	assert.Equal(t, 3, offices[0].OfficeNumber)
	assert.Equal(t, 7, offices[1].OfficeNumber)
	assert.Equal(t, 12, offices[2].OfficeNumber)
}

func TestOfficeUpdateStatusAndContacts(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOfficeService(db)
	createOffice(t, db, 5)

	expiry := date(2026, time.June, 30)
	_, err := svc.Update(5, services.OfficeUpdate{
		Status:      strPtr(models.OfficeRented),
		CompanyName: strPtr("Acme LLC"),
		ExpiryDate:  &expiry,
	})
	require.NoError(t, err)

	var stored models.Office
	require.NoError(t, db.First(&stored, "office_number = ?", 5).Error)
	assert.Equal(t, models.OfficeRented, stored.Status)
	require.NotNil(t, stored.CompanyName)
	assert.Equal(t, "Acme LLC", *stored.CompanyName)
	require.NotNil(t, stored.ExpiryDate)
	assert.True(t, expiry.Equal(*stored.ExpiryDate))
	// untouched fields stay nil
	assert.Nil(t, stored.ContactEmail)
}

func TestOfficeUpdateRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOfficeService(db)
	createOffice(t, db, 5)

	_, err := svc.Update(5, services.OfficeUpdate{Status: strPtr("demolished")})
	assert.True(t, services.IsValidation(err), "got %v", err)

	var stored models.Office
	require.NoError(t, db.First(&stored, "office_number = ?", 5).Error)
	assert.Equal(t, models.OfficeAvailable, stored.Status)
}

func TestOfficeStatisticsAndAvailableList(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOfficeService(db)
	createOffice(t, db, 1)
	createOffice(t, db, 2)
	createOffice(t, db, 3)

	_, err := svc.Update(2, services.OfficeUpdate{Status: strPtr(models.OfficeRented)})
	require.NoError(t, err)

	stats, err := svc.Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.AvailableCount)
	assert.EqualValues(t, 1, stats.RentedCount)

	available, err := svc.AvailableOffices()
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, 1, available[0].OfficeNumber)
	assert.Equal(t, 3, available[1].OfficeNumber)
}
