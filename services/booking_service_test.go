package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"office-leasing-backend/models"
	"office-leasing-backend/services"
)

func countBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	return count
}

func TestCreateBookingTouchingEndpointsAllowed(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")

	_, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Standup",
		StartTime:     at(2025, time.June, 2, 10, 0),
		EndTime:       at(2025, time.June, 2, 11, 0),
	}, nil)
	require.NoError(t, err)

	// [10:00,11:00) and [11:00,12:00) touch but do not overlap
	_, err = svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Client call",
		StartTime:     at(2025, time.June, 2, 11, 0),
		EndTime:       at(2025, time.June, 2, 12, 0),
	}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countBookings(t, db))
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")

	_, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Standup",
		StartTime:     at(2025, time.June, 2, 10, 0),
		EndTime:       at(2025, time.June, 2, 11, 0),
	}, nil)
	require.NoError(t, err)

	_, err = svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Overlapping",
		StartTime:     at(2025, time.June, 2, 10, 30),
		EndTime:       at(2025, time.June, 2, 11, 30),
	}, nil)
	assert.True(t, services.IsValidation(err), "got %v", err)
	assert.Contains(t, err.Error(), "Boardroom")
	assert.EqualValues(t, 1, countBookings(t, db))
}

func TestCreateBookingOtherRoomDoesNotConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	roomA := createRoom(t, db, "Meeting Room A")
	roomB := createRoom(t, db, "Meeting Room B")

	_, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: roomA.ID,
		Title:         "Standup",
		StartTime:     at(2025, time.June, 2, 10, 0),
		EndTime:       at(2025, time.June, 2, 11, 0),
	}, nil)
	require.NoError(t, err)

	_, err = svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: roomB.ID,
		Title:         "Same slot elsewhere",
		StartTime:     at(2025, time.June, 2, 10, 0),
		EndTime:       at(2025, time.June, 2, 11, 0),
	}, nil)
	require.NoError(t, err)
}

func TestValidateInvertedInterval(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")

	err := svc.Validate(room.ID, at(2025, time.June, 2, 11, 0), at(2025, time.June, 2, 10, 0), 0)
	assert.True(t, services.IsValidation(err))

	err = svc.Validate(room.ID, at(2025, time.June, 2, 10, 0), at(2025, time.June, 2, 10, 0), 0)
	assert.True(t, services.IsValidation(err), "zero-length interval must be invalid")
}

func TestValidateExcludesOwnBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")

	created, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Standup",
		StartTime:     at(2025, time.June, 2, 10, 0),
		EndTime:       at(2025, time.June, 2, 11, 0),
	}, nil)
	require.NoError(t, err)
	require.Len(t, created, 1)

	// moving the booking within its own slot must not conflict with itself
	err = svc.Validate(room.ID, at(2025, time.June, 2, 10, 15), at(2025, time.June, 2, 11, 0), created[0].ID)
	assert.NoError(t, err)

	// without the exclusion the same interval conflicts
	err = svc.Validate(room.ID, at(2025, time.June, 2, 10, 15), at(2025, time.June, 2, 11, 0), 0)
	assert.True(t, services.IsValidation(err))
}

func TestExpandRecurrenceNone(t *testing.T) {
	instances, err := services.ExpandRecurrence(services.BookingRequest{
		MeetingRoomID: 1,
		Title:         "One-off",
		StartTime:     at(2025, time.June, 2, 9, 0),
		EndTime:       at(2025, time.June, 2, 10, 0),
		Recurrence:    services.RecurrenceNone,
	})
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.NotEmpty(t, instances[0].RecurrenceID)
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	end := date(2025, time.June, 23) // three weeks after the first Monday
	instances, err := services.ExpandRecurrence(services.BookingRequest{
		MeetingRoomID: 1,
		Title:         "Weekly sync",
		StartTime:     at(2025, time.June, 2, 9, 0), // a Monday
		EndTime:       at(2025, time.June, 2, 10, 0),
		Recurrence:    services.RecurrenceWeekly,
		EndRecurrence: &end,
	})
	require.NoError(t, err)
	require.Len(t, instances, 4)

	for i, b := range instances {
		wantStart := at(2025, time.June, 2, 9, 0).AddDate(0, 0, 7*i)
		assert.True(t, b.StartTime.Equal(wantStart), "instance %d starts %s", i, b.StartTime)
		assert.Equal(t, instances[0].RecurrenceID, b.RecurrenceID)
	}
}

func TestExpandRecurrenceDailyInclusiveBound(t *testing.T) {
	end := date(2025, time.June, 4)
	instances, err := services.ExpandRecurrence(services.BookingRequest{
		MeetingRoomID: 1,
		Title:         "Daily",
		StartTime:     at(2025, time.June, 2, 9, 0),
		EndTime:       at(2025, time.June, 2, 9, 30),
		Recurrence:    services.RecurrenceDaily,
		EndRecurrence: &end,
	})
	require.NoError(t, err)
	// June 2, 3 and 4: the end-recurrence day itself is included
	assert.Len(t, instances, 3)
}

func TestExpandRecurrenceUnknownMode(t *testing.T) {
	_, err := services.ExpandRecurrence(services.BookingRequest{
		MeetingRoomID: 1,
		Title:         "Bad",
		StartTime:     at(2025, time.June, 2, 9, 0),
		EndTime:       at(2025, time.June, 2, 10, 0),
		Recurrence:    "fortnightly",
	})
	assert.True(t, services.IsValidation(err))
}

func TestCreateBookingsRecurrenceConflictAbortsBatch(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")

	// pre-existing reservation two weeks in
	_, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Board meeting",
		StartTime:     at(2025, time.June, 16, 9, 30),
		EndTime:       at(2025, time.June, 16, 10, 30),
	}, nil)
	require.NoError(t, err)

	end := date(2025, time.June, 23)
	_, err = svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Weekly sync",
		StartTime:     at(2025, time.June, 2, 9, 0),
		EndTime:       at(2025, time.June, 2, 10, 0),
		Recurrence:    services.RecurrenceWeekly,
		EndRecurrence: &end,
	}, nil)
	assert.True(t, services.IsValidation(err), "got %v", err)

	// nothing from the recurring batch may remain
	assert.EqualValues(t, 1, countBookings(t, db))
}

func TestCreateBookingsAttachesTenantOffice(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")
	user := createUser(t, db, "jsmith", models.RoleTenant)

	office := createOffice(t, db, 12)
	contact := user.FullName
	require.NoError(t, db.Model(&office).Update("contact_person", contact).Error)

	created, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Tenant meeting",
		StartTime:     at(2025, time.June, 2, 14, 0),
		EndTime:       at(2025, time.June, 2, 15, 0),
	}, &user)
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.NotNil(t, created[0].OfficeNumber)
	assert.Equal(t, 12, *created[0].OfficeNumber)
	require.NotNil(t, created[0].BookedByID)
	assert.Equal(t, user.ID, *created[0].BookedByID)
}

func TestWeekScheduleGroupsByRoomAndDay(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")
	createRoom(t, db, "Huddle Room")

	_, err := svc.CreateBookings(services.BookingRequest{
		MeetingRoomID: room.ID,
		Title:         "Standup",
		StartTime:     at(2025, time.June, 4, 10, 0), // Wednesday
		EndTime:       at(2025, time.June, 4, 11, 0),
	}, nil)
	require.NoError(t, err)

	schedule, err := svc.WeekScheduleFor(at(2025, time.June, 6, 12, 0)) // Friday, same week
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", schedule.WeekStart)
	assert.Equal(t, "2025-06-08", schedule.WeekEnd)
	assert.Equal(t, "2025-05-26", schedule.PrevWeek)
	assert.Equal(t, "2025-06-09", schedule.NextWeek)
	require.Len(t, schedule.Rooms, 2)

	var boardroom *services.RoomSchedule
	for i := range schedule.Rooms {
		if schedule.Rooms[i].Room.ID == room.ID {
			boardroom = &schedule.Rooms[i]
		}
	}
	require.NotNil(t, boardroom)
	require.Len(t, boardroom.Days, 7)
	assert.Equal(t, "2025-06-04", boardroom.Days[2].Date)
	assert.Len(t, boardroom.Days[2].Bookings, 1)
	assert.Empty(t, boardroom.Days[0].Bookings)
}

func TestUpcomingBookings(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")

	now := at(2025, time.June, 10, 12, 0)
	past := models.Booking{MeetingRoomID: room.ID, Title: "Past", StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour), RecurrenceID: "a"}
	future := models.Booking{MeetingRoomID: room.ID, Title: "Future", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour), RecurrenceID: "b"}
	require.NoError(t, db.Create(&past).Error)
	require.NoError(t, db.Create(&future).Error)

	upcoming, err := svc.UpcomingBookings(now)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Future", upcoming[0].Title)
}

func TestMonthlyUsagePerOffice(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewBookingService(db)
	room := createRoom(t, db, "Boardroom")
	createOffice(t, db, 3)
	createOffice(t, db, 4)

	now := at(2025, time.June, 15, 12, 0)
	three := 3
	bookings := []models.Booking{
		{MeetingRoomID: room.ID, Title: "A", OfficeNumber: &three, StartTime: at(2025, time.June, 3, 9, 0), EndTime: at(2025, time.June, 3, 10, 30), RecurrenceID: "a"},
		{MeetingRoomID: room.ID, Title: "B", OfficeNumber: &three, StartTime: at(2025, time.June, 10, 14, 0), EndTime: at(2025, time.June, 10, 15, 0), RecurrenceID: "b"},
		// previous month, must not count
		{MeetingRoomID: room.ID, Title: "C", OfficeNumber: &three, StartTime: at(2025, time.May, 10, 14, 0), EndTime: at(2025, time.May, 10, 16, 0), RecurrenceID: "c"},
	}
	require.NoError(t, db.Create(&bookings).Error)

	report, err := svc.MonthlyUsage(now)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, 3, report[0].OfficeNumber)
	assert.Equal(t, 2.5, report[0].TotalHours)
	assert.Equal(t, 4, report[1].OfficeNumber)
	assert.Zero(t, report[1].TotalHours)
}
