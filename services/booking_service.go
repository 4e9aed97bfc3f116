package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"office-leasing-backend/models"
)

// Recurrence modes accepted by booking creation.
const (
	RecurrenceNone   = "none"
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
)

// BookingService owns meeting-room reservations: non-overlap enforcement
// and recurrence expansion.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingRequest is one booking submission; with a recurrence mode it is
// the template the whole series is expanded from.
type BookingRequest struct {
	MeetingRoomID uint
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	OfficeNumber  *int
	Recurrence    string
	EndRecurrence *time.Time
}

// Validate reports a ValidationError when the interval is inverted or
// overlaps another booking in the same room. Intervals are half-open:
// a booking ending exactly when another starts does not conflict.
// excludeID skips the booking's own row when validating an update.
func (s *BookingService) Validate(roomID uint, start, end time.Time, excludeID uint) error {
	var room models.MeetingRoom
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load meeting room %d: %w", roomID, err)
	}
	return validateInterval(s.DB, &room, start, end, excludeID)
}

func validateInterval(db *gorm.DB, room *models.MeetingRoom, start, end time.Time, excludeID uint) error {
	if !start.Before(end) {
		return validationErrorf("end time must be after start time")
	}

	// chain on a cloned statement: callers reuse one handle across a whole
	// batch and the conflict scan must not leave its conditions on it
	q := db.Session(&gorm.Session{}).
		Where("meeting_room_id = ? AND start_time < ? AND end_time > ?", room.ID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflicts []models.Booking
	if err := q.Limit(1).Find(&conflicts).Error; err != nil {
		return fmt.Errorf("failed to scan for conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return validationErrorf("this time slot in %q is already booked, please choose a different time", room.Name)
	}
	return nil
}

// ExpandRecurrence turns a request into its concrete booking instances.
// Mode none produces exactly the template. Daily and weekly modes shift
// the template by 1 or 7 days per instance while the instance's start
// date is on or before the end-recurrence date (inclusive). All instances
// share one freshly minted recurrence identifier.
func ExpandRecurrence(req BookingRequest) ([]models.Booking, error) {
	mode := req.Recurrence
	if mode == "" {
		mode = RecurrenceNone
	}
	if mode != RecurrenceNone && mode != RecurrenceDaily && mode != RecurrenceWeekly {
		return nil, validationErrorf("unknown recurrence mode %q", mode)
	}

	groupID := uuid.NewString()

	template := models.Booking{
		MeetingRoomID: req.MeetingRoomID,
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		OfficeNumber:  req.OfficeNumber,
		RecurrenceID:  groupID,
	}

	if mode == RecurrenceNone || req.EndRecurrence == nil {
		return []models.Booking{template}, nil
	}

	shift := 24 * time.Hour
	if mode == RecurrenceWeekly {
		shift = 7 * 24 * time.Hour
	}
	until := startOfDay(*req.EndRecurrence)

	var instances []models.Booking
	start, end := req.StartTime, req.EndTime
	for !startOfDay(start).After(until) {
		b := template
		b.StartTime = start
		b.EndTime = end
		instances = append(instances, b)
		start = start.Add(shift)
		end = end.Add(shift)
	}
	return instances, nil
}

// CreateBookings validates and persists a booking request, expanding
// recurrence into a single atomic batch. Every instance is checked
// against stored bookings (re-checked under a row lock inside the
// transaction, which narrows the check-then-insert race) and against the
// earlier instances of its own batch; any conflict aborts the whole
// batch with no partial rows.
func (s *BookingService) CreateBookings(req BookingRequest, user *models.User) ([]models.Booking, error) {
	var room models.MeetingRoom
	if err := s.DB.First(&room, req.MeetingRoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load meeting room %d: %w", req.MeetingRoomID, err)
	}

	if req.OfficeNumber != nil {
		var office models.Office
		if err := s.DB.First(&office, "office_number = ?", *req.OfficeNumber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load office %d: %w", *req.OfficeNumber, err)
		}
	}

	instances, err := ExpandRecurrence(req)
	if err != nil {
		return nil, err
	}

	officeNumber := req.OfficeNumber
	if officeNumber == nil && user != nil {
		// Tenants booking for themselves get their office attached.
		var tenantOffice models.Office
		err := s.DB.
			Where("contact_person = ?", user.FullName).
			Order("office_number").
			First(&tenantOffice).Error
		if err == nil {
			officeNumber = &tenantOffice.OfficeNumber
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve tenant office: %w", err)
		}
	}
	for i := range instances {
		instances[i].OfficeNumber = officeNumber
		if user != nil {
			id := user.ID
			instances[i].BookedByID = &id
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range instances {
			// fresh handle per instance; sqlite (used in tests) has no
			// row locks
			locked := tx
			if tx.Dialector.Name() == "mysql" {
				locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			if err := validateInterval(locked, &room, instances[i].StartTime, instances[i].EndTime, 0); err != nil {
				return err
			}
			// long instances can run into the next one in the same batch
			for j := 0; j < i; j++ {
				if instances[j].StartTime.Before(instances[i].EndTime) && instances[j].EndTime.After(instances[i].StartTime) {
					return validationErrorf("recurring instances overlap each other in %q", room.Name)
				}
			}
		}
		if err := tx.Create(&instances).Error; err != nil {
			return fmt.Errorf("failed to create booking batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instances, nil
}

// DaySchedule is one room's bookings for one calendar day.
type DaySchedule struct {
	Date     string           `json:"date"`
	Bookings []models.Booking `json:"bookings"`
}

// RoomSchedule is one room's week.
type RoomSchedule struct {
	Room models.MeetingRoom `json:"room"`
	Days []DaySchedule      `json:"days"`
}

// WeekSchedule is the weekly calendar: Monday through Sunday of the week
// containing the requested day, with cursors to the adjacent weeks.
type WeekSchedule struct {
	WeekStart string         `json:"week_start"`
	WeekEnd   string         `json:"week_end"`
	PrevWeek  string         `json:"prev_week"`
	NextWeek  string         `json:"next_week"`
	Rooms     []RoomSchedule `json:"rooms"`
}

// WeekScheduleFor builds the calendar for the week containing day.
func (s *BookingService) WeekScheduleFor(day time.Time) (*WeekSchedule, error) {
	weekStart := startOfWeek(day)
	weekEnd := weekStart.AddDate(0, 0, 6)

	var rooms []models.MeetingRoom
	if err := s.DB.Order("name").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list meeting rooms: %w", err)
	}

	var bookings []models.Booking
	err := s.DB.
		Preload("MeetingRoom").
		Preload("Office").
		Preload("BookedBy").
		Where("start_time >= ? AND start_time < ?", weekStart, weekStart.AddDate(0, 0, 7)).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load week bookings: %w", err)
	}

	byRoomDay := map[uint]map[string][]models.Booking{}
	for _, b := range bookings {
		key := startOfDay(b.StartTime).Format("2006-01-02")
		if byRoomDay[b.MeetingRoomID] == nil {
			byRoomDay[b.MeetingRoomID] = map[string][]models.Booking{}
		}
		byRoomDay[b.MeetingRoomID][key] = append(byRoomDay[b.MeetingRoomID][key], b)
	}

	schedule := &WeekSchedule{
		WeekStart: weekStart.Format("2006-01-02"),
		WeekEnd:   weekEnd.Format("2006-01-02"),
		PrevWeek:  weekStart.AddDate(0, 0, -7).Format("2006-01-02"),
		NextWeek:  weekStart.AddDate(0, 0, 7).Format("2006-01-02"),
	}
	for _, room := range rooms {
		rs := RoomSchedule{Room: room}
		for i := 0; i < 7; i++ {
			date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
			dayBookings := byRoomDay[room.ID][date]
			if dayBookings == nil {
				dayBookings = []models.Booking{}
			}
			rs.Days = append(rs.Days, DaySchedule{Date: date, Bookings: dayBookings})
		}
		schedule.Rooms = append(schedule.Rooms, rs)
	}
	return schedule, nil
}

// UpcomingBookings lists every booking starting at or after now, soonest
// first, for the reception desk.
func (s *BookingService) UpcomingBookings(now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("MeetingRoom").
		Preload("Office").
		Preload("BookedBy").
		Where("start_time >= ?", now).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming bookings: %w", err)
	}
	return bookings, nil
}

// OfficeUsage is one row of the monthly usage report.
type OfficeUsage struct {
	OfficeNumber int     `json:"office_number"`
	TotalHours   float64 `json:"total_hours"`
}

// MonthlyUsage totals the meeting-room hours booked per office for the
// calendar month containing now. Offices with no bookings report zero.
func (s *BookingService) MonthlyUsage(now time.Time) ([]OfficeUsage, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var offices []models.Office
	if err := s.DB.Order("office_number").Find(&offices).Error; err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	var bookings []models.Booking
	err := s.DB.
		Where("office_number IS NOT NULL AND start_time >= ? AND start_time < ?", monthStart, monthEnd).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load month bookings: %w", err)
	}

	hoursByOffice := map[int]float64{}
	for _, b := range bookings {
		hoursByOffice[*b.OfficeNumber] += b.EndTime.Sub(b.StartTime).Hours()
	}

	report := make([]OfficeUsage, 0, len(offices))
	for _, o := range offices {
		report = append(report, OfficeUsage{
			OfficeNumber: o.OfficeNumber,
			TotalHours:   math.Round(hoursByOffice[o.OfficeNumber]*100) / 100,
		})
	}
	return report, nil
}
