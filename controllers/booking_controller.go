package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"office-leasing-backend/middleware"
	"office-leasing-backend/services"
	"office-leasing-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// Calendar serves the weekly room calendar. ?day selects the week; a
// missing or malformed value falls back to today.
func (ctrl *BookingController) Calendar(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("day"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			day = parsed
		}
	}

	schedule, err := ctrl.BookingSvc.WeekScheduleFor(day)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}

type createBookingPayload struct {
	MeetingRoomID uint      `json:"meeting_room_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	OfficeNumber  *int      `json:"office_number"`
	Recurrence    string    `json:"recurrence"`
	EndRecurrence string    `json:"end_recurrence"`
}

// CreateBooking creates a single booking or a recurring batch. The whole
// batch is atomic: one conflicting instance rejects everything.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	req := services.BookingRequest{
		MeetingRoomID: payload.MeetingRoomID,
		Title:         payload.Title,
		StartTime:     payload.StartTime,
		EndTime:       payload.EndTime,
		OfficeNumber:  payload.OfficeNumber,
		Recurrence:    payload.Recurrence,
	}
	if payload.EndRecurrence != "" {
		endRecurrence, err := time.Parse("2006-01-02", payload.EndRecurrence)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end_recurrence, expected YYYY-MM-DD")
			return
		}
		req.EndRecurrence = &endRecurrence
	}

	bookings, err := ctrl.BookingSvc.CreateBookings(req, middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bookings)
}

// Reception lists upcoming bookings for the front desk.
func (ctrl *BookingController) Reception(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.UpcomingBookings(time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// UsageReport returns per-office booked hours for the current month.
func (ctrl *BookingController) UsageReport(c *gin.Context) {
	report, err := ctrl.BookingSvc.MonthlyUsage(time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}
