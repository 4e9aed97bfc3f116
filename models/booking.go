package models

import (
	"time"
)

// Booking reserves a meeting room for a half-open interval
// [StartTime, EndTime). For a given room no two stored bookings overlap;
// BookingService enforces that on every write. All instances generated
// from one recurring request share a RecurrenceID.
type Booking struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	MeetingRoomID uint `gorm:"column:meeting_room_id;index" json:"meeting_room_id"`

	Title     string    `gorm:"size:200" json:"title"`
	StartTime time.Time `gorm:"column:start_time;index" json:"start_time"`
	EndTime   time.Time `gorm:"column:end_time" json:"end_time"`

	OfficeNumber *int  `gorm:"column:office_number;index" json:"office_number,omitempty"`
	BookedByID   *uint `gorm:"column:booked_by_id" json:"booked_by_id,omitempty"`

	RecurrenceID string `gorm:"column:recurrence_id;size:36;index" json:"recurrence_id"`

	CreatedAt time.Time `json:"created_at"`

	MeetingRoom MeetingRoom `gorm:"foreignKey:MeetingRoomID;constraint:OnDelete:CASCADE" json:"meeting_room,omitempty"`
	Office      *Office     `gorm:"foreignKey:OfficeNumber;references:OfficeNumber;constraint:OnDelete:CASCADE" json:"office,omitempty"`
	BookedBy    *User       `gorm:"foreignKey:BookedByID;constraint:OnDelete:SET NULL" json:"booked_by,omitempty"`
}
