package models

// MeetingRoom is a static reference entity: a bookable room with a seating
// capacity.
type MeetingRoom struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex" json:"name"`
	Capacity int    `gorm:"default:10" json:"capacity"`

	Bookings []Booking `gorm:"foreignKey:MeetingRoomID;constraint:OnDelete:CASCADE" json:"-"`
}
