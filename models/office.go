package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	OfficeAvailable = "available"
	OfficeRented    = "rented"
)

// Office is the stable root entity of the inventory. The office number is
// the natural primary key and the external identifier callers rely on.
// Status is administered by managers, never derived from leases.
type Office struct {
	OfficeNumber int             `gorm:"column:office_number;primaryKey;autoIncrement:false" json:"office_number"`
	SizeSqft     decimal.Decimal `gorm:"column:size_sqft;type:decimal(7,2)" json:"size_sqft"`
	AnnualRent   int             `gorm:"column:annual_rent" json:"annual_rent"`
	Status       string          `gorm:"size:10;default:available" json:"status"`

	ExpiryDate    *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	CompanyName   *string    `gorm:"size:200" json:"company_name,omitempty"`
	ContactPerson *string    `gorm:"size:200" json:"contact_person,omitempty"`
	ContactEmail  *string    `gorm:"size:254" json:"contact_email,omitempty"`
	ContactPhone  *string    `gorm:"size:50" json:"contact_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Leases   []Lease   `gorm:"foreignKey:OfficeNumber;references:OfficeNumber;constraint:OnDelete:CASCADE" json:"leases,omitempty"`
	Bookings []Booking `gorm:"foreignKey:OfficeNumber;references:OfficeNumber;constraint:OnDelete:CASCADE" json:"-"`
}

func (o Office) Label() string {
	return fmt.Sprintf("Office %d", o.OfficeNumber)
}

func IsValidOfficeStatus(s string) bool {
	return s == OfficeAvailable || s == OfficeRented
}
