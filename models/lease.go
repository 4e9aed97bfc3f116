package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease is a tenancy agreement for one office over a date range. An office
// accumulates leases over time; IsActive marks the current occupancy.
// Cheque generation happens exactly once, at creation, through
// LeaseService.CreateLeaseAndSchedule - never on update.
type Lease struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	OfficeNumber int  `gorm:"column:office_number;index" json:"office_number"`

	CompanyName   string `gorm:"size:200" json:"company_name"`
	ContactPerson string `gorm:"size:200" json:"contact_person"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	AnnualRent      decimal.Decimal `gorm:"column:annual_rent;type:decimal(10,2)" json:"annual_rent"`
	// no column defaults here: zero values (0 cheques, inactive) are
	// meaningful and must round-trip as written
	NumberOfCheques int  `gorm:"column:number_of_cheques" json:"number_of_cheques"`
	IsActive        bool `gorm:"column:is_active" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Office  Office   `gorm:"foreignKey:OfficeNumber;references:OfficeNumber;constraint:OnDelete:CASCADE" json:"office,omitempty"`
	Cheques []Cheque `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE" json:"cheques,omitempty"`
}
