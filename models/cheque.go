package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ChequePending   = "Pending"   // not yet due
	ChequeDue       = "Due"       // due date has arrived
	ChequeDeposited = "Deposited" // submitted to the bank
	ChequeCleared   = "Cleared"   // funds received
	ChequeBounced   = "Bounced"   // cheque returned
)

// ChequeStatuses lists the valid lifecycle states in display order.
var ChequeStatuses = []string{
	ChequePending,
	ChequeDue,
	ChequeDeposited,
	ChequeCleared,
	ChequeBounced,
}

func IsValidChequeStatus(s string) bool {
	for _, v := range ChequeStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Cheque is one scheduled rent payment instrument tied to a lease. A batch
// is created atomically at lease creation; each cheque's status is then
// mutated independently by accounting staff. There is no transition graph:
// any status may move to any other.
type Cheque struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	LeaseID uint `gorm:"column:lease_id;index" json:"lease_id"`

	ChequeNumber string `gorm:"column:cheque_number;size:100" json:"cheque_number"`
	BankName     string `gorm:"column:bank_name;size:200" json:"bank_name"`

	DueDate time.Time       `gorm:"column:due_date;index" json:"due_date"`
	Amount  decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Status  string          `gorm:"size:20;default:Pending" json:"status"`

	LastUpdatedByID *uint      `gorm:"column:last_updated_by_id" json:"last_updated_by_id,omitempty"`
	LastUpdatedAt   *time.Time `gorm:"column:last_updated_at" json:"last_updated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Lease         Lease `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE" json:"lease,omitempty"`
	LastUpdatedBy *User `gorm:"foreignKey:LastUpdatedByID;constraint:OnDelete:SET NULL" json:"last_updated_by,omitempty"`
}
