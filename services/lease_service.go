package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"office-leasing-backend/models"
)

// LeaseService owns lease records and the one-time cheque schedule
// derived from them.
type LeaseService struct {
	DB *gorm.DB
}

func NewLeaseService(db *gorm.DB) *LeaseService {
	return &LeaseService{DB: db}
}

// LeaseInput is everything needed to create a lease.
type LeaseInput struct {
	OfficeNumber    int
	CompanyName     string
	ContactPerson   string
	StartDate       time.Time
	EndDate         time.Time
	AnnualRent      decimal.Decimal
	NumberOfCheques int
	IsActive        bool
}

// BuildChequeSchedule derives the cheque batch for a freshly created
// lease. With N requested cheques each is annual_rent / N rounded to two
// decimal places; the division remainder is not redistributed, so the
// summed amounts may miss the annual rent by up to N-1 cents. Consecutive
// due dates are floor(12/N) calendar months apart starting at the lease
// start date (for N > 12 the interval truncates to zero). N <= 0 means
// "no scheduled cheques" and yields an empty batch.
func BuildChequeSchedule(lease *models.Lease) []models.Cheque {
	n := lease.NumberOfCheques
	if n <= 0 {
		return nil
	}

	amount := lease.AnnualRent.Div(decimal.NewFromInt(int64(n))).Round(2)
	intervalMonths := 12 / n

	cheques := make([]models.Cheque, 0, n)
	for i := 0; i < n; i++ {
		cheques = append(cheques, models.Cheque{
			LeaseID: lease.ID,
			DueDate: AddMonthsClamped(lease.StartDate, i*intervalMonths),
			Amount:  amount,
			Status:  models.ChequePending,
		})
	}
	return cheques
}

// CreateLeaseAndSchedule inserts the lease and its cheque batch in a
// single transaction. This is the only place cheques are generated; lease
// updates never regenerate the schedule. A mid-batch failure rolls the
// whole lease back.
func (s *LeaseService) CreateLeaseAndSchedule(input LeaseInput) (*models.Lease, error) {
	if input.NumberOfCheques < 0 {
		return nil, validationErrorf("number of cheques must not be negative")
	}

	var office models.Office
	if err := s.DB.First(&office, "office_number = ?", input.OfficeNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load office %d: %w", input.OfficeNumber, err)
	}

	lease := models.Lease{
		OfficeNumber:    input.OfficeNumber,
		CompanyName:     input.CompanyName,
		ContactPerson:   input.ContactPerson,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		AnnualRent:      input.AnnualRent,
		NumberOfCheques: input.NumberOfCheques,
		IsActive:        input.IsActive,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lease).Error; err != nil {
			return fmt.Errorf("failed to create lease: %w", err)
		}

		cheques := BuildChequeSchedule(&lease)
		if len(cheques) == 0 {
			return nil
		}
		if err := tx.Create(&cheques).Error; err != nil {
			return fmt.Errorf("failed to create cheque batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Cheques").First(&lease, lease.ID).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

// GetLease retrieves one lease with its cheques, ordered by due date.
func (s *LeaseService) GetLease(id uint) (*models.Lease, error) {
	var lease models.Lease
	err := s.DB.
		Preload("Cheques", func(db *gorm.DB) *gorm.DB { return db.Order("due_date") }).
		Preload("Office").
		First(&lease, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lease, nil
}

// ListLeasesForOffice returns the office's lease history, newest first.
func (s *LeaseService) ListLeasesForOffice(officeNumber int) ([]models.Lease, error) {
	var leases []models.Lease
	err := s.DB.
		Where("office_number = ?", officeNumber).
		Order("start_date DESC").
		Find(&leases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	return leases, nil
}
