package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"office-leasing-backend/models"
)

// OfficeService exposes the office inventory: read access for the floor
// plan plus the administrative status mutation managers perform.
type OfficeService struct {
	DB *gorm.DB
}

func NewOfficeService(db *gorm.DB) *OfficeService {
	return &OfficeService{DB: db}
}

func (s *OfficeService) List() ([]models.Office, error) {
	var offices []models.Office
	if err := s.DB.Order("office_number").Find(&offices).Error; err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	return offices, nil
}

func (s *OfficeService) Get(officeNumber int) (*models.Office, error) {
	var office models.Office
	if err := s.DB.First(&office, "office_number = ?", officeNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load office %d: %w", officeNumber, err)
	}
	return &office, nil
}

// AvailableOffices feeds the downloadable list of vacant units.
func (s *OfficeService) AvailableOffices() ([]models.Office, error) {
	var offices []models.Office
	err := s.DB.
		Where("status = ?", models.OfficeAvailable).
		Order("office_number").
		Find(&offices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available offices: %w", err)
	}
	return offices, nil
}

// Statistics reports the available/rented split for the floor plan.
type Statistics struct {
	AvailableCount int64 `json:"available_count"`
	RentedCount    int64 `json:"rented_count"`
}

func (s *OfficeService) Statistics() (*Statistics, error) {
	var stats Statistics
	err := s.DB.Model(&models.Office{}).
		Where("status = ?", models.OfficeAvailable).
		Count(&stats.AvailableCount).Error
	if err != nil {
		return nil, err
	}
	err = s.DB.Model(&models.Office{}).
		Where("status = ?", models.OfficeRented).
		Count(&stats.RentedCount).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// OfficeUpdate carries the administered fields a manager may set. Nil
// fields are left untouched.
type OfficeUpdate struct {
	Status        *string    `json:"status,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CompanyName   *string    `json:"company_name,omitempty"`
	ContactPerson *string    `json:"contact_person,omitempty"`
	ContactEmail  *string    `json:"contact_email,omitempty"`
	ContactPhone  *string    `json:"contact_phone,omitempty"`
}

// Update applies an administrative mutation to an office. Occupancy
// status is set here by managers, deliberately not recomputed from
// leases.
func (s *OfficeService) Update(officeNumber int, upd OfficeUpdate) (*models.Office, error) {
	office, err := s.Get(officeNumber)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Status != nil {
		if !models.IsValidOfficeStatus(*upd.Status) {
			return nil, validationErrorf("invalid office status %q", *upd.Status)
		}
		updates["status"] = *upd.Status
	}
	if upd.ExpiryDate != nil {
		updates["expiry_date"] = *upd.ExpiryDate
	}
	if upd.CompanyName != nil {
		updates["company_name"] = *upd.CompanyName
	}
	if upd.ContactPerson != nil {
		updates["contact_person"] = *upd.ContactPerson
	}
	if upd.ContactEmail != nil {
		updates["contact_email"] = *upd.ContactEmail
	}
	if upd.ContactPhone != nil {
		updates["contact_phone"] = *upd.ContactPhone
	}
	if len(updates) == 0 {
		return office, nil
	}

	if err := s.DB.Model(office).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update office %d: %w", officeNumber, err)
	}
	return office, nil
}
