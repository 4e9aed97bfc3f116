package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"office-leasing-backend/models"
)

// ChequeService handles cheque lifecycle updates and the accounting
// dashboard aggregations.
type ChequeService struct {
	DB *gorm.DB
}

func NewChequeService(db *gorm.DB) *ChequeService {
	return &ChequeService{DB: db}
}

// UpdateStatus moves a cheque to newStatus and stamps the acting user and
// time as audit metadata. Unknown status values are rejected without
// touching the row. Any valid status may move to any other; there is no
// transition graph.
func (s *ChequeService) UpdateStatus(chequeID uint, newStatus string, actingUser *models.User) (*models.Cheque, error) {
	if !models.IsValidChequeStatus(newStatus) {
		return nil, validationErrorf("invalid cheque status %q", newStatus)
	}

	var cheque models.Cheque
	if err := s.DB.First(&cheque, chequeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load cheque %d: %w", chequeID, err)
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":          newStatus,
		"last_updated_at": now,
	}
	if actingUser != nil {
		updates["last_updated_by_id"] = actingUser.ID
	}
	if err := s.DB.Model(&cheque).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update cheque %d: %w", chequeID, err)
	}
	return &cheque, nil
}

// MonthCashflow is one bar of the dashboard cashflow chart.
type MonthCashflow struct {
	Month string          `json:"month"` // e.g. "Jan 2025"
	Total decimal.Decimal `json:"total"`
}

// StatusCount is one slice of the status distribution chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardSummary is the year-scoped accounting dashboard. Rented value
// and occupancy are current-state metrics and ignore the selected year.
type DashboardSummary struct {
	SelectedYear   int   `json:"selected_year"`
	AvailableYears []int `json:"available_years"`

	Cheques []models.Cheque `json:"cheques"`

	StatusCounts    []StatusCount   `json:"status_counts"`
	MonthlyCashflow []MonthCashflow `json:"monthly_cashflow"`

	TotalRentedValue decimal.Decimal `json:"total_rented_value"`
	UpcomingCashflow decimal.Decimal `json:"upcoming_cashflow"`

	OccupancyRate float64 `json:"occupancy_rate"`
	RentedOffices int64   `json:"rented_offices_count"`
	TotalOffices  int64   `json:"total_offices_count"`
}

// DashboardForYear aggregates cheque and occupancy metrics for the given
// year. Passing 0 selects the current year.
func (s *ChequeService) DashboardForYear(year int) (*DashboardSummary, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	summary := &DashboardSummary{
		SelectedYear:     year,
		TotalRentedValue: decimal.Zero,
		UpcomingCashflow: decimal.Zero,
	}

	years, err := s.availableYears()
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		years = []int{time.Now().Year()}
	}
	summary.AvailableYears = years

	// Detailed list for the table: every cheque of the year, history
	// included, in due-date order.
	err = s.DB.
		Preload("Lease.Office").
		Preload("LastUpdatedBy").
		Where("due_date >= ? AND due_date < ?", yearStart, yearEnd).
		Order("due_date").
		Find(&summary.Cheques).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cheques for %d: %w", year, err)
	}

	err = s.DB.Model(&models.Cheque{}).
		Select("status, COUNT(*) AS count").
		Where("due_date >= ? AND due_date < ?", yearStart, yearEnd).
		Group("status").
		Scan(&summary.StatusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count cheque statuses: %w", err)
	}

	// Monthly sums and the outstanding total are folded in Go so the
	// decimal amounts stay exact across database dialects.
	byMonth := map[time.Time]decimal.Decimal{}
	for _, c := range summary.Cheques {
		m := time.Date(c.DueDate.Year(), c.DueDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[m] = byMonth[m].Add(c.Amount)
		if c.Status == models.ChequePending || c.Status == models.ChequeDue {
			summary.UpcomingCashflow = summary.UpcomingCashflow.Add(c.Amount)
		}
	}
	months := make([]time.Time, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	for _, m := range months {
		summary.MonthlyCashflow = append(summary.MonthlyCashflow, MonthCashflow{
			Month: m.Format("Jan 2006"),
			Total: byMonth[m],
		})
	}

	// All-time value of active leases; this is a current-state metric.
	var activeRents []decimal.Decimal
	err = s.DB.Model(&models.Lease{}).
		Where("is_active = ?", true).
		Pluck("annual_rent", &activeRents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum active leases: %w", err)
	}
	for _, r := range activeRents {
		summary.TotalRentedValue = summary.TotalRentedValue.Add(r)
	}

	if err := s.DB.Model(&models.Office{}).Count(&summary.TotalOffices).Error; err != nil {
		return nil, err
	}
	err = s.DB.Model(&models.Office{}).
		Where("status = ?", models.OfficeRented).
		Count(&summary.RentedOffices).Error
	if err != nil {
		return nil, err
	}
	if summary.TotalOffices > 0 {
		rate := float64(summary.RentedOffices) / float64(summary.TotalOffices) * 100
		summary.OccupancyRate = math.Round(rate*10) / 10 // one decimal place
	}

	return summary, nil
}

func (s *ChequeService) availableYears() ([]int, error) {
	var dueDates []time.Time
	if err := s.DB.Model(&models.Cheque{}).Order("due_date").Pluck("due_date", &dueDates).Error; err != nil {
		return nil, fmt.Errorf("failed to list cheque years: %w", err)
	}
	seen := map[int]bool{}
	years := []int{}
	for _, d := range dueDates {
		if !seen[d.Year()] {
			seen[d.Year()] = true
			years = append(years, d.Year())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// ReportRows returns every cheque still in flight (anything not Cleared)
// with its lease and office attached, ordered by due date. This feeds the
// CSV export.
func (s *ChequeService) ReportRows() ([]models.Cheque, error) {
	var cheques []models.Cheque
	err := s.DB.
		Preload("Lease.Office").
		Where("status <> ?", models.ChequeCleared).
		Order("due_date").
		Find(&cheques).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load report cheques: %w", err)
	}
	return cheques, nil
}
