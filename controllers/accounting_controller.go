package controllers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"office-leasing-backend/middleware"
	"office-leasing-backend/services"
	"office-leasing-backend/utils"
)

type AccountingController struct {
	ChequeSvc *services.ChequeService
	LeaseSvc  *services.LeaseService
}

func NewAccountingController(cheques *services.ChequeService, leases *services.LeaseService) *AccountingController {
	return &AccountingController{ChequeSvc: cheques, LeaseSvc: leases}
}

// Dashboard serves the year-scoped cheque dashboard. A missing or
// malformed ?year falls back to the current year.
func (ctrl *AccountingController) Dashboard(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = parsed
		}
	}

	summary, err := ctrl.ChequeSvc.DashboardForYear(year)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

type updateChequeStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateChequeStatus applies an explicit status transition. Invalid status
// values leave the stored row untouched and come back as 422.
func (ctrl *AccountingController) UpdateChequeStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cheque id")
		return
	}

	var payload updateChequeStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status field required")
		return
	}

	cheque, err := ctrl.ChequeSvc.UpdateStatus(uint(id), payload.Status, middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cheque)
}

// DownloadReport streams the CSV of all cheques not yet cleared.
func (ctrl *AccountingController) DownloadReport(c *gin.Context) {
	cheques, err := ctrl.ChequeSvc.ReportRows()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="cheques_report.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Office", "Lease ID", "Due Date", "Amount", "Status", "Cheque Number", "Bank Name"})
	for _, cheque := range cheques {
		_ = w.Write([]string{
			cheque.Lease.Office.Label(),
			strconv.FormatUint(uint64(cheque.LeaseID), 10),
			cheque.DueDate.Format("2006-01-02"),
			cheque.Amount.StringFixed(2),
			cheque.Status,
			cheque.ChequeNumber,
			cheque.BankName,
		})
	}
	w.Flush()
}

type createLeasePayload struct {
	OfficeNumber    int             `json:"office_number" binding:"required"`
	CompanyName     string          `json:"company_name"`
	ContactPerson   string          `json:"contact_person"`
	StartDate       string          `json:"start_date" binding:"required"`
	EndDate         string          `json:"end_date" binding:"required"`
	AnnualRent      decimal.Decimal `json:"annual_rent" binding:"required"`
	NumberOfCheques *int            `json:"number_of_cheques"`
	IsActive        *bool           `json:"is_active"`
}

// CreateLease creates a lease and its cheque schedule in one shot. Dates
// are plain ISO dates.
func (ctrl *AccountingController) CreateLease(c *gin.Context) {
	var payload createLeasePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid lease payload: "+err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	numberOfCheques := 4
	if payload.NumberOfCheques != nil {
		numberOfCheques = *payload.NumberOfCheques
	}
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	lease, err := ctrl.LeaseSvc.CreateLeaseAndSchedule(services.LeaseInput{
		OfficeNumber:    payload.OfficeNumber,
		CompanyName:     payload.CompanyName,
		ContactPerson:   payload.ContactPerson,
		StartDate:       startDate,
		EndDate:         endDate,
		AnnualRent:      payload.AnnualRent,
		NumberOfCheques: numberOfCheques,
		IsActive:        isActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, lease)
}

// GetLease returns one lease with its cheque schedule.
func (ctrl *AccountingController) GetLease(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid lease id")
		return
	}
	lease, err := ctrl.LeaseSvc.GetLease(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, lease)
}
