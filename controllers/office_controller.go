package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"office-leasing-backend/services"
	"office-leasing-backend/utils"
)

type OfficeController struct {
	OfficeSvc *services.OfficeService
	LeaseSvc  *services.LeaseService
}

func NewOfficeController(offices *services.OfficeService, leases *services.LeaseService) *OfficeController {
	return &OfficeController{OfficeSvc: offices, LeaseSvc: leases}
}

func officeNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid office number")
		return 0, false
	}
	return n, true
}

func (ctrl *OfficeController) List(c *gin.Context) {
	offices, err := ctrl.OfficeSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offices)
}

func (ctrl *OfficeController) Get(c *gin.Context) {
	number, ok := officeNumberParam(c)
	if !ok {
		return
	}
	office, err := ctrl.OfficeSvc.Get(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, office)
}

// LeaseHistory lists the office's leases, newest first.
func (ctrl *OfficeController) LeaseHistory(c *gin.Context) {
	number, ok := officeNumberParam(c)
	if !ok {
		return
	}
	if _, err := ctrl.OfficeSvc.Get(number); err != nil {
		respondServiceError(c, err)
		return
	}
	leases, err := ctrl.LeaseSvc.ListLeasesForOffice(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, leases)
}

func (ctrl *OfficeController) Statistics(c *gin.Context) {
	stats, err := ctrl.OfficeSvc.Statistics()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// Update is the administrative mutation of the office record (status,
// expiry, tenant contact fields). Managers only.
func (ctrl *OfficeController) Update(c *gin.Context) {
	number, ok := officeNumberParam(c)
	if !ok {
		return
	}

	var upd services.OfficeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid office payload: "+err.Error())
		return
	}

	office, err := ctrl.OfficeSvc.Update(number, upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, office)
}

type proposalPayload struct {
	ProposalDate      string `json:"proposal_date" binding:"required"`
	CompanyName       string `json:"company_name" binding:"required"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	ProposedLeaseTerm string `json:"proposed_lease_term"`
	AnnualRent        int    `json:"annual_rent" binding:"required"`
	SecurityDeposit   string `json:"security_deposit"`
	AdminFees         *int   `json:"admin_fees"`
}

// GenerateProposal renders a lease proposal PDF for one office. The
// proposal date must not be in the past.
func (ctrl *OfficeController) GenerateProposal(c *gin.Context) {
	number, ok := officeNumberParam(c)
	if !ok {
		return
	}

	var payload proposalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid proposal payload: "+err.Error())
		return
	}

	proposalDate, err := time.Parse("2006-01-02", payload.ProposalDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid proposal_date, expected YYYY-MM-DD")
		return
	}
	today := time.Now()
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if proposalDate.Before(todayMidnight) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "proposal date must not be in the past")
		return
	}

	office, err := ctrl.OfficeSvc.Get(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	leaseTerm := payload.ProposedLeaseTerm
	if leaseTerm == "" {
		leaseTerm = "1 year"
	}
	deposit := payload.SecurityDeposit
	if deposit == "" {
		deposit = "5%"
	}
	adminFees := 250
	if payload.AdminFees != nil {
		adminFees = *payload.AdminFees
	}

	pdf, err := utils.ProposalPDF(*office, utils.ProposalData{
		ProposalDate:    proposalDate,
		CompanyName:     payload.CompanyName,
		PhoneNumber:     payload.PhoneNumber,
		LeaseTerm:       leaseTerm,
		AnnualRent:      payload.AnnualRent,
		SecurityDeposit: deposit,
		AdminFees:       adminFees,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="Lease-Proposal-Office-%d.pdf"`, office.OfficeNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// DownloadAvailableList renders the available-office inventory as a PDF.
func (ctrl *OfficeController) DownloadAvailableList(c *gin.Context) {
	offices, err := ctrl.OfficeSvc.AvailableOffices()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdf, err := utils.AvailableOfficesPDF(offices, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="Available-Offices-List.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
