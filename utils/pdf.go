package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"office-leasing-backend/models"
)

// ProposalData carries the fields of a lease proposal after validation.
type ProposalData struct {
	ProposalDate    time.Time
	CompanyName     string
	PhoneNumber     string
	LeaseTerm       string
	AnnualRent      int
	SecurityDeposit string
	AdminFees       int
}

// ProposalPDF renders a lease proposal for a single office as a PDF
// document and returns its bytes.
func ProposalPDF(office models.Office, p ProposalData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Lease Proposal", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", p.ProposalDate.Format("02/01/2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Prepared for %s", p.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Phone: %s", p.PhoneNumber), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Office", fmt.Sprintf("%d", office.OfficeNumber)},
		{"Floor Area (sq ft)", office.SizeSqft.StringFixed(2)},
		{"Proposed Lease Term", p.LeaseTerm},
		{"Annual Rent (AED)", fmt.Sprintf("%d", p.AnnualRent)},
		{"Security Deposit", p.SecurityDeposit},
		{"Admin Fees (AED)", fmt.Sprintf("%d", p.AdminFees)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(70, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "This proposal is valid for 30 days from the date above and is subject to contract.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render proposal pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// AvailableOfficesPDF renders the list of vacant offices as a PDF table.
func AvailableOfficesPDF(offices []models.Office, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Available Offices", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", generated.Format("02/01/2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 8, "Office", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Size (sq ft)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Annual Rent (AED)", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, o := range offices {
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", o.OfficeNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 7, o.SizeSqft.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%d", o.AnnualRent), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render offices pdf: %w", err)
	}
	return buf.Bytes(), nil
}
