package utils_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-leasing-backend/models"
	"office-leasing-backend/utils"
)

func TestProposalPDF(t *testing.T) {
	office := models.Office{
		OfficeNumber: 14,
		SizeSqft:     decimal.RequireFromString("166.84"),
		AnnualRent:   108446,
	}
	data := utils.ProposalData{
		ProposalDate:    time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CompanyName:     "Acme LLC",
		PhoneNumber:     "+971 50 123 4567",
		LeaseTerm:       "1 year",
		AnnualRent:      108446,
		SecurityDeposit: "5%",
		AdminFees:       250,
	}

	out, err := utils.ProposalPDF(office, data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestAvailableOfficesPDF(t *testing.T) {
	offices := []models.Office{
		{OfficeNumber: 1, SizeSqft: decimal.RequireFromString("109.79"), AnnualRent: 71365},
		{OfficeNumber: 2, SizeSqft: decimal.RequireFromString("92.57"), AnnualRent: 60170},
	}

	out, err := utils.AvailableOfficesPDF(offices, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestAvailableOfficesPDFEmptyList(t *testing.T) {
	out, err := utils.AvailableOfficesPDF(nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
