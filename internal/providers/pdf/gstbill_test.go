package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
)

func testDocument() domain.Document {
	return domain.Document{
		Number: "GST-23def456",
		Date:   "14/08/2026",
		Seller: domain.SellerParty(),
		Buyer: domain.Party{
			Name:    "Rohit Malhotra",
			Address: "C-64, Preet Vihar, New Delhi",
			Phone:   "+91 98100 23415",
			State:   domain.SellerState,
		},
		Item: domain.LineItem{
			SNo:         1,
			Description: "GST Registration",
			SAC:         domain.SACCode,
			Qty:         1,
			Rate:        10000,
			RatePercent: 18,
			Amount:      10000,
		},
		Summary: domain.Summary{SubTotal: 10000, CGST: 900, SGST: 900, Total: 11800},
		TaxRow: domain.TaxRow{
			SAC:             domain.SACCode,
			TaxableValue:    10000,
			CGSTRatePercent: 9,
			SGSTRatePercent: 9,
			CGSTAmount:      900,
			SGSTAmount:      900,
			TotalTax:        1800,
		},
		AmountWords: "Eleven Thousand Eight Hundred Rupees Only",
		Bank: domain.BankDetails{
			BankName:      domain.BankName,
			AccountNumber: domain.AccountNumber,
			IFSC:          domain.IFSCCode,
		},
		FooterNote: domain.FooterNote,
	}
}

func TestRender(t *testing.T) {
	r := New()

	pdf, err := r.Render(context.Background(), testDocument())
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_Deterministic(t *testing.T) {
	r := New()
	doc := testDocument()

	first, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "10000.00", money(10000))
	assert.Equal(t, "7.63", money(7.6271186440678))
	assert.Equal(t, "0.00", money(0))
}
