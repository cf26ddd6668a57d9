package service

import (
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
	"github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
)

const (
	invoiceNumberPrefix = "GST-"
	invoiceDateLayout   = "02/01/2006"
	idSuffixLen         = 8
)

// BuildDocument assembles the printable bill from an order and its tax
// breakdown. Summary and TaxRow are both filled from the same Breakdown so
// the two presentations of the numbers can never disagree.
func BuildDocument(order *orderdomain.Order, breakdown domain.Breakdown) domain.Document {
	buyer := domain.Party{
		Name:    order.CustomerName,
		Address: order.CustomerAddress,
		Phone:   order.CustomerPhone,
		Email:   order.CustomerEmail,
		State:   domain.SellerState,
	}
	if buyer.Address == "" {
		buyer.Address = domain.AddressFallback
	}
	if buyer.Phone == "" {
		buyer.Phone = domain.PhoneFallback
	}

	description := order.ServiceName
	if order.SubServiceName != "" {
		description += " - " + order.SubServiceName
	}

	halfRate := breakdown.RatePercent / 2

	return domain.Document{
		Number: invoiceNumberPrefix + idSuffix(order.ID),
		Date:   order.CreatedAt.Format(invoiceDateLayout),
		Seller: domain.SellerParty(),
		Buyer:  buyer,
		Item: domain.LineItem{
			SNo:         1,
			Description: description,
			SAC:         domain.SACCode,
			Qty:         1,
			Rate:        breakdown.TaxableValue,
			RatePercent: breakdown.RatePercent,
			Amount:      breakdown.TaxableValue,
		},
		Summary: domain.Summary{
			SubTotal: breakdown.TaxableValue,
			CGST:     breakdown.CGST,
			SGST:     breakdown.SGST,
			Total:    order.Amount,
		},
		TaxRow: domain.TaxRow{
			SAC:             domain.SACCode,
			TaxableValue:    breakdown.TaxableValue,
			CGSTRatePercent: halfRate,
			SGSTRatePercent: halfRate,
			CGSTAmount:      breakdown.CGST,
			SGSTAmount:      breakdown.SGST,
			TotalTax:        breakdown.TaxAmount,
		},
		AmountWords: AmountInWords(order.Amount),
		Bank: domain.BankDetails{
			BankName:      domain.BankName,
			AccountNumber: domain.AccountNumber,
			IFSC:          domain.IFSCCode,
		},
		FooterNote: domain.FooterNote,
	}
}

// ExportFilename names the downloaded artifact for an order.
func ExportFilename(orderID string) string {
	return "GST_" + idSuffix(orderID) + ".pdf"
}

// idSuffix returns the last eight characters of an order ID, or the whole ID
// when shorter.
func idSuffix(id string) string {
	if len(id) <= idSuffixLen {
		return id
	}
	return id[len(id)-idSuffixLen:]
}
