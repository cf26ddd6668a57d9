// Package domain contains the GST bill value objects. Breakdown and Document
// are transient: computed fresh per export request and never persisted.
package domain

// Breakdown splits a tax-inclusive total into its GST components.
// CGST and SGST are each exactly half of TaxAmount; the halves are computed
// with the same division so they always compare equal.
type Breakdown struct {
	RatePercent  float64
	TaxableValue float64
	TaxAmount    float64
	CGST         float64
	SGST         float64
}

// Party identifies one side of the invoice.
type Party struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	GSTIN     string
	State     string
	StateCode string
}

// LineItem is the single service row on the bill.
type LineItem struct {
	SNo         int
	Description string
	SAC         string
	Qty         int
	Rate        float64
	RatePercent float64
	Amount      float64
}

// Summary is the right-aligned totals block.
type Summary struct {
	SubTotal float64
	CGST     float64
	SGST     float64
	Total    float64
}

// TaxRow is one row of the itemized tax table. It mirrors Summary by
// construction: both views are filled from the same Breakdown value.
type TaxRow struct {
	SAC             string
	TaxableValue    float64
	CGSTRatePercent float64
	SGSTRatePercent float64
	CGSTAmount      float64
	SGSTAmount      float64
	TotalTax        float64
}

// BankDetails is the static remittance block.
type BankDetails struct {
	BankName      string
	AccountNumber string
	IFSC          string
}

// Document is a renderer-agnostic description of the printable GST bill.
type Document struct {
	Number      string
	Date        string
	Seller      Party
	Buyer       Party
	Item        LineItem
	Summary     Summary
	TaxRow      TaxRow
	AmountWords string
	Bank        BankDetails
	FooterNote  string
}

// Export is the downloadable artifact produced for one order.
type Export struct {
	Filename string
	PDF      []byte
}
