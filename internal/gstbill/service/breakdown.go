package service

import (
	"github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
)

// Decompose reverse-calculates the taxable value from a tax-inclusive amount
// and splits the tax evenly into CGST and SGST. All values stay unrounded;
// rounding happens once, per field, at render time (the two displayed halves
// may differ from the displayed tax total by 0.01 in the last place).
func Decompose(amount, ratePercent float64) (domain.Breakdown, error) {
	if amount <= 0 {
		return domain.Breakdown{}, domain.ErrNonPositiveAmount
	}
	if ratePercent < 0 {
		return domain.Breakdown{}, domain.ErrNegativeRate
	}

	taxableValue := amount / (1 + ratePercent/100)
	taxAmount := amount - taxableValue
	half := taxAmount / 2

	return domain.Breakdown{
		RatePercent:  ratePercent,
		TaxableValue: taxableValue,
		TaxAmount:    taxAmount,
		CGST:         half,
		SGST:         half,
	}, nil
}
