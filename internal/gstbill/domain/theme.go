package domain

// Seller identity, remittance and layout constants. Inert presentation data;
// single-seller deployment, so these are compile-time constants rather than
// configuration.
const (
	// SAC 998231: corporate tax consulting and preparation services.
	SACCode = "998231"

	SellerName      = "TaxSarthi Legal & Tax Advisors LLP"
	SellerAddress   = "214, Second Floor, Laxmi Nagar District Centre, New Delhi - 110092"
	SellerPhone     = "+91 11 4054 2316"
	SellerEmail     = "billing@taxsarthi.in"
	SellerGSTIN     = "07AAXCS1234A1Z5"
	SellerState     = "Delhi"
	SellerStateCode = "07"

	BankName      = "HDFC Bank, Laxmi Nagar Branch"
	AccountNumber = "50200048317265"
	IFSCCode      = "HDFC0000553"

	FooterNote = "This is a computer generated tax invoice and does not require a signature."

	AddressFallback = "Address not provided"
	PhoneFallback   = "Phone not provided"
)

// SellerParty returns the fixed seller block.
func SellerParty() Party {
	return Party{
		Name:      SellerName,
		Address:   SellerAddress,
		Phone:     SellerPhone,
		Email:     SellerEmail,
		GSTIN:     SellerGSTIN,
		State:     SellerState,
		StateCode: SellerStateCode,
	}
}
