package bank

import "github.com/rudrakos/finsms/parser"

// NewRegistry builds the default registry over every supported institution.
// Dispatch order matters: sender ids overlap (JIOPAY vs JIOPBS, FAB inside
// ADFAB), so broader matchers are listed after the institutions they would
// otherwise shadow.
func NewRegistry() *parser.Registry {
	return parser.NewRegistry(
		NewHDFCBank(),
		NewSBI(),
		NewDBS(),
		NewIndianBank(),
		NewFederalBank(),
		NewJuspay(),
		NewSlice(),
		NewLazyPay(),
		NewUtkarsh(),
		NewICICI(),
		NewKarnataka(),
		NewIDBI(),
		NewJupiter(),
		NewAxis(),
		NewPNB(),
		NewCanara(),
		NewBankOfBaroda(),
		NewBankOfIndia(),
		NewJioPaymentsBank(),
		NewKotak(),
		NewIDFCFirst(),
		NewUnion(),
		NewHSBC(),
		NewCentralBankOfIndia(),
		NewSouthIndian(),
		NewJK(),
		NewJioPay(),
		NewIPPB(),
		NewCityUnion(),
		NewIndianOverseas(),
		NewAirtelPaymentsBank(),
		NewIndusInd(),
		NewAMEX(),
		NewOneCard(),
		NewUCO(),
		NewAU(),
		NewYes(),
		NewBandhan(),
		NewADCB(),
		NewFAB(),
		NewCiti(),
		NewDiscover(),
		NewOldHickory(),
		NewLaxmi(),
		NewCBE(),
		NewEverest(),
		NewBancolombia(),
		NewMashreq(),
		NewCharlesSchwab(),
	)
}
