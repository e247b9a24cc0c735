package entity

import "regexp"

// Market identifies which provider family serves a symbol.
type Market string

const (
	// MarketDomestic covers plain tickers without an exchange suffix.
	MarketDomestic Market = "domestic"
	// MarketInternational covers tickers carrying an exchange suffix.
	MarketInternational Market = "international"
)

// intlSuffix matches an exchange suffix: a dot followed by one or two
// uppercase letters at the end of the symbol.
var intlSuffix = regexp.MustCompile(`\.[A-Z]{1,2}$`)

// MarketOf reports which market a ticker symbol belongs to. A symbol
// ending in a dot followed by one or two uppercase letters ("7203.T",
// "LLOY.L", "AIR.PA") is international; anything else, including
// lowercase or longer suffixes, is domestic. Share-class tickers such
// as "BRK.B" match the suffix form and classify as international.
func MarketOf(symbol string) Market {
	if intlSuffix.MatchString(symbol) {
		return MarketInternational
	}
	return MarketDomestic
}
