// Package currency converts money amounts between supported currencies and
// USD using a static rate table. Rates are configuration, not live data.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency describes one supported currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var supported = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "OMR", Symbol: "ر.ع.", Name: "Omani Rial"},
	{Code: "QAR", Symbol: "ر.ق", Name: "Qatari Riyal"},
}

// rates maps a currency code to how many units of it one USD buys.
var rates = map[string]decimal.Decimal{
	"USD": decimal.RequireFromString("1"),
	"AED": decimal.RequireFromString("3.67"),
	"INR": decimal.RequireFromString("83.25"),
	"PKR": decimal.RequireFromString("278.50"),
	"AUD": decimal.RequireFromString("1.52"),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"CAD": decimal.RequireFromString("1.36"),
	"OMR": decimal.RequireFromString("0.38"),
	"QAR": decimal.RequireFromString("3.64"),
}

// Supported returns the supported currency list in display order.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Rate returns the USD exchange rate for code. Unknown codes get rate 1 so
// amounts pass through unchanged instead of failing.
func Rate(code string) decimal.Decimal {
	if rate, ok := rates[normalize(code)]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

// ToUSD converts an amount in the given currency to USD.
func ToUSD(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Div(Rate(code))
}

// FromUSD converts a USD amount to the given currency.
func FromUSD(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Mul(Rate(code))
}

// Symbol returns the display symbol for code, falling back to "$".
func Symbol(code string) string {
	code = normalize(code)
	for _, c := range supported {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}

// Format renders an amount as a human-readable string with the currency's
// symbol. OMR is minted in thousandths and keeps three fraction digits;
// everything else keeps at most two.
func Format(amount decimal.Decimal, code string) string {
	places := int32(2)
	if normalize(code) == "OMR" {
		places = 3
	}

	text := amount.StringFixed(places)
	if places == 2 {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}

	return groupThousands(text) + " " + Symbol(code)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func groupThousands(text string) string {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign = "-"
		text = text[1:]
	}

	intPart := text
	fracPart := ""
	if idx := strings.Index(text, "."); idx >= 0 {
		intPart = text[:idx]
		fracPart = text[idx:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + fracPart
}
