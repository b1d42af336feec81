package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

var tolerance = decimal.RequireFromString("0.000001")

func within(t *testing.T, got, want decimal.Decimal) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(tolerance) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestRoundTripAllCurrencies(t *testing.T) {
	amount := decimal.RequireFromString("1234.56")
	for _, c := range Supported() {
		back := FromUSD(ToUSD(amount, c.Code), c.Code)
		if back.Sub(amount).Abs().GreaterThan(tolerance) {
			t.Errorf("%s: round trip %s -> %s", c.Code, amount, back)
		}
	}
}

func TestToUSDLinear(t *testing.T) {
	amount := decimal.RequireFromString("47.11")
	for _, k := range []int64{2, 3, 10, 100} {
		factor := decimal.NewFromInt(k)
		scaled := ToUSD(amount.Mul(factor), "INR")
		single := ToUSD(amount, "INR").Mul(factor)
		within(t, scaled, single)
	}
}

func TestUnknownCurrencyPassesThrough(t *testing.T) {
	amount := decimal.RequireFromString("99.90")
	if !ToUSD(amount, "XYZ").Equal(amount) {
		t.Fatalf("expected pass-through for unknown code, got %s", ToUSD(amount, "XYZ"))
	}
	if !FromUSD(amount, "XYZ").Equal(amount) {
		t.Fatalf("expected pass-through for unknown code, got %s", FromUSD(amount, "XYZ"))
	}
}

func TestToUSDKnownRates(t *testing.T) {
	tests := []struct {
		code   string
		amount string
		want   string
	}{
		{"USD", "400", "400"},
		{"AED", "367", "100"},
		{"EUR", "92", "100"},
		{"OMR", "0.38", "1"},
	}
	for _, tt := range tests {
		got := ToUSD(decimal.RequireFromString(tt.amount), tt.code)
		within(t, got, decimal.RequireFromString(tt.want))
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"1234.5", "USD", "1,234.5 $"},
		{"1000000", "INR", "1,000,000 ₹"},
		{"12.345", "OMR", "12.345 ر.ع."},
		{"12", "OMR", "12.000 ر.ع."},
		{"-4500.25", "EUR", "-4,500.25 €"},
		{"7", "ZZZ", "7 $"},
	}
	for _, tt := range tests {
		if got := Format(decimal.RequireFromString(tt.amount), tt.code); got != tt.want {
			t.Errorf("Format(%s, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}

func TestSymbolFallback(t *testing.T) {
	if got := Symbol("gbp"); got != "£" {
		t.Fatalf("Symbol(gbp) = %q", got)
	}
	if got := Symbol("???"); got != "$" {
		t.Fatalf("Symbol(???) = %q", got)
	}
}
