package output

import (
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := money.New(123457, money.EUR).Display()
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatCurrencyNegative(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(-12.5))
	want := money.New(-1250, money.EUR).Display()
	if got != want {
		t.Errorf("FormatCurrency(-12.5) = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}
