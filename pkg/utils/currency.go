package utils

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders amounts with a currency symbol, grouping and
// exactly two decimals, e.g. "₱ 1,299.00".
type CurrencyFormatter struct {
	unit    currency.Unit
	printer *message.Printer
}

func NewCurrencyFormatter(code string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("unknown currency %q: %w", code, err)
	}
	return &CurrencyFormatter{
		unit:    unit,
		printer: message.NewPrinter(language.English),
	}, nil
}

func (f *CurrencyFormatter) Code() string {
	return f.unit.String()
}

func (f *CurrencyFormatter) Format(amount float64) string {
	symbol := f.printer.Sprint(currency.Symbol(f.unit))
	return symbol + " " + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}
