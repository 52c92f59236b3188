package display

import "github.com/shopspring/decimal"

// currencySymbols covers the currencies the backend can report.
var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Money renders an amount with the default currency symbol and two
// decimal places.
func Money(amount decimal.Decimal) string {
	return MoneyIn(amount, "INR")
}

// MoneyIn renders an amount in the given currency. Unknown currency
// codes are printed as a prefix instead of a symbol.
func MoneyIn(amount decimal.Decimal, currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}

// SignedMoney prefixes the amount with its direction, the way the
// transaction feed shows it.
func SignedMoney(amount decimal.Decimal, income bool) string {
	if income {
		return "+" + Money(amount)
	}
	return "-" + Money(amount)
}
