package domain

// BaseCurrencyCode is the single currency in which the backend stores and
// transmits all monetary amounts. Display conversion is always relative to it.
const BaseCurrencyCode = "TZS"

// SupportedCurrencies returns the static currency table. RateToBase values are
// conservative fallbacks used only until a live snapshot has been fetched.
func SupportedCurrencies() []Currency {
	return []Currency{
		{CurrencyCode: "TZS", Symbol: "TSh", Name: "Tanzanian Shilling", RateToBase: 1, Precision: 0, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", RateToBase: 0.000385, Precision: 2, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", RateToBase: 0.000355, Precision: 2, SymbolPosition: SymbolAfter, ThousandsSep: ".", DecimalSep: ","},
		{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", RateToBase: 0.000305, Precision: 2, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "KES", Symbol: "KSh", Name: "Kenyan Shilling", RateToBase: 0.0513, Precision: 2, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "UGX", Symbol: "USh", Name: "Ugandan Shilling", RateToBase: 1.43, Precision: 0, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", RateToBase: 0.0323, Precision: 2, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", RateToBase: 0.00141, Precision: 2, SymbolPosition: SymbolAfter, ThousandsSep: ",", DecimalSep: "."},
		{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", RateToBase: 0.00277, Precision: 2, SymbolPosition: SymbolBefore, ThousandsSep: ",", DecimalSep: "."},
	}
}
