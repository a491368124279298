package currency

import (
	"slices"

	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// CommonCodes monedas más usadas; la búsqueda las agrupa primero.
var CommonCodes = []string{"USD", "EUR", "GBP", "JPY", "CNY", "NGN", "ZAR", "GHS", "EGP", "XOF"}

// builtins tabla estática de monedas incorporadas. No se modifica en tiempo de ejecución.
var builtins = map[string]entity.Currency{
	// Principales monedas mundiales
	"USD": {Code: "USD", Symbol: "$", NativeSymbol: "$", Name: "US Dollar", NamePlural: "US dollars", DecimalDigits: 2},
	"EUR": {Code: "EUR", Symbol: "€", NativeSymbol: "€", Name: "Euro", NamePlural: "euros", DecimalDigits: 2},
	"GBP": {Code: "GBP", Symbol: "£", NativeSymbol: "£", Name: "British Pound", NamePlural: "British pounds", DecimalDigits: 2},
	"JPY": {Code: "JPY", Symbol: "¥", NativeSymbol: "￥", Name: "Japanese Yen", NamePlural: "Japanese yen", DecimalDigits: 0},
	"CNY": {Code: "CNY", Symbol: "¥", NativeSymbol: "￥", Name: "Chinese Yuan", NamePlural: "Chinese yuan", DecimalDigits: 2},
	"AUD": {Code: "AUD", Symbol: "A$", NativeSymbol: "$", Name: "Australian Dollar", NamePlural: "Australian dollars", DecimalDigits: 2},
	"CAD": {Code: "CAD", Symbol: "CA$", NativeSymbol: "$", Name: "Canadian Dollar", NamePlural: "Canadian dollars", DecimalDigits: 2},
	"CHF": {Code: "CHF", Symbol: "CHF", NativeSymbol: "CHF", Name: "Swiss Franc", NamePlural: "Swiss francs", DecimalDigits: 2},
	"HKD": {Code: "HKD", Symbol: "HK$", NativeSymbol: "$", Name: "Hong Kong Dollar", NamePlural: "Hong Kong dollars", DecimalDigits: 2},
	"SGD": {Code: "SGD", Symbol: "S$", NativeSymbol: "$", Name: "Singapore Dollar", NamePlural: "Singapore dollars", DecimalDigits: 2},

	// Principales monedas africanas
	"NGN": {Code: "NGN", Symbol: "₦", NativeSymbol: "₦", Name: "Nigerian Naira", NamePlural: "Nigerian naira", DecimalDigits: 2},
	"ZAR": {Code: "ZAR", Symbol: "R", NativeSymbol: "R", Name: "South African Rand", NamePlural: "South African rand", DecimalDigits: 2},
	"GHS": {Code: "GHS", Symbol: "GH₵", NativeSymbol: "₵", Name: "Ghanaian Cedi", NamePlural: "Ghanaian cedis", DecimalDigits: 2},
	"EGP": {Code: "EGP", Symbol: "EGP", NativeSymbol: "ج.م.", Name: "Egyptian Pound", NamePlural: "Egyptian pounds", DecimalDigits: 2},
	"XOF": {Code: "XOF", Symbol: "CFA", NativeSymbol: "CFA", Name: "West African CFA Franc", NamePlural: "West African CFA francs", DecimalDigits: 0},
	"MAD": {Code: "MAD", Symbol: "MAD", NativeSymbol: "د.م.", Name: "Moroccan Dirham", NamePlural: "Moroccan dirhams", DecimalDigits: 2},
	"KES": {Code: "KES", Symbol: "Ksh", NativeSymbol: "Ksh", Name: "Kenyan Shilling", NamePlural: "Kenyan shillings", DecimalDigits: 2},
	"XAF": {Code: "XAF", Symbol: "FCFA", NativeSymbol: "FCFA", Name: "Central African CFA Franc", NamePlural: "Central African CFA francs", DecimalDigits: 0},
	"TND": {Code: "TND", Symbol: "DT", NativeSymbol: "د.ت", Name: "Tunisian Dinar", NamePlural: "Tunisian dinars", DecimalDigits: 3},
	"DZD": {Code: "DZD", Symbol: "DA", NativeSymbol: "د.ج", Name: "Algerian Dinar", NamePlural: "Algerian dinars", DecimalDigits: 2},
}

// Builtins devuelve una copia de la tabla incorporada.
func Builtins() map[string]entity.Currency {
	out := make(map[string]entity.Currency, len(builtins))
	for code, c := range builtins {
		out[code] = c
	}
	return out
}

// IsCommon indica si el código pertenece al grupo de monedas más usadas.
func IsCommon(code string) bool {
	return slices.Contains(CommonCodes, code)
}
