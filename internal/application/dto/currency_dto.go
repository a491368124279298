package dto

// CreateCurrencyRequest body para POST /api/currencies.
// symbolNative vacío toma el valor de symbol.
type CreateCurrencyRequest struct {
	Code         string `json:"code" validate:"required"`
	Symbol       string `json:"symbol" validate:"required"`
	SymbolNative string `json:"symbolNative"`
	Name         string `json:"name" validate:"required"`
}

// SelectCurrencyRequest body para PUT /api/currencies/selected.
type SelectCurrencyRequest struct {
	Code string `json:"code" validate:"required"`
}

// CurrencyResponse moneda resuelta. Fallback=true si el código no existe en ninguna tabla.
type CurrencyResponse struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	SymbolNative  string `json:"symbolNative"`
	Name          string `json:"name"`
	NamePlural    string `json:"namePlural"`
	DecimalDigits int32  `json:"decimalDigits"`
	IsCustom      bool   `json:"isCustom"`
	Fallback      bool   `json:"fallback,omitempty"`
}

// CurrencyGroupsResponse búsqueda agrupada.
type CurrencyGroupsResponse struct {
	Common []CurrencyResponse `json:"common"`
	Custom []CurrencyResponse `json:"custom"`
	Others []CurrencyResponse `json:"others"`
}

// SelectedCurrencyResponse moneda activa del editor.
type SelectedCurrencyResponse struct {
	Code     string           `json:"code"`
	Currency CurrencyResponse `json:"currency"`
}
