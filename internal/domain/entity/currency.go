package entity

// Currency metadatos de una moneda. Code es la clave única (3 letras).
type Currency struct {
	Code          string
	Symbol        string
	NativeSymbol  string
	Name          string
	NamePlural    string
	DecimalDigits int32
	IsCustom      bool // creada por el usuario (persistida localmente)
}

// DisplaySymbol devuelve el símbolo nativo si existe; si no, el símbolo internacional.
func (c Currency) DisplaySymbol() string {
	if c.NativeSymbol != "" {
		return c.NativeSymbol
	}
	return c.Symbol
}
