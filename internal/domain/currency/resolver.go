package currency

import "github.com/jhoicas/invoice-studio/internal/domain/entity"

// FallbackDecimalDigits decimales de una moneda desconocida.
const FallbackDecimalDigits = 2

// Resolution resultado de resolver un código: Known o Fallback.
type Resolution interface {
	// Currency devuelve los metadatos a usar para mostrar montos.
	Currency() entity.Currency
	isResolution()
}

// Known moneda encontrada en la tabla personalizada o en la incorporada.
type Known struct {
	Entry entity.Currency
}

func (k Known) Currency() entity.Currency { return k.Entry }
func (Known) isResolution()               {}

// Fallback código que no existe en ninguna tabla.
type Fallback struct {
	Code string
}

// Currency sintetiza metadatos usando el código como símbolo y nombre, con 2 decimales.
func (f Fallback) Currency() entity.Currency {
	return entity.Currency{
		Code:          f.Code,
		Symbol:        f.Code,
		NativeSymbol:  f.Code,
		Name:          f.Code,
		NamePlural:    f.Code,
		DecimalDigits: FallbackDecimalDigits,
	}
}
func (Fallback) isResolution() {}

// Resolve busca el código primero en customs (tiene prioridad si colisiona) y luego en builtins.
// Nunca falla: un código desconocido produce Fallback.
func Resolve(code string, builtins, customs map[string]entity.Currency) Resolution {
	if c, ok := customs[code]; ok {
		return Known{Entry: c}
	}
	if c, ok := builtins[code]; ok {
		return Known{Entry: c}
	}
	return Fallback{Code: code}
}
