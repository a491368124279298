package currency

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// Format es el único punto de formato de montos: símbolo (nativo si existe) seguido del
// monto en punto fijo, redondeado a DecimalDigits (mitad lejos de cero).
// Ej: Format(22, USD) → "$22.00"; Format(1234.5, JPY) → "￥1235".
func Format(amount decimal.Decimal, c entity.Currency) string {
	digits := c.DecimalDigits
	if digits < 0 {
		digits = 0
	}
	return c.DisplaySymbol() + amount.StringFixed(digits)
}
