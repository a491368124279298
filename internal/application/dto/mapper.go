package dto

import (
	"slices"

	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// AddressLines el formulario muestra siempre tres líneas de dirección.
const AddressLines = 3

// SellerToEntity convierte el DTO del emisor normalizando la dirección.
func SellerToEntity(in SellerDTO) entity.Seller {
	return entity.Seller{
		Company: in.Company,
		Logo:    in.Logo,
		Address: normalizeAddress(in.Address),
		Email:   in.Email,
		Phone:   in.Phone,
		Website: in.Website,
	}
}

// FromSeller convierte la entidad del emisor en DTO.
func FromSeller(s entity.Seller) SellerDTO {
	return SellerDTO{
		Company: s.Company,
		Logo:    s.Logo,
		Address: normalizeAddress(s.Address),
		Email:   s.Email,
		Phone:   s.Phone,
		Website: s.Website,
	}
}

// ClientToEntity convierte el DTO del receptor.
func ClientToEntity(in ClientDTO) entity.Client {
	return entity.Client{
		Company:       in.Company,
		ContactPerson: in.ContactPerson,
		Address:       normalizeAddress(in.Address),
		Email:         in.Email,
		Phone:         in.Phone,
	}
}

// FromClient convierte la entidad del receptor en DTO.
func FromClient(c entity.Client) ClientDTO {
	return ClientDTO{
		Company:       c.Company,
		ContactPerson: c.ContactPerson,
		Address:       normalizeAddress(c.Address),
		Email:         c.Email,
		Phone:         c.Phone,
	}
}

// FromCurrency convierte una moneda resuelta. fallback marca códigos desconocidos.
func FromCurrency(c entity.Currency, fallback bool) CurrencyResponse {
	return CurrencyResponse{
		Code:          c.Code,
		Symbol:        c.Symbol,
		SymbolNative:  c.NativeSymbol,
		Name:          c.Name,
		NamePlural:    c.NamePlural,
		DecimalDigits: c.DecimalDigits,
		IsCustom:      c.IsCustom,
		Fallback:      fallback,
	}
}

// FromCurrencies convierte una lista; nunca devuelve nil para que el JSON sea [].
func FromCurrencies(list []entity.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCurrency(c, false))
	}
	return out
}

func normalizeAddress(in []string) []string {
	out := slices.Clone(in)
	for len(out) < AddressLines {
		out = append(out, "")
	}
	return out
}
