package usecase

import (
	"context"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/application/storage"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// ProfileStorageKey clave del almacén local con los datos del emisor.
const ProfileStorageKey = "invoiceFromDetails"

// ProfileUseCase persiste los datos del emisor para reutilizarlos entre sesiones.
// El logo no forma parte del perfil: viaja solo dentro de la factura.
type ProfileUseCase struct {
	store *storage.Adapter
}

// NewProfileUseCase construye el caso de uso con el adaptador de persistencia local.
func NewProfileUseCase(store *storage.Adapter) *ProfileUseCase {
	return &ProfileUseCase{store: store}
}

// Seller devuelve el emisor guardado, o uno vacío si no hay perfil.
func (uc *ProfileUseCase) Seller(ctx context.Context) entity.Seller {
	var in dto.SellerDTO
	if !uc.store.Get(ctx, ProfileStorageKey, &in) {
		in = dto.SellerDTO{}
	}
	s := dto.SellerToEntity(in)
	s.Logo = ""
	return s
}

// Get devuelve el perfil para GET /api/profile.
func (uc *ProfileUseCase) Get(ctx context.Context) dto.SellerDTO {
	return dto.FromSeller(uc.Seller(ctx))
}

// Save reemplaza el perfil guardado y devuelve lo que quedó persistido.
func (uc *ProfileUseCase) Save(ctx context.Context, in dto.SellerDTO) (dto.SellerDTO, error) {
	if err := dto.Validate(in); err != nil {
		return dto.SellerDTO{}, err
	}
	in.Logo = ""
	out := dto.FromSeller(dto.SellerToEntity(in))
	uc.store.Set(ctx, ProfileStorageKey, out)
	return out, nil
}
