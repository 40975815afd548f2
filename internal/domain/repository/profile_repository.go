package repository

import "github.com/tu-usuario/tienda-pro/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para el perfil de la tienda
// (fila única en sistema mono-tienda).
type ProfileRepository interface {
	Get() (*entity.ShopProfile, error)
	// GetForUpdate bloquea la fila del perfil (SELECT FOR UPDATE) para
	// serializar el avance del consecutivo de facturación.
	GetForUpdate() (*entity.ShopProfile, error)
	Update(profile *entity.ShopProfile) error
	// UpdateSequence actualiza solo el consecutivo (usado por el orquestador de facturas).
	UpdateSequence(profileID string, next int64) error
}
