package repository

import "github.com/tu-usuario/tienda-pro/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el historial de
// stock. El log es append-only: solo Create; nunca update ni delete de
// movimientos individuales (DeleteByProduct existe solo porque borrar un
// producto elimina su historial completo).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	DeleteByProduct(productID string) error
}
