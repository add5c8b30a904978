package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

//go:generate mockgen -source=equipment_repository_interface.go -destination=mocks/equipment_repository_interface_mock.go -package=mock_interfaces

// IEquipmentRepository persists Equipment entities. Delete removes the
// tickets referencing the equipment first.
type IEquipmentRepository interface {
	Create(ctx context.Context, in entities.EquipmentInput) (string, error)
	List(ctx context.Context) ([]entities.Equipment, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, bool, error)
	Update(ctx context.Context, id string, patch entities.EquipmentPatch) error
	Delete(ctx context.Context, id string) error
}
