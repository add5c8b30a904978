package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_interface_mock.go -package=mock_interfaces

// IClientRepository persists Client entities.
//
// Delete cascades: tickets of the client, then equipment of the client,
// then the client document.
type IClientRepository interface {
	Create(ctx context.Context, in entities.ClientInput) (string, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, bool, error)
	Update(ctx context.Context, id string, patch entities.ClientPatch) error
	Delete(ctx context.Context, id string) error
}
