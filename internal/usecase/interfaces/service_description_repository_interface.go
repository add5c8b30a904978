package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

//go:generate mockgen -source=service_description_repository_interface.go -destination=mocks/service_description_repository_interface_mock.go -package=mock_interfaces

type IServiceDescriptionRepository interface {
	Create(ctx context.Context, in entities.ServiceDescriptionInput) (string, error)
	List(ctx context.Context) ([]entities.ServiceDescription, error)
	ListByCategory(ctx context.Context, category string) ([]entities.ServiceDescription, error)
	GetByID(ctx context.Context, id string) (entities.ServiceDescription, bool, error)
	Update(ctx context.Context, id string, patch entities.ServiceDescriptionPatch) error
	Delete(ctx context.Context, id string) error
}
