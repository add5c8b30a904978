package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

//go:generate mockgen -source=ticket_repository_interface.go -destination=mocks/ticket_repository_interface_mock.go -package=mock_interfaces

type ITicketRepository interface {
	Create(ctx context.Context, in entities.TicketInput) (string, error)
	List(ctx context.Context) ([]entities.Ticket, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Ticket, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, bool, error)
	Update(ctx context.Context, id string, patch entities.TicketPatch) error
	Delete(ctx context.Context, id string) error
}
