package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/codec"
	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// TicketRepository persists service tickets in the "atendimentos" collection.
type TicketRepository struct {
	tickets  collection
	identity interfaces.IIdentityProvider
}

var _ interfaces.ITicketRepository = (*TicketRepository)(nil)

func NewTicketRepository(store interfaces.IDocumentStore, identity interfaces.IIdentityProvider, logger *zap.Logger) *TicketRepository {
	return &TicketRepository{
		tickets:  newCollection(CollectionTickets, store, logger),
		identity: identity,
	}
}

// Create stores a new ticket. An empty status defaults to Aguardando.
func (r *TicketRepository) Create(ctx context.Context, in entities.TicketInput) (string, error) {
	op := r.tickets.op("create")
	if err := validateInput(op, in); err != nil {
		return "", err
	}
	if in.Status == "" {
		in.Status = entities.TicketStatusAguardando
	}
	if !in.Status.Valid() {
		return "", validationFor(op, codec.FieldStatus)
	}

	fields := codec.TicketInputToWire(in)
	fields[codec.FieldOpenedAt] = docstore.ServerTimestamp
	stampCreator(ctx, r.identity, fields)
	return r.tickets.add(ctx, "create", fields)
}

func (r *TicketRepository) List(ctx context.Context) ([]entities.Ticket, error) {
	docs, err := r.tickets.list(ctx, codec.FieldOpenedAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, ticketFromDocument), nil
}

func (r *TicketRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Ticket, error) {
	return r.listBy(ctx, "list-by-client", codec.FieldClientID, clientID)
}

func (r *TicketRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]entities.Ticket, error) {
	return r.listBy(ctx, "list-by-equipment", codec.FieldEquipmentID, equipmentID)
}

func (r *TicketRepository) listBy(ctx context.Context, action, field, value string) ([]entities.Ticket, error) {
	if err := requireID(r.tickets.op(action), value); err != nil {
		return nil, err
	}
	docs, err := r.tickets.listWhere(ctx, field, value, codec.FieldOpenedAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, ticketFromDocument), nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (entities.Ticket, bool, error) {
	if err := requireID(r.tickets.op("get"), id); err != nil {
		return entities.Ticket{}, false, err
	}
	doc, found, err := r.tickets.get(ctx, id)
	if err != nil || !found {
		return entities.Ticket{}, false, err
	}
	return ticketFromDocument(doc), true, nil
}

func (r *TicketRepository) Update(ctx context.Context, id string, patch entities.TicketPatch) error {
	op := r.tickets.op("update")
	if err := requireID(op, id); err != nil {
		return err
	}
	if err := notBlank(op, map[string]*string{
		codec.FieldClientID:    patch.ClientID,
		codec.FieldEquipmentID: patch.EquipmentID,
		codec.FieldProblem:     patch.Problem,
		codec.FieldTechnician:  patch.Technician,
	}); err != nil {
		return err
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return validationFor(op, codec.FieldStatus)
	}
	if patch.ServiceValue != nil && *patch.ServiceValue < 0 {
		return validationFor(op, codec.FieldServiceValue)
	}

	fields := codec.TicketToWire(patch)
	if len(fields) == 0 {
		return nil
	}
	return r.tickets.update(ctx, id, fields)
}

// Delete removes a single ticket; nothing references tickets.
func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	if err := requireID(r.tickets.op("delete"), id); err != nil {
		return err
	}
	return r.tickets.delete(ctx, id)
}

// ticketFromDocument decodes a stored ticket. Unknown or missing statuses
// read as Aguardando.
func ticketFromDocument(doc docstore.Document) entities.Ticket {
	f := doc.Fields
	status := entities.TicketStatus(f.String(codec.FieldStatus))
	if !status.Valid() {
		status = entities.TicketStatusAguardando
	}
	return entities.Ticket{
		ID:            doc.ID,
		ClientID:      f.String(codec.FieldClientID),
		ClientName:    f.String(codec.FieldClientName),
		EquipmentID:   f.String(codec.FieldEquipmentID),
		EquipmentName: f.String(codec.FieldEquipmentName),
		Problem:       f.String(codec.FieldProblem),
		Status:        status,
		OpenedAt:      f.Time(codec.FieldOpenedAt),
		Technician:    f.String(codec.FieldTechnician),
		ServiceValue:  floatPtr(f, codec.FieldServiceValue),
		Notes:         f.String(codec.FieldNotes),
		CreatedBy:     f.String(codec.FieldCreatedBy),
	}
}
