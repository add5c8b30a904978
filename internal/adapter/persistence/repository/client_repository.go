package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/codec"
	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ClientRepository persists clients in the "clientes" collection.
//
// Delete removes the client's tickets, then its equipment, then the client.
type ClientRepository struct {
	clients   collection
	equipment collection
	tickets   collection
	identity  interfaces.IIdentityProvider
	cascade   cascade
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store interfaces.IDocumentStore, identity interfaces.IIdentityProvider, logger *zap.Logger, parallelism int) *ClientRepository {
	clients := newCollection(CollectionClients, store, logger)
	return &ClientRepository{
		clients:   clients,
		equipment: newCollection(CollectionEquipment, store, logger),
		tickets:   newCollection(CollectionTickets, store, logger),
		identity:  identity,
		cascade:   cascade{parent: clients, parallelism: parallelism},
	}
}

func (r *ClientRepository) Create(ctx context.Context, in entities.ClientInput) (string, error) {
	if err := validateInput(r.clients.op("create"), in); err != nil {
		return "", err
	}

	fields := codec.ClientInputToWire(in)
	fields[codec.FieldRegisteredAt] = docstore.ServerTimestamp
	stampCreator(ctx, r.identity, fields)
	return r.clients.add(ctx, "create", fields)
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	docs, err := r.clients.list(ctx, codec.FieldRegisteredAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, clientFromDocument), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, bool, error) {
	if err := requireID(r.clients.op("get"), id); err != nil {
		return entities.Client{}, false, err
	}
	doc, found, err := r.clients.get(ctx, id)
	if err != nil || !found {
		return entities.Client{}, false, err
	}
	return clientFromDocument(doc), true, nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, patch entities.ClientPatch) error {
	op := r.clients.op("update")
	if err := requireID(op, id); err != nil {
		return err
	}
	if err := notBlank(op, map[string]*string{
		codec.FieldName:  patch.Name,
		codec.FieldPhone: patch.Phone,
		codec.FieldEmail: patch.Email,
	}); err != nil {
		return err
	}
	if patch.Email != nil {
		if err := validate.Var(*patch.Email, "email"); err != nil {
			return validationFor(op, codec.FieldEmail)
		}
	}

	fields := codec.ClientToWire(patch)
	if len(fields) == 0 {
		return nil
	}
	return r.clients.update(ctx, id, fields)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	if err := requireID(r.clients.op("delete"), id); err != nil {
		return err
	}
	if err := r.cascade.deleteChildren(ctx, r.tickets, codec.FieldClientID, id); err != nil {
		return err
	}
	if err := r.cascade.deleteChildren(ctx, r.equipment, codec.FieldClientID, id); err != nil {
		return err
	}
	return r.clients.delete(ctx, id)
}

func clientFromDocument(doc docstore.Document) entities.Client {
	f := doc.Fields
	return entities.Client{
		ID:           doc.ID,
		Name:         f.String(codec.FieldName),
		Phone:        f.String(codec.FieldPhone),
		Email:        f.String(codec.FieldEmail),
		Address:      f.String(codec.FieldAddress),
		RegisteredAt: f.Time(codec.FieldRegisteredAt),
		CreatedBy:    f.String(codec.FieldCreatedBy),
	}
}
