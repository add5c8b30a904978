package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/codec"
	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// EquipmentRepository persists equipment in the "equipamentos" collection.
// Delete removes the equipment's tickets first.
type EquipmentRepository struct {
	equipment collection
	tickets   collection
	identity  interfaces.IIdentityProvider
	cascade   cascade
}

var _ interfaces.IEquipmentRepository = (*EquipmentRepository)(nil)

func NewEquipmentRepository(store interfaces.IDocumentStore, identity interfaces.IIdentityProvider, logger *zap.Logger, parallelism int) *EquipmentRepository {
	equipment := newCollection(CollectionEquipment, store, logger)
	return &EquipmentRepository{
		equipment: equipment,
		tickets:   newCollection(CollectionTickets, store, logger),
		identity:  identity,
		cascade:   cascade{parent: equipment, parallelism: parallelism},
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, in entities.EquipmentInput) (string, error) {
	if err := validateInput(r.equipment.op("create"), in); err != nil {
		return "", err
	}

	fields := codec.EquipmentInputToWire(in)
	fields[codec.FieldIntakeAt] = docstore.ServerTimestamp
	stampCreator(ctx, r.identity, fields)
	return r.equipment.add(ctx, "create", fields)
}

func (r *EquipmentRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	docs, err := r.equipment.list(ctx, codec.FieldIntakeAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, equipmentFromDocument), nil
}

func (r *EquipmentRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Equipment, error) {
	if err := requireID(r.equipment.op("list-by-client"), clientID); err != nil {
		return nil, err
	}
	docs, err := r.equipment.listWhere(ctx, codec.FieldClientID, clientID, codec.FieldIntakeAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, equipmentFromDocument), nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (entities.Equipment, bool, error) {
	if err := requireID(r.equipment.op("get"), id); err != nil {
		return entities.Equipment{}, false, err
	}
	doc, found, err := r.equipment.get(ctx, id)
	if err != nil || !found {
		return entities.Equipment{}, false, err
	}
	return equipmentFromDocument(doc), true, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, id string, patch entities.EquipmentPatch) error {
	op := r.equipment.op("update")
	if err := requireID(op, id); err != nil {
		return err
	}
	if err := notBlank(op, map[string]*string{
		codec.FieldCode:     patch.Code,
		codec.FieldName:     patch.Name,
		codec.FieldBrand:    patch.Brand,
		codec.FieldModel:    patch.Model,
		codec.FieldCategory: patch.Category,
		codec.FieldClientID: patch.ClientID,
	}); err != nil {
		return err
	}

	fields := codec.EquipmentToWire(patch)
	if len(fields) == 0 {
		return nil
	}
	return r.equipment.update(ctx, id, fields)
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	if err := requireID(r.equipment.op("delete"), id); err != nil {
		return err
	}
	if err := r.cascade.deleteChildren(ctx, r.tickets, codec.FieldEquipmentID, id); err != nil {
		return err
	}
	return r.equipment.delete(ctx, id)
}

func equipmentFromDocument(doc docstore.Document) entities.Equipment {
	f := doc.Fields
	return entities.Equipment{
		ID:         doc.ID,
		Code:       f.String(codec.FieldCode),
		Name:       f.String(codec.FieldName),
		Brand:      f.String(codec.FieldBrand),
		Model:      f.String(codec.FieldModel),
		Category:   f.String(codec.FieldCategory),
		Notes:      f.String(codec.FieldNotes),
		ClientID:   f.String(codec.FieldClientID),
		ClientName: f.String(codec.FieldClientName),
		IntakeAt:   f.Time(codec.FieldIntakeAt),
		CreatedBy:  f.String(codec.FieldCreatedBy),
	}
}
