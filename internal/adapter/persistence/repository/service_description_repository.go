package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	fieldTitle       = "titulo"
	fieldDescription = "descricao"
	fieldCategory    = "categoria"
	fieldPrice       = "preco"
	fieldDuration    = "duracao"
	fieldActive      = "ativo"
	fieldTags        = "tags"
	fieldNotes       = "observacoes"
	fieldCreatedBy   = "criadoPor"
)

// ServiceDescriptionRepository persists the service catalog ("descricoes").
type ServiceDescriptionRepository struct {
	descriptions collection
}

var _ interfaces.IServiceDescriptionRepository = (*ServiceDescriptionRepository)(nil)

func NewServiceDescriptionRepository(store interfaces.IDocumentStore, logger *zap.Logger) *ServiceDescriptionRepository {
	return &ServiceDescriptionRepository{descriptions: newCollection(CollectionDescriptions, store, logger)}
}

func (r *ServiceDescriptionRepository) Create(ctx context.Context, in entities.ServiceDescriptionInput) (string, error) {
	if err := validateInput(r.descriptions.op("create"), in); err != nil {
		return "", err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return r.descriptions.add(ctx, "create", docstore.Fields{
		fieldTitle:       in.Title,
		fieldDescription: in.Description,
		fieldCategory:    in.Category,
		fieldPrice:       in.Price,
		fieldDuration:    in.Duration,
		fieldActive:      in.Active,
		fieldTags:        tags,
		fieldNotes:       in.Notes,
		fieldCreatedBy:   in.CreatedBy,
		fieldCreatedAt:   docstore.ServerTimestamp,
		fieldUpdatedAt:   docstore.ServerTimestamp,
	})
}

func (r *ServiceDescriptionRepository) List(ctx context.Context) ([]entities.ServiceDescription, error) {
	docs, err := r.descriptions.list(ctx, fieldCreatedAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, serviceDescriptionFromDocument), nil
}

// ListByCategory returns the descriptions of category ordered by title.
// Inactive entries are included; callers filter on Active.
func (r *ServiceDescriptionRepository) ListByCategory(ctx context.Context, category string) ([]entities.ServiceDescription, error) {
	docs, err := r.descriptions.listWhere(ctx, fieldCategory, category, fieldTitle, docstore.Asc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, serviceDescriptionFromDocument), nil
}

func (r *ServiceDescriptionRepository) GetByID(ctx context.Context, id string) (entities.ServiceDescription, bool, error) {
	if err := requireID(r.descriptions.op("get"), id); err != nil {
		return entities.ServiceDescription{}, false, err
	}
	doc, found, err := r.descriptions.get(ctx, id)
	if err != nil || !found {
		return entities.ServiceDescription{}, false, err
	}
	return serviceDescriptionFromDocument(doc), true, nil
}

// Update merges patch and refreshes atualizadoEm.
func (r *ServiceDescriptionRepository) Update(ctx context.Context, id string, patch entities.ServiceDescriptionPatch) error {
	op := r.descriptions.op("update")
	if err := requireID(op, id); err != nil {
		return err
	}
	if err := notBlank(op, map[string]*string{
		fieldTitle:       patch.Title,
		fieldDescription: patch.Description,
		fieldCategory:    patch.Category,
	}); err != nil {
		return err
	}
	if patch.Price != nil && *patch.Price < 0 {
		return validationFor(op, fieldPrice)
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return validationFor(op, fieldDuration)
	}

	fields := docstore.Fields{fieldUpdatedAt: docstore.ServerTimestamp}
	setIfPresent(fields, fieldTitle, patch.Title)
	setIfPresent(fields, fieldDescription, patch.Description)
	setIfPresent(fields, fieldCategory, patch.Category)
	setIfPresent(fields, fieldPrice, patch.Price)
	setIfPresent(fields, fieldDuration, patch.Duration)
	setIfPresent(fields, fieldActive, patch.Active)
	setIfPresent(fields, fieldTags, patch.Tags)
	setIfPresent(fields, fieldNotes, patch.Notes)
	return r.descriptions.update(ctx, id, fields)
}

func (r *ServiceDescriptionRepository) Delete(ctx context.Context, id string) error {
	if err := requireID(r.descriptions.op("delete"), id); err != nil {
		return err
	}
	return r.descriptions.delete(ctx, id)
}

func serviceDescriptionFromDocument(doc docstore.Document) entities.ServiceDescription {
	f := doc.Fields
	price, _ := f.Float(fieldPrice)
	duration, _ := f.Float(fieldDuration)
	return entities.ServiceDescription{
		ID:          doc.ID,
		Title:       f.String(fieldTitle),
		Description: f.String(fieldDescription),
		Category:    f.String(fieldCategory),
		Price:       price,
		Duration:    int(duration),
		Active:      f.Bool(fieldActive),
		Tags:        f.Strings(fieldTags),
		Notes:       f.String(fieldNotes),
		CreatedBy:   f.String(fieldCreatedBy),
		CreatedAt:   f.Time(fieldCreatedAt),
		UpdatedAt:   f.Time(fieldUpdatedAt),
	}
}
