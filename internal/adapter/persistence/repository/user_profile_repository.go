package repository

import (
	"context"
	"strings"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	fieldUserName    = "nome"
	fieldUserEmail   = "email"
	fieldUserPhone   = "telefone"
	fieldUserAddress = "endereco"
	fieldUserKind    = "tipo"
	fieldUserAvatar  = "avatar"
	fieldUserNotes   = "observacoes"
	fieldCreatedAt   = "criadoEm"
	fieldUpdatedAt   = "atualizadoEm"
)

// UserProfileRepository stores profiles under usuarios/{uid}.
type UserProfileRepository struct {
	users collection
}

var _ interfaces.IUserProfileRepository = (*UserProfileRepository)(nil)

func NewUserProfileRepository(store interfaces.IDocumentStore, logger *zap.Logger) *UserProfileRepository {
	return &UserProfileRepository{users: newCollection(CollectionUsers, store, logger)}
}

// Create writes the profile of uid. A missing kind defaults to cliente.
func (r *UserProfileRepository) Create(ctx context.Context, uid string, in entities.UserProfileInput) error {
	op := r.users.op("create")
	if err := requireID(op, uid); err != nil {
		return err
	}
	if err := validateInput(op, in); err != nil {
		return err
	}
	if in.Kind == "" {
		in.Kind = entities.UserKindCliente
	}

	return r.users.set(ctx, "create", uid, docstore.Fields{
		fieldUserName:    in.Name,
		fieldUserEmail:   strings.ToLower(strings.TrimSpace(in.Email)),
		fieldUserPhone:   in.Phone,
		fieldUserAddress: in.Address,
		fieldUserKind:    string(in.Kind),
		fieldUserAvatar:  in.Avatar,
		fieldUserNotes:   in.Notes,
		fieldCreatedAt:   docstore.ServerTimestamp,
		fieldUpdatedAt:   docstore.ServerTimestamp,
	})
}

func (r *UserProfileRepository) Get(ctx context.Context, uid string) (entities.UserProfile, bool, error) {
	if err := requireID(r.users.op("get"), uid); err != nil {
		return entities.UserProfile{}, false, err
	}
	doc, found, err := r.users.get(ctx, uid)
	if err != nil || !found {
		return entities.UserProfile{}, false, err
	}
	return userProfileFromDocument(doc), true, nil
}

// GetByEmail returns the first profile registered with email.
func (r *UserProfileRepository) GetByEmail(ctx context.Context, email string) (entities.UserProfile, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := requireID(r.users.op("get-by-email"), email); err != nil {
		return entities.UserProfile{}, false, err
	}
	docs, err := r.users.listWhere(ctx, fieldUserEmail, email, "", docstore.Asc)
	if err != nil {
		return entities.UserProfile{}, false, err
	}
	if len(docs) == 0 {
		return entities.UserProfile{}, false, nil
	}
	return userProfileFromDocument(docs[0]), true, nil
}

func (r *UserProfileRepository) List(ctx context.Context) ([]entities.UserProfile, error) {
	docs, err := r.users.list(ctx, fieldCreatedAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, userProfileFromDocument), nil
}

func (r *UserProfileRepository) ListByKind(ctx context.Context, kind entities.UserKind) ([]entities.UserProfile, error) {
	docs, err := r.users.listWhere(ctx, fieldUserKind, string(kind), fieldCreatedAt, docstore.Desc)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, userProfileFromDocument), nil
}

// Update merges patch and refreshes atualizadoEm. The kind and the email
// of a profile are not editable here.
func (r *UserProfileRepository) Update(ctx context.Context, uid string, patch entities.UserProfilePatch) error {
	op := r.users.op("update")
	if err := requireID(op, uid); err != nil {
		return err
	}
	if err := notBlank(op, map[string]*string{
		fieldUserName:  patch.Name,
		fieldUserPhone: patch.Phone,
	}); err != nil {
		return err
	}

	fields := docstore.Fields{fieldUpdatedAt: docstore.ServerTimestamp}
	setIfPresent(fields, fieldUserName, patch.Name)
	setIfPresent(fields, fieldUserPhone, patch.Phone)
	setIfPresent(fields, fieldUserAddress, patch.Address)
	setIfPresent(fields, fieldUserAvatar, patch.Avatar)
	setIfPresent(fields, fieldUserNotes, patch.Notes)
	return r.users.update(ctx, uid, fields)
}

func userProfileFromDocument(doc docstore.Document) entities.UserProfile {
	f := doc.Fields
	kind := entities.UserKind(f.String(fieldUserKind))
	if kind != entities.UserKindAdmin {
		kind = entities.UserKindCliente
	}
	return entities.UserProfile{
		UID:       doc.ID,
		Name:      f.String(fieldUserName),
		Email:     f.String(fieldUserEmail),
		Phone:     f.String(fieldUserPhone),
		Address:   f.String(fieldUserAddress),
		Kind:      kind,
		Avatar:    f.String(fieldUserAvatar),
		Notes:     f.String(fieldUserNotes),
		CreatedAt: f.Time(fieldCreatedAt),
		UpdatedAt: f.Time(fieldUpdatedAt),
	}
}

func setIfPresent[T any](fields docstore.Fields, key string, v *T) {
	if v != nil {
		fields[key] = *v
	}
}
