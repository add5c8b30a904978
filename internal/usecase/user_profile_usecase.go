package usecase

import (
	"context"
	"errors"

	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"
)

//go:generate mockgen -source=user_profile_usecase.go -destination=../adapter/http/handlers/mocks/user_profile_usecase_mock.go -package=mocks

const profileNotFoundMessage = "Perfil de usuário não encontrado."

var ErrAdminOnly = errors.New("admin access required")

// IUserProfileUseCase serves the profile of the signed-in user and the
// admin-only user listings.
type IUserProfileUseCase interface {
	Current(ctx context.Context) (entities.UserProfile, error)
	CreateCurrent(ctx context.Context, in entities.UserProfileInput) (entities.UserProfile, error)
	UpdateCurrent(ctx context.Context, patch entities.UserProfilePatch) (entities.UserProfile, error)
	IsAdmin(ctx context.Context) (bool, error)
	ListAll(ctx context.Context) ([]entities.UserProfile, error)
	ListClients(ctx context.Context) ([]entities.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (entities.UserProfile, error)
}

type UserProfileUseCase struct {
	repo     interfaces.IUserProfileRepository
	identity interfaces.IIdentityProvider
}

var _ IUserProfileUseCase = (*UserProfileUseCase)(nil)

func NewUserProfileUseCase(repo interfaces.IUserProfileRepository, identity interfaces.IIdentityProvider) *UserProfileUseCase {
	return &UserProfileUseCase{repo: repo, identity: identity}
}

func (u *UserProfileUseCase) uid(ctx context.Context, op string) (string, error) {
	if u.identity != nil {
		if uid, ok := u.identity.CurrentUserID(ctx); ok {
			return uid, nil
		}
	}
	return "", dataerr.New(dataerr.KindUnauthenticated, op, "")
}

func (u *UserProfileUseCase) Current(ctx context.Context) (entities.UserProfile, error) {
	uid, err := u.uid(ctx, "usuarios.current")
	if err != nil {
		return entities.UserProfile{}, err
	}
	p, found, err := u.repo.Get(ctx, uid)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if !found {
		return entities.UserProfile{}, dataerr.New(dataerr.KindNotFound, "usuarios.current", profileNotFoundMessage)
	}
	return p, nil
}

// CreateCurrent writes the profile document of the signed-in user. Only
// an existing admin may create another admin profile, so the kind of a
// self-registered profile is always cliente.
func (u *UserProfileUseCase) CreateCurrent(ctx context.Context, in entities.UserProfileInput) (entities.UserProfile, error) {
	uid, err := u.uid(ctx, "usuarios.create")
	if err != nil {
		return entities.UserProfile{}, err
	}
	in.Kind = entities.UserKindCliente
	if err := u.repo.Create(ctx, uid, in); err != nil {
		return entities.UserProfile{}, err
	}
	return u.Current(ctx)
}

func (u *UserProfileUseCase) UpdateCurrent(ctx context.Context, patch entities.UserProfilePatch) (entities.UserProfile, error) {
	uid, err := u.uid(ctx, "usuarios.update")
	if err != nil {
		return entities.UserProfile{}, err
	}
	if err := u.repo.Update(ctx, uid, patch); err != nil {
		return entities.UserProfile{}, err
	}
	return u.Current(ctx)
}

// IsAdmin reports false for a signed-in user without a profile.
func (u *UserProfileUseCase) IsAdmin(ctx context.Context) (bool, error) {
	p, err := u.Current(ctx)
	if err != nil {
		if dataerr.KindOf(err) == dataerr.KindNotFound {
			return false, nil
		}
		return false, err
	}
	return p.Kind == entities.UserKindAdmin, nil
}

func (u *UserProfileUseCase) ListAll(ctx context.Context) ([]entities.UserProfile, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}

func (u *UserProfileUseCase) ListClients(ctx context.Context) ([]entities.UserProfile, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.repo.ListByKind(ctx, entities.UserKindCliente)
}

// FindByEmail looks a profile up by its registration email. Admin only.
func (u *UserProfileUseCase) FindByEmail(ctx context.Context, email string) (entities.UserProfile, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return entities.UserProfile{}, err
	}
	p, found, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if !found {
		return entities.UserProfile{}, dataerr.New(dataerr.KindNotFound, "usuarios.get-by-email", profileNotFoundMessage)
	}
	return p, nil
}

func (u *UserProfileUseCase) requireAdmin(ctx context.Context) error {
	admin, err := u.IsAdmin(ctx)
	if err != nil {
		return err
	}
	if !admin {
		return ErrAdminOnly
	}
	return nil
}
