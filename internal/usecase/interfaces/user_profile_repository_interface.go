package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

//go:generate mockgen -source=user_profile_repository_interface.go -destination=mocks/user_profile_repository_interface_mock.go -package=mock_interfaces

// IUserProfileRepository persists profile documents keyed by the auth uid.
type IUserProfileRepository interface {
	Create(ctx context.Context, uid string, in entities.UserProfileInput) error
	Get(ctx context.Context, uid string) (entities.UserProfile, bool, error)
	GetByEmail(ctx context.Context, email string) (entities.UserProfile, bool, error)
	List(ctx context.Context) ([]entities.UserProfile, error)
	ListByKind(ctx context.Context, kind entities.UserKind) ([]entities.UserProfile, error)
	Update(ctx context.Context, uid string, patch entities.UserProfilePatch) error
}
