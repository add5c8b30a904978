package interfaces

import "context"

//go:generate mockgen -source=identity_provider_interface.go -destination=mocks/identity_provider_interface_mock.go -package=mock_interfaces

// IIdentityProvider exposes the signed-in user. The data layer only uses it
// to stamp "created by" fields.
type IIdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}
