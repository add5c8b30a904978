package usecase

import (
	"context"
	"errors"
	"testing"

	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/entities"
	mock_interfaces "assistencia_tecnica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newProfileUseCase(t *testing.T, uid string) (*UserProfileUseCase, *mock_interfaces.MockIUserProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserProfileRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
	identity.EXPECT().CurrentUserID(gomock.Any()).Return(uid, uid != "").AnyTimes()
	return NewUserProfileUseCase(repo, identity), repo
}

func TestUserProfileUseCase_Current(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		uc, _ := newProfileUseCase(t, "")
		_, err := uc.Current(context.Background())
		if !errors.Is(err, dataerr.ErrUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "u1")
		repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.UserProfile{}, false, nil)

		_, err := uc.Current(context.Background())
		if !errors.Is(err, dataerr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestUserProfileUseCase_CreateCurrent(t *testing.T) {
	uc, repo := newProfileUseCase(t, "u1")

	repo.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in entities.UserProfileInput) error {
			if in.Kind != entities.UserKindCliente {
				t.Fatalf("self-registration must not grant %q", in.Kind)
			}
			return nil
		},
	)
	repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.UserProfile{UID: "u1", Kind: entities.UserKindCliente}, true, nil)

	p, err := uc.CreateCurrent(context.Background(), entities.UserProfileInput{Name: "Ana", Kind: entities.UserKindAdmin})
	if err != nil || p.UID != "u1" {
		t.Fatalf("unexpected result %+v err=%v", p, err)
	}
}

func TestUserProfileUseCase_UpdateCurrent(t *testing.T) {
	uc, repo := newProfileUseCase(t, "u1")
	name := "Ana Souza"

	repo.EXPECT().Update(gomock.Any(), "u1", entities.UserProfilePatch{Name: &name}).Return(nil)
	repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.UserProfile{UID: "u1", Name: name}, true, nil)

	p, err := uc.UpdateCurrent(context.Background(), entities.UserProfilePatch{Name: &name})
	if err != nil || p.Name != name {
		t.Fatalf("unexpected result %+v err=%v", p, err)
	}
}

func TestUserProfileUseCase_AdminListings(t *testing.T) {
	t.Run("client is refused", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "u1")
		repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.UserProfile{Kind: entities.UserKindCliente}, true, nil)

		_, err := uc.ListAll(context.Background())
		if !errors.Is(err, ErrAdminOnly) {
			t.Fatalf("expected ErrAdminOnly, got %v", err)
		}
	})

	t.Run("user without profile is not admin", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "u1")
		repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.UserProfile{}, false, nil)

		admin, err := uc.IsAdmin(context.Background())
		if err != nil || admin {
			t.Fatalf("expected false, got %v err=%v", admin, err)
		}
	})

	t.Run("admin lists clients", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "root")
		repo.EXPECT().Get(gomock.Any(), "root").Return(entities.UserProfile{Kind: entities.UserKindAdmin}, true, nil)
		repo.EXPECT().ListByKind(gomock.Any(), entities.UserKindCliente).Return([]entities.UserProfile{{UID: "u1"}}, nil)

		got, err := uc.ListClients(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "root")
		repo.EXPECT().Get(gomock.Any(), "root").Return(entities.UserProfile{}, false, dataerr.New(dataerr.KindUnavailable, "usuarios.get", ""))

		_, err := uc.ListAll(context.Background())
		if !errors.Is(err, dataerr.ErrUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
	})

	t.Run("admin finds a profile by email", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "root")
		repo.EXPECT().Get(gomock.Any(), "root").Return(entities.UserProfile{Kind: entities.UserKindAdmin}, true, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@x.com").Return(entities.UserProfile{UID: "u1"}, true, nil)

		got, err := uc.FindByEmail(context.Background(), "ana@x.com")
		if err != nil || got.UID != "u1" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "root")
		repo.EXPECT().Get(gomock.Any(), "root").Return(entities.UserProfile{Kind: entities.UserKindAdmin}, true, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "x@x.com").Return(entities.UserProfile{}, false, nil)

		_, err := uc.FindByEmail(context.Background(), "x@x.com")
		if !errors.Is(err, dataerr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("email lookup refused for clients", func(t *testing.T) {
		uc, repo := newProfileUseCase(t, "u1")
		repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.UserProfile{Kind: entities.UserKindCliente}, true, nil)

		_, err := uc.FindByEmail(context.Background(), "ana@x.com")
		if !errors.Is(err, ErrAdminOnly) {
			t.Fatalf("expected ErrAdminOnly, got %v", err)
		}
	})
}
