package usecase

import (
	"context"
	"strings"

	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/views"
	"assistencia_tecnica/internal/usecase/interfaces"
)

//go:generate mockgen -source=service_catalog_usecase.go -destination=../adapter/http/handlers/mocks/service_catalog_usecase_mock.go -package=mocks

// IServiceCatalogUseCase manages the catalog of service descriptions
// (descrições de serviço) used when quoting a ticket.
type IServiceCatalogUseCase interface {
	List(ctx context.Context) ([]entities.ServiceDescription, error)
	ListActive(ctx context.Context) ([]entities.ServiceDescription, error)
	ListByCategory(ctx context.Context, category string) ([]entities.ServiceDescription, error)
	Search(ctx context.Context, query string) ([]entities.ServiceDescription, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (entities.ServiceDescription, error)
	Create(ctx context.Context, in entities.ServiceDescriptionInput) (string, error)
	Update(ctx context.Context, id string, patch entities.ServiceDescriptionPatch) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type ServiceCatalogUseCase struct {
	repo     interfaces.IServiceDescriptionRepository
	identity interfaces.IIdentityProvider
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceDescriptionRepository, identity interfaces.IIdentityProvider) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo, identity: identity}
}

func (u *ServiceCatalogUseCase) List(ctx context.Context) ([]entities.ServiceDescription, error) {
	return u.repo.List(ctx)
}

// ListActive returns active entries sorted by category and title.
func (u *ServiceCatalogUseCase) ListActive(ctx context.Context) ([]entities.ServiceDescription, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.ActiveDescriptions(all), nil
}

// ListByCategory returns the active entries of one category, by title.
func (u *ServiceCatalogUseCase) ListByCategory(ctx context.Context, category string) ([]entities.ServiceDescription, error) {
	ds, err := u.repo.ListByCategory(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceDescription, 0, len(ds))
	for _, d := range ds {
		if d.Active {
			out = append(out, d)
		}
	}
	return out, nil
}

// Search matches query against title, description and tags.
func (u *ServiceCatalogUseCase) Search(ctx context.Context, query string) ([]entities.ServiceDescription, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.FilterBySubstring(all, strings.TrimSpace(query), views.DescriptionFields...), nil
}

func (u *ServiceCatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.Categories(all), nil
}

func (u *ServiceCatalogUseCase) Get(ctx context.Context, id string) (entities.ServiceDescription, error) {
	d, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceDescription{}, err
	}
	if !found {
		return entities.ServiceDescription{}, dataerr.New(dataerr.KindNotFound, "descricoes.get", "Descrição de serviço não encontrada.")
	}
	return d, nil
}

// Create records the signed-in user as the author; anonymous callers are
// rejected.
func (u *ServiceCatalogUseCase) Create(ctx context.Context, in entities.ServiceDescriptionInput) (string, error) {
	uid, ok := u.currentUser(ctx)
	if !ok {
		return "", dataerr.New(dataerr.KindUnauthenticated, "descricoes.create", "")
	}
	in.CreatedBy = uid
	return u.repo.Create(ctx, in)
}

func (u *ServiceCatalogUseCase) Update(ctx context.Context, id string, patch entities.ServiceDescriptionPatch) error {
	return u.repo.Update(ctx, id, patch)
}

func (u *ServiceCatalogUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

func (u *ServiceCatalogUseCase) SetActive(ctx context.Context, id string, active bool) error {
	return u.repo.Update(ctx, id, entities.ServiceDescriptionPatch{Active: &active})
}

func (u *ServiceCatalogUseCase) currentUser(ctx context.Context) (string, bool) {
	if u.identity == nil {
		return "", false
	}
	return u.identity.CurrentUserID(ctx)
}
