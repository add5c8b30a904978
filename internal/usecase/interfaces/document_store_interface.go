package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/docstore"
)

//go:generate mockgen -source=document_store_interface.go -destination=mocks/document_store_interface_mock.go -package=mock_interfaces

// IDocumentStore is the remote document database consumed by the
// repositories. Implementations return *docstore.Error on failure.
//
// Documents live in named collections ("clientes", "equipamentos",
// "atendimentos", "usuarios", "descricoes"). List operations always read the
// whole matching set; there is no pagination.
type IDocumentStore interface {
	Add(ctx context.Context, collection string, fields docstore.Fields) (string, error)
	Set(ctx context.Context, collection, id string, fields docstore.Fields) error
	List(ctx context.Context, collection, orderBy string, dir docstore.Direction) ([]docstore.Document, error)
	ListWhere(ctx context.Context, collection, field string, value any, orderBy string, dir docstore.Direction) ([]docstore.Document, error)
	Get(ctx context.Context, collection, id string) (docstore.Document, bool, error)
	Update(ctx context.Context, collection, id string, fields docstore.Fields) error
	Delete(ctx context.Context, collection, id string) error
}
