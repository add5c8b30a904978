package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/codec"
	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/usecase/interfaces"
)

// stampCreator records the signed-in user as the author of a new document.
func stampCreator(ctx context.Context, identity interfaces.IIdentityProvider, fields docstore.Fields) {
	if identity == nil {
		return
	}
	if uid, ok := identity.CurrentUserID(ctx); ok && uid != "" {
		fields[codec.FieldCreatedBy] = uid
	}
}

func decodeAll[T any](docs []docstore.Document, decode func(docstore.Document) T) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, decode(d))
	}
	return out
}

func validationFor(op, field string) error {
	return dataerr.Validation(op, "Valor inválido para o campo %s.", field)
}

func floatPtr(f docstore.Fields, key string) *float64 {
	v, ok := f.Float(key)
	if !ok {
		return nil
	}
	return &v
}
