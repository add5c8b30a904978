package repository

import (
	"context"
	"errors"

	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	CollectionClients      = "clientes"
	CollectionEquipment    = "equipamentos"
	CollectionTickets      = "atendimentos"
	CollectionUsers        = "usuarios"
	CollectionDescriptions = "descricoes"
)

// collection binds a store to one collection and turns every store failure
// into a *dataerr.Error after logging the raw error.
type collection struct {
	name   string
	store  interfaces.IDocumentStore
	logger *zap.Logger
}

func newCollection(name string, store interfaces.IDocumentStore, logger *zap.Logger) collection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return collection{name: name, store: store, logger: logger.With(zap.String("collection", name))}
}

func (c collection) op(action string) string {
	return c.name + "." + action
}

func (c collection) add(ctx context.Context, action string, fields docstore.Fields) (string, error) {
	id, err := c.store.Add(ctx, c.name, fields)
	if err != nil {
		return "", c.fail(action, err)
	}
	return id, nil
}

func (c collection) set(ctx context.Context, action, id string, fields docstore.Fields) error {
	if err := c.store.Set(ctx, c.name, id, fields); err != nil {
		return c.fail(action, err)
	}
	return nil
}

func (c collection) list(ctx context.Context, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	docs, err := c.store.List(ctx, c.name, orderBy, dir)
	if err != nil {
		return nil, c.fail("list", err)
	}
	return docs, nil
}

func (c collection) listWhere(ctx context.Context, field string, value any, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	docs, err := c.store.ListWhere(ctx, c.name, field, value, orderBy, dir)
	if err != nil {
		return nil, c.fail("list-by-"+field, err)
	}
	return docs, nil
}

func (c collection) get(ctx context.Context, id string) (docstore.Document, bool, error) {
	doc, found, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return docstore.Document{}, false, c.fail("get", err)
	}
	return doc, found, nil
}

func (c collection) update(ctx context.Context, id string, fields docstore.Fields) error {
	if err := c.store.Update(ctx, c.name, id, fields); err != nil {
		return c.fail("update", err)
	}
	return nil
}

func (c collection) delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, c.name, id); err != nil {
		return c.fail("delete", err)
	}
	return nil
}

func (c collection) fail(action string, err error) error {
	op := c.op(action)
	c.logger.Error("document store call failed", zap.String("op", op), zap.Error(err))
	return normalize(op, err)
}

// normalize maps a store error onto the repository taxonomy.
// permission-denied is reported as Unauthenticated.
func normalize(op string, err error) *dataerr.Error {
	var de *dataerr.Error
	if errors.As(err, &de) {
		return de
	}

	var se *docstore.Error
	if !errors.As(err, &se) {
		return dataerr.Wrap(dataerr.KindUnknown, op, err).WithMessage(unknownMessage(err))
	}

	switch se.Code {
	case docstore.CodePermissionDenied:
		return dataerr.Wrap(dataerr.KindUnauthenticated, op, err).WithMessage("Permissão negada. Verifique as permissões de acesso.")
	case docstore.CodeUnknown:
		raw := err
		if se.Err != nil {
			raw = se.Err
		}
		return dataerr.Wrap(dataerr.KindUnknown, op, err).WithMessage(unknownMessage(raw))
	}
	kind, ok := kinds[se.Code]
	if !ok {
		kind = dataerr.KindUnknown
	}
	return dataerr.Wrap(kind, op, err)
}

var kinds = map[docstore.Code]dataerr.Kind{
	docstore.CodeUnavailable:        dataerr.KindUnavailable,
	docstore.CodeUnauthenticated:    dataerr.KindUnauthenticated,
	docstore.CodeNotFound:           dataerr.KindNotFound,
	docstore.CodeAlreadyExists:      dataerr.KindAlreadyExists,
	docstore.CodeFailedPrecondition: dataerr.KindFailedPrecondition,
	docstore.CodeAborted:            dataerr.KindAborted,
	docstore.CodeOutOfRange:         dataerr.KindOutOfRange,
	docstore.CodeUnimplemented:      dataerr.KindUnimplemented,
	docstore.CodeInternal:           dataerr.KindInternal,
	docstore.CodeDataLoss:           dataerr.KindDataLoss,
	docstore.CodeDeadlineExceeded:   dataerr.KindDeadlineExceeded,
}

func unknownMessage(raw error) string {
	return "Erro do banco de dados: " + raw.Error()
}
