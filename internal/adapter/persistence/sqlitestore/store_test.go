package sqlitestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/infrastructure/database"

	"github.com/stretchr/testify/require"
)

// NewTestStore returns a store backed by a fresh in-memory database.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		db.Close()
	})

	s, err := New(db)
	require.NoError(t, err, "failed to migrate test database")
	return s
}

func TestStore_AddAndGet(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	stamp := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return stamp }

	id, err := s.Add(ctx, "clientes", docstore.Fields{
		"nome":         "Ana",
		"dataCadastro": docstore.ServerTimestamp,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, found, err := s.Get(ctx, "clientes", id)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, id, doc.ID)
	require.Equal(t, "Ana", doc.Fields.String("nome"))
	require.True(t, stamp.Equal(doc.Fields.Time("dataCadastro")))

	_, found, err = s.Get(ctx, "equipamentos", id)
	require.NoError(t, err)
	require.False(t, found, "collections must not leak into each other")
}

func TestStore_ListOrdering(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"primeiro", "segundo", "terceiro"} {
		_, err := s.Add(ctx, "clientes", docstore.Fields{
			"nome":         name,
			"dataCadastro": base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	docs, err := s.List(ctx, "clientes", "dataCadastro", docstore.Desc)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "terceiro", docs[0].Fields.String("nome"))
	require.Equal(t, "primeiro", docs[2].Fields.String("nome"))

	docs, err = s.List(ctx, "clientes", "nome", docstore.Asc)
	require.NoError(t, err)
	require.Equal(t, "primeiro", docs[0].Fields.String("nome"))
}

func TestStore_ListWhere(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	for _, c := range []string{"c1", "c1", "c2"} {
		_, err := s.Add(ctx, "equipamentos", docstore.Fields{"clienteId": c, "ativo": c == "c1"})
		require.NoError(t, err)
	}

	docs, err := s.ListWhere(ctx, "equipamentos", "clienteId", "c1", "", docstore.Asc)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	docs, err = s.ListWhere(ctx, "equipamentos", "ativo", false, "", docstore.Asc)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "c2", docs[0].Fields.String("clienteId"))

	_, err = s.ListWhere(ctx, "equipamentos", "cliente'); DROP TABLE documents; --", "c1", "", docstore.Asc)
	var storeErr *docstore.Error
	require.True(t, errors.As(err, &storeErr))
	require.Equal(t, docstore.CodeFailedPrecondition, storeErr.Code)
}

func TestStore_UpdateMerges(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "atendimentos", docstore.Fields{
		"problema": "Tela quebrada",
		"status":   "Aguardando",
		"tags":     []string{"a", "b"},
	})
	require.NoError(t, err)

	err = s.Update(ctx, "atendimentos", id, docstore.Fields{
		"status":       "Concluído",
		"valorServico": 350.5,
		"tags":         []string{"c"},
	})
	require.NoError(t, err)

	doc, found, err := s.Get(ctx, "atendimentos", id)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Tela quebrada", doc.Fields.String("problema"))
	require.Equal(t, "Concluído", doc.Fields.String("status"))
	v, ok := doc.Fields.Float("valorServico")
	require.True(t, ok)
	require.Equal(t, 350.5, v)
	require.Equal(t, []string{"c"}, doc.Fields.Strings("tags"))
}

func TestStore_UpdateMissingDocument(t *testing.T) {
	s := NewTestStore(t)

	err := s.Update(context.Background(), "clientes", "nope", docstore.Fields{"nome": "x"})
	var storeErr *docstore.Error
	require.True(t, errors.As(err, &storeErr))
	require.Equal(t, docstore.CodeNotFound, storeErr.Code)
}

func TestStore_SetAndDelete(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "usuarios", "uid-1", docstore.Fields{"nome": "Ana", "tipo": "cliente"}))
	require.NoError(t, s.Set(ctx, "usuarios", "uid-1", docstore.Fields{"nome": "Ana Souza"}))

	doc, found, err := s.Get(ctx, "usuarios", "uid-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Ana Souza", doc.Fields.String("nome"))
	require.Empty(t, doc.Fields.String("tipo"), "set replaces the whole document")

	require.NoError(t, s.Delete(ctx, "usuarios", "uid-1"))
	require.NoError(t, s.Delete(ctx, "usuarios", "uid-1"), "deleting a missing document is not an error")

	_, found, err = s.Get(ctx, "usuarios", "uid-1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, "clientes", "", docstore.Asc)
	var storeErr *docstore.Error
	require.True(t, errors.As(err, &storeErr))
	require.Equal(t, docstore.CodeAborted, storeErr.Code)
}
