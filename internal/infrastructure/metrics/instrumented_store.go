package metrics

import (
	"context"
	"time"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/usecase/interfaces"
)

// InstrumentedStore records count and latency of every call to the wrapped
// document store.
type InstrumentedStore struct {
	next   interfaces.IDocumentStore
	driver string
	m      *dataMetrics
}

var _ interfaces.IDocumentStore = (*InstrumentedStore)(nil)

func NewInstrumentedStore(next interfaces.IDocumentStore, driver string) *InstrumentedStore {
	return &InstrumentedStore{next: next, driver: driver, m: global()}
}

func (s *InstrumentedStore) observe(collection, op string, start time.Time, err error) {
	s.m.storeOps.WithLabelValues(s.driver, collection, op, result(err)).Inc()
	s.m.storeDurations.WithLabelValues(s.driver, collection, op).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) Add(ctx context.Context, collection string, fields docstore.Fields) (string, error) {
	start := time.Now()
	id, err := s.next.Add(ctx, collection, fields)
	s.observe(collection, "add", start, err)
	return id, err
}

func (s *InstrumentedStore) Set(ctx context.Context, collection, id string, fields docstore.Fields) error {
	start := time.Now()
	err := s.next.Set(ctx, collection, id, fields)
	s.observe(collection, "set", start, err)
	return err
}

func (s *InstrumentedStore) List(ctx context.Context, collection, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	start := time.Now()
	docs, err := s.next.List(ctx, collection, orderBy, dir)
	s.observe(collection, "list", start, err)
	return docs, err
}

func (s *InstrumentedStore) ListWhere(ctx context.Context, collection, field string, value any, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	start := time.Now()
	docs, err := s.next.ListWhere(ctx, collection, field, value, orderBy, dir)
	s.observe(collection, "list_where", start, err)
	return docs, err
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	start := time.Now()
	doc, found, err := s.next.Get(ctx, collection, id)
	s.observe(collection, "get", start, err)
	return doc, found, err
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, fields docstore.Fields) error {
	start := time.Now()
	err := s.next.Update(ctx, collection, id, fields)
	s.observe(collection, "update", start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, collection, id)
	s.observe(collection, "delete", start, err)
	return err
}
