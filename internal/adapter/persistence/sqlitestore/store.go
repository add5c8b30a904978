package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const documentsTable = "documents"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id TEXT NOT NULL,
    data TEXT NOT NULL,
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`

var fieldName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Store keeps every collection in a single documents table, one JSON body
// per row. Filters and ordering go through json_extract.
type Store struct {
	db  *sql.DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

var _ interfaces.IDocumentStore = (*Store)(nil)

// New migrates db and returns a store on top of it.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &Store{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: time.Now,
	}, nil
}

func (s *Store) Add(ctx context.Context, collection string, fields docstore.Fields) (string, error) {
	id := uuid.NewString()
	data, err := s.encode(fields)
	if err != nil {
		return "", docstore.NewError(docstore.CodeInternal, "add", collection, err)
	}

	query, args, err := s.sb.Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, data).
		ToSql()
	if err != nil {
		return "", docstore.NewError(docstore.CodeInternal, "add", collection, err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", mapError("add", collection, err)
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, fields docstore.Fields) error {
	data, err := s.encode(fields)
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, "set", collection, err)
	}

	query, args, err := s.sb.Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, data).
		Suffix("ON CONFLICT(collection, id) DO UPDATE SET data = excluded.data").
		ToSql()
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, "set", collection, err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError("set", collection, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, collection, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	return s.list(ctx, "list", collection, sq.Eq{"collection": collection}, orderBy, dir)
}

func (s *Store) ListWhere(ctx context.Context, collection, field string, value any, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	path, err := jsonPath(field)
	if err != nil {
		return nil, docstore.NewError(docstore.CodeFailedPrecondition, "list-where", collection, err)
	}
	where := sq.And{
		sq.Eq{"collection": collection},
		sq.Expr("json_extract(data, ?) = ?", path, value),
	}
	return s.list(ctx, "list-where", collection, where, orderBy, dir)
}

func (s *Store) list(ctx context.Context, op, collection string, where sq.Sqlizer, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	builder := s.sb.Select("id", "data").From(documentsTable).Where(where)
	if orderBy != "" {
		path, err := jsonPath(orderBy)
		if err != nil {
			return nil, docstore.NewError(docstore.CodeFailedPrecondition, op, collection, err)
		}
		order := "ASC"
		if dir == docstore.Desc {
			order = "DESC"
		}
		builder = builder.OrderByClause(fmt.Sprintf("json_extract(data, ?) %s, id %s", order, order), path)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, docstore.NewError(docstore.CodeInternal, op, collection, err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, collection, err)
	}
	defer rows.Close()

	docs := make([]docstore.Document, 0)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, mapError(op, collection, err)
		}
		fields, err := decode(data)
		if err != nil {
			return nil, docstore.NewError(docstore.CodeDataLoss, op, collection, err)
		}
		docs = append(docs, docstore.Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, collection, err)
	}
	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	query, args, err := s.sb.Select("data").From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return docstore.Document{}, false, docstore.NewError(docstore.CodeInternal, "get", collection, err)
	}

	var data string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.Document{}, false, nil
		}
		return docstore.Document{}, false, mapError("get", collection, err)
	}
	fields, err := decode(data)
	if err != nil {
		return docstore.Document{}, false, docstore.NewError(docstore.CodeDataLoss, "get", collection, err)
	}
	return docstore.Document{ID: id, Fields: fields}, true, nil
}

// Update merges fields into the stored body with json_patch. Arrays are
// replaced, not merged.
func (s *Store) Update(ctx context.Context, collection, id string, fields docstore.Fields) error {
	patch, err := s.encode(fields)
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, "update", collection, err)
	}

	query, args, err := s.sb.Update(documentsTable).
		Set("data", sq.Expr("json_patch(data, ?)", patch)).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, "update", collection, err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError("update", collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError("update", collection, err)
	}
	if n == 0 {
		return docstore.NewError(docstore.CodeNotFound, "update", collection, fmt.Errorf("document %s not found", id))
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	query, args, err := s.sb.Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, "delete", collection, err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError("delete", collection, err)
	}
	return nil
}

func (s *Store) encode(fields docstore.Fields) (string, error) {
	b, err := json.Marshal(docstore.Encode(fields, s.now()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(data string) (docstore.Fields, error) {
	fields := docstore.Fields{}
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func jsonPath(field string) (string, error) {
	if !fieldName.MatchString(field) {
		return "", fmt.Errorf("invalid field name %q", field)
	}
	return "$." + field, nil
}

func mapError(op, collection string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return docstore.NewError(docstore.CodeDeadlineExceeded, op, collection, err)
	case errors.Is(err, context.Canceled):
		return docstore.NewError(docstore.CodeAborted, op, collection, err)
	case errors.Is(err, sql.ErrConnDone):
		return docstore.NewError(docstore.CodeUnavailable, op, collection, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return docstore.NewError(docstore.CodeAlreadyExists, op, collection, err)
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "SQLITE_BUSY"):
		return docstore.NewError(docstore.CodeUnavailable, op, collection, err)
	case strings.Contains(msg, "database disk image is malformed"):
		return docstore.NewError(docstore.CodeDataLoss, op, collection, err)
	case strings.Contains(msg, "readonly database"):
		return docstore.NewError(docstore.CodePermissionDenied, op, collection, err)
	}
	return docstore.NewError(docstore.CodeUnknown, op, collection, err)
}
