package dynamostore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const idAttribute = "id"

// Store maps each collection onto its own DynamoDB table.
//
// Table requirements:
//   - name: <prefix><collection>, e.g. "assistencia_clientes"
//   - PK: id (string)
//   - one GSI per filtered field, named "<field>-index" (clienteId-index,
//     equipamentoId-index, tipo-index, email-index, categoria-index)
type Store struct {
	ddb    *dynamodb.Client
	prefix string
	now    func() time.Time
}

var _ interfaces.IDocumentStore = (*Store)(nil)

func New(ddb *dynamodb.Client, tablePrefix string) *Store {
	return &Store{ddb: ddb, prefix: tablePrefix, now: time.Now}
}

func (s *Store) table(collection string) *string {
	return aws.String(s.prefix + collection)
}

func (s *Store) Add(ctx context.Context, collection string, fields docstore.Fields) (string, error) {
	id := uuid.NewString()
	if err := s.put(ctx, "add", collection, id, fields, true); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, fields docstore.Fields) error {
	return s.put(ctx, "set", collection, id, fields, false)
}

func (s *Store) put(ctx context.Context, op, collection, id string, fields docstore.Fields, mustBeNew bool) error {
	item, err := marshalItem(id, docstore.Encode(fields, s.now()))
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, op, collection, err)
	}

	in := &dynamodb.PutItemInput{
		TableName: s.table(collection),
		Item:      item,
	}
	if mustBeNew {
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
		in.ExpressionAttributeNames = map[string]string{"#id": idAttribute}
	}

	if _, err := s.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return docstore.NewError(docstore.CodeAlreadyExists, op, collection, err)
		}
		return mapError(op, collection, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, collection, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:      s.table(collection),
		ConsistentRead: aws.Bool(true),
	})

	var docs []docstore.Document
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, mapError("list", collection, err)
		}
		for _, item := range page.Items {
			doc, err := unmarshalItem(item)
			if err != nil {
				return nil, docstore.NewError(docstore.CodeDataLoss, "list", collection, err)
			}
			docs = append(docs, doc)
		}
	}
	return ordered(docs, orderBy, dir), nil
}

// ListWhere queries the "<field>-index" GSI of the collection table.
func (s *Store) ListWhere(ctx context.Context, collection, field string, value any, orderBy string, dir docstore.Direction) ([]docstore.Document, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, docstore.NewError(docstore.CodeInternal, "list-where", collection, err)
	}

	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:                 s.table(collection),
		IndexName:                 aws.String(field + "-index"),
		KeyConditionExpression:    aws.String("#f = :v"),
		ExpressionAttributeNames:  map[string]string{"#f": field},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": av},
	})

	var docs []docstore.Document
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, mapError("list-where", collection, err)
		}
		for _, item := range page.Items {
			doc, err := unmarshalItem(item)
			if err != nil {
				return nil, docstore.NewError(docstore.CodeDataLoss, "list-where", collection, err)
			}
			docs = append(docs, doc)
		}
	}
	return ordered(docs, orderBy, dir), nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: s.table(collection),
		Key: map[string]types.AttributeValue{
			idAttribute: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return docstore.Document{}, false, mapError("get", collection, err)
	}
	if len(out.Item) == 0 {
		return docstore.Document{}, false, nil
	}

	doc, err := unmarshalItem(out.Item)
	if err != nil {
		return docstore.Document{}, false, docstore.NewError(docstore.CodeDataLoss, "get", collection, err)
	}
	return doc, true, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields docstore.Fields) error {
	if len(fields) == 0 {
		return nil
	}
	expr, names, values, err := updateExpression(docstore.Encode(fields, s.now()))
	if err != nil {
		return docstore.NewError(docstore.CodeInternal, "update", collection, err)
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: s.table(collection),
		Key: map[string]types.AttributeValue{
			idAttribute: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": idAttribute}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return docstore.NewError(docstore.CodeNotFound, "update", collection, fmt.Errorf("document %s not found", id))
		}
		return mapError("update", collection, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.table(collection),
		Key: map[string]types.AttributeValue{
			idAttribute: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return mapError("delete", collection, err)
	}
	return nil
}

func marshalItem(id string, fields docstore.Fields) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(map[string]any(fields))
	if err != nil {
		return nil, err
	}
	item[idAttribute] = &types.AttributeValueMemberS{Value: id}
	return item, nil
}

func unmarshalItem(item map[string]types.AttributeValue) (docstore.Document, error) {
	fields := docstore.Fields{}
	if err := attributevalue.UnmarshalMap(item, &fields); err != nil {
		return docstore.Document{}, err
	}
	id, _ := fields[idAttribute].(string)
	delete(fields, idAttribute)
	return docstore.Document{ID: id, Fields: fields}, nil
}

// updateExpression builds "SET #f0 = :v0, ..." with placeholders assigned
// in key order so the expression is stable.
func updateExpression(fields docstore.Fields) (string, map[string]string, map[string]types.AttributeValue, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == idAttribute {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))
	expr := "SET "
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("field %s: %w", k, err)
		}
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		names[name] = k
		values[value] = av
		if i > 0 {
			expr += ", "
		}
		expr += name + " = " + value
	}
	return expr, names, values, nil
}

func ordered(docs []docstore.Document, orderBy string, dir docstore.Direction) []docstore.Document {
	if docs == nil {
		docs = []docstore.Document{}
	}
	if orderBy != "" {
		docstore.Sort(docs, orderBy, dir)
	}
	return docs
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
