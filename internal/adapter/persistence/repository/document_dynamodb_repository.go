package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"domeo_docs/internal/domain/entities"
	"domeo_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentsTableName = "documents"
	documentsClientIDIndex    = "client_id-index"
	documentsParentIDIndex    = "parent_document_id-index"

	// Dedup marker items share the documents table under a reserved id
	// prefix, so the document put and the dedup-key claim can be written in
	// one transaction.
	dedupItemPrefix = "dedupe#"
)

type documentItem struct {
	ID               string `dynamodbav:"id"`
	Type             string `dynamodbav:"type"`
	Number           string `dynamodbav:"number"`
	ParentDocumentID string `dynamodbav:"parent_document_id,omitempty"`
	CartSessionID    string `dynamodbav:"cart_session_id,omitempty"`
	ClientID         string `dynamodbav:"client_id"`
	Items            string `dynamodbav:"items"`
	TotalAmount      string `dynamodbav:"total_amount"`
	Subtotal         string `dynamodbav:"subtotal,omitempty"`
	TaxAmount        string `dynamodbav:"tax_amount,omitempty"`
	Notes            string `dynamodbav:"notes,omitempty"`
	SupplierName     string `dynamodbav:"supplier_name,omitempty"`
	ProjectFileURL   string `dynamodbav:"project_file_url,omitempty"`
	DedupKey         string `dynamodbav:"dedup_key,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

type dedupMarkerItem struct {
	ID         string `dynamodbav:"id"`
	DocumentID string `dynamodbav:"document_id"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: parent_document_id-index (PK: parent_document_id)
//
// Create writes the document and its dedup marker in one TransactWriteItems,
// both conditioned on attribute_not_exists. That makes the dedup-check-then-
// create path safe under concurrent identical requests: the losing writer
// gets interfaces.ErrDedupKeyExists and resolves the winner via GetByDedupKey.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	it, err := toDocumentItem(d)
	if err != nil {
		return entities.Document{}, err
	}
	docAV, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Document{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                docAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}

	if d.DedupKey != "" {
		marker := dedupMarkerItem{
			ID:         dedupItemPrefix + d.DedupKey,
			DocumentID: d.ID,
			CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		markerAV, err := attributevalue.MarshalMap(marker)
		if err != nil {
			return entities.Document{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                markerAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Document{}, interfaces.ErrDedupKeyExists
				}
			}
		}
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it)
}

func (r *DocumentDynamoRepository) GetByDedupKey(ctx context.Context, dedupKey string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: dedupItemPrefix + dedupKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var marker dedupMarkerItem
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.Document{}, err
	}
	if marker.DocumentID == "" {
		return entities.Document{}, nil
	}
	return r.GetByID(ctx, marker.DocumentID)
}

func (r *DocumentDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Document, error) {
	return r.queryIndex(ctx, documentsClientIDIndex, "client_id", clientID)
}

func (r *DocumentDynamoRepository) ListByParent(ctx context.Context, parentDocumentID string, t entities.DocumentType) ([]entities.Document, error) {
	docs, err := r.queryIndex(ctx, documentsParentIDIndex, "parent_document_id", parentDocumentID)
	if err != nil {
		return nil, err
	}
	filtered := docs[:0]
	for _, d := range docs {
		if d.Type == t {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (r *DocumentDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue string) ([]entities.Document, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": keyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	if err != nil {
		return nil, err
	}

	docs := make([]entities.Document, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if strings.HasPrefix(it.ID, dedupItemPrefix) {
			continue
		}
		d, err := fromDocumentItem(it)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	// Newest first; the dedup matcher prefers recent candidates.
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs, nil
}

// UpdateStatus stores the new status; non-empty notes are written in the same
// update so a status change and its annotation land atomically.
func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus, notes string) (entities.Document, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if notes != "" {
			expr += ", #notes = :notes"
			vals[":notes"] = &types.AttributeValueMemberS{Value: notes}
			names["#notes"] = "notes"
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) SetProjectFile(ctx context.Context, id string, fileURL string) (entities.Document, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #project_file_url = :url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":url":        &types.AttributeValueMemberS{Value: fileURL},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#project_file_url": "project_file_url",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Document, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it)
}

func toDocumentItem(d entities.Document) (documentItem, error) {
	itemsJSON, err := json.Marshal(d.Items)
	if err != nil {
		return documentItem{}, err
	}
	return documentItem{
		ID:               d.ID,
		Type:             string(d.Type),
		Number:           d.Number,
		ParentDocumentID: d.ParentDocumentID,
		CartSessionID:    d.CartSessionID,
		ClientID:         d.ClientID,
		Items:            string(itemsJSON),
		TotalAmount:      floatToString(d.TotalAmount),
		Subtotal:         floatToString(d.Subtotal),
		TaxAmount:        floatToString(d.TaxAmount),
		Notes:            d.Notes,
		SupplierName:     d.SupplierName,
		ProjectFileURL:   d.ProjectFileURL,
		DedupKey:         d.DedupKey,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDocumentItem(it documentItem) (entities.Document, error) {
	var items []entities.DocumentItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Document{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalAmount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	taxAmount, _ := strconv.ParseFloat(it.TaxAmount, 64)
	return entities.Document{
		ID:               it.ID,
		Type:             entities.DocumentType(it.Type),
		Number:           it.Number,
		ParentDocumentID: it.ParentDocumentID,
		CartSessionID:    it.CartSessionID,
		ClientID:         it.ClientID,
		Items:            items,
		TotalAmount:      totalAmount,
		Subtotal:         subtotal,
		TaxAmount:        taxAmount,
		Notes:            it.Notes,
		SupplierName:     it.SupplierName,
		ProjectFileURL:   it.ProjectFileURL,
		DedupKey:         it.DedupKey,
		Status:           entities.DocumentStatus(it.Status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
