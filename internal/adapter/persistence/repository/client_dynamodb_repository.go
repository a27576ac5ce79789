package repository

import (
	"context"
	"time"

	"domeo_docs/internal/domain/entities"
	"domeo_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID         string `dynamodbav:"id"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	MiddleName string `dynamodbav:"middle_name,omitempty"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Address    string `dynamodbav:"address,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ClientDynamoRepository reads the client registry from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The lifecycle engine only ever resolves clients; registry writes happen
// elsewhere in the system.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) getByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Client{
		ID:         it.ID,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		MiddleName: it.MiddleName,
		Phone:      it.Phone,
		Address:    it.Address,
		CreatedAt:  createdAt,
	}, nil
}

func (r *ClientDynamoRepository) Exists(ctx context.Context, id string) (bool, error) {
	c, err := r.getByID(ctx, id)
	if err != nil {
		return false, err
	}
	return c.ID != "", nil
}
