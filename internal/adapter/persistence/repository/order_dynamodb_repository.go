package repository

import (
	"context"
	"fmt"
	"strconv"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultOrdersTableName = "orders"
	ordersIDIndex          = "id-index"
	ordersBuyerIDIndex     = "buyer_id-index"
)

type historyEntryItem struct {
	Date        string `dynamodbav:"date"`
	Status      string `dynamodbav:"status"`
	Description string `dynamodbav:"description"`
}

type shippingItem struct {
	RecipientName string `dynamodbav:"recipient_name"`
	Phone         string `dynamodbav:"phone,omitempty"`
	Address       string `dynamodbav:"address"`
	PostalCode    string `dynamodbav:"postal_code,omitempty"`
	Memo          string `dynamodbav:"memo,omitempty"`
}

type orderItem struct {
	RequestID             string             `dynamodbav:"request_id"`
	ID                    string             `dynamodbav:"id"`
	QuoteID               string             `dynamodbav:"quote_id"`
	BuyerID               string             `dynamodbav:"buyer_id"`
	VendorID              string             `dynamodbav:"vendor_id"`
	LineItems             []lineItemItem     `dynamodbav:"line_items"`
	Price                 string             `dynamodbav:"price"`
	Fees                  feesItem           `dynamodbav:"fees"`
	TotalPrice            string             `dynamodbav:"total_price"`
	EstimatedDeliveryDays int                `dynamodbav:"estimated_delivery_days"`
	Shipping              shippingItem       `dynamodbav:"shipping"`
	PaymentID             string             `dynamodbav:"payment_id,omitempty"`
	Status                string             `dynamodbav:"status"`
	History               []historyEntryItem `dynamodbav:"history"`
	Version               int64              `dynamodbav:"version"`
	CreatedAt             string             `dynamodbav:"created_at"`
	UpdatedAt             string             `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string)
//   - GSI: id-index (PK: id)
//   - GSI: buyer_id-index (PK: buyer_id)
//
// Keying on request_id is what makes a second order for the same request fail
// its attribute_not_exists condition.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#request_id)"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
	})
	if err != nil {
		if failed, _ := conditionFailed(err); failed {
			return entities.Order{}, entities.ErrConflict
		}
		return entities.Order{}, err
	}
	return o.Clone(), nil
}

func (r *OrderDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

// GetByID resolves the order id through the id index, then reads the base item
// consistently.
func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return r.GetByRequestID(ctx, it.RequestID)
}

func (r *OrderDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersBuyerIDIndex),
		KeyConditionExpression: aws.String("buyer_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buyerID},
		},
	})

	items := make([]entities.Order, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			o, err := fromOrderItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, o)
		}
	}
	sortOrders(items)
	return items, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	next := o.Clone()
	next.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toOrderItem(next))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#request_id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
			"#version":    "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if failed, existed := conditionFailed(err); failed {
			if !existed {
				return entities.Order{}, entities.ErrOrderNotFound
			}
			return entities.Order{}, entities.ErrConflict
		}
		return entities.Order{}, err
	}
	return next, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		RequestID:             o.RequestID,
		ID:                    o.ID,
		QuoteID:               o.QuoteID,
		BuyerID:               o.BuyerID,
		VendorID:              o.VendorID,
		LineItems:             make([]lineItemItem, 0, len(o.LineItems)),
		Price:                 decimalToString(o.Price),
		Fees:                  toFeesItem(o.Fees),
		TotalPrice:            decimalToString(o.TotalPrice),
		EstimatedDeliveryDays: o.EstimatedDeliveryDays,
		Shipping: shippingItem{
			RecipientName: o.Shipping.RecipientName,
			Phone:         o.Shipping.Phone,
			Address:       o.Shipping.Address,
			PostalCode:    o.Shipping.PostalCode,
			Memo:          o.Shipping.Memo,
		},
		PaymentID: o.PaymentID,
		Status:    string(o.Status),
		History:   make([]historyEntryItem, 0, len(o.History)),
		Version:   o.Version,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
	for _, li := range o.LineItems {
		it.LineItems = append(it.LineItems, toLineItemItem(li))
	}
	for _, h := range o.History {
		it.History = append(it.History, historyEntryItem{
			Date:        formatTime(h.Date),
			Status:      string(h.Status),
			Description: h.Description,
		})
	}
	return it
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	d := &itemDecoder{}
	o := entities.Order{
		ID:                    it.ID,
		RequestID:             it.RequestID,
		QuoteID:               it.QuoteID,
		BuyerID:               it.BuyerID,
		VendorID:              it.VendorID,
		LineItems:             make([]entities.LineItem, 0, len(it.LineItems)),
		Price:                 d.decimal("price", it.Price),
		Fees:                  fromFeesItem(d, it.Fees),
		TotalPrice:            d.decimal("total_price", it.TotalPrice),
		EstimatedDeliveryDays: it.EstimatedDeliveryDays,
		Shipping: entities.ShippingDetails{
			RecipientName: it.Shipping.RecipientName,
			Phone:         it.Shipping.Phone,
			Address:       it.Shipping.Address,
			PostalCode:    it.Shipping.PostalCode,
			Memo:          it.Shipping.Memo,
		},
		PaymentID: it.PaymentID,
		Status:    entities.OrderStatus(it.Status),
		History:   make([]entities.HistoryEntry, 0, len(it.History)),
		Version:   it.Version,
		CreatedAt: d.time("created_at", it.CreatedAt),
		UpdatedAt: d.time("updated_at", it.UpdatedAt),
	}
	for _, li := range it.LineItems {
		o.LineItems = append(o.LineItems, fromLineItemItem(d, li))
	}
	for _, h := range it.History {
		o.History = append(o.History, entities.HistoryEntry{
			Date:        d.time("history.date", h.Date),
			Status:      entities.OrderStatus(h.Status),
			Description: h.Description,
		})
	}
	if d.err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", it.RequestID, d.err)
	}
	return o, nil
}
