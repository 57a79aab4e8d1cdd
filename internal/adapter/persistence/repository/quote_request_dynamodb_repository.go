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
	DefaultQuoteRequestsTableName = "quote_requests"
	quoteRequestsBuyerIDIndex     = "buyer_id-index"
)

type lineItemItem struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name,omitempty"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

type feesItem struct {
	Service  string `dynamodbav:"service"`
	Shipping string `dynamodbav:"shipping"`
	Tax      string `dynamodbav:"tax"`
	Other    string `dynamodbav:"other"`
}

type vendorQuoteItem struct {
	ID                    string   `dynamodbav:"id"`
	VendorID              string   `dynamodbav:"vendor_id"`
	Price                 string   `dynamodbav:"price"`
	Fees                  feesItem `dynamodbav:"fees"`
	EstimatedDeliveryDays int      `dynamodbav:"estimated_delivery_days"`
	Status                string   `dynamodbav:"status"`
	Note                  string   `dynamodbav:"note,omitempty"`
	Sequence              int      `dynamodbav:"sequence"`
	SubmittedAt           string   `dynamodbav:"submitted_at"`
	UpdatedAt             string   `dynamodbav:"updated_at"`
}

type statusChangeItem struct {
	At        string `dynamodbav:"at"`
	From      string `dynamodbav:"from"`
	To        string `dynamodbav:"to"`
	ActorRole string `dynamodbav:"actor_role"`
	ActorID   string `dynamodbav:"actor_id,omitempty"`
	Reason    string `dynamodbav:"reason,omitempty"`
}

type quoteRequestItem struct {
	ID           string             `dynamodbav:"id"`
	BuyerID      string             `dynamodbav:"buyer_id"`
	LineItems    []lineItemItem     `dynamodbav:"line_items"`
	Status       string             `dynamodbav:"status"`
	Quotes       []vendorQuoteItem  `dynamodbav:"quotes"`
	History      []statusChangeItem `dynamodbav:"history"`
	NextQuoteSeq int                `dynamodbav:"next_quote_seq"`
	Version      int64              `dynamodbav:"version"`
	CreatedAt    string             `dynamodbav:"created_at"`
	UpdatedAt    string             `dynamodbav:"updated_at"`
	ExpiresAt    string             `dynamodbav:"expires_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)
//
// Quotes are stored inside the request item, so a selection and the rejection of
// its siblings are one conditional write on version.
type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteRequestDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuoteRequestsTableName
	}
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, req entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(req))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if failed, _ := conditionFailed(err); failed {
			return entities.QuoteRequest{}, entities.ErrConflict
		}
		return entities.QuoteRequest{}, err
	}
	return req.Clone(), nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it)
}

// Update replaces the document when the stored version still equals expectedVersion.
func (r *QuoteRequestDynamoRepository) Update(ctx context.Context, req entities.QuoteRequest, expectedVersion int64) (entities.QuoteRequest, error) {
	next := req.Clone()
	next.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(next))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if failed, existed := conditionFailed(err); failed {
			if !existed {
				return entities.QuoteRequest{}, entities.ErrRequestNotFound
			}
			return entities.QuoteRequest{}, entities.ErrConflict
		}
		return entities.QuoteRequest{}, err
	}
	return next, nil
}

// List filters on stored fields. A buyer filter is served by the buyer_id index,
// everything else by a paginated scan.
func (r *QuoteRequestDynamoRepository) List(ctx context.Context, filter entities.RequestFilter) ([]entities.QuoteRequest, error) {
	var pages [][]map[string]types.AttributeValue
	if filter.BuyerID != "" {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quoteRequestsBuyerIDIndex),
			KeyConditionExpression: aws.String("buyer_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: filter.BuyerID},
			},
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	} else {
		p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
			TableName:      aws.String(r.tableName),
			ConsistentRead: aws.Bool(true),
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	}

	items := make([]entities.QuoteRequest, 0)
	for _, page := range pages {
		for _, raw := range page {
			var it quoteRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			req, err := fromQuoteRequestItem(it)
			if err != nil {
				return nil, err
			}
			if matchesFilter(req, filter) {
				items = append(items, req)
			}
		}
	}
	sortRequests(items)
	return items, nil
}

func toQuoteRequestItem(r entities.QuoteRequest) quoteRequestItem {
	it := quoteRequestItem{
		ID:           r.ID,
		BuyerID:      r.BuyerID,
		LineItems:    make([]lineItemItem, 0, len(r.LineItems)),
		Status:       string(r.Status),
		Quotes:       make([]vendorQuoteItem, 0, len(r.Quotes)),
		History:      make([]statusChangeItem, 0, len(r.History)),
		NextQuoteSeq: r.NextQuoteSeq,
		Version:      r.Version,
		CreatedAt:    formatTime(r.CreatedAt),
		UpdatedAt:    formatTime(r.UpdatedAt),
		ExpiresAt:    formatTime(r.ExpiresAt),
	}
	for _, li := range r.LineItems {
		it.LineItems = append(it.LineItems, toLineItemItem(li))
	}
	for _, q := range r.Quotes {
		it.Quotes = append(it.Quotes, vendorQuoteItem{
			ID:                    q.ID,
			VendorID:              q.VendorID,
			Price:                 decimalToString(q.Price),
			Fees:                  toFeesItem(q.Fees),
			EstimatedDeliveryDays: q.EstimatedDeliveryDays,
			Status:                string(q.Status),
			Note:                  q.Note,
			Sequence:              q.Sequence,
			SubmittedAt:           formatTime(q.SubmittedAt),
			UpdatedAt:             formatTime(q.UpdatedAt),
		})
	}
	for _, c := range r.History {
		it.History = append(it.History, statusChangeItem{
			At:        formatTime(c.At),
			From:      string(c.From),
			To:        string(c.To),
			ActorRole: string(c.Actor.Role),
			ActorID:   c.Actor.ID,
			Reason:    c.Reason,
		})
	}
	return it
}

func fromQuoteRequestItem(it quoteRequestItem) (entities.QuoteRequest, error) {
	d := &itemDecoder{}
	r := entities.QuoteRequest{
		ID:           it.ID,
		BuyerID:      it.BuyerID,
		LineItems:    make([]entities.LineItem, 0, len(it.LineItems)),
		Status:       entities.RequestStatus(it.Status),
		Quotes:       make([]entities.VendorQuote, 0, len(it.Quotes)),
		History:      make([]entities.StatusChange, 0, len(it.History)),
		NextQuoteSeq: it.NextQuoteSeq,
		Version:      it.Version,
		CreatedAt:    d.time("created_at", it.CreatedAt),
		UpdatedAt:    d.time("updated_at", it.UpdatedAt),
		ExpiresAt:    d.time("expires_at", it.ExpiresAt),
	}
	for _, li := range it.LineItems {
		r.LineItems = append(r.LineItems, fromLineItemItem(d, li))
	}
	for _, q := range it.Quotes {
		r.Quotes = append(r.Quotes, entities.VendorQuote{
			ID:                    q.ID,
			RequestID:             it.ID,
			VendorID:              q.VendorID,
			Price:                 d.decimal("quotes.price", q.Price),
			Fees:                  fromFeesItem(d, q.Fees),
			EstimatedDeliveryDays: q.EstimatedDeliveryDays,
			Status:                entities.QuoteStatus(q.Status),
			Note:                  q.Note,
			Sequence:              q.Sequence,
			SubmittedAt:           d.time("quotes.submitted_at", q.SubmittedAt),
			UpdatedAt:             d.time("quotes.updated_at", q.UpdatedAt),
		})
	}
	for _, c := range it.History {
		r.History = append(r.History, entities.StatusChange{
			At:     d.time("history.at", c.At),
			From:   entities.RequestStatus(c.From),
			To:     entities.RequestStatus(c.To),
			Actor:  entities.Actor{Role: entities.Role(c.ActorRole), ID: c.ActorID},
			Reason: c.Reason,
		})
	}
	if d.err != nil {
		return entities.QuoteRequest{}, fmt.Errorf("quote request %s: %w", it.ID, d.err)
	}
	return r, nil
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		ProductID: li.ProductID,
		Name:      li.Name,
		Quantity:  li.Quantity,
		UnitPrice: decimalToString(li.UnitPrice),
		Notes:     li.Notes,
	}
}

func fromLineItemItem(d *itemDecoder, it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ProductID: it.ProductID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: d.decimal("line_items.unit_price", it.UnitPrice),
		Notes:     it.Notes,
	}
}

func toFeesItem(f entities.Fees) feesItem {
	return feesItem{
		Service:  decimalToString(f.Service),
		Shipping: decimalToString(f.Shipping),
		Tax:      decimalToString(f.Tax),
		Other:    decimalToString(f.Other),
	}
}

func fromFeesItem(d *itemDecoder, it feesItem) entities.Fees {
	return entities.Fees{
		Service:  d.decimal("fees.service", it.Service),
		Shipping: d.decimal("fees.shipping", it.Shipping),
		Tax:      d.decimal("fees.tax", it.Tax),
		Other:    d.decimal("fees.other", it.Other),
	}
}
