package repository

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"b2b_sourcing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func decimalToString(d decimal.Decimal) string {
	return d.String()
}

// ErrCorruptItem marks a stored item whose attributes cannot be mapped back.
var ErrCorruptItem = errors.New("corrupt stored item")

// itemDecoder keeps the first malformed attribute seen while an item is mapped
// back to an entity.
type itemDecoder struct {
	err error
}

func (d *itemDecoder) time(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.fail(field, s, err)
	}
	return t
}

func (d *itemDecoder) decimal(field, s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		d.fail(field, s, err)
	}
	return v
}

func (d *itemDecoder) fail(field, value string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s=%q: %v", ErrCorruptItem, field, value, err)
	}
}

// conditionFailed reports whether err is a failed write precondition and whether
// the item existed when it failed.
func conditionFailed(err error) (failed bool, existed bool) {
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return false, false
	}
	return true, len(cfe.Item) > 0
}

func matchesFilter(r entities.QuoteRequest, f entities.RequestFilter) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.BuyerID != "" && r.BuyerID != f.BuyerID {
		return false
	}
	if f.VendorID != "" && !r.HasQuoteFrom(f.VendorID) {
		return false
	}
	return true
}

func sortRequests(rs []entities.QuoteRequest) {
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

func sortOrders(os []entities.Order) {
	sort.SliceStable(os, func(i, j int) bool {
		if !os[i].CreatedAt.Equal(os[j].CreatedAt) {
			return os[i].CreatedAt.Before(os[j].CreatedAt)
		}
		return os[i].ID < os[j].ID
	})
}
