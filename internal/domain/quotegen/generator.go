// Package quotegen produces a vendor's opening offer for a quote request.
//
// Output is a pure function of (seed, request id, vendor id, baseline): the same
// inputs always yield the same quote, so callers and tests can rely on exact values.
package quotegen

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"b2b_sourcing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidBaseline = errors.New("baseline price must be positive")

// Params holds the pricing constants. Rates are fractions of the baseline.
type Params struct {
	PriceBand      decimal.Decimal
	ServiceRate    decimal.Decimal
	ShippingFlat   decimal.Decimal
	TaxRate        decimal.Decimal
	PremiumRate    decimal.Decimal
	DefaultMinDays int
	DefaultMaxDays int
}

func DefaultParams() Params {
	return Params{
		PriceBand:      decimal.RequireFromString("0.1"),
		ServiceRate:    decimal.RequireFromString("0.05"),
		ShippingFlat:   decimal.NewFromInt(3000),
		TaxRate:        decimal.RequireFromString("0.08"),
		PremiumRate:    decimal.RequireFromString("0.02"),
		DefaultMinDays: 3,
		DefaultMaxDays: 7,
	}
}

type Generator struct {
	seed   uint64
	params Params
}

func New(seed uint64) *Generator {
	return NewWithParams(seed, DefaultParams())
}

func NewWithParams(seed uint64, p Params) *Generator {
	return &Generator{seed: seed, params: p}
}

// Eligible reports whether a vendor receives generated offers.
func Eligible(v entities.VendorProfile) bool {
	return v.Verified
}

// Generate prices req for vendor against baseline. The returned quote is SUBMITTED
// and carries no id; callers persist it through the store.
func (g *Generator) Generate(req entities.QuoteRequest, vendor entities.VendorProfile, baseline decimal.Decimal, now time.Time) (entities.VendorQuote, error) {
	if req.ID == "" {
		return entities.VendorQuote{}, entities.ErrRequestNotFound
	}
	if vendor.ID == "" {
		return entities.VendorQuote{}, entities.ErrVendorNotFound
	}
	if !baseline.IsPositive() {
		return entities.VendorQuote{}, fmt.Errorf("%w: %s", ErrInvalidBaseline, baseline)
	}

	rng := rand.New(rand.NewPCG(g.seed, pairKey(req.ID, vendor.ID)))
	p := g.params

	// offset is uniform on [-1, 1] in steps of 0.001.
	offset := decimal.NewFromInt(int64(rng.IntN(2001)) - 1000).Shift(-3)
	price := baseline.Mul(decimal.NewFromInt(1).Add(offset.Mul(p.PriceBand))).Round(0)

	fees := entities.Fees{
		Service:  baseline.Mul(p.ServiceRate).Round(0),
		Shipping: p.ShippingFlat,
		Tax:      baseline.Mul(p.TaxRate).Round(0),
		Other:    decimal.Zero,
	}
	if vendor.Premium {
		fees.Other = baseline.Mul(p.PremiumRate).Round(0)
	}

	minDays, maxDays := vendor.MinDeliveryDays, vendor.MaxDeliveryDays
	if minDays <= 0 || maxDays < minDays {
		minDays, maxDays = p.DefaultMinDays, p.DefaultMaxDays
	}

	return entities.VendorQuote{
		RequestID:             req.ID,
		VendorID:              vendor.ID,
		Price:                 price,
		Fees:                  fees,
		EstimatedDeliveryDays: minDays + rng.IntN(maxDays-minDays+1),
		Status:                entities.QuoteStatusSubmitted,
		SubmittedAt:           now,
		UpdatedAt:             now,
	}, nil
}

func pairKey(requestID, vendorID string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(requestID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(vendorID))
	return h.Sum64()
}
