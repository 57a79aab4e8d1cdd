// Package ranking orders the quotes of a request for display.
//
// Tiers, strictly in this order:
//  1. the preferred-partner vendor
//  2. premium vendors
//  3. everyone else
//
// Inside tiers 2 and 3 quotes keep submission order unless the caller asks for
// the price or rating view. The preferred partner is never reordered by price.
package ranking

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"b2b_sourcing/internal/domain/entities"
)

type Mode string

const (
	ModeDefault Mode = "default"
	ModePrice   Mode = "price"
	ModeRating  Mode = "rating"
)

var ErrInvalidMode = errors.New("invalid ranking mode")

// ParseMode accepts an empty string as the default view.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeDefault, nil
	case ModeDefault, ModePrice, ModeRating:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

const (
	tierPreferred = iota
	tierPremium
	tierStandard
)

func tier(v entities.VendorProfile) int {
	switch {
	case v.IsPreferredPartner:
		return tierPreferred
	case v.Premium:
		return tierPremium
	default:
		return tierStandard
	}
}

// Rank returns a new slice; quotes is not modified. Vendors missing from the
// map rank in the standard tier with a zero rating.
func Rank(quotes []entities.VendorQuote, vendors map[string]entities.VendorProfile, mode Mode) []entities.VendorQuote {
	out := slices.Clone(quotes)

	// Submission order first, so the result never depends on input order.
	slices.SortStableFunc(out, func(a, b entities.VendorQuote) int {
		return cmp.Or(
			cmp.Compare(a.Sequence, b.Sequence),
			a.SubmittedAt.Compare(b.SubmittedAt),
			cmp.Compare(a.VendorID, b.VendorID),
		)
	})

	slices.SortStableFunc(out, func(a, b entities.VendorQuote) int {
		va, vb := vendors[a.VendorID], vendors[b.VendorID]
		ta, tb := tier(va), tier(vb)
		if ta != tb {
			return cmp.Compare(ta, tb)
		}
		if ta == tierPreferred {
			return 0
		}
		switch mode {
		case ModePrice:
			return a.TotalPrice().Cmp(b.TotalPrice())
		case ModeRating:
			return cmp.Compare(vb.Rating, va.Rating)
		default:
			return 0
		}
	})
	return out
}
