package vendors

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"b2b_sourcing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Seed(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	all, err := d.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, len(Seed()))
	assert.Equal(t, "vendor-1", all[0].ID)
	assert.True(t, all[0].IsPreferredPartner)

	missing, err := d.GetByID(context.Background(), "vendor-404")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.yaml")
	raw := []byte(`vendors:
  - id: acme
    name: Acme
    rating: 4.4
    premium: true
    verified: true
    min_delivery_days: 1
    max_delivery_days: 3
  - id: globex
    name: Globex
    rating: 3.1
    is_preferred_partner: true
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	acme, _ := d.GetByID(context.Background(), "acme")
	assert.Equal(t, entities.VendorProfile{ID: "acme", Name: "Acme", Rating: 4.4, Premium: true, Verified: true, MinDeliveryDays: 1, MaxDeliveryDays: 3}, acme)
	globex, _ := d.GetByID(context.Background(), "globex")
	assert.True(t, globex.IsPreferredPartner)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"duplicate id":  "vendors:\n  - id: a\n  - id: a\n",
		"missing id":    "vendors:\n  - name: nameless\n",
		"rating range":  "vendors:\n  - id: a\n    rating: 7\n",
		"days inverted": "vendors:\n  - id: a\n    min_delivery_days: 9\n    max_delivery_days: 2\n",
		"not yaml":      "vendors: [",
		"two preferred": "vendors:\n  - id: a\n    is_preferred_partner: true\n  - id: b\n    is_preferred_partner: true\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidDirectory)
		})
	}
}

func TestNew_SinglePreferredPartner(t *testing.T) {
	_, err := New([]entities.VendorProfile{
		{ID: "a", IsPreferredPartner: true},
		{ID: "b"},
		{ID: "c", IsPreferredPartner: true},
	})
	require.ErrorIs(t, err, ErrInvalidDirectory)
	assert.Contains(t, err.Error(), "a and c")

	d, err := New([]entities.VendorProfile{{ID: "a", IsPreferredPartner: true}, {ID: "b"}})
	require.NoError(t, err)
	assert.NotNil(t, d)
}
