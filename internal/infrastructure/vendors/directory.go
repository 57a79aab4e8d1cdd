package vendors

import (
	"context"
	"errors"
	"fmt"
	"os"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

var ErrInvalidDirectory = errors.New("invalid vendor directory")

type file struct {
	Vendors []entities.VendorProfile `yaml:"vendors"`
}

// Directory is an immutable, in-process vendor registry.
type Directory struct {
	byID  map[string]entities.VendorProfile
	order []string
}

var _ interfaces.IVendorDirectory = (*Directory)(nil)

// New builds a directory; ids must be unique and non-empty.
func New(profiles []entities.VendorProfile) (*Directory, error) {
	d := &Directory{byID: make(map[string]entities.VendorProfile, len(profiles))}
	preferred := ""
	for i, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: vendor %d has no id", ErrInvalidDirectory, i)
		}
		if _, dup := d.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate vendor %s", ErrInvalidDirectory, p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("%w: vendor %s rating %.2f out of range", ErrInvalidDirectory, p.ID, p.Rating)
		}
		if p.MinDeliveryDays < 0 || (p.MaxDeliveryDays > 0 && p.MaxDeliveryDays < p.MinDeliveryDays) {
			return nil, fmt.Errorf("%w: vendor %s delivery range", ErrInvalidDirectory, p.ID)
		}
		if p.IsPreferredPartner {
			if preferred != "" {
				return nil, fmt.Errorf("%w: vendors %s and %s are both preferred partners", ErrInvalidDirectory, preferred, p.ID)
			}
			preferred = p.ID
		}
		d.byID[p.ID] = p
		d.order = append(d.order, p.ID)
	}
	return d, nil
}

// Load reads a YAML vendor file, or returns the built-in seed when path is empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return New(Seed())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}
	return New(f.Vendors)
}

func (d *Directory) GetByID(_ context.Context, id string) (entities.VendorProfile, error) {
	return d.byID[id], nil
}

func (d *Directory) List(_ context.Context) ([]entities.VendorProfile, error) {
	out := make([]entities.VendorProfile, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out, nil
}

// Seed is the default directory used when no file is configured.
func Seed() []entities.VendorProfile {
	return []entities.VendorProfile{
		{ID: "vendor-1", Name: "한빛산업", Rating: 4.2, ReviewCount: 318, Verified: true, IsPreferredPartner: true, ResponseTimeMinutes: 30, SuccessRate: 0.97, MinDeliveryDays: 2, MaxDeliveryDays: 5},
		{ID: "vendor-2", Name: "대성정밀", Rating: 4.9, ReviewCount: 1204, Premium: true, Verified: true, ResponseTimeMinutes: 45, SuccessRate: 0.99, MinDeliveryDays: 3, MaxDeliveryDays: 6},
		{ID: "vendor-3", Name: "미래상사", Rating: 4.7, ReviewCount: 522, Verified: true, ResponseTimeMinutes: 90, SuccessRate: 0.95, MinDeliveryDays: 4, MaxDeliveryDays: 9},
		{ID: "vendor-4", Name: "동방물산", Rating: 3.9, ReviewCount: 87, Verified: true, ResponseTimeMinutes: 240, SuccessRate: 0.88, MinDeliveryDays: 5, MaxDeliveryDays: 12},
		{ID: "vendor-5", Name: "신흥테크", Rating: 4.5, ReviewCount: 41, Premium: true, ResponseTimeMinutes: 60, SuccessRate: 0.9, MinDeliveryDays: 3, MaxDeliveryDays: 7},
	}
}
