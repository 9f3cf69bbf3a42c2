// Package repository defines the persistence boundary of the service.
// The booking, order and customer packages depend only on these
// interfaces; gormrepo, boltrepo and memrepo provide the backends.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/cleancycle/cleancycle/internal/domain"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// OrderRepository stores committed orders. The collection is append-only
// apart from status progression; List preserves insertion order.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus persists the outcome of a status transition,
	// including the delivery date stamped on the final step.
	UpdateStatus(ctx context.Context, id int64, status string, deliveryDate *time.Time) error
}

// CustomerRepository stores the single preferences record and its
// embedded address book. ReplaceAddresses writes the whole book in one
// operation so the single-default invariant never straddles two writes.
type CustomerRepository interface {
	GetProfile(ctx context.Context) (*domain.CustomerProfile, error)
	SaveProfile(ctx context.Context, p *domain.CustomerProfile) error
	ReplaceAddresses(ctx context.Context, profileID int64, addrs []domain.CustomerAddress) error
}

// CatalogRepository serves the fixed service catalog and pickup slots.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.CatalogService, error)
	GetServiceByName(ctx context.Context, name string) (*domain.CatalogService, error)
	ListSlots(ctx context.Context) ([]domain.PickupSlot, error)
}

// Clock abstracts the current time so submission rules are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
