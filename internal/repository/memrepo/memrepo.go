// Package memrepo keeps every collection in process memory. It backs the
// test suites and the "memory" database type for local runs.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// Store holds all in-memory collections behind one mutex.
type Store struct {
	mu       sync.Mutex
	orders   []domain.Order
	profile  *domain.CustomerProfile
	services []domain.CatalogService
	slots    []domain.PickupSlot
}

// NewStore returns a Store pre-loaded with the default catalog and slots.
func NewStore() *Store {
	s := &Store{}
	for _, svc := range domain.DefaultCatalog() {
		svc.ID = common.UUIDint64()
		svc.Status = common.ENABLED
		s.services = append(s.services, svc)
	}
	for _, slot := range domain.DefaultPickupSlots() {
		slot.ID = common.UUIDint64()
		slot.Status = common.ENABLED
		s.slots = append(s.slots, slot)
	}
	return s
}

func (s *Store) Orders() repository.OrderRepository       { return &OrderRepo{store: s} }
func (s *Store) Customers() repository.CustomerRepository { return &CustomerRepo{store: s} }
func (s *Store) Catalog() repository.CatalogRepository    { return &CatalogRepo{store: s} }

// OrderRepo is the in-memory OrderRepository.
type OrderRepo struct {
	store *Store
}

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders = append(r.store.orders, cloneOrder(*o))
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.orders {
		if r.store.orders[i].ID == id {
			o := cloneOrder(r.store.orders[i])
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]domain.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string, deliveryDate *time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.orders {
		if r.store.orders[i].ID == id {
			r.store.orders[i].Status = status
			r.store.orders[i].DeliveryDate = deliveryDate
			r.store.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrNotFound
}

// CustomerRepo is the in-memory CustomerRepository.
type CustomerRepo struct {
	store *Store
}

func (r *CustomerRepo) GetProfile(ctx context.Context) (*domain.CustomerProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.profile == nil {
		return nil, repository.ErrNotFound
	}
	p := cloneProfile(*r.store.profile)
	return &p, nil
}

func (r *CustomerRepo) SaveProfile(ctx context.Context, p *domain.CustomerProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	saved := cloneProfile(*p)
	if r.store.profile != nil {
		// Addresses are owned by ReplaceAddresses.
		saved.Addresses = r.store.profile.Addresses
	}
	r.store.profile = &saved
	return nil
}

func (r *CustomerRepo) ReplaceAddresses(ctx context.Context, profileID int64, addrs []domain.CustomerAddress) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.profile == nil || r.store.profile.ID != profileID {
		return repository.ErrNotFound
	}
	r.store.profile.Addresses = append([]domain.CustomerAddress(nil), addrs...)
	return nil
}

// CatalogRepo is the in-memory CatalogRepository.
type CatalogRepo struct {
	store *Store
}

func (r *CatalogRepo) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := append([]domain.CatalogService(nil), r.store.services...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sort < out[j].Sort })
	return out, nil
}

func (r *CatalogRepo) GetServiceByName(ctx context.Context, name string) (*domain.CatalogService, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.services {
		if r.store.services[i].Name == name {
			svc := r.store.services[i]
			return &svc, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CatalogRepo) ListSlots(ctx context.Context) ([]domain.PickupSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := append([]domain.PickupSlot(nil), r.store.slots...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sort < out[j].Sort })
	return out, nil
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return o
}

func cloneProfile(p domain.CustomerProfile) domain.CustomerProfile {
	p.Addresses = append([]domain.CustomerAddress(nil), p.Addresses...)
	return p
}
