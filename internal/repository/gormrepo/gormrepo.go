// Package gormrepo implements the repository ports on a relational
// database through GORM.
package gormrepo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
)

// OrderRepo is the GORM implementation of repository.OrderRepository.
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return errors.Wrap(err, "create order")
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string, deliveryDate *time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"delivery_date": deliveryDate,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CustomerRepo is the GORM implementation of repository.CustomerRepository.
type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) GetProfile(ctx context.Context) (*domain.CustomerProfile, error) {
	var p domain.CustomerProfile
	err := r.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get customer profile")
	}
	return &p, nil
}

func (r *CustomerRepo) SaveProfile(ctx context.Context, p *domain.CustomerProfile) error {
	err := r.db.WithContext(ctx).
		Omit("Addresses").
		Save(p).Error
	if err != nil {
		return errors.Wrap(err, "save customer profile")
	}
	return nil
}

func (r *CustomerRepo) ReplaceAddresses(ctx context.Context, profileID int64, addrs []domain.CustomerAddress) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).
			Delete(&domain.CustomerAddress{}).Error; err != nil {
			return err
		}
		if len(addrs) == 0 {
			return nil
		}
		for i := range addrs {
			addrs[i].ProfileID = profileID
		}
		return tx.Create(&addrs).Error
	})
	if err != nil {
		return errors.Wrap(err, "replace addresses")
	}
	return nil
}

// CatalogRepo is the GORM implementation of repository.CatalogRepository.
type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	var services []domain.CatalogService
	err := r.db.WithContext(ctx).
		Where("status = ?", "enabled").
		Order("sort ASC").
		Find(&services).Error
	if err != nil {
		return nil, errors.Wrap(err, "list catalog services")
	}
	return services, nil
}

func (r *CatalogRepo) GetServiceByName(ctx context.Context, name string) (*domain.CatalogService, error) {
	var svc domain.CatalogService
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get catalog service")
	}
	return &svc, nil
}

func (r *CatalogRepo) ListSlots(ctx context.Context) ([]domain.PickupSlot, error) {
	var slots []domain.PickupSlot
	err := r.db.WithContext(ctx).
		Where("status = ?", "enabled").
		Order("sort ASC").
		Find(&slots).Error
	if err != nil {
		return nil, errors.Wrap(err, "list pickup slots")
	}
	return slots, nil
}
