// Package boltrepo implements the repository ports on an embedded bbolt
// file. State lives under two named values, "laundry-orders" and
// "customer-preferences", each holding its whole collection as JSON:
// every write is a read-modify-replace of one value, giving last-write-
// wins and read-your-own-writes semantics with no external database.
package boltrepo

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
)

const (
	bucketName     = "cleancycle"
	keyOrders      = "laundry-orders"
	keyPreferences = "customer-preferences"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store wraps the bbolt handle shared by the repositories.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init bolt bucket")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Orders() repository.OrderRepository       { return &OrderRepo{store: s} }
func (s *Store) Customers() repository.CustomerRepository { return &CustomerRepo{store: s} }

// getValue decodes the named value into out; a missing key leaves out
// untouched, matching the original store's default-value behavior.
func (s *Store) getValue(key string, out interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, out)
	})
}

// updateValue applies fn to the current decoded value and writes the
// result back under the same transaction.
func (s *Store) updateValue(key string, decode func([]byte) (interface{}, error)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		next, err := decode(b.Get([]byte(key)))
		if err != nil {
			return err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// OrderRepo is the bbolt OrderRepository.
type OrderRepo struct {
	store *Store
}

func (r *OrderRepo) decodeOrders(raw []byte) ([]domain.Order, error) {
	var orders []domain.Order
	if raw == nil {
		return orders, nil
	}
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, errors.Wrap(err, "decode orders value")
	}
	return orders, nil
}

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	return r.store.updateValue(keyOrders, func(raw []byte) (interface{}, error) {
		orders, err := r.decodeOrders(raw)
		if err != nil {
			return nil, err
		}
		return append(orders, *o), nil
	})
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var orders []domain.Order
	if err := r.store.getValue(keyOrders, &orders); err != nil {
		return nil, errors.Wrap(err, "get order")
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.store.getValue(keyOrders, &orders); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string, deliveryDate *time.Time) error {
	found := false
	err := r.store.updateValue(keyOrders, func(raw []byte) (interface{}, error) {
		orders, err := r.decodeOrders(raw)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				orders[i].DeliveryDate = deliveryDate
				orders[i].UpdatedAt = time.Now()
				found = true
				break
			}
		}
		return orders, nil
	})
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

// CustomerRepo is the bbolt CustomerRepository.
type CustomerRepo struct {
	store *Store
}

func (r *CustomerRepo) GetProfile(ctx context.Context) (*domain.CustomerProfile, error) {
	var p *domain.CustomerProfile
	if err := r.store.getValue(keyPreferences, &p); err != nil {
		return nil, errors.Wrap(err, "get customer profile")
	}
	if p == nil {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *CustomerRepo) SaveProfile(ctx context.Context, p *domain.CustomerProfile) error {
	err := r.store.updateValue(keyPreferences, func(raw []byte) (interface{}, error) {
		saved := *p
		if raw != nil {
			var prev domain.CustomerProfile
			if err := json.Unmarshal(raw, &prev); err != nil {
				return nil, errors.Wrap(err, "decode preferences value")
			}
			// Addresses are owned by ReplaceAddresses.
			saved.Addresses = prev.Addresses
		}
		return &saved, nil
	})
	return errors.Wrap(err, "save customer profile")
}

func (r *CustomerRepo) ReplaceAddresses(ctx context.Context, profileID int64, addrs []domain.CustomerAddress) error {
	err := r.store.updateValue(keyPreferences, func(raw []byte) (interface{}, error) {
		if raw == nil {
			return nil, repository.ErrNotFound
		}
		var p domain.CustomerProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, errors.Wrap(err, "decode preferences value")
		}
		if p.ID != profileID {
			return nil, repository.ErrNotFound
		}
		p.Addresses = append([]domain.CustomerAddress(nil), addrs...)
		return &p, nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return repository.ErrNotFound
	}
	return errors.Wrap(err, "replace addresses")
}
