package boltrepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOrderRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Orders()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("empty store GetByID err = %v, want ErrNotFound", err)
	}

	o := &domain.Order{
		ID:           101,
		CustomerName: "Dana Reeve",
		Status:       domain.OrderScheduled,
		TotalPrice:   5.0,
		Items: []domain.OrderItem{
			{ID: 1, OrderID: 101, ServiceType: "Standard Wash & Fold", UnitPrice: 2.50, Quantity: 2},
		},
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, &domain.Order{ID: 102, Status: domain.OrderScheduled}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(ctx, 101)
	if err != nil {
		t.Fatal(err)
	}
	if got.CustomerName != "Dana Reeve" || len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Errorf("round trip lost data: %+v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != 101 || list[1].ID != 102 {
		t.Errorf("insertion order not preserved: %+v", list)
	}
}

func TestUpdateStatusPersists(t *testing.T) {
	s := openTestStore(t)
	repo := s.Orders()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Order{ID: 7, Status: domain.OrderReady}); err != nil {
		t.Fatal(err)
	}

	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	if err := repo.UpdateStatus(ctx, 7, domain.OrderDelivered, &day); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.OrderDelivered || got.DeliveryDate == nil || !got.DeliveryDate.Equal(day) {
		t.Errorf("status update not persisted: %+v", got)
	}

	if err := repo.UpdateStatus(ctx, 999, domain.OrderDelivered, &day); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing order err = %v, want ErrNotFound", err)
	}
}

func TestProfileValueSemantics(t *testing.T) {
	s := openTestStore(t)
	repo := s.Customers()
	ctx := context.Background()

	if _, err := repo.GetProfile(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unset profile err = %v, want ErrNotFound", err)
	}

	p := &domain.CustomerProfile{ID: 1, Name: "Dana", PhoneNumber: "(555) 123-4567"}
	if err := repo.SaveProfile(ctx, p); err != nil {
		t.Fatal(err)
	}

	addrs := []domain.CustomerAddress{
		{ID: 10, ProfileID: 1, Label: "Home", Address: "12 Main St", IsDefault: true},
	}
	if err := repo.ReplaceAddresses(ctx, 1, addrs); err != nil {
		t.Fatal(err)
	}

	// SaveProfile must not clobber the address book.
	p.Name = "Dana R."
	if err := repo.SaveProfile(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Dana R." {
		t.Errorf("profile name = %q", got.Name)
	}
	if len(got.Addresses) != 1 || !got.Addresses[0].IsDefault {
		t.Errorf("addresses lost on profile save: %+v", got.Addresses)
	}

	if err := repo.ReplaceAddresses(ctx, 999, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("wrong profile id err = %v, want ErrNotFound", err)
	}
}
