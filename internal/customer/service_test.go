package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/internal/repository/memrepo"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(memrepo.NewStore().Customers())
}

func countDefaults(p *domain.CustomerProfile) int {
	n := 0
	for _, a := range p.Addresses {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestGetPreferencesUnsetReturnsEmptyRecord(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.GetPreferences(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "" || len(p.Addresses) != 0 {
		t.Errorf("expected empty record, got %+v", p)
	}
}

func TestSavePreferences(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.SavePreferences(ctx, UpdateRequest{
		Name:                "Dana Reeve",
		PhoneNumber:         "(555) 123-4567",
		PreferredPickupTime: "8:00 AM - 10:00 AM",
		SpecialInstructions: "Ring twice",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Dana Reeve" || p.PreferredPickupTime != "8:00 AM - 10:00 AM" {
		t.Errorf("saved record wrong: %+v", p)
	}

	// Second save updates in place.
	p, err = svc.SavePreferences(ctx, UpdateRequest{Name: "Dana R."})
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Dana R." || p.PhoneNumber != "" {
		t.Errorf("update did not replace fields: %+v", p)
	}
}

func TestAddAddressDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.AddAddress(ctx, "Home", "12 Main St")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Addresses) != 1 || !p.Addresses[0].IsDefault {
		t.Fatalf("first address must be default: %+v", p.Addresses)
	}

	p, err = svc.AddAddress(ctx, "Work", "500 Office Park")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Addresses) != 2 {
		t.Fatalf("addresses = %d, want 2", len(p.Addresses))
	}
	if p.Addresses[1].IsDefault {
		t.Error("second address must not be default")
	}
	if countDefaults(p) != 1 {
		t.Errorf("defaults = %d, want 1", countDefaults(p))
	}
}

func TestAddAddressValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddAddress(ctx, "", "12 Main St"); !IsValidation(err) {
		t.Errorf("empty label err = %v, want validation", err)
	}
	if _, err := svc.AddAddress(ctx, "Home", "  "); !IsValidation(err) {
		t.Errorf("empty address err = %v, want validation", err)
	}

	p, _ := svc.GetPreferences(ctx)
	if len(p.Addresses) != 0 {
		t.Errorf("failed add persisted addresses: %+v", p.Addresses)
	}
}

func TestSetDefaultAddress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.AddAddress(ctx, "Home", "12 Main St")
	p, _ := svc.AddAddress(ctx, "Work", "500 Office Park")
	workID := p.Addresses[1].ID

	p, err := svc.SetDefaultAddress(ctx, workID)
	if err != nil {
		t.Fatal(err)
	}
	if countDefaults(p) != 1 {
		t.Fatalf("defaults = %d, want exactly 1", countDefaults(p))
	}
	if !p.Addresses[1].IsDefault || p.Addresses[0].IsDefault {
		t.Errorf("default did not move: %+v", p.Addresses)
	}

	if _, err := svc.SetDefaultAddress(ctx, 424242); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestRemoveAddressPromotesNewDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.AddAddress(ctx, "Home", "12 Main St")
	homeID := p.Addresses[0].ID
	svc.AddAddress(ctx, "Work", "500 Office Park")
	svc.AddAddress(ctx, "Gym", "7 Fitness Way")

	p, err := svc.RemoveAddress(ctx, homeID)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Addresses) != 2 {
		t.Fatalf("addresses = %d, want 2", len(p.Addresses))
	}
	if !p.Addresses[0].IsDefault {
		t.Error("first remaining address not promoted to default")
	}
	if countDefaults(p) != 1 {
		t.Errorf("defaults = %d, want 1", countDefaults(p))
	}
}

func TestRemoveNonDefaultKeepsDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.AddAddress(ctx, "Home", "12 Main St")
	p, _ := svc.AddAddress(ctx, "Work", "500 Office Park")
	workID := p.Addresses[1].ID

	p, err := svc.RemoveAddress(ctx, workID)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Addresses) != 1 || !p.Addresses[0].IsDefault {
		t.Errorf("default lost: %+v", p.Addresses)
	}
}

func TestRemoveLastAddress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.AddAddress(ctx, "Home", "12 Main St")
	id := p.Addresses[0].ID

	p, err := svc.RemoveAddress(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Addresses) != 0 {
		t.Errorf("addresses = %+v, want empty", p.Addresses)
	}

	if _, err := svc.RemoveAddress(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("removing again err = %v, want ErrNotFound", err)
	}
}
