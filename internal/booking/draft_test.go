package booking

import (
	"math"
	"testing"

	"github.com/cleancycle/cleancycle/internal/domain"
)

func svc(name string, price float64) domain.CatalogService {
	return domain.CatalogService{Name: name, UnitPrice: price}
}

func TestAddServiceMergesByType(t *testing.T) {
	d := new(Draft)
	d.AddService(svc("Standard Wash & Fold", 2.50))
	d.AddService(svc("Standard Wash & Fold", 2.50))

	items := d.Items()
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", items[0].Quantity)
	}
	if total := d.TotalPrice(); math.Abs(total-5.00) > 1e-9 {
		t.Errorf("total = %v, want 5.00", total)
	}
}

func TestNoDuplicateTypesEver(t *testing.T) {
	d := new(Draft)
	services := []domain.CatalogService{
		svc("Standard Wash & Fold", 2.50),
		svc("Dry Cleaning", 8.00),
		svc("Standard Wash & Fold", 2.50),
		svc("Delicate Care", 5.00),
		svc("Dry Cleaning", 8.00),
	}
	for _, s := range services {
		d.AddService(s)
	}
	d.UpdateQuantity("Dry Cleaning", 3)
	d.UpdateQuantity("Standard Wash & Fold", -1)

	seen := map[string]bool{}
	for _, item := range d.Items() {
		if seen[item.ServiceType] {
			t.Fatalf("duplicate line for %s", item.ServiceType)
		}
		seen[item.ServiceType] = true
		if item.Quantity < 1 {
			t.Fatalf("line %s has quantity %d", item.ServiceType, item.Quantity)
		}
	}
}

func TestUpdateQuantity(t *testing.T) {
	d := new(Draft)
	d.AddService(svc("Delicate Care", 5.00))
	d.AddService(svc("Delicate Care", 5.00))

	d.UpdateQuantity("Delicate Care", -1)
	if items := d.Items(); len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("after -1: %+v", d.Items())
	}

	// Clamp at zero removes the line entirely.
	d.UpdateQuantity("Delicate Care", -5)
	if !d.Empty() {
		t.Fatalf("line survived drop to zero: %+v", d.Items())
	}

	// Unknown type is a no-op.
	d.UpdateQuantity("Bedding & Linens", 2)
	if !d.Empty() {
		t.Errorf("unknown type created a line: %+v", d.Items())
	}
}

func TestTotalPriceEmptyDraft(t *testing.T) {
	d := new(Draft)
	if total := d.TotalPrice(); total != 0 {
		t.Errorf("empty draft total = %v, want 0", total)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	d := new(Draft)
	d.AddService(svc("Dry Cleaning", 8.00))
	items := d.Items()
	items[0].Quantity = 99
	if d.Items()[0].Quantity != 1 {
		t.Error("Items exposed internal state")
	}
}
