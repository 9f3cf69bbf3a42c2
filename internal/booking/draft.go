package booking

import (
	"github.com/cleancycle/cleancycle/internal/domain"
)

// Draft accumulates line items for an order under construction. It has
// no side effects until the service commits it; abandoning a draft
// writes nothing.
type Draft struct {
	items []domain.OrderItem
}

// AddService adds one unit of a catalog service. A service already in
// the draft gains quantity instead of a duplicate line.
func (d *Draft) AddService(svc domain.CatalogService) {
	for i := range d.items {
		if d.items[i].ServiceType == svc.Name {
			d.items[i].Quantity++
			return
		}
	}
	d.items = append(d.items, domain.OrderItem{
		ServiceType: svc.Name,
		Description: svc.Description,
		UnitPrice:   svc.UnitPrice,
		Quantity:    1,
	})
}

// UpdateQuantity adjusts a line by delta, clamping at zero. A line that
// reaches zero is removed entirely; unknown types are a no-op.
func (d *Draft) UpdateQuantity(serviceType string, delta int) {
	for i := range d.items {
		if d.items[i].ServiceType != serviceType {
			continue
		}
		q := d.items[i].Quantity + delta
		if q <= 0 {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
		d.items[i].Quantity = q
		return
	}
}

// TotalPrice folds unit price times quantity over the current lines.
func (d *Draft) TotalPrice() float64 {
	var total float64
	for _, item := range d.items {
		total += item.LineTotal()
	}
	return total
}

// Items returns a copy of the current lines in insertion order.
func (d *Draft) Items() []domain.OrderItem {
	return append([]domain.OrderItem(nil), d.items...)
}

// Empty reports whether the draft has no lines.
func (d *Draft) Empty() bool {
	return len(d.items) == 0
}
