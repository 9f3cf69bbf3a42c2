package order

import (
	"testing"
	"time"

	"github.com/cleancycle/cleancycle/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func orderWith(pickup time.Time, types ...string) *domain.Order {
	o := &domain.Order{PickupDate: pickup}
	for _, s := range types {
		o.Items = append(o.Items, domain.OrderItem{ServiceType: s, Quantity: 1})
	}
	return o
}

func TestEstimateDelivery(t *testing.T) {
	pickup := date(2024, time.June, 10)
	cases := []struct {
		name  string
		types []string
		want  time.Time
	}{
		{"standard wash", []string{"Standard Wash & Fold"}, date(2024, time.June, 12)},
		{"delicate care", []string{"Delicate Care"}, date(2024, time.June, 12)},
		{"express same day", []string{"Express Wash & Fold"}, date(2024, time.June, 10)},
		{"dry cleaning", []string{"Dry Cleaning"}, date(2024, time.June, 13)},
		{"express beats dry cleaning", []string{"Dry Cleaning", "Express Wash & Fold"}, date(2024, time.June, 10)},
		{"dry cleaning with standard", []string{"Standard Wash & Fold", "Dry Cleaning"}, date(2024, time.June, 13)},
		{"no items falls back to standard", nil, date(2024, time.June, 12)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EstimateDelivery(orderWith(pickup, c.types...))
			if !got.Equal(c.want) {
				t.Errorf("EstimateDelivery = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEstimateDeliveryDropsTimeOfDay(t *testing.T) {
	pickup := time.Date(2024, time.June, 10, 17, 30, 0, 0, time.Local)
	got := EstimateDelivery(orderWith(pickup, "Standard Wash & Fold"))
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("estimate carries time-of-day: %v", got)
	}
}
