package order

import (
	"strings"
	"time"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// Delivery offsets in days from the pickup date. Express is same-day and
// takes precedence over dry cleaning when an order contains both.
const (
	standardDeliveryDays    = 2
	dryCleaningDeliveryDays = 3
	expressDeliveryDays     = 0
)

// EstimateDelivery computes the expected delivery date for an order from
// its pickup date and service mix. Pure; the returned value has no
// time-of-day component.
func EstimateDelivery(o *domain.Order) time.Time {
	days := standardDeliveryDays
	switch {
	case hasServiceTag(o, "Express"):
		days = expressDeliveryDays
	case hasServiceTag(o, "Dry Cleaning"):
		days = dryCleaningDeliveryDays
	}
	return common.TruncateDate(o.PickupDate).AddDate(0, 0, days)
}

func hasServiceTag(o *domain.Order, tag string) bool {
	for _, item := range o.Items {
		if strings.Contains(item.ServiceType, tag) {
			return true
		}
	}
	return false
}
