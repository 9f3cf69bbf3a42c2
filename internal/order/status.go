package order

import (
	"time"

	"github.com/pkg/errors"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/pkg/common"
)

var (
	// ErrInvalidTransition is returned when a caller asks for a status
	// change that skips a stage or moves backwards.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrAlreadyDelivered is returned when advancing a terminal order.
	ErrAlreadyDelivered = errors.New("order already delivered")

	// ErrUnknownStatus is returned for status values outside the
	// documented progression.
	ErrUnknownStatus = errors.New("unknown order status")
)

// AllStatuses lists the progression in strict forward order.
var AllStatuses = []string{
	domain.OrderScheduled,
	domain.OrderPickedUp,
	domain.OrderInProgress,
	domain.OrderReady,
	domain.OrderDelivered,
}

// StatusMeta carries the fixed display attributes of a status.
type StatusMeta struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

var statusMeta = map[string]StatusMeta{
	domain.OrderScheduled:  {Label: "Scheduled", Description: "Pickup scheduled", Progress: 20},
	domain.OrderPickedUp:   {Label: "Picked Up", Description: "Items collected", Progress: 40},
	domain.OrderInProgress: {Label: "In Progress", Description: "Being cleaned", Progress: 60},
	domain.OrderReady:      {Label: "Ready", Description: "Ready for delivery", Progress: 80},
	domain.OrderDelivered:  {Label: "Delivered", Description: "Order complete", Progress: 100},
}

// MetaFor returns the display metadata of a status.
func MetaFor(status string) (StatusMeta, error) {
	meta, ok := statusMeta[status]
	if !ok {
		return StatusMeta{}, errors.Wrap(ErrUnknownStatus, status)
	}
	return meta, nil
}

// Rank returns the position of a status in the progression, or -1.
func Rank(status string) int {
	for i, s := range AllStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// Valid reports whether status belongs to the progression.
func Valid(status string) bool {
	return Rank(status) >= 0
}

// CanTransition reports whether from -> to is the single allowed forward
// step. Skips and reversals are contract violations.
func CanTransition(from, to string) bool {
	fr, tr := Rank(from), Rank(to)
	if fr < 0 || tr < 0 {
		return false
	}
	return tr == fr+1
}

// Advance moves an order one step forward in the progression. Entering
// the delivered stage stamps DeliveryDate with the current calendar day,
// keeping the "delivered implies delivery date" invariant in one place.
func Advance(o *domain.Order, now time.Time) error {
	rank := Rank(o.Status)
	if rank < 0 {
		return errors.Wrap(ErrUnknownStatus, o.Status)
	}
	if o.Status == domain.OrderDelivered {
		return ErrAlreadyDelivered
	}
	next := AllStatuses[rank+1]
	o.Status = next
	if next == domain.OrderDelivered {
		day := common.TruncateDate(now)
		o.DeliveryDate = &day
	}
	return nil
}

// SetStatus applies an explicit status write, rejecting anything other
// than the single forward step. External systems that report stage
// changes go through here rather than mutating Status directly.
func SetStatus(o *domain.Order, status string, now time.Time) error {
	if !Valid(status) {
		return errors.Wrap(ErrUnknownStatus, status)
	}
	if !CanTransition(o.Status, status) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", o.Status, status)
	}
	return Advance(o, now)
}
