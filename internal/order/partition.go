package order

import (
	"sort"

	"github.com/cleancycle/cleancycle/internal/domain"
)

// Partition splits orders into the active set (insertion order kept) and
// the delivered history (most recent first).
func Partition(orders []domain.Order) (active, history []domain.Order) {
	for _, o := range orders {
		if o.Status == domain.OrderDelivered {
			history = append(history, o)
		} else {
			active = append(active, o)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return active, history
}

// RecentHistory truncates the history partition for display. The
// underlying collection is never shortened, only the view.
func RecentHistory(history []domain.Order, n int) []domain.Order {
	if n <= 0 || n >= len(history) {
		return history
	}
	return history[:n]
}
