package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cleancycle/cleancycle/internal/booking"
	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// registerJobs wires the operations jobs onto the cron scheduler.
func (a *Application) registerJobs() {
	// Nightly consistency audit over the orders collection.
	if _, err := a.sched.AddFunc("0 2 * * *", a.runDeliveryAudit); err != nil {
		zap.L().Error("failed to register delivery audit job", zap.Error(err))
	}
	// Morning summary of pickups due today.
	if _, err := a.sched.AddFunc("0 7 * * *", a.runPickupReminder); err != nil {
		zap.L().Error("failed to register pickup reminder job", zap.Error(err))
	}
}

// runDeliveryAudit verifies the delivered/delivery-date invariant:
// every delivered order must carry a delivery date and no other order
// may carry one.
func (a *Application) runDeliveryAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orders, err := a.orders.List(ctx)
	if err != nil {
		zap.L().Error("delivery audit: list orders failed", zap.Error(err))
		return
	}

	violations := 0
	for _, o := range orders {
		delivered := o.Status == domain.OrderDelivered
		if delivered && o.DeliveryDate == nil {
			violations++
			zap.L().Error("delivered order missing delivery date", zap.Int64("id", o.ID))
		}
		if !delivered && o.DeliveryDate != nil {
			violations++
			zap.L().Error("undelivered order carries delivery date",
				zap.Int64("id", o.ID), zap.String("status", o.Status))
		}
	}
	zap.L().Info("delivery audit complete", zap.Int("orders", len(orders)), zap.Int("violations", violations))
}

// runPickupReminder logs the pickups scheduled for the current day so
// the operations side can plan the route.
func (a *Application) runPickupReminder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orders, err := a.orders.List(ctx)
	if err != nil {
		zap.L().Error("pickup reminder: list orders failed", zap.Error(err))
		return
	}

	today := common.TruncateDate(time.Now())
	due := 0
	for _, o := range orders {
		if o.Status != domain.OrderScheduled {
			continue
		}
		if common.DateEqual(o.PickupDate, today) {
			due++
			zap.L().Info("pickup due today",
				zap.Int64("id", o.ID),
				zap.String("customer", o.CustomerName),
				zap.String("slot", o.PickupTime),
				zap.String("address", o.Address))
		}
	}
	zap.L().Info("pickup reminder complete", zap.Int("due", due))
}

// subscribeAuditLog records order lifecycle events published on the bus.
func (a *Application) subscribeAuditLog() {
	if err := a.bus.Subscribe(booking.EventOrderCreated, func(o *domain.Order) {
		zap.L().Info("event order.created",
			zap.Int64("id", o.ID),
			zap.Float64("total", o.TotalPrice),
			zap.Int("items", len(o.Items)))
	}); err != nil {
		zap.L().Error("failed to subscribe order.created", zap.Error(err))
	}
	if err := a.bus.Subscribe(EventOrderStatus, func(o *domain.Order, prev string) {
		zap.L().Info("event order.status",
			zap.Int64("id", o.ID),
			zap.String("from", prev),
			zap.String("to", o.Status))
	}); err != nil {
		zap.L().Error("failed to subscribe order.status", zap.Error(err))
	}
}

// EventOrderStatus is published with (*domain.Order, previousStatus)
// after a status transition is persisted.
const EventOrderStatus = "order.status"
