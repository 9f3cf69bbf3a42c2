package booking

import (
	"context"
	"strings"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// EventOrderCreated is published with the committed *domain.Order after
// a successful submission.
const EventOrderCreated = "order.created"

// LineRequest is one requested service line in a submission.
type LineRequest struct {
	ServiceType string `json:"service_type"`
	Quantity    int    `json:"quantity"`
}

// SubmitRequest carries everything the booking wizard collected.
type SubmitRequest struct {
	CustomerName        string        `json:"customer_name"`
	PhoneNumber         string        `json:"phone_number"`
	Address             string        `json:"address"`
	PickupDate          string        `json:"pickup_date"`
	PickupTime          string        `json:"pickup_time"`
	SpecialInstructions string        `json:"special_instructions"`
	Lines               []LineRequest `json:"lines"`
}

// Service commits booking drafts into the orders collection.
type Service struct {
	orders  repository.OrderRepository
	catalog repository.CatalogRepository
	clock   repository.Clock
	bus     evbus.Bus
}

func NewService(orders repository.OrderRepository, catalog repository.CatalogRepository, clock repository.Clock, bus evbus.Bus) *Service {
	return &Service{orders: orders, catalog: catalog, clock: clock, bus: bus}
}

// MinPickupDate returns the earliest bookable pickup date: the calendar
// day after now. Input widgets use this bound and Submit re-checks it.
func MinPickupDate(now time.Time) time.Time {
	return common.TruncateDate(now).AddDate(0, 0, 1)
}

// Submit validates the request, snapshots prices from the catalog and
// appends exactly one order. Validation failures leave the collection
// untouched and satisfy IsValidation.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, newValidationError("name is required")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return nil, newValidationError("phone number is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, newValidationError("pickup address is required")
	}
	if strings.TrimSpace(req.PickupDate) == "" {
		return nil, newValidationError("pickup date is required")
	}
	if strings.TrimSpace(req.PickupTime) == "" {
		return nil, newValidationError("pickup time is required")
	}
	if len(req.Lines) == 0 {
		return nil, newValidationError("select at least one service")
	}

	draft, err := s.buildDraft(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	pickupDate, err := common.ParseDate(req.PickupDate)
	if err != nil {
		return nil, newValidationError("pickup date is not a valid date")
	}
	if pickupDate.Before(MinPickupDate(now)) {
		return nil, newValidationError("pickup must be scheduled at least one day ahead")
	}

	o := &domain.Order{
		ID:                  common.UUIDint64(),
		CustomerName:        strings.TrimSpace(req.CustomerName),
		PhoneNumber:         strings.TrimSpace(req.PhoneNumber),
		Address:             strings.TrimSpace(req.Address),
		Items:               draft.Items(),
		TotalPrice:          draft.TotalPrice(),
		Status:              domain.OrderScheduled,
		PickupDate:          pickupDate,
		PickupTime:          req.PickupTime,
		SpecialInstructions: req.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for i := range o.Items {
		o.Items[i].ID = common.UUIDint64()
		o.Items[i].OrderID = o.ID
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "submit order")
	}

	zap.L().Info("order scheduled",
		zap.Int64("id", o.ID),
		zap.String("customer", o.CustomerName),
		zap.Float64("total", o.TotalPrice),
		zap.Time("pickup", o.PickupDate))

	if s.bus != nil {
		s.bus.Publish(EventOrderCreated, o)
	}
	return o, nil
}

// Quote prices a prospective draft without persisting anything.
func (s *Service) Quote(ctx context.Context, lines []LineRequest) (float64, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	draft, err := s.buildDraft(ctx, lines)
	if err != nil {
		return 0, err
	}
	return draft.TotalPrice(), nil
}

// buildDraft resolves requested lines against the catalog, merging
// duplicate types through the accumulator.
func (s *Service) buildDraft(ctx context.Context, lines []LineRequest) (*Draft, error) {
	draft := new(Draft)
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, newValidationError("service quantity must be at least 1")
		}
		svc, err := s.catalog.GetServiceByName(ctx, line.ServiceType)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newValidationError("unknown service: " + line.ServiceType)
		}
		if err != nil {
			return nil, errors.Wrap(err, "resolve catalog service")
		}
		for i := 0; i < line.Quantity; i++ {
			draft.AddService(*svc)
		}
	}
	return draft, nil
}
