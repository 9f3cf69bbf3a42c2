package webapi

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"

	"github.com/cleancycle/cleancycle/internal/booking"
	"github.com/cleancycle/cleancycle/internal/customer"
	"github.com/cleancycle/cleancycle/internal/repository"
)

// Handler carries the wired services behind the REST surface.
type Handler struct {
	bookingSvc  *booking.Service
	customerSvc *customer.Service
	orders      repository.OrderRepository
	catalog     repository.CatalogRepository
	clock       repository.Clock
	bus         evbus.Bus
}

// Deps lists what the handlers need from the application.
type Deps struct {
	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Catalog   repository.CatalogRepository
	Clock     repository.Clock
	Bus       evbus.Bus
}

// Register wires all routes onto the API group.
func Register(api *echo.Group, deps Deps) *Handler {
	clock := deps.Clock
	if clock == nil {
		clock = repository.SystemClock{}
	}
	h := &Handler{
		bookingSvc:  booking.NewService(deps.Orders, deps.Catalog, clock, deps.Bus),
		customerSvc: customer.NewService(deps.Customers),
		orders:      deps.Orders,
		catalog:     deps.Catalog,
		clock:       clock,
		bus:         deps.Bus,
	}

	api.GET("/health", h.health)

	api.GET("/catalog/services", h.listServices)
	api.GET("/catalog/slots", h.listSlots)

	api.POST("/bookings/quote", h.quote)

	api.POST("/orders", h.submitOrder)
	api.GET("/orders", h.listOrders)
	api.GET("/orders/:id", h.getOrder)
	api.POST("/orders/:id/advance", h.advanceOrder)

	api.GET("/customer/preferences", h.getPreferences)
	api.PUT("/customer/preferences", h.savePreferences)
	api.POST("/customer/addresses", h.addAddress)
	api.DELETE("/customer/addresses/:id", h.removeAddress)
	api.POST("/customer/addresses/:id/default", h.setDefaultAddress)

	return h
}

func (h *Handler) health(c echo.Context) error {
	return ok(c, map[string]interface{}{"status": "up", "time": h.clock.Now()})
}
