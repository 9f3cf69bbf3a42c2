package domain

import "time"

// Order statuses, in strict forward progression. An order is created as
// OrderScheduled and only ever moves one step toward OrderDelivered.
const (
	OrderScheduled  = "scheduled"
	OrderPickedUp   = "picked-up"
	OrderInProgress = "in-progress"
	OrderReady      = "ready"
	OrderDelivered  = "delivered"
)

// Order is a committed booking. Items, TotalPrice, pickup fields and
// CreatedAt are an immutable snapshot taken at submission time; only
// Status and DeliveryDate change afterwards.
type Order struct {
	ID                  int64       `json:"id,string" form:"id"`
	CustomerName        string      `gorm:"index" json:"customer_name" form:"customer_name"`
	PhoneNumber         string      `json:"phone_number" form:"phone_number"`
	Address             string      `json:"address" form:"address"`
	Items               []OrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	TotalPrice          float64     `json:"total_price" form:"total_price"`
	Status              string      `gorm:"index" json:"status" form:"status"`
	PickupDate          time.Time   `json:"pickup_date" form:"pickup_date"`
	PickupTime          string      `json:"pickup_time" form:"pickup_time"`
	DeliveryDate        *time.Time  `json:"delivery_date,omitempty" form:"delivery_date"`
	SpecialInstructions string      `json:"special_instructions" form:"special_instructions"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one catalog service plus a quantity within an order.
// UnitPrice is copied from the catalog at submission so later price
// changes never affect a placed order.
type OrderItem struct {
	ID          int64   `json:"id,string" form:"id"`
	OrderID     int64   `gorm:"index" json:"order_id,string" form:"order_id"`
	ServiceType string  `json:"service_type" form:"service_type"`
	Description string  `json:"description" form:"description"`
	UnitPrice   float64 `json:"unit_price" form:"unit_price"`
	Quantity    int     `json:"quantity" form:"quantity"`
}

// TableName Specify table name
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns the extended price of this line.
func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
