package domain

import "time"

// CatalogService is one offered service. Name is the unique key line
// items reference; the list is configuration data seeded at startup.
type CatalogService struct {
	ID          int64     `json:"id,string" form:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name" form:"name"`
	UnitPrice   float64   `json:"unit_price" form:"unit_price"`
	Description string    `json:"description" form:"description"`
	Sort        int       `json:"sort" form:"sort"`
	Status      string    `json:"status" form:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (CatalogService) TableName() string {
	return "catalog_services"
}

// PickupSlot is a bookable pickup time window.
type PickupSlot struct {
	ID        int64     `json:"id,string" form:"id"`
	Label     string    `gorm:"uniqueIndex" json:"label" form:"label"`
	Sort      int       `json:"sort" form:"sort"`
	Status    string    `json:"status" form:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (PickupSlot) TableName() string {
	return "pickup_slots"
}
