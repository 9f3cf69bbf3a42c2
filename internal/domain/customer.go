package domain

import "time"

// CustomerProfile holds the customer preferences record. The service is
// single-tenant, so exactly one profile row exists once saved.
type CustomerProfile struct {
	ID                  int64             `json:"id,string" form:"id"`
	Name                string            `json:"name" form:"name"`
	PhoneNumber         string            `json:"phone_number" form:"phone_number"`
	PreferredPickupTime string            `json:"preferred_pickup_time" form:"preferred_pickup_time"`
	SpecialInstructions string            `json:"special_instructions" form:"special_instructions"`
	Addresses           []CustomerAddress `gorm:"foreignKey:ProfileID;references:ID" json:"addresses"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// TableName Specify table name
func (CustomerProfile) TableName() string {
	return "customer_profiles"
}

// CustomerAddress is a saved pickup address. At most one address per
// profile carries IsDefault.
type CustomerAddress struct {
	ID        int64     `json:"id,string" form:"id"`
	ProfileID int64     `gorm:"index" json:"profile_id,string" form:"profile_id"`
	Label     string    `json:"label" form:"label"`
	Address   string    `json:"address" form:"address"`
	IsDefault bool      `json:"is_default" form:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (CustomerAddress) TableName() string {
	return "customer_addresses"
}
