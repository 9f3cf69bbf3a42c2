package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	// Catalog
	&CatalogService{},
	&PickupSlot{},
	// Orders
	&Order{},
	&OrderItem{},
	// Customer
	&CustomerProfile{},
	&CustomerAddress{},
}
