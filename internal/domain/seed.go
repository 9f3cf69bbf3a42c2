package domain

// DefaultCatalog returns the offered services. Prices are per pound or
// per item as the descriptions state.
func DefaultCatalog() []CatalogService {
	return []CatalogService{
		{Name: "Standard Wash & Fold", UnitPrice: 2.50, Description: "Per pound - Ready in 24-48 hours", Sort: 10},
		{Name: "Express Wash & Fold", UnitPrice: 4.00, Description: "Per pound - Same day service", Sort: 20},
		{Name: "Dry Cleaning", UnitPrice: 8.00, Description: "Per item - Professional dry cleaning", Sort: 30},
		{Name: "Delicate Care", UnitPrice: 5.00, Description: "Per pound - Hand wash delicate items", Sort: 40},
		{Name: "Bedding & Linens", UnitPrice: 12.00, Description: "Per item - Comforters, sheets, pillows", Sort: 50},
	}
}

// DefaultPickupSlots returns the bookable two-hour pickup windows.
func DefaultPickupSlots() []PickupSlot {
	return []PickupSlot{
		{Label: "8:00 AM - 10:00 AM", Sort: 10},
		{Label: "10:00 AM - 12:00 PM", Sort: 20},
		{Label: "12:00 PM - 2:00 PM", Sort: 30},
		{Label: "2:00 PM - 4:00 PM", Sort: 40},
		{Label: "4:00 PM - 6:00 PM", Sort: 50},
		{Label: "6:00 PM - 8:00 PM", Sort: 60},
	}
}
