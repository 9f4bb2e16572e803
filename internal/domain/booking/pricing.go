package booking

// ===============================
// Service Tiers & Pricing
// ===============================

const (
	ServiceBasic  = "basic"
	ServiceDeluxe = "deluxe"
	ServiceRoyal  = "royal"
)

var servicePrices = map[string]float64{
	ServiceBasic:  15.0,
	ServiceDeluxe: 25.0,
	ServiceRoyal:  50.0,
}

// PriceFor resolves the price of a service tier. Unknown tiers fall back to
// the basic price; the fallback is policy, not an error.
func PriceFor(service string) float64 {
	if price, ok := servicePrices[service]; ok {
		return price
	}
	return servicePrices[ServiceBasic]
}

// ServiceInfo describes one catalogue entry as shown to customers.
type ServiceInfo struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"desc"`
}

// Catalogue returns the public service catalogue in display order.
func Catalogue() []ServiceInfo {
	return []ServiceInfo{
		{ID: ServiceBasic, Title: "Basic Rinse", Price: servicePrices[ServiceBasic], Description: "Exterior wash & dry"},
		{ID: ServiceDeluxe, Title: "Deluxe Rinse", Price: servicePrices[ServiceDeluxe], Description: "Exterior + interior vacuum"},
		{ID: ServiceRoyal, Title: "Royal Rinse", Price: servicePrices[ServiceRoyal], Description: "Full detail: wax, polish, deep interior clean"},
	}
}
