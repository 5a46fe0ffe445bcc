package model

// CustomerAddress is one shipping address on a customer record.
type CustomerAddress struct {
	ID           string `json:"_id,omitempty"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"isDefault"`
}

// Customer mirrors the upstream customer document, including the order
// aggregates the admin list view displays.
type Customer struct {
	ID            string            `json:"_id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone,omitempty"`
	Role          string            `json:"role"`
	Avatar        string            `json:"avatar,omitempty"`
	Addresses     []CustomerAddress `json:"addresses,omitempty"`
	TotalOrders   int               `json:"totalOrders,omitempty"`
	TotalSpent    float64           `json:"totalSpent,omitempty"`
	LastOrderDate string            `json:"lastOrderDate,omitempty"`
	CreatedAt     string            `json:"createdAt"`
}

// CustomerStats is the aggregate block behind the customers screen header.
type CustomerStats struct {
	TotalCustomers        int        `json:"totalCustomers"`
	NewCustomersThisMonth int        `json:"newCustomersThisMonth"`
	TopCustomers          []Customer `json:"topCustomers"`
}
