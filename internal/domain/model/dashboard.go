package model

import "encoding/json"

// DashboardStats is the headline numbers block on the dashboard.
type DashboardStats struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalOrders     int     `json:"totalOrders"`
	TotalProducts   int     `json:"totalProducts"`
	TotalCustomers  int     `json:"totalCustomers"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	OrdersGrowth    float64 `json:"ordersGrowth"`
	ProductsGrowth  float64 `json:"productsGrowth"`
	CustomersGrowth float64 `json:"customersGrowth"`
	PendingOrders   int     `json:"pendingOrders"`
	LowStockItems   int     `json:"lowStockProducts"`
}

// DashboardOverview is the upstream dashboard aggregate. SalesData is a
// chart series whose shape belongs to the UI; it is relayed untouched.
type DashboardOverview struct {
	Stats        DashboardStats  `json:"stats"`
	RecentOrders []Order         `json:"recentOrders"`
	TopProducts  []Product       `json:"topProducts"`
	SalesData    json.RawMessage `json:"salesData,omitempty"`
}
