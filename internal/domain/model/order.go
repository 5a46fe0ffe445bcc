package model

import "encoding/json"

// Order status values accepted by the upstream API.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderProduct is the product reference populated on order reads.
type OrderProduct struct {
	ID     string         `json:"_id"`
	Name   string         `json:"name"`
	Images []ProductImage `json:"images,omitempty"`
}

// OrderItem is one line item on an order.
type OrderItem struct {
	Product     OrderProduct `json:"product"`
	ProductName string       `json:"productName"`
	SKU         string       `json:"sku"`
	Quantity    int          `json:"quantity"`
	Price       float64      `json:"price"`
	Total       float64      `json:"total"`
}

// OrderCustomer is the customer reference populated on order reads.
type OrderCustomer struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentInfo carries the payment state of an order.
type PaymentInfo struct {
	Status string `json:"status"`
	Method string `json:"method"`
}

// Order mirrors the upstream order document. The shipping address shape is
// owned by the upstream API and relayed untouched.
type Order struct {
	ID              string          `json:"_id"`
	OrderNumber     string          `json:"orderNumber"`
	Customer        OrderCustomer   `json:"customer"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Total           float64         `json:"total"`
	OrderStatus     string          `json:"orderStatus"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	ShippingAddress json.RawMessage `json:"shippingAddress,omitempty"`
	OrderDate       string          `json:"orderDate,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

// OrderStats is the aggregate block behind the orders screen header and the
// analytics view.
type OrderStats struct {
	TotalOrders      int     `json:"totalOrders"`
	PendingOrders    int     `json:"pendingOrders"`
	ProcessingOrders int     `json:"processingOrders"`
	ShippedOrders    int     `json:"shippedOrders"`
	DeliveredOrders  int     `json:"deliveredOrders"`
	CancelledOrders  int     `json:"cancelledOrders"`
	Revenue          float64 `json:"revenue"`
}
