package domain

// OrderItem is one line of an order
type OrderItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a completed checkout, persisted in the orderHistory cookie
// newest-first. Status is always "Delivered" in the demo - nothing ships.
type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"userId"`
	Date   string      `json:"date"`
	Total  float64     `json:"total"`
	Status string      `json:"status"`
	Items  []OrderItem `json:"items"`
}

// OrderStatusDelivered is the only order status the demo produces
const OrderStatusDelivered = "Delivered"
