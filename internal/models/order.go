package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderItem is a single line of an order. UnitPrice and LineTotal are
// snapshots taken at order-creation time; later product price changes never
// alter them. Items are owned exclusively by their order and hold a
// non-owning foreign key to the product.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);index;not null"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36);index;not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Order represents a customer order. TotalAmount equals the sum of its items'
// line totals at creation time and is never recomputed, not even after
// cancellation.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID  string      `json:"customer_id" gorm:"type:varchar(36);index;not null"`
	AddressID   *string     `json:"address_id,omitempty" gorm:"type:varchar(36)"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);not null"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
