package models

import "time"

// Product represents a sellable product with its current stock level.
// CurrentStock is only mutated through the order workflow (creation deducts,
// cancellation restores) or an explicit product update.
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Sku          string    `json:"sku" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	UnitPrice    float64   `json:"unit_price" validate:"required,gt=0"`
	CurrentStock int       `json:"current_stock" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at"`
}
