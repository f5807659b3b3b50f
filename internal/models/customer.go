package models

import "time"

// Customer represents a CRM customer record. Its addresses are deleted with
// it; deletion is blocked while any order references the customer.
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"type:varchar(100);not null" validate:"required,email"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	CreatedAt time.Time `json:"created_at"`
}
