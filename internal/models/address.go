package models

// Address is a customer's postal address. It is owned by its customer and
// removed together with it.
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID string `json:"customer_id" gorm:"type:varchar(36);index;not null"`
	Street     string `json:"street" gorm:"type:varchar(200);not null"`
	Suburb     string `json:"suburb" gorm:"type:varchar(100);not null"`
	Postcode   string `json:"postcode" gorm:"type:varchar(20);not null"`
	State      string `json:"state" gorm:"type:varchar(50);not null"`
}
