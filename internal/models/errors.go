package models

import "fmt"

// NotFoundError marks a lookup whose target row does not exist. Handlers map
// it to 404; callers that treat absence as a negative result detect it with
// errors.As.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// DomainError marks a business-rule violation such as a blocked delete,
// insufficient stock, or a reference to a nonexistent row. Handlers map it
// to 400.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
