package request

import "github.com/google/uuid"

// BillItemRequest is one product selection on a new bill
type BillItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	CustomerName   string            `json:"customer_name" binding:"required,min=1,max=255"`
	CustomerMobile string            `json:"customer_mobile" binding:"omitempty,max=15"`
	Items          []BillItemRequest `json:"items" binding:"required,min=1,dive"`
}
