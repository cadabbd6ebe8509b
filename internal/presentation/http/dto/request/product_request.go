package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"min=0"`
}
