package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/internal/domain/repository"
	"github.com/shopstack/billing-api/pkg/apperror"
	"github.com/shopstack/billing-api/pkg/pagination"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID   uuid.UUID
	Name     string
	Price    float64
	Quantity int
}

// CreateProduct adds a product to the caller's catalog
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	product := &entity.Product{
		UserID:   input.UserID,
		Name:     input.Name,
		Quantity: input.Quantity,
	}
	product.SetUnitPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     float64
	Quantity  int
}

// UpdateProduct overwrites an owned product in place. Edits are
// last-write-wins; concurrent edits to the same product carry no
// conflict detection.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 || input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Price and quantity cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	product.Name = input.Name
	product.Quantity = input.Quantity
	product.SetUnitPriceFromDecimal(input.Price)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes an owned product. Historical bills keep their
// snapshot of it.
func (s *ProductService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	deleted, err := s.productRepo.Delete(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}

// ListProducts returns the caller's catalog
func (s *ProductService) ListProducts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, params.Page, params.PerPage, total), nil
}
