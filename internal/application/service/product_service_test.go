package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/pkg/apperror"
	"github.com/shopstack/billing-api/pkg/pagination"
)

func TestCreateProductStoresCents(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	userID := uuid.New()

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:   userID,
		Name:     "Soap",
		Price:    10.99,
		Quantity: 50,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.UnitPrice != 1099 {
		t.Errorf("unit price = %d cents, want 1099", product.UnitPrice)
	}
	if product.GetUnitPriceDecimal() != 10.99 {
		t.Errorf("decimal price = %v, want 10.99", product.GetUnitPriceDecimal())
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	userID := uuid.New()

	tests := []struct {
		name  string
		input *CreateProductInput
	}{
		{"empty name", &CreateProductInput{UserID: userID, Price: 10, Quantity: 1}},
		{"negative price", &CreateProductInput{UserID: userID, Name: "Soap", Price: -1, Quantity: 1}},
		{"negative quantity", &CreateProductInput{UserID: userID, Name: "Soap", Price: 10, Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := apperror.GetAppError(err).Code; code != 400 {
				t.Errorf("error code = %d, want 400", code)
			}
		})
	}
}

func TestUpdateProductScopedToOwner(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{UserID: owner, Name: "Soap", Price: 10, Quantity: 5})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	_, err = svc.UpdateProduct(ctx, &UpdateProductInput{
		UserID:    stranger,
		ProductID: product.ID,
		Name:      "Hijacked",
		Price:     1,
		Quantity:  1,
	})
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("cross-owner update error = %v, want 404", err)
	}

	updated, err := svc.UpdateProduct(ctx, &UpdateProductInput{
		UserID:    owner,
		ProductID: product.ID,
		Name:      "Premium Soap",
		Price:     12.50,
		Quantity:  40,
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Premium Soap" || updated.UnitPrice != 1250 || updated.Quantity != 40 {
		t.Errorf("updated = %q @ %d x%d, want Premium Soap @ 1250 x40", updated.Name, updated.UnitPrice, updated.Quantity)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()
	owner := uuid.New()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{UserID: owner, Name: "Soap", Price: 10, Quantity: 5})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := svc.DeleteProduct(ctx, owner, product.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if err := svc.DeleteProduct(ctx, owner, product.ID); apperror.GetAppError(err).Code != 404 {
		t.Errorf("repeat delete error = %v, want 404", err)
	}
}

func TestListProductsScopedToOwner(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	for _, in := range []*CreateProductInput{
		{UserID: owner, Name: "Soap", Price: 10, Quantity: 5},
		{UserID: owner, Name: "Rice", Price: 5, Quantity: 30},
		{UserID: other, Name: "Oil", Price: 20, Quantity: 10},
	} {
		if _, err := svc.CreateProduct(ctx, in); err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
	}

	result, err := svc.ListProducts(ctx, owner, &pagination.PaginationParams{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("owner sees %d products, want 2", len(result.Items))
	}
	for _, p := range result.Items {
		if p.UserID != owner {
			t.Errorf("listing leaked product %q owned by %s", p.Name, p.UserID)
		}
	}
}
