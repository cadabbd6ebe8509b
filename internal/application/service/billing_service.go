package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/internal/domain/repository"
	"github.com/shopstack/billing-api/pkg/apperror"
	"github.com/shopstack/billing-api/pkg/docgen"
	"github.com/shopstack/billing-api/pkg/pagination"
)

// BillingService handles bill creation, lookup, deletion and invoice
// rendering.
type BillingService struct {
	billRepo    repository.BillRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// BillItemInput is one (product, quantity) selection on a new bill
type BillItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	UserID         uuid.UUID
	CustomerName   string
	CustomerMobile string
	Items          []BillItemInput
}

// CreateBillOutput carries the persisted bill and its rendered invoice
type CreateBillOutput struct {
	Bill *entity.Bill
	PDF  []byte
}

// CreateBill validates the selections, snapshots current product name
// and price into an immutable bill, computes line totals and the bill
// total in cents, persists the bill and renders its invoice.
//
// Stock is intentionally not decremented: billing records a sale, it
// does not track inventory.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*CreateBillOutput, error) {
	if input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
	}

	// Batch fetch all selected products in one owner-scoped query
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, input.UserID, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var total int64
	billItems := make([]entity.BillItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		lineTotal := product.UnitPrice * int64(item.Quantity)
		total += lineTotal

		billItems = append(billItems, entity.BillItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  item.Quantity,
			Total:     lineTotal,
		})
	}

	bill := &entity.Bill{
		UserID:         input.UserID,
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		Total:          total,
		Items:          billItems,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	pdf, err := s.renderInvoice(ctx, input.UserID, bill)
	if err != nil {
		return nil, err
	}

	return &CreateBillOutput{Bill: bill, PDF: pdf}, nil
}

// ListBills returns the caller's bills with their line items
func (s *BillingService) ListBills(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(bills, params.Page, params.PerPage, total), nil
}

// DeleteBill irreversibly removes an owned bill
func (s *BillingService) DeleteBill(ctx context.Context, userID, billID uuid.UUID) error {
	deleted, err := s.billRepo.Delete(ctx, userID, billID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Bill")
	}
	return nil
}

// DownloadBill re-renders the persisted bill as an invoice document.
// The render runs over the stored snapshot, so the output matches the
// creation-time render byte for byte.
func (s *BillingService) DownloadBill(ctx context.Context, userID, billID uuid.UUID) (*entity.Bill, []byte, error) {
	bill, err := s.billRepo.GetByID(ctx, userID, billID)
	if err != nil {
		return nil, nil, err
	}
	if bill == nil {
		return nil, nil, apperror.NewNotFoundError("Bill")
	}

	pdf, err := s.renderInvoice(ctx, userID, bill)
	if err != nil {
		return nil, nil, err
	}
	return bill, pdf, nil
}

// renderInvoice composes the invoice value object from the persisted
// bill and its owner, then renders it.
func (s *BillingService) renderInvoice(ctx context.Context, userID uuid.UUID, bill *entity.Bill) ([]byte, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return docgen.RenderInvoicePDF(BuildInvoice(user, bill))
}

// BuildInvoice maps a persisted bill and its owner onto the printable
// invoice value object. Both the creation-time render and later
// re-downloads go through here.
func BuildInvoice(user *entity.User, bill *entity.Bill) *entity.Invoice {
	items := make([]entity.InvoiceItem, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, entity.InvoiceItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}
	return &entity.Invoice{
		ShopName:       user.ShopName,
		InvoiceNo:      bill.InvoiceNo(),
		Date:           bill.CreatedAt.Format("02/01/2006"),
		CustomerName:   bill.CustomerName,
		CustomerMobile: bill.CustomerMobile,
		Items:          items,
		Total:          bill.Total,
		CreatedAt:      bill.CreatedAt,
	}
}
