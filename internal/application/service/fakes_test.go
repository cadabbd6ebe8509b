package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/pkg/pagination"
)

// In-memory repository fakes. They mirror the persistence contracts:
// owner-scoped reads, nil for absent rows, copies on the way out so
// callers cannot mutate stored state.

type fakeUserRepo struct {
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByMobileNumber(_ context.Context, mobileNumber string) (*entity.User, error) {
	for _, user := range r.users {
		if user.MobileNumber == mobileNumber {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = *user
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok || product.UserID != userID {
		return nil, nil
	}
	return &product, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error) {
	var result []entity.Product
	for _, id := range ids {
		if product, ok := r.products[id]; ok && product.UserID == userID {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, userID, id uuid.UUID) (bool, error) {
	product, ok := r.products[id]
	if !ok || product.UserID != userID {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *fakeProductRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Product, int64, error) {
	params.Validate()
	all := r.owned(userID)
	total := int64(len(all))

	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeProductRepo) owned(userID uuid.UUID) []entity.Product {
	var all []entity.Product
	for _, product := range r.products {
		if product.UserID == userID {
			all = append(all, product)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all
}

type fakeBillRepo struct {
	bills map[uuid.UUID]entity.Bill
	seq   int
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]entity.Bill)}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	r.seq++
	if bill.CreatedAt.IsZero() {
		// Distinct timestamps keep insertion order observable
		bill.CreatedAt = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	}
	for i := range bill.Items {
		if bill.Items[i].ID == uuid.Nil {
			bill.Items[i].ID = uuid.New()
		}
		bill.Items[i].BillID = bill.ID
	}
	stored := *bill
	stored.Items = append([]entity.BillItem(nil), bill.Items...)
	r.bills[bill.ID] = stored
	return nil
}

func (r *fakeBillRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entity.Bill, error) {
	bill, ok := r.bills[id]
	if !ok || bill.UserID != userID {
		return nil, nil
	}
	out := bill
	out.Items = append([]entity.BillItem(nil), bill.Items...)
	return &out, nil
}

func (r *fakeBillRepo) Delete(_ context.Context, userID, id uuid.UUID) (bool, error) {
	bill, ok := r.bills[id]
	if !ok || bill.UserID != userID {
		return false, nil
	}
	delete(r.bills, id)
	return true, nil
}

func (r *fakeBillRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	params.Validate()
	all := r.owned(userID)
	total := int64(len(all))

	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeBillRepo) ListAll(_ context.Context, userID uuid.UUID) ([]entity.Bill, error) {
	return r.owned(userID), nil
}

func (r *fakeBillRepo) owned(userID uuid.UUID) []entity.Bill {
	var all []entity.Bill
	for _, bill := range r.bills {
		if bill.UserID == userID {
			all = append(all, bill)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all
}
