package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/pkg/docgen"
	"github.com/xuri/excelize/v2"
)

func TestExportBills(t *testing.T) {
	billingSvc, userRepo, productRepo, billRepo, userID := newBillingFixture(t)
	svc := NewExportService(billRepo)
	ctx := context.Background()

	soap := addProduct(t, productRepo, userID, "Soap", 10.00, 50)
	customers := []string{"Ravi", "Meena", "Arjun"}
	for _, customer := range customers {
		_, err := billingSvc.CreateBill(ctx, &CreateBillInput{
			UserID:       userID,
			CustomerName: customer,
			Items:        []BillItemInput{{ProductID: soap.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("CreateBill: %v", err)
		}
	}

	// Another shop's bill must stay out of the export
	other := &entity.User{ShopName: "Other Shop", MobileNumber: "9000000001"}
	if err := userRepo.Create(ctx, other); err != nil {
		t.Fatalf("create user: %v", err)
	}
	oil := addProduct(t, productRepo, other.ID, "Oil", 20.00, 10)
	otherBilling := NewBillingService(billRepo, productRepo, userRepo)
	if _, err := otherBilling.CreateBill(ctx, &CreateBillInput{
		UserID:       other.ID,
		CustomerName: "Suresh",
		Items:        []BillItemInput{{ProductID: oil.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	workbook, err := svc.ExportBills(ctx, userID)
	if err != nil {
		t.Fatalf("ExportBills: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(docgen.LedgerSheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != len(customers)+1 {
		t.Fatalf("workbook has %d rows, want header plus %d bills", len(rows), len(customers))
	}
	for i, customer := range customers {
		if got := rows[i+1][3]; got != customer {
			t.Errorf("row %d customer = %q, want %q", i+1, got, customer)
		}
	}
	if rows[1][4] != "10.00" {
		t.Errorf("row 1 total = %q, want 10.00", rows[1][4])
	}
}

func TestExportBillsEmptyHistory(t *testing.T) {
	_, _, _, billRepo, userID := newBillingFixture(t)
	svc := NewExportService(billRepo)

	workbook, err := svc.ExportBills(context.Background(), userID)
	if err != nil {
		t.Fatalf("ExportBills: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(docgen.LedgerSheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty history workbook has %d rows, want header only", len(rows))
	}
}
