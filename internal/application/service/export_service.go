package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/repository"
	"github.com/shopstack/billing-api/pkg/docgen"
)

// ExportService renders the caller's complete bill history as a
// spreadsheet.
type ExportService struct {
	billRepo repository.BillRepository
}

// NewExportService creates a new export service
func NewExportService(billRepo repository.BillRepository) *ExportService {
	return &ExportService{billRepo: billRepo}
}

// ExportBills returns an XLSX workbook containing every bill owned by
// the user, oldest first. A user with no bills gets a workbook with
// only the header row.
func (s *ExportService) ExportBills(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	bills, err := s.billRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return docgen.RenderLedgerXLSX(bills)
}
