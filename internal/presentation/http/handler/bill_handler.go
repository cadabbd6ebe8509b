package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/application/service"
	"github.com/shopstack/billing-api/internal/presentation/http/dto/request"
	"github.com/shopstack/billing-api/internal/presentation/http/dto/response"
	"github.com/shopstack/billing-api/pkg/pagination"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billingService *service.BillingService
	exportService  *service.ExportService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, exportService *service.ExportService) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		exportService:  exportService,
	}
}

// Create handles bill creation and streams the rendered invoice back
func (h *BillHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	output, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		UserID:         *userID,
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		Items:          items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", output.Bill.ID))
	c.Header("X-Bill-ID", output.Bill.ID.String())
	c.Data(200, pdfContentType, output.PDF)
}

// List handles listing the caller's bills
func (h *BillHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.billingService.ListBills(c.Request.Context(), *userID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Download re-renders a stored bill's invoice and streams it back
func (h *BillHandler) Download(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, pdf, err := h.billingService.DownloadBill(c.Request.Context(), *userID, billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", bill.ID))
	c.Data(200, pdfContentType, pdf)
}

// Delete handles bill deletion
func (h *BillHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), *userID, billID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}

// ExportExcel streams the caller's full bill history as a spreadsheet
func (h *BillHandler) ExportExcel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	workbook, err := h.exportService.ExportBills(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=bills_export.xlsx")
	c.Data(200, xlsxContentType, workbook)
}
