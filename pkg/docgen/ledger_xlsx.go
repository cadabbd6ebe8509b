package docgen

import (
	"bytes"
	"fmt"

	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// LedgerSheetName is the worksheet the bill ledger is written to.
const LedgerSheetName = "Bills"

// ledgerColumn describes one column of the exported bill ledger.
type ledgerColumn struct {
	Title string
	Width float64
}

var ledgerColumns = []ledgerColumn{
	{Title: "Sr No", Width: 10},
	{Title: "Bill ID", Width: 38},
	{Title: "Date", Width: 15},
	{Title: "Customer Name", Width: 20},
	{Title: "Total", Width: 15},
}

// LedgerRow returns the export row for a bill: serial number, id, date
// (day-month-year), customer name and the total formatted to 2 decimals.
func LedgerRow(sr int, bill *entity.Bill) []interface{} {
	return []interface{}{
		sr,
		bill.ID.String(),
		bill.CreatedAt.Format("02-01-2006"),
		bill.CustomerName,
		fmt.Sprintf("%.2f", bill.GetTotalDecimal()),
	}
}

// RenderLedgerXLSX writes one spreadsheet row per bill with a bold
// centered header row and centered data cells.
func RenderLedgerXLSX(bills []entity.Bill) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(LedgerSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	centered, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range ledgerColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(LedgerSheetName, name, name, col.Width); err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(LedgerSheetName, cell, col.Title); err != nil {
			return nil, err
		}
	}

	for i := range bills {
		row := LedgerRow(i+1, &bills[i])
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(LedgerSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(ledgerColumns))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(LedgerSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if len(bills) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(ledgerColumns), len(bills)+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(LedgerSheetName, "A2", lastCell, centered); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write ledger workbook: %w", err)
	}
	return buf.Bytes(), nil
}
