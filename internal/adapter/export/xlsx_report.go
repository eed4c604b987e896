package export

import (
	"fmt"
	"io"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary = "Resumen"
	SheetTop     = "Top morosos"
	SheetDetail  = "Detalle"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var rowHeader = []any{
	"CI", "Cliente", "Categoría", "Total facturado", "Total pagado", "Deuda", "Estado", "Facturas", "Pagos",
}

// amount renders money as text with two decimals so workbook cells carry the
// exact value instead of a float approximation.
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FileName is the suggested download name for a report.
func FileName(r entities.DelinquencyReport) string {
	return fmt.Sprintf("reporte-morosidad-%s.xlsx", r.GeneratedAt.Format("20060102-150405"))
}

// WriteDelinquencyReport renders the report as a workbook with a summary sheet,
// the top delinquents and the full detail.
func WriteDelinquencyReport(w io.Writer, r entities.DelinquencyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{
		{"Reporte", r.ID},
		{"Fecha de generación", r.GeneratedAt.UTC().Format("2006-01-02 15:04:05 MST")},
		{"Total clientes", r.TotalCustomers},
		{"Clientes omitidos", r.SkippedCustomers},
		{"Deuda total", amount(r.GrandTotalBalance)},
		{string(entities.DebtStateCurrent), r.StateCounts.Current},
		{string(entities.DebtStateWatch), r.StateCounts.Watch},
		{string(entities.DebtStateDelinquent), r.StateCounts.Delinquent},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "B", "B", 40); err != nil {
		return err
	}

	if err := writeRows(f, SheetTop, r.TopDelinquents, bold); err != nil {
		return err
	}
	if err := writeRows(f, SheetDetail, r.Detail, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	_, err = f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows []entities.CustomerDebtSummary, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := rowHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	lastCol, err := excelize.CoordinatesToCellName(len(rowHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return err
	}

	for i, s := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			s.CustomerID,
			s.Name,
			s.Category,
			amount(s.TotalInvoiced),
			amount(s.TotalPaid),
			amount(s.CurrentBalance),
			string(s.State),
			s.InvoiceCount,
			s.PaymentCount,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "I", 18); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return f.AutoFilter(sheet, "A1:"+lastCol, nil)
}
