package export

import (
	"bytes"
	"testing"
	"time"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestWriteDelinquencyReport(t *testing.T) {
	row := func(ci, name, balance string) entities.CustomerDebtSummary {
		b := decimal.RequireFromString(balance)
		return entities.CustomerDebtSummary{
			CustomerID:     ci,
			Name:           name,
			TotalInvoiced:  b,
			TotalPaid:      decimal.Zero,
			CurrentBalance: b,
			State:          entities.ClassifyBalance(b),
			InvoiceCount:   1,
		}
	}
	r := entities.DelinquencyReport{
		ID:                "rep-1",
		GeneratedAt:       time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
		TotalCustomers:    3,
		SkippedCustomers:  1,
		GrandTotalBalance: decimal.NewFromInt(5500),
		StateCounts:       entities.StateCounts{Watch: 1, Delinquent: 1},
		TopDelinquents:    []entities.CustomerDebtSummary{row("1", "Ana", "5000")},
		Detail:            []entities.CustomerDebtSummary{row("1", "Ana", "5000"), row("2", "Luis", "500")},
	}

	var buf bytes.Buffer
	if err := WriteDelinquencyReport(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != SheetSummary || sheets[1] != SheetTop || sheets[2] != SheetDetail {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	summary, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("summary rows: %v", err)
	}
	if summary[0][1] != "rep-1" || summary[2][1] != "3" || summary[4][1] != "5500.00" {
		t.Fatalf("unexpected summary: %v", summary)
	}

	detail, err := f.GetRows(SheetDetail)
	if err != nil {
		t.Fatalf("detail rows: %v", err)
	}
	if len(detail) != 3 {
		t.Fatalf("expected header + 2 rows, got %v", detail)
	}
	if detail[0][0] != "CI" || detail[1][1] != "Ana" || detail[2][5] != "500.00" || detail[2][6] != "En observación" {
		t.Fatalf("unexpected detail: %v", detail)
	}

	top, err := f.GetRows(SheetTop)
	if err != nil {
		t.Fatalf("top rows: %v", err)
	}
	if len(top) != 2 || top[1][0] != "1" {
		t.Fatalf("unexpected top: %v", top)
	}
}

func TestWriteDelinquencyReport_AmountsAreExact(t *testing.T) {
	big := decimal.RequireFromString("12345678901234567.89")
	r := entities.DelinquencyReport{
		ID:                "rep-2",
		GrandTotalBalance: big.Add(decimal.RequireFromString("0.1")).Add(decimal.RequireFromString("0.2")),
		Detail: []entities.CustomerDebtSummary{{
			CustomerID:     "7",
			TotalInvoiced:  big,
			TotalPaid:      decimal.RequireFromString("0.3"),
			CurrentBalance: big.Sub(decimal.RequireFromString("0.3")),
			State:          entities.DebtStateDelinquent,
		}},
	}

	var buf bytes.Buffer
	if err := WriteDelinquencyReport(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	total, err := f.GetCellValue(SheetSummary, "B5")
	if err != nil {
		t.Fatalf("summary total: %v", err)
	}
	if total != "12345678901234568.19" {
		t.Fatalf("unexpected grand total cell: %s", total)
	}

	detail, err := f.GetRows(SheetDetail)
	if err != nil {
		t.Fatalf("detail rows: %v", err)
	}
	if detail[1][3] != "12345678901234567.89" || detail[1][4] != "0.30" || detail[1][5] != "12345678901234567.59" {
		t.Fatalf("unexpected amounts: %v", detail[1])
	}
}

func TestFileName(t *testing.T) {
	got := FileName(entities.DelinquencyReport{GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)})
	if got != "reporte-morosidad-20250102-030405.xlsx" {
		t.Fatalf("unexpected file name: %s", got)
	}
}
