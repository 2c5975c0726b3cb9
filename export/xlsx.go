package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"bevauto/model"
)

const (
	ProcessedSheet = "처리된_주문데이터"
	InventorySheet = "재고표_출력"
	sheetFont      = "맑은 고딕"
)

var processedHeaders = []string{"업체코드", "업체명_원본", "제품명", "수량"}

var inventoryHeaders = []string{"제품코드", "제품명", "아주/날짜", "일반/날짜", "잔량/날짜"}

// 재고표 열 너비 (A~E)
var inventoryWidths = []float64{12, 40, 26, 26, 26}

// ProcessedXLSX 는 매핑이 끝난 주문 데이터를 엑셀로 저장합니다.
func ProcessedXLSX(path string, orders []model.ProcessedOrder) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", ProcessedSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeHeader(f, ProcessedSheet, processedHeaders); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(ProcessedSheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, o := range orders {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{o.CompanyCode, o.CompanyNameOriginal, o.ProductName, o.Quantity}
		if err := f.SetSheetRow(ProcessedSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write order row %d: %w", i+2, err)
		}
	}

	widths := map[string]float64{"A": 15, "B": 30, "C": 40, "D": 10}
	for col, w := range widths {
		if err := f.SetColWidth(ProcessedSheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set width of %s: %w", col, err)
		}
	}

	return save(f, path)
}

// InventoryXLSX 는 합친 재고 레코드를 재고표_출력 시트로 저장합니다.
// 수량/날짜 칸은 현장에서 읽기 쉽게 12pt 굵게 씁니다.
func InventoryXLSX(path string, records []model.InventoryRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", InventorySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	styles := []*excelize.Style{
		{ // header
			Font:      &excelize.Font{Family: sheetFont, Size: 11, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		},
		{ // 제품코드
			Font:      &excelize.Font{Family: sheetFont, Size: 10},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		},
		{ // 제품명
			Font:      &excelize.Font{Family: sheetFont, Size: 10},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		},
		{ // 수량/날짜
			Font:      &excelize.Font{Family: sheetFont, Size: 12, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		},
	}
	ids := make([]int, len(styles))
	for i, st := range styles {
		id, err := f.NewStyle(st)
		if err != nil {
			return fmt.Errorf("failed to create inventory style %d: %w", i, err)
		}
		ids[i] = id
	}
	headerStyle, codeStyle, nameStyle, tokenStyle := ids[0], ids[1], ids[2], ids[3]

	if err := writeHeader(f, InventorySheet, inventoryHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(InventorySheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetRowHeight(InventorySheet, 1, 20); err != nil {
		return fmt.Errorf("failed to set header height: %w", err)
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{r.ProductCode, r.ProductName, r.TokenA, r.Placeholder, r.TokenB}
		if err := f.SetSheetRow(InventorySheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write inventory row %d: %w", row, err)
		}
		for _, span := range []struct {
			from, to string
			style    int
		}{
			{"A", "A", codeStyle},
			{"B", "B", nameStyle},
			{"C", "E", tokenStyle},
		} {
			if err := f.SetCellStyle(InventorySheet, fmt.Sprintf("%s%d", span.from, row), fmt.Sprintf("%s%d", span.to, row), span.style); err != nil {
				return fmt.Errorf("failed to style inventory row %d: %w", row, err)
			}
		}
		if err := f.SetRowHeight(InventorySheet, row, 18); err != nil {
			return fmt.Errorf("failed to set height of row %d: %w", row, err)
		}
	}

	for i, w := range inventoryWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(InventorySheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set width of %s: %w", col, err)
		}
	}

	return save(f, path)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}
	return nil
}

func save(f *excelize.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// InventorySheetRenderer 는 재고표 엑셀을 재고 출력 단계에 붙입니다.
type InventorySheetRenderer struct {
	Path string
}

func (r InventorySheetRenderer) Name() string { return "inventory_xlsx" }

func (r InventorySheetRenderer) RenderInventory(records []model.InventoryRecord) (string, error) {
	if err := InventoryXLSX(r.Path, records); err != nil {
		return "", err
	}
	return r.Path, nil
}
