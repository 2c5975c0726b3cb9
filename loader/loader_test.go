package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"

	"bevauto/config"
	"bevauto/pipeline"
)

func writeWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatal(err)
		}
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func testConfig(dir string) config.Config {
	cfg := config.Default()
	cfg.OrderFile = filepath.Join(dir, "orders.xlsx")
	cfg.CompanyFile = filepath.Join(dir, "company.xlsx")
	cfg.InventoryFile = filepath.Join(dir, "stock.xlsx")
	return cfg
}

func TestFileSourceWorkbooks(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	writeWorkbook(t, cfg.OrderFile, "Sheet1", [][]interface{}{
		{"납품처명", "자재내역", "주문수량"},
		{"StoreX", "Cola", 10},
		{"StoreY", "Soda", 5},
	})
	writeWorkbook(t, cfg.CompanyFile, "업체명", [][]interface{}{
		{"센터명", "코드"},
		{"StoreX", "C01"},
	})
	writeWorkbook(t, cfg.InventoryFile, "정리표", [][]interface{}{
		{"재고실사"},
		{"제품코드", "Brand Name", "아주", "잔량", "소비기한"},
		{"A1", "Cola", 5, nil, "2026-11-25"},
	})

	src := NewFileSource(cfg)
	orders, err := src.LoadOrders()
	if err != nil {
		t.Fatalf("LoadOrders: %v", err)
	}
	if len(orders) != 2 || orders[0].Quantity != 10 || orders[1].RecipientRaw != "StoreY" {
		t.Fatalf("orders = %+v", orders)
	}

	entries, err := src.LoadMapping()
	if err != nil {
		t.Fatalf("LoadMapping: %v", err)
	}
	if len(entries) != 1 || entries[0].CanonicalCode != "C01" {
		t.Fatalf("entries = %+v", entries)
	}

	lines, err := src.LoadInventory()
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductCode != "A1" || !lines[0].ExpiryDate.Valid || lines[0].Line != 3 {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestOpenTableMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xlsx")
	_, err := OpenTable("load", path, TableOptions{HeaderRow: 1})
	if !errors.Is(err, pipeline.ErrMissingSource) {
		t.Fatalf("err = %v, want ErrMissingSource", err)
	}
	var stageErr *pipeline.StageError
	if !errors.As(err, &stageErr) || stageErr.Path != path {
		t.Fatalf("err = %#v", err)
	}
}

func TestOpenTableMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "company.xlsx")
	writeWorkbook(t, path, "Sheet1", [][]interface{}{{"센터명", "코드"}})

	_, err := OpenTable("load", path, TableOptions{Sheet: "업체명", HeaderRow: 1})
	if !errors.Is(err, pipeline.ErrMissingSource) {
		t.Fatalf("err = %v, want ErrMissingSource", err)
	}
}

func TestOpenTableEUCKR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	encoded, err := korean.EUCKR.NewEncoder().String("납품처명,자재내역,주문수량\n가게1,콜라,3\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(encoded), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := OpenTable("load", path, TableOptions{HeaderRow: 1, Encoding: "cp949"})
	if err != nil {
		t.Fatalf("OpenTable: %v", err)
	}
	if table.Header[0] != "납품처명" || table.Rows[0][0] != "가게1" {
		t.Fatalf("table = %+v", table)
	}
}

func TestOpenTableUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenTable("load", path, TableOptions{}); err == nil || errors.Is(err, pipeline.ErrMissingSource) {
		t.Fatalf("err = %v, want unsupported type error", err)
	}
	if _, err := decodeReader(nil, "shift-jis"); err == nil {
		t.Fatal("expected unsupported encoding error")
	}
}
