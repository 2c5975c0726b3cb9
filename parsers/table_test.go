package parsers

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSVWithBOM(t *testing.T) {
	in := "\xEF\xBB\xBF납품처명,자재내역,주문수량\nStoreX,Cola,10\n\"Store, Y\",Soda,5\n"
	table, err := ReadCSV(strings.NewReader(in), "orders.csv", 1)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Header[0] != "납품처명" {
		t.Fatalf("header[0] = %q, BOM not stripped", table.Header[0])
	}
	if len(table.Rows) != 2 || table.Rows[1][0] != "Store, Y" || table.FirstLine != 2 {
		t.Fatalf("table = %+v", table)
	}
}

func TestReadCSVHeaderRow(t *testing.T) {
	in := "재고실사 2026-10-18\n제품코드,Brand Name\nA1,Cola\n"
	table, err := ReadCSV(strings.NewReader(in), "stock.csv", 2)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Header[0] != "제품코드" || table.FirstLine != 3 || len(table.Rows) != 1 {
		t.Fatalf("table = %+v", table)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), "empty.csv", 1); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestReadSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("업체명"); err != nil {
		t.Fatal(err)
	}
	f.SetSheetRow("업체명", "A1", &[]interface{}{"센터명", "코드"})
	f.SetSheetRow("업체명", "A2", &[]interface{}{"StoreX", 1001})

	table, err := ReadSheet(f, "company.xlsx", "업체명", 1)
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0][1] != "1001" {
		t.Fatalf("rows = %v", table.Rows)
	}
	if table.Source != "company.xlsx#업체명" {
		t.Fatalf("source = %q", table.Source)
	}

	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"센터명", "코드"})
	first, err := ReadSheet(f, "company.xlsx", "", 1)
	if err != nil {
		t.Fatalf("ReadSheet first sheet: %v", err)
	}
	if first.Source != "company.xlsx#Sheet1" {
		t.Fatalf("default sheet source = %q", first.Source)
	}
}

func TestReadSheetEmptyFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := ReadSheet(f, "empty.xlsx", "", 1); err == nil {
		t.Fatal("expected error for empty first sheet")
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := ReadSheet(f, "stock.xlsx", "정리표", 2)
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("err = %v, want ErrSheetNotFound", err)
	}
}
