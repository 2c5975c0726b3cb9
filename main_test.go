package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"bevauto/config"
	"bevauto/database"
	"bevauto/pipeline"
)

func TestSelectModes(t *testing.T) {
	tests := []struct {
		name                string
		all, orders, labels bool
		inventory           bool
		want                modes
	}{
		{name: "no flags", want: modes{true, true, true}},
		{name: "all", all: true, want: modes{true, true, true}},
		{name: "orders only", orders: true, want: modes{orderSheets: true}},
		{name: "labels and inventory", labels: true, inventory: true, want: modes{labels: true, inventory: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectModes(tt.all, tt.orders, tt.labels, tt.inventory); got != tt.want {
				t.Fatalf("selectModes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func writeSheet(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func fixtureConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.OrderFile = filepath.Join(dir, "orders.xlsx")
	cfg.CompanyFile = filepath.Join(dir, "company.xlsx")
	cfg.InventoryFile = filepath.Join(dir, "stock.xlsx")
	cfg.OutputDir = dir
	cfg.Renderer = "html"
	cfg.FontCandidates = nil
	cfg.ExportCSV = true
	cfg.ExportSQLite = true

	writeSheet(t, cfg.OrderFile, "Sheet1", [][]interface{}{
		{"납품처명", "자재내역", "주문수량"},
		{"StoreX", "Cola", 10},
		{"StoreX", "Cola", -2},
		{"StoreY", "Soda", 5},
		{"StoreX", "TOTAL", 8},
	})
	writeSheet(t, cfg.CompanyFile, "업체명", [][]interface{}{
		{"센터명", "코드"},
		{"StoreX", "C/01"},
	})
	writeSheet(t, cfg.InventoryFile, "정리표", [][]interface{}{
		{"재고실사"},
		{"제품코드", "Brand Name", "아주", "잔량", "소비기한"},
		{"A1", "Cola", 5, nil, "2026-11-25"},
		{"A1", "Cola", 10, nil, "2026-11-25"},
		{nil, "TOTAL", 15},
	})
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	cfg := fixtureConfig(t)
	start := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	runDir := filepath.Join(cfg.OutputDir, "output_20261018_093000")
	m := selectModes(false, false, false, false)

	if err := checkInputs(cfg, m); err != nil {
		t.Fatalf("checkInputs: %v", err)
	}
	res, err := run(cfg, m, runDir, "test-run", start)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Filter.Original != 4 || res.Filter.Retained != 2 {
		t.Fatalf("filter = %+v", res.Filter)
	}
	if len(res.Unmapped) != 1 || res.Unmapped[0] != "StoreY" {
		t.Fatalf("unmapped = %v", res.Unmapped)
	}
	if res.Emit == nil || len(res.Emit.Artifacts) != 4 || len(res.Emit.Failures) != 0 {
		t.Fatalf("emit = %+v", res.Emit)
	}

	for _, rel := range []string{
		"order_sheets/C_01_주문서.html",
		"order_sheets/StoreY_주문서.html",
		"labels/C_01_라벨.html",
		"inventory_reports/재고표_20261018.html",
		"inventory_reports/재고표_20261018.xlsx",
		"처리된_주문데이터.xlsx",
		"처리된_주문데이터.csv",
		"bevauto.db",
	} {
		if _, err := os.Stat(filepath.Join(runDir, rel)); err != nil {
			t.Errorf("missing output %s: %v", rel, err)
		}
	}

	if res.Inventory == nil || len(res.Inventory.Records) != 1 || res.Inventory.Records[0].TokenA != "5(11/25) 10(11/25)" {
		t.Fatalf("inventory = %+v", res.Inventory)
	}

	db, err := database.Open(filepath.Join(runDir, "bevauto.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	summaries, err := database.GetCompanySummaries(db, "test-run")
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 || summaries[0].CompanyCode != "C/01" {
		t.Fatalf("stored summaries = %+v", summaries)
	}

	out := renderSummary(res)
	if !strings.Contains(out, "C/01") || !strings.Contains(out, "StoreY") {
		t.Fatalf("summary missing companies:\n%s", out)
	}
}

func TestCheckInputsMissing(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.InventoryFile = filepath.Join(t.TempDir(), "nope.xlsx")

	if err := checkInputs(cfg, modes{orderSheets: true}); err != nil {
		t.Fatalf("inventory file is not needed for orders: %v", err)
	}
	err := checkInputs(cfg, modes{inventory: true})
	if !errors.Is(err, pipeline.ErrMissingSource) {
		t.Fatalf("err = %v, want ErrMissingSource", err)
	}
}

func TestNewOutputUnknownRenderer(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer = "docx"
	if _, _, err := newOutput(cfg); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}
