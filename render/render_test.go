package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bevauto/model"
)

func sampleDoc() model.CompanyDocument {
	return model.CompanyDocument{
		Summary: model.CompanySummary{
			CompanyCode:         "C/01",
			CompanyNameOriginal: "가게 <본점>",
			ItemTypeCount:       2,
			TotalQuantity:       1205,
		},
		Orders: []model.ProcessedOrder{
			{CompanyCode: "C/01", CompanyNameOriginal: "가게 <본점>", ProductName: "콜라", Quantity: 1200},
			{CompanyCode: "C/01", CompanyNameOriginal: "가게 <본점>", ProductName: "사이다", Quantity: 5},
		},
	}
}

func TestSplitLabelName(t *testing.T) {
	tests := []struct {
		name, first, second string
	}{
		{"콜라 500ml", "콜라 500ml", ""},
		{"12345678901234567890", "12345678901234567890", ""},
		{"Coca Cola Zero Sugar 500ml PET", "Coca Cola Zero", "Sugar 500ml PET"},
		{"가나다라마바사아자차카타파하가나다라마바사", "가나다라마바사아자차", "카타파하가나다라마바사"},
	}
	for _, tt := range tests {
		first, second := splitLabelName(tt.name)
		if first != tt.first || second != tt.second {
			t.Errorf("splitLabelName(%q) = (%q, %q), want (%q, %q)", tt.name, first, second, tt.first, tt.second)
		}
	}
}

func TestOrderSheetHTML(t *testing.T) {
	out := OrderSheetHTML(sampleDoc(), FontConfig{})
	for _, want := range []string{
		"<h1>주문서</h1>",
		"C/01",
		"가게 &lt;본점&gt;",
		"<b>총 품목 수:</b> 2개",
		"<b>총 수량:</b> 1,205",
		`<td>1</td><td class="name">콜라</td><td class="num">1,200</td>`,
		`<td>2</td><td class="name">사이다</td><td class="num">5</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("order sheet missing %q", want)
		}
	}
	if strings.Contains(out, "<본점>") {
		t.Error("company name is not escaped")
	}
}

func TestLabelsHTMLOnePagePerLine(t *testing.T) {
	out := LabelsHTML(sampleDoc(), FontConfig{})
	if n := strings.Count(out, `<section class="label">`); n != 2 {
		t.Fatalf("labels = %d, want 2", n)
	}
	if !strings.Contains(out, `<div class="qty">1200</div>`) {
		t.Error("label quantity missing")
	}
}

func TestInventoryReportHTML(t *testing.T) {
	records := []model.InventoryRecord{
		{ProductCode: "A1", ProductName: "Cola", TokenA: "5(11/25) 10(11/25)"},
	}
	out := InventoryReportHTML(records, time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local), FontConfig{})
	for _, want := range []string{"재고 현황표 (2026-10-18)", "<b>총 품목 수:</b> 1개", "5(11/25) 10(11/25)"} {
		if !strings.Contains(out, want) {
			t.Errorf("inventory report missing %q", want)
		}
	}
}

func TestDiscoverFont(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "NanumGothic.ttf")
	if err := os.WriteFile(font, []byte("ttf"), 0644); err != nil {
		t.Fatal(err)
	}

	got := DiscoverFont([]string{filepath.Join(dir, "missing.ttf"), dir, font})
	if !got.Available || got.Path != font || got.Family != "NanumGothic" {
		t.Fatalf("DiscoverFont() = %+v", got)
	}
	if !strings.HasPrefix(got.CSSFamily(), "'bevauto-doc', 'NanumGothic'") {
		t.Fatalf("CSSFamily() = %s", got.CSSFamily())
	}

	none := DiscoverFont([]string{filepath.Join(dir, "missing.ttf")})
	if none.Available || strings.Contains(none.CSSFamily(), "bevauto-doc") {
		t.Fatalf("DiscoverFont() without fonts = %+v", none)
	}
}

func TestDocumentRendererWritesHTML(t *testing.T) {
	dir := t.TempDir()
	sheets := NewOrderSheetRenderer(filepath.Join(dir, "order_sheets"), FontConfig{}, HTMLOutput{})
	labels := NewLabelRenderer(filepath.Join(dir, "labels"), FontConfig{}, HTMLOutput{})

	path, err := sheets.RenderCompany(sampleDoc())
	if err != nil {
		t.Fatalf("RenderCompany: %v", err)
	}
	if filepath.Base(path) != "C_01_주문서.html" {
		t.Fatalf("order sheet path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("order sheet not written: %v", err)
	}

	path, err = labels.RenderCompany(sampleDoc())
	if err != nil {
		t.Fatalf("RenderCompany: %v", err)
	}
	if filepath.Base(path) != "C_01_라벨.html" || labels.Name() != "labels" {
		t.Fatalf("label path = %s", path)
	}
}

type fakePrinter struct {
	paths []string
	err   error
}

func (p *fakePrinter) PrintPDF(html, path string) error {
	p.paths = append(p.paths, path)
	return p.err
}

func TestPDFOutput(t *testing.T) {
	dir := t.TempDir()
	printer := &fakePrinter{}
	r := NewInventoryReportRenderer(dir, time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local), FontConfig{}, PDFOutput{Printer: printer})

	path, err := r.RenderInventory(nil)
	if err != nil {
		t.Fatalf("RenderInventory: %v", err)
	}
	if filepath.Base(path) != "재고표_20261018.pdf" || len(printer.paths) != 1 {
		t.Fatalf("path = %s, printed = %v", path, printer.paths)
	}

	printer.err = errors.New("chrome crashed")
	if _, err := r.RenderInventory(nil); err == nil {
		t.Fatal("expected printer error")
	}
	if err := (PDFOutput{}).Write("", filepath.Join(dir, "x.pdf")); err == nil {
		t.Fatal("expected error without printer")
	}
}

func TestSafeName(t *testing.T) {
	if got := SafeName(`A/B\C`); got != "A_B_C" {
		t.Fatalf("SafeName = %s", got)
	}
}
