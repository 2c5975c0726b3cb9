package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bevauto/model"
)

// Printer 는 HTML 을 PDF 파일로 인쇄합니다. automation.Printer 가 구현합니다.
type Printer interface {
	PrintPDF(html, path string) error
}

// Output 은 완성된 HTML 문서를 파일로 씁니다.
type Output interface {
	Ext() string
	Write(doc, path string) error
}

// HTMLOutput 은 HTML 을 그대로 저장합니다. 브라우저에서 열어 인쇄할 수 있습니다.
type HTMLOutput struct{}

func (HTMLOutput) Ext() string { return ".html" }

func (HTMLOutput) Write(doc, path string) error {
	return os.WriteFile(path, []byte(doc), 0644)
}

// PDFOutput 은 Printer 로 PDF 를 만듭니다.
type PDFOutput struct {
	Printer Printer
}

func (PDFOutput) Ext() string { return ".pdf" }

func (o PDFOutput) Write(doc, path string) error {
	if o.Printer == nil {
		return fmt.Errorf("pdf printer is not configured")
	}
	return o.Printer.PrintPDF(doc, path)
}

// SafeName 은 업체코드를 파일명에 쓸 수 있게 경로 구분자를 '_' 로 바꿉니다.
func SafeName(code string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(code)
}

type documentKind int

const (
	kindOrderSheet documentKind = iota
	kindLabels
)

// DocumentRenderer 는 업체별 주문서 또는 라벨 파일을 만듭니다.
type DocumentRenderer struct {
	kind documentKind
	dir  string
	font FontConfig
	out  Output
}

func NewOrderSheetRenderer(dir string, font FontConfig, out Output) *DocumentRenderer {
	return &DocumentRenderer{kind: kindOrderSheet, dir: dir, font: font, out: out}
}

func NewLabelRenderer(dir string, font FontConfig, out Output) *DocumentRenderer {
	return &DocumentRenderer{kind: kindLabels, dir: dir, font: font, out: out}
}

func (r *DocumentRenderer) Name() string {
	if r.kind == kindLabels {
		return "labels"
	}
	return "order_sheets"
}

// RenderCompany 는 업체 1곳의 문서를 쓰고 경로를 반환합니다.
func (r *DocumentRenderer) RenderCompany(doc model.CompanyDocument) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", r.dir, err)
	}

	var content, suffix string
	switch r.kind {
	case kindLabels:
		content, suffix = LabelsHTML(doc, r.font), "_라벨"
	default:
		content, suffix = OrderSheetHTML(doc, r.font), "_주문서"
	}

	path := filepath.Join(r.dir, SafeName(doc.Summary.CompanyCode)+suffix+r.out.Ext())
	if err := r.out.Write(content, path); err != nil {
		return "", err
	}
	return path, nil
}

// InventoryReportRenderer 는 재고표 문서(재고표_YYYYMMDD)를 만듭니다.
type InventoryReportRenderer struct {
	dir  string
	date time.Time
	font FontConfig
	out  Output
}

func NewInventoryReportRenderer(dir string, date time.Time, font FontConfig, out Output) *InventoryReportRenderer {
	return &InventoryReportRenderer{dir: dir, date: date, font: font, out: out}
}

func (r *InventoryReportRenderer) Name() string { return "inventory_report" }

func (r *InventoryReportRenderer) RenderInventory(records []model.InventoryRecord) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", r.dir, err)
	}
	path := filepath.Join(r.dir, "재고표_"+r.date.Format("20060102")+r.out.Ext())
	if err := r.out.Write(InventoryReportHTML(records, r.date, r.font), path); err != nil {
		return "", err
	}
	return path, nil
}
