package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"bevauto/automation"
	"bevauto/config"
	"bevauto/database"
	"bevauto/export"
	"bevauto/loader"
	"bevauto/model"
	"bevauto/pipeline"
	"bevauto/render"
)

// runResult 는 실행 1회의 결과 요약입니다.
type runResult struct {
	RunID   string
	RunDir  string
	Elapsed time.Duration

	Filter    model.FilterReport
	Unmapped  []string
	Summaries []model.CompanySummary
	Emit      *pipeline.EmitReport
	Inventory *pipeline.InventoryReport
	Exports   []string
}

// checkInputs 는 작업 전에 필요한 입력 파일이 모두 있는지 확인합니다.
func checkInputs(cfg config.Config, m modes) error {
	var required []string
	if m.orders() {
		required = append(required, cfg.OrderFile, cfg.CompanyFile)
	}
	if m.inventory {
		required = append(required, cfg.InventoryFile)
	}
	for _, path := range required {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return pipeline.MissingSource("input", path)
		}
	}
	return nil
}

func newOutput(cfg config.Config) (render.Output, func(), error) {
	switch cfg.Renderer {
	case "html":
		return render.HTMLOutput{}, func() {}, nil
	case "pdf", "":
		printer := automation.NewPrinter(cfg.ChromePath)
		return render.PDFOutput{Printer: printer}, func() {
			if err := printer.Close(); err != nil {
				log.Printf("WARN: failed to close browser: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown renderer %q (pdf | html)", cfg.Renderer)
	}
}

func run(cfg config.Config, m modes, runDir, runID string, start time.Time) (*runResult, error) {
	out, closeOut, err := newOutput(cfg)
	if err != nil {
		return nil, err
	}
	defer closeOut()

	font := render.DiscoverFont(cfg.FontCandidates)
	src := loader.NewFileSource(cfg)
	res := &runResult{RunID: runID, RunDir: runDir}
	snap := database.RunSnapshot{RunID: runID, StartedAt: start}

	if m.orders() {
		snap.OrderFile, snap.CompanyFile = cfg.OrderFile, cfg.CompanyFile
		if err := runOrders(cfg, m, src, runDir, font, out, res, &snap); err != nil {
			return nil, err
		}
	}

	if m.inventory {
		snap.InventoryFile = cfg.InventoryFile
		invDir := filepath.Join(runDir, "inventory_reports")
		renderers := []pipeline.InventoryRenderer{
			render.NewInventoryReportRenderer(invDir, start, font, out),
		}
		if cfg.ExportXLSX {
			renderers = append(renderers, export.InventorySheetRenderer{
				Path: filepath.Join(invDir, "재고표_"+start.Format("20060102")+".xlsx"),
			})
		}
		report, err := pipeline.RunInventory(src, cfg.SentinelValues, renderers...)
		if err != nil {
			return nil, err
		}
		res.Inventory = report
		snap.Inventory = report.Records
	}

	if cfg.ExportSQLite {
		path := filepath.Join(runDir, "bevauto.db")
		if err := saveSnapshot(path, snap); err != nil {
			log.Printf("WARN: sqlite export failed: %v", err)
		} else {
			res.Exports = append(res.Exports, path)
		}
	}
	return res, nil
}

func runOrders(cfg config.Config, m modes, src pipeline.OrderSource, runDir string,
	font render.FontConfig, out render.Output, res *runResult, snap *database.RunSnapshot) error {
	o := pipeline.NewOrchestrator(cfg.SentinelValues)
	if err := o.Load(src); err != nil {
		return err
	}
	report, err := o.Filter()
	if err != nil {
		return err
	}
	res.Filter = report

	if res.Unmapped, err = o.Map(); err != nil {
		return err
	}
	if res.Summaries, err = o.Aggregate(); err != nil {
		return err
	}

	processed, err := o.Processed()
	if err != nil {
		return err
	}
	snap.Processed, snap.Summaries, snap.Unmapped = processed, res.Summaries, res.Unmapped

	if cfg.ExportXLSX {
		path := filepath.Join(runDir, "처리된_주문데이터.xlsx")
		if err := export.ProcessedXLSX(path, processed); err != nil {
			log.Printf("WARN: %v", err)
		} else {
			res.Exports = append(res.Exports, path)
		}
	}
	if cfg.ExportCSV {
		path := filepath.Join(runDir, "처리된_주문데이터.csv")
		if err := export.ProcessedCSV(path, processed); err != nil {
			log.Printf("WARN: %v", err)
		} else {
			res.Exports = append(res.Exports, path)
		}
	}

	var renderers []pipeline.CompanyRenderer
	if m.orderSheets {
		renderers = append(renderers, render.NewOrderSheetRenderer(filepath.Join(runDir, "order_sheets"), font, out))
	}
	if m.labels {
		renderers = append(renderers, render.NewLabelRenderer(filepath.Join(runDir, "labels"), font, out))
	}
	res.Emit, err = o.Emit(renderers...)
	return err
}

func saveSnapshot(path string, snap database.RunSnapshot) error {
	db, err := database.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return database.SaveRun(db, snap)
}
