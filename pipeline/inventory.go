package pipeline

import (
	"log"

	"bevauto/aggregation"
	"bevauto/filter"
	"bevauto/model"
)

// InventorySource 는 재고실사 행을 제공합니다.
type InventorySource interface {
	LoadInventory() ([]model.InventoryLine, error)
}

// InventoryRenderer 는 재고표 문서를 만들고 파일 경로를 반환합니다.
type InventoryRenderer interface {
	Name() string
	RenderInventory(records []model.InventoryRecord) (string, error)
}

// InventoryReport 는 재고표 처리 결과입니다.
type InventoryReport struct {
	Lines     int
	Removed   int
	Records   []model.InventoryRecord
	Artifacts []string
	Failures  []*RenderFailure
}

// RunInventory 는 재고실사 행을 읽어 합계 행을 빼고, 소비기한별로 합친 뒤 출력합니다.
func RunInventory(src InventorySource, sentinels []string, renderers ...InventoryRenderer) (*InventoryReport, error) {
	log.Println("Loading inventory data...")
	lines, err := src.LoadInventory()
	if err != nil {
		return nil, wrapStage("inventory", err)
	}

	kept, removed := filter.InventoryLines(lines, filter.NewSentinels(sentinels))
	records := aggregation.Consolidate(kept)
	log.Printf("  inventory: %d rows read, %d total/blank rows removed, %d products", len(lines), removed, len(records))

	report := &InventoryReport{
		Lines:   len(lines),
		Removed: removed,
		Records: records,
	}
	for _, r := range renderers {
		path, err := r.RenderInventory(records)
		if err != nil {
			f := &RenderFailure{Renderer: r.Name(), Err: err}
			log.Printf("WARN: %v", f)
			report.Failures = append(report.Failures, f)
			continue
		}
		log.Printf("  %s -> %s", r.Name(), path)
		report.Artifacts = append(report.Artifacts, path)
	}
	return report, nil
}
