package pipeline

import (
	"fmt"
	"log"
	"strings"

	"bevauto/aggregation"
	"bevauto/filter"
	"bevauto/mapping"
	"bevauto/model"
)

// State 는 주문 파이프라인의 진행 단계입니다. 앞으로만 진행합니다.
type State int

const (
	StateNew State = iota
	StateLoaded
	StateFiltered
	StateMapped
	StateAggregated
	StateEmitted
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateLoaded:
		return "LOADED"
	case StateFiltered:
		return "FILTERED"
	case StateMapped:
		return "MAPPED"
	case StateAggregated:
		return "AGGREGATED"
	case StateEmitted:
		return "EMITTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// OrderSource 는 주문 행과 업체명 매핑 행을 제공합니다.
type OrderSource interface {
	LoadOrders() ([]model.OrderRecord, error)
	LoadMapping() ([]model.MappingEntry, error)
}

// CompanyRenderer 는 업체 1곳의 문서를 만들고 파일 경로를 반환합니다.
type CompanyRenderer interface {
	Name() string
	RenderCompany(doc model.CompanyDocument) (string, error)
}

// EmitReport 는 출력 단계의 결과입니다.
type EmitReport struct {
	Companies int
	Artifacts []string
	Failures  []*RenderFailure
}

// Orchestrator 는 주문 데이터를 load → filter → map → aggregate → emit 순서로 처리합니다.
type Orchestrator struct {
	state     State
	sentinels filter.Sentinels

	raw     []model.OrderRecord
	mapping *mapping.CompanyMapping

	filtered     []model.OrderRecord
	filterReport model.FilterReport

	resolver  *mapping.Resolver
	processed []model.ProcessedOrder

	groups    *aggregation.CompanyGroups
	summaries []model.CompanySummary
}

func NewOrchestrator(sentinels []string) *Orchestrator {
	return &Orchestrator{sentinels: filter.NewSentinels(sentinels)}
}

func (o *Orchestrator) State() State {
	return o.state
}

func (o *Orchestrator) expect(stage string, want State) error {
	if o.state != want {
		return &StageError{
			Stage: stage,
			Err:   fmt.Errorf("%w: %s requires %s, current %s", ErrInvalidState, stage, want, o.state),
		}
	}
	return nil
}

// Load 는 주문 파일과 업체명 매핑을 읽습니다.
func (o *Orchestrator) Load(src OrderSource) error {
	if err := o.expect("load", StateNew); err != nil {
		return err
	}
	log.Println("Loading order data...")

	orders, err := src.LoadOrders()
	if err != nil {
		return wrapStage("load", err)
	}
	log.Printf("  orders: %d rows", len(orders))

	entries, err := src.LoadMapping()
	if err != nil {
		return wrapStage("load", err)
	}
	m := mapping.NewCompanyMapping(entries)
	log.Printf("  company mapping: %d companies", m.Len())

	o.raw = orders
	o.mapping = m
	o.state = StateLoaded
	return nil
}

// Filter 는 수량 0 이하 행, 키가 빈 행, 합계 행을 제외합니다.
func (o *Orchestrator) Filter() (model.FilterReport, error) {
	if err := o.expect("filter", StateLoaded); err != nil {
		return model.FilterReport{}, err
	}
	kept, report := filter.Orders(o.raw, o.sentinels)
	log.Printf("Filtered orders: %d -> %d (removed %d: non-positive %d, blank %d, total rows %d)",
		report.Original, report.Retained, report.Removed, report.NonPositive, report.BlankKey, report.Sentinel)

	o.filtered = kept
	o.filterReport = report
	o.state = StateFiltered
	return report, nil
}

// Map 은 납품처명을 업체코드로 변환합니다. 매핑되지 않은 이름 목록을 반환합니다.
func (o *Orchestrator) Map() ([]string, error) {
	if err := o.expect("map", StateFiltered); err != nil {
		return nil, err
	}
	o.resolver = mapping.NewResolver(o.mapping)
	processed := make([]model.ProcessedOrder, 0, len(o.filtered))
	for _, rec := range o.filtered {
		processed = append(processed, o.resolver.MapOrder(rec))
	}

	unmapped := o.resolver.Unmapped()
	if len(unmapped) > 0 {
		log.Printf("WARN: %d companies not found in mapping, using original name as code:\n  - %s",
			len(unmapped), strings.Join(unmapped, "\n  - "))
	}

	o.processed = processed
	o.state = StateMapped
	return unmapped, nil
}

// Aggregate 는 업체코드별로 묶고 집계합니다.
func (o *Orchestrator) Aggregate() ([]model.CompanySummary, error) {
	if err := o.expect("aggregate", StateMapped); err != nil {
		return nil, err
	}
	o.groups = aggregation.GroupByCompany(o.processed)
	o.summaries = o.groups.Summarize()

	products := make(map[string]bool)
	for _, p := range o.processed {
		products[p.ProductName] = true
	}
	log.Printf("Aggregated %d order lines: %d companies, %d distinct products",
		len(o.processed), o.groups.Len(), len(products))

	o.state = StateAggregated
	return o.summaries, nil
}

// Emit 은 업체코드 오름차순으로 각 renderer 에 문서를 넘깁니다.
// 한 업체의 출력 실패는 기록만 하고 다음 업체로 넘어갑니다.
func (o *Orchestrator) Emit(renderers ...CompanyRenderer) (*EmitReport, error) {
	if err := o.expect("emit", StateAggregated); err != nil {
		return nil, err
	}
	docs := o.groups.Documents()
	report := &EmitReport{Companies: len(docs)}

	for _, r := range renderers {
		log.Printf("Rendering %s for %d companies...", r.Name(), len(docs))
		for i, doc := range docs {
			code := doc.Summary.CompanyCode
			path, err := r.RenderCompany(doc)
			if err != nil {
				f := &RenderFailure{Renderer: r.Name(), CompanyCode: code, Err: err}
				log.Printf("WARN: [%d/%d] %v", i+1, len(docs), f)
				report.Failures = append(report.Failures, f)
				continue
			}
			log.Printf("  [%d/%d] %s: %d items -> %s", i+1, len(docs), code, len(doc.Orders), path)
			report.Artifacts = append(report.Artifacts, path)
		}
	}

	o.state = StateEmitted
	return report, nil
}

// FilterReport 는 필터 단계의 보고를 반환합니다.
func (o *Orchestrator) FilterReport() model.FilterReport {
	return o.filterReport
}

// Processed 는 매핑이 끝난 주문 행을 반환합니다. MAPPED 이후에만 호출할 수 있습니다.
func (o *Orchestrator) Processed() ([]model.ProcessedOrder, error) {
	if o.state < StateMapped {
		return nil, &StageError{Stage: "processed", Err: fmt.Errorf("%w: requires %s, current %s", ErrInvalidState, StateMapped, o.state)}
	}
	out := make([]model.ProcessedOrder, len(o.processed))
	copy(out, o.processed)
	return out, nil
}

// Groups 는 업체별 그룹을 반환합니다. AGGREGATED 이후에만 호출할 수 있습니다.
func (o *Orchestrator) Groups() (*aggregation.CompanyGroups, error) {
	if o.state < StateAggregated {
		return nil, &StageError{Stage: "groups", Err: fmt.Errorf("%w: requires %s, current %s", ErrInvalidState, StateAggregated, o.state)}
	}
	return o.groups, nil
}

// Unmapped 는 매핑되지 않은 납품처명 목록입니다. MAP 전에는 nil 입니다.
func (o *Orchestrator) Unmapped() []string {
	if o.resolver == nil {
		return nil
	}
	return o.resolver.Unmapped()
}

func wrapStage(stage string, err error) error {
	if _, ok := err.(*StageError); ok {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}
