package aggregation

import (
	"sort"

	"bevauto/model"
)

// CompanyGroups 는 업체코드별로 묶인 주문 행입니다.
// 그룹 안의 순서는 필터링된 입력 순서 그대로입니다.
type CompanyGroups struct {
	order  []string
	byCode map[string][]model.ProcessedOrder
}

// GroupByCompany 는 주문 행을 업체코드로 묶습니다.
func GroupByCompany(orders []model.ProcessedOrder) *CompanyGroups {
	g := &CompanyGroups{byCode: make(map[string][]model.ProcessedOrder)}
	for _, o := range orders {
		if _, exists := g.byCode[o.CompanyCode]; !exists {
			g.order = append(g.order, o.CompanyCode)
		}
		g.byCode[o.CompanyCode] = append(g.byCode[o.CompanyCode], o)
	}
	return g
}

// Len 은 업체 수입니다.
func (g *CompanyGroups) Len() int {
	return len(g.order)
}

// Codes 는 업체코드를 처음 나온 순서대로 반환합니다.
func (g *CompanyGroups) Codes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// OrdersFor 는 해당 업체의 주문 행을 반환합니다. 없는 코드면 빈 슬라이스입니다.
func (g *CompanyGroups) OrdersFor(code string) []model.ProcessedOrder {
	rows := g.byCode[code]
	out := make([]model.ProcessedOrder, len(rows))
	copy(out, rows)
	return out
}

// Summarize 는 업체별 집계를 업체코드 오름차순으로 반환합니다.
// 제품종류수는 행 수이고 (같은 제품이 두 줄이면 2), 업체명_원본은 처음 나온 값입니다.
func (g *CompanyGroups) Summarize() []model.CompanySummary {
	result := make([]model.CompanySummary, 0, len(g.order))
	for _, code := range g.order {
		result = append(result, summarize(code, g.byCode[code]))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CompanyCode < result[j].CompanyCode
	})
	return result
}

// Documents 는 출력용으로 업체별 집계와 주문 행을 묶어 업체코드 오름차순으로 반환합니다.
func (g *CompanyGroups) Documents() []model.CompanyDocument {
	summaries := g.Summarize()
	docs := make([]model.CompanyDocument, 0, len(summaries))
	for _, s := range summaries {
		docs = append(docs, model.CompanyDocument{
			Summary: s,
			Orders:  g.OrdersFor(s.CompanyCode),
		})
	}
	return docs
}

func summarize(code string, rows []model.ProcessedOrder) model.CompanySummary {
	s := model.CompanySummary{CompanyCode: code}
	for i, o := range rows {
		if i == 0 {
			s.CompanyNameOriginal = o.CompanyNameOriginal
		}
		s.ItemTypeCount++
		s.TotalQuantity += o.Quantity
	}
	return s
}
