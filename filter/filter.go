package filter

import (
	"strings"

	"bevauto/model"
)

// DefaultSentinels 는 원본 엑셀이 끼워 넣는 합계 행의 제품명입니다.
var DefaultSentinels = []string{"TOTAL", "합계", "총계", "소계"}

// Sentinels 는 합계 행 판정용 집합입니다. 비교는 공백 제거 후 대소문자 무시입니다.
type Sentinels map[string]struct{}

// NewSentinels 는 values 로 집합을 만듭니다. nil 이면 DefaultSentinels 를 씁니다.
func NewSentinels(values []string) Sentinels {
	if values == nil {
		values = DefaultSentinels
	}
	s := make(Sentinels, len(values))
	for _, v := range values {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}

func (s Sentinels) Contains(value string) bool {
	_, ok := s[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

// Orders 는 수량 0 이하, 키가 빈 행, 합계 행을 제외합니다.
// 남은 행의 순서는 입력 순서 그대로입니다.
func Orders(records []model.OrderRecord, sentinels Sentinels) ([]model.OrderRecord, model.FilterReport) {
	report := model.FilterReport{Original: len(records)}
	kept := make([]model.OrderRecord, 0, len(records))
	for _, r := range records {
		switch {
		case r.Quantity <= 0:
			report.NonPositive++
		case strings.TrimSpace(r.ProductName) == "" || strings.TrimSpace(r.RecipientRaw) == "":
			report.BlankKey++
		case sentinels.Contains(r.ProductName):
			report.Sentinel++
		default:
			kept = append(kept, r)
		}
	}
	report.Retained = len(kept)
	report.Removed = report.Original - report.Retained
	return kept, report
}

// InventoryLines 는 제품명이 비었거나 합계 행인 재고 행을 제외합니다.
func InventoryLines(lines []model.InventoryLine, sentinels Sentinels) ([]model.InventoryLine, int) {
	kept := make([]model.InventoryLine, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.ProductName) == "" || sentinels.Contains(l.ProductName) {
			continue
		}
		kept = append(kept, l)
	}
	return kept, len(lines) - len(kept)
}
