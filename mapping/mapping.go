package mapping

import (
	"log"
	"strings"

	"bevauto/model"
)

// CompanyMapping 은 센터명(표시명)과 업체코드의 양방향 매핑입니다.
// 실행 중에는 변경되지 않습니다.
type CompanyMapping struct {
	codeByName map[string]string
	nameByCode map[string]string
}

// NewCompanyMapping 은 업체명 시트의 행으로 매핑을 만듭니다.
// 같은 센터명이 여러 번 나오면 마지막 행이 이깁니다.
func NewCompanyMapping(entries []model.MappingEntry) *CompanyMapping {
	m := &CompanyMapping{
		codeByName: make(map[string]string, len(entries)),
		nameByCode: make(map[string]string, len(entries)),
	}
	skipped := 0
	for _, e := range entries {
		name := strings.TrimSpace(e.DisplayName)
		code := strings.TrimSpace(e.CanonicalCode)
		if name == "" || code == "" {
			skipped++
			continue
		}
		if prev, ok := m.codeByName[name]; ok && prev != code {
			log.Printf("WARN: duplicate company name %q (code %s replaced by %s)", name, prev, code)
		}
		m.codeByName[name] = code
		if _, ok := m.nameByCode[code]; !ok {
			m.nameByCode[code] = name
		}
	}
	if skipped > 0 {
		log.Printf("WARN: %d mapping rows skipped (blank name or code)", skipped)
	}
	return m
}

// Code 는 센터명에 대응하는 업체코드를 반환합니다.
func (m *CompanyMapping) Code(displayName string) (string, bool) {
	if m == nil {
		return "", false
	}
	code, ok := m.codeByName[displayName]
	return code, ok
}

// DisplayName 은 업체코드로 처음 등록된 센터명을 반환합니다.
func (m *CompanyMapping) DisplayName(code string) (string, bool) {
	if m == nil {
		return "", false
	}
	name, ok := m.nameByCode[code]
	return name, ok
}

func (m *CompanyMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.codeByName)
}

// Resolver 는 매핑 조회와 매핑 실패 기록을 담당합니다.
type Resolver struct {
	mapping  *CompanyMapping
	missed   map[string]bool
	unmapped []string
}

// NewResolver 는 Resolver 를 만듭니다. mapping 이 nil 이면 모든 조회가 실패로 처리됩니다.
func NewResolver(mapping *CompanyMapping) *Resolver {
	return &Resolver{
		mapping: mapping,
		missed:  make(map[string]bool),
	}
}

// Resolve 는 센터명을 업체코드로 변환합니다.
// 매핑에 없으면 센터명을 그대로 반환하고, 처음 보는 이름이면 기록합니다.
func (r *Resolver) Resolve(displayName string) string {
	if code, ok := r.mapping.Code(displayName); ok {
		return code
	}
	if !r.missed[displayName] {
		r.missed[displayName] = true
		r.unmapped = append(r.unmapped, displayName)
	}
	return displayName
}

// Unmapped 는 매핑되지 않은 센터명 목록을 처음 나온 순서대로 반환합니다.
func (r *Resolver) Unmapped() []string {
	out := make([]string, len(r.unmapped))
	copy(out, r.unmapped)
	return out
}

// MapOrder 는 필터를 통과한 주문 행을 ProcessedOrder 로 변환합니다.
func (r *Resolver) MapOrder(rec model.OrderRecord) model.ProcessedOrder {
	return model.ProcessedOrder{
		CompanyCode:         r.Resolve(rec.RecipientRaw),
		CompanyNameOriginal: rec.RecipientRaw,
		ProductName:         rec.ProductName,
		Quantity:            rec.Quantity,
	}
}
