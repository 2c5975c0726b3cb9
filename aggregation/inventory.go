package aggregation

import (
	"sort"
	"strings"
	"time"

	"bevauto/format"
	"bevauto/model"
)

// inventoryKey 는 (제품코드, 제품명, 소비기한) 복합 키입니다. 날짜는 정확히 일치해야 합니다.
type inventoryKey struct {
	productCode string
	productName string
	hasExpiry   bool
	expiry      time.Time
}

type inventoryGroup struct {
	key     inventoryKey
	tokensA []string
	tokensB []string
}

// Consolidate 는 재고실사 행을 (제품코드, 제품명, 소비기한) 으로 묶어 재고표 행을 만듭니다.
// 같은 그룹의 토큰은 행 순서대로 공백 하나로 연결하고, 아주/잔량이 모두 빈 행은 버립니다.
func Consolidate(lines []model.InventoryLine) []model.InventoryRecord {
	groups := make(map[inventoryKey]*inventoryGroup)
	var keys []inventoryKey

	for _, l := range lines {
		key := inventoryKey{
			productCode: l.ProductCode,
			productName: l.ProductName,
			hasExpiry:   l.ExpiryDate.Valid,
		}
		if l.ExpiryDate.Valid {
			key.expiry = l.ExpiryDate.Time.UTC().Round(0)
		}

		g, ok := groups[key]
		if !ok {
			g = &inventoryGroup{key: key}
			groups[key] = g
			keys = append(keys, key)
		}
		if tok := format.QuantityDate(l.QuantityA, l.ExpiryDate); tok != "" {
			g.tokensA = append(g.tokensA, tok)
		}
		if tok := format.QuantityDate(l.QuantityB, l.ExpiryDate); tok != "" {
			g.tokensB = append(g.tokensB, tok)
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.productCode != b.productCode {
			return a.productCode < b.productCode
		}
		if a.productName != b.productName {
			return a.productName < b.productName
		}
		if a.hasExpiry != b.hasExpiry {
			return a.hasExpiry
		}
		return a.expiry.Before(b.expiry)
	})

	result := make([]model.InventoryRecord, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		if len(g.tokensA) == 0 && len(g.tokensB) == 0 {
			continue
		}
		result = append(result, model.InventoryRecord{
			ProductCode: key.productCode,
			ProductName: key.productName,
			TokenA:      strings.Join(g.tokensA, " "),
			TokenB:      strings.Join(g.tokensB, " "),
		})
	}
	return result
}
