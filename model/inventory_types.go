package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// InventoryLine 은 재고실사 정리표의 1행입니다.
// 아주(QuantityA)와 잔량(QuantityB)은 같은 소비기한을 공유합니다.
type InventoryLine struct {
	ProductCode string
	ProductName string
	QuantityA   decimal.NullDecimal
	QuantityB   decimal.NullDecimal
	ExpiryDate  sql.NullTime
	Line        int
}

// InventoryRecord 는 (제품코드, 제품명, 소비기한) 단위로 합쳐진 재고표 1행입니다.
// Placeholder 는 일반/날짜 열 자리로 항상 비어 있습니다.
type InventoryRecord struct {
	ProductCode string `db:"product_code" json:"productCode"`
	ProductName string `db:"product_name" json:"productName"`
	TokenA      string `db:"token_a" json:"tokenA"`
	Placeholder string `db:"placeholder" json:"placeholder"`
	TokenB      string `db:"token_b" json:"tokenB"`
}
