package model

// OrderRecord 는 SAP 주문 파일의 1행입니다.
// Quantity 는 반품/정정 행에서 음수가 될 수 있습니다.
type OrderRecord struct {
	RecipientRaw string `json:"recipientRaw"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	Line         int    `json:"line,omitempty"` // 원본 파일의 행 번호 (로그용)
}

// ProcessedOrder 는 필터링과 업체코드 매핑을 마친 주문 행입니다.
// CompanyCode 는 매핑에 실패하면 원본 납품처명이 그대로 들어갑니다.
type ProcessedOrder struct {
	CompanyCode         string `db:"company_code" json:"companyCode"`
	CompanyNameOriginal string `db:"company_name_original" json:"companyNameOriginal"`
	ProductName         string `db:"product_name" json:"productName"`
	Quantity            int    `db:"quantity" json:"quantity"`
}

// CompanySummary 는 업체코드별 집계 결과입니다.
type CompanySummary struct {
	CompanyCode         string `db:"company_code" json:"companyCode"`
	CompanyNameOriginal string `db:"company_name_original" json:"companyNameOriginal"`
	ItemTypeCount       int    `db:"item_type_count" json:"itemTypeCount"`
	TotalQuantity       int    `db:"total_quantity" json:"totalQuantity"`
}

// CompanyDocument 는 업체 1곳의 주문서/라벨 출력에 필요한 데이터입니다.
type CompanyDocument struct {
	Summary CompanySummary
	Orders  []ProcessedOrder
}

// FilterReport 는 필터 단계의 건수 보고입니다.
type FilterReport struct {
	Original    int `json:"original"`
	Removed     int `json:"removed"`
	NonPositive int `json:"nonPositive"` // 수량 0 이하
	BlankKey    int `json:"blankKey"`    // 납품처명 또는 제품명이 빈 행
	Sentinel    int `json:"sentinel"`    // 합계 행
	Retained    int `json:"retained"`
}
