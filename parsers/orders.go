package parsers

import (
	"fmt"
	"log"

	"bevauto/config"
	"bevauto/model"
)

// ParseOrders 는 SAP 주문 시트를 OrderRecord 로 읽습니다.
// 수량을 읽을 수 없는 행은 경고 후 건너뛰고 skipped 로 셉니다.
// 빈 수량은 0 으로 두어 필터 단계에서 걸러지게 합니다.
func ParseOrders(t *Table, src config.SourceConfig) (records []model.OrderRecord, skipped int, err error) {
	colRecipient := src.Column(config.FieldRecipient)
	colProduct := src.Column(config.FieldProduct)
	colQuantity := src.Column(config.FieldQuantity)

	colIndex, err := getColIndex(t.Header, []string{colRecipient, colProduct, colQuantity})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", t.Source, err)
	}

	for i, rec := range t.Rows {
		line := t.FirstLine + i
		if isBlankRow(rec) {
			continue
		}
		get := rowGetter(colIndex, rec)

		qty, qErr := parseDecimal(get(colQuantity))
		if qErr != nil {
			log.Printf("WARN: %s line %d: 주문수량 %v (skipping)", t.Source, line, qErr)
			skipped++
			continue
		}
		quantity := 0
		if qty.Valid {
			if !qty.Decimal.Equal(qty.Decimal.Truncate(0)) {
				log.Printf("WARN: %s line %d: fractional quantity %s truncated", t.Source, line, qty.Decimal)
			}
			quantity = int(qty.Decimal.IntPart())
		}

		records = append(records, model.OrderRecord{
			RecipientRaw: get(colRecipient),
			ProductName:  get(colProduct),
			Quantity:     quantity,
			Line:         line,
		})
	}
	return records, skipped, nil
}
