package parsers

import (
	"fmt"
	"log"

	"bevauto/config"
	"bevauto/model"
)

// ParseInventory 는 재고실사 정리표를 읽습니다.
// 아주/잔량/소비기한은 비어 있어도 됩니다. 읽을 수 없는 값이 있는 행은 건너뜁니다.
func ParseInventory(t *Table, src config.SourceConfig) (lines []model.InventoryLine, skipped int, err error) {
	colCode := src.Column(config.FieldCode)
	colName := src.Column(config.FieldName)
	colA := src.Column(config.FieldQuantityA)
	colB := src.Column(config.FieldQuantityB)
	colExpiry := src.Column(config.FieldExpiry)

	colIndex, err := getColIndex(t.Header, []string{colCode, colName, colA, colB, colExpiry})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", t.Source, err)
	}

	for i, rec := range t.Rows {
		line := t.FirstLine + i
		if isBlankRow(rec) {
			continue
		}
		get := rowGetter(colIndex, rec)

		qtyA, errA := parseDecimal(get(colA))
		qtyB, errB := parseDecimal(get(colB))
		expiry, errE := parseDate(get(colExpiry))
		if errA != nil || errB != nil || errE != nil {
			log.Printf("WARN: %s line %d: invalid value (skipping): %v", t.Source, line, firstErr(errA, errB, errE))
			skipped++
			continue
		}

		lines = append(lines, model.InventoryLine{
			ProductCode: get(colCode),
			ProductName: get(colName),
			QuantityA:   qtyA,
			QuantityB:   qtyB,
			ExpiryDate:  expiry,
			Line:        line,
		})
	}
	return lines, skipped, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
