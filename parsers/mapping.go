package parsers

import (
	"fmt"

	"bevauto/config"
	"bevauto/model"
)

// ParseMapping 은 업체명 시트(센터명 → 코드)를 읽습니다.
// 빈 이름이나 코드는 mapping.NewCompanyMapping 에서 경고와 함께 걸러집니다.
func ParseMapping(t *Table, src config.SourceConfig) ([]model.MappingEntry, error) {
	colName := src.Column(config.FieldName)
	colCode := src.Column(config.FieldCode)

	colIndex, err := getColIndex(t.Header, []string{colName, colCode})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Source, err)
	}

	var entries []model.MappingEntry
	for _, rec := range t.Rows {
		if isBlankRow(rec) {
			continue
		}
		get := rowGetter(colIndex, rec)
		entries = append(entries, model.MappingEntry{
			DisplayName:   get(colName),
			CanonicalCode: get(colCode),
		})
	}
	return entries, nil
}
