package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound 는 지정한 시트가 통합 문서에 없을 때의 오류입니다.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet 는 엑셀 시트를 Table 로 읽습니다. sheet 가 비어 있으면 첫 시트를 씁니다.
// 날짜는 일련번호 그대로 받기 위해 RawCellValue 로 읽습니다.
func ReadSheet(f *excelize.File, source, sheet string, headerRow int) (*Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: 통합 문서에 시트가 없습니다", ErrSheetNotFound)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return newTable(source+"#"+sheet, rows, headerRow)
}

// ReadCSV 는 CSV 를 Table 로 읽습니다. 문자 코드 변환은 호출하는 쪽에서 끝낸 상태여야 합니다.
func ReadCSV(r io.Reader, source string, headerRow int) (*Table, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	line := 0
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: %s line %d read error (skipping): %v", source, line, err)
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, rec)
	}
	return newTable(source, rows, headerRow)
}

func newTable(source string, rows [][]string, headerRow int) (*Table, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	if len(rows) < headerRow {
		return nil, fmt.Errorf("%s: 헤더 행(%d행)이 없습니다. 파일이 비어 있습니다", source, headerRow)
	}
	return &Table{
		Source:    source,
		Header:    rows[headerRow-1],
		Rows:      rows[headerRow:],
		FirstLine: headerRow + 1,
	}, nil
}
