package parsers

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Table 은 시트 또는 CSV 의 헤더 아래 데이터 행입니다.
// FirstLine 은 Rows[0] 의 원본 행 번호(1부터)입니다.
type Table struct {
	Source    string
	Header    []string
	Rows      [][]string
	FirstLine int
}

// SkipBOM 은 UTF-8 BOM 을 건너뜁니다. 엑셀에서 저장한 CSV 는 BOM 이 붙습니다.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom := []byte{0xEF, 0xBB, 0xBF}
	peeked, err := br.Peek(3)
	if err != nil {
		return br
	}
	for i, b := range bom {
		if peeked[i] != b {
			return br
		}
	}
	br.Discard(3)
	return br
}

// getColIndex 는 헤더 이름으로 열 인덱스를 구합니다. 필수 헤더가 없으면 오류입니다.
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		name := cleanText(colName)
		if _, exists := colIndex[name]; !exists {
			colIndex[name] = i
		}
	}
	for _, req := range required {
		if _, ok := colIndex[cleanText(req)]; !ok {
			return nil, fmt.Errorf("필수 헤더를 찾을 수 없습니다: %s", req)
		}
	}
	return colIndex, nil
}

// cleanText 는 앞뒤 공백을 지우고 한글을 NFC 로 맞춥니다.
// macOS 에서 저장된 파일은 자모가 분리된 NFD 로 들어오는 경우가 있습니다.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// parseDecimal 은 수량 셀을 읽습니다. 빈 셀은 Valid=false 입니다.
func parseDecimal(s string) (decimal.NullDecimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("숫자가 아닙니다: %q", s)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// parseDate 는 소비기한 셀을 읽습니다. 엑셀 일련번호와 문자열 날짜를 모두 받습니다.
func parseDate(s string) (sql.NullTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullTime{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return sql.NullTime{Time: t, Valid: true}, nil
		}
	}
	return sql.NullTime{}, fmt.Errorf("날짜 형식이 아닙니다: %q", s)
}

// rowGetter 는 행에서 열 이름으로 값을 꺼내는 함수를 만듭니다.
func rowGetter(colIndex map[string]int, rec []string) func(col string) string {
	return func(col string) string {
		if idx, ok := colIndex[cleanText(col)]; ok && idx < len(rec) {
			return cleanText(rec[idx])
		}
		return ""
	}
}

func isBlankRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
