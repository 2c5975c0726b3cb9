package format

import (
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Date 는 소비기한을 "MM/DD" 로 변환합니다. 연도는 표시하지 않습니다.
// 예: 2026-11-25 -> 11/25
func Date(d sql.NullTime) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("01/02")
}

// QuantityDate 는 수량과 소비기한을 "수량(MM/DD)" 토큰으로 만듭니다.
// 수량이 없거나 0 이면, 또는 날짜가 없으면 빈 문자열입니다.
// 소수 수량은 0 방향으로 버립니다 (반올림하지 않음).
func QuantityDate(q decimal.NullDecimal, d sql.NullTime) string {
	if !q.Valid || q.Decimal.IsZero() {
		return ""
	}
	date := Date(d)
	if date == "" {
		return ""
	}
	return strconv.FormatInt(q.Decimal.IntPart(), 10) + "(" + date + ")"
}

var printer = message.NewPrinter(language.Korean)

// Quantity 는 정수 수량을 천 단위 구분 기호와 함께 표시합니다. 예: 1200 -> "1,200"
func Quantity(n int) string {
	return printer.Sprintf("%d", n)
}
