package format

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) sql.NullTime {
	return sql.NullTime{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func qty(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestDate(t *testing.T) {
	if got := Date(day(2026, time.November, 25)); got != "11/25" {
		t.Fatalf("Date = %q, want 11/25", got)
	}
	if got := Date(day(2027, time.January, 5)); got != "01/05" {
		t.Fatalf("Date = %q, want zero padded 01/05", got)
	}
	if got := Date(sql.NullTime{}); got != "" {
		t.Fatalf("Date(missing) = %q, want empty", got)
	}
}

func TestQuantityDate(t *testing.T) {
	expiry := day(2026, time.November, 25)
	tests := []struct {
		name string
		q    decimal.NullDecimal
		d    sql.NullTime
		want string
	}{
		{"integer", qty("16"), expiry, "16(11/25)"},
		{"zero", qty("0"), expiry, ""},
		{"zero decimal", qty("0.000"), expiry, ""},
		{"missing quantity", decimal.NullDecimal{}, expiry, ""},
		{"missing date", qty("16"), sql.NullTime{}, ""},
		{"truncates", qty("7.9"), expiry, "7(11/25)"},
		{"truncates toward zero", qty("-2.7"), expiry, "-2(11/25)"},
		{"fraction below one", qty("0.4"), expiry, "0(11/25)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantityDate(tt.q, tt.d); got != tt.want {
				t.Fatalf("QuantityDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		7:       "7",
		999:     "999",
		1200:    "1,200",
		1234567: "1,234,567",
		-45000:  "-45,000",
		100000:  "100,000",
	}
	for in, want := range cases {
		if got := Quantity(in); got != want {
			t.Fatalf("Quantity(%d) = %q, want %q", in, got, want)
		}
	}
}
