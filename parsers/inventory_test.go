package parsers

import (
	"testing"
	"time"

	"bevauto/config"
)

func TestParseInventory(t *testing.T) {
	table := &Table{
		Header:    []string{"제품코드", "Brand Name", "아주", "잔량", "소비기한"},
		FirstLine: 3,
		Rows: [][]string{
			{"A1", "Cola", "5", "", "2026-11-25"},
			{"A1", "Cola", "10", "2.5", "46351"},
			{"A2", "Soda", "", "", ""},
			{"A3", "Tea", "x", "", "2026-11-25"},
			{"A4", "Water", "1", "", "someday"},
		},
	}
	lines, skipped, err := ParseInventory(table, config.Default().InventorySource)
	if err != nil {
		t.Fatalf("ParseInventory: %v", err)
	}
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}

	first := lines[0]
	if first.Line != 3 || !first.QuantityA.Valid || first.QuantityA.Decimal.IntPart() != 5 || first.QuantityB.Valid {
		t.Fatalf("first line = %+v", first)
	}
	want := time.Date(2026, 11, 25, 0, 0, 0, 0, time.UTC)
	if !first.ExpiryDate.Valid || !first.ExpiryDate.Time.Equal(want) {
		t.Fatalf("expiry = %v, want %v", first.ExpiryDate, want)
	}

	// 46351 is the Excel serial for 2026-11-25
	serial := lines[1].ExpiryDate
	if !serial.Valid || serial.Time.Format("2006-01-02") != "2026-11-25" {
		t.Fatalf("serial expiry = %v", serial)
	}
	if lines[1].QuantityB.Decimal.String() != "2.5" {
		t.Fatalf("QuantityB = %s", lines[1].QuantityB.Decimal)
	}

	empty := lines[2]
	if empty.QuantityA.Valid || empty.QuantityB.Valid || empty.ExpiryDate.Valid {
		t.Fatalf("empty cells should stay empty: %+v", empty)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026/11/25", "2026-11-25", true},
		{"2026.1.5", "2026-01-05", true},
		{"20261125", "2026-11-25", true},
		{"2026-11-25 00:00:00", "2026-11-25", true},
		{"", "", true},
		{"11월", "", false},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("parseDate(%q) err = %v", tt.in, err)
		}
		if got.Valid && got.Time.Format("2006-01-02") != tt.want {
			t.Fatalf("parseDate(%q) = %v, want %s", tt.in, got.Time, tt.want)
		}
	}
}
