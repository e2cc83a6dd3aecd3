package shared

import (
	"testing"
	"time"
)

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("", false)
	if err != nil || got != nil {
		t.Fatalf("empty date should be nil, got %v %v", got, err)
	}
	from, err := ParseOptionalDate("2026-03-01", false)
	if err != nil {
		t.Fatalf("parse date failed: %v", err)
	}
	if !from.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from date: %v", from)
	}
	to, err := ParseOptionalDate("2026-03-01", true)
	if err != nil {
		t.Fatalf("parse end date failed: %v", err)
	}
	if to.Day() != 1 || to.Hour() != 23 {
		t.Fatalf("end date should be end of day, got %v", to)
	}
	if _, err := ParseOptionalDate("01/03/2026", false); err == nil {
		t.Fatalf("unsupported format should fail")
	}
}

func TestParseOptionalDecimal(t *testing.T) {
	got, err := ParseOptionalDecimal(" 120.5 ")
	if err != nil {
		t.Fatalf("parse decimal failed: %v", err)
	}
	if got.String() != "120.5" {
		t.Fatalf("unexpected decimal %s", got.String())
	}
	if _, err := ParseOptionalDecimal("abc"); err == nil {
		t.Fatalf("invalid decimal should fail")
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 20, 41)
	if p.TotalPage != 3 || p.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}
