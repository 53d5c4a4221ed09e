package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 15)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-09-15"` {
		t.Errorf("got %s, want \"2026-09-15\"", data)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Errorf("round trip changed date: got %s, want %s", parsed, d)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/09/2026"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateUnmarshalEmptyIsZero(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !d.IsZero() {
		t.Error("empty string should produce the zero date")
	}
}

func TestDateBefore(t *testing.T) {
	earlier := NewDate(2026, time.January, 1)
	later := NewDate(2026, time.January, 2)

	if !earlier.Before(later) {
		t.Error("earlier.Before(later) = false")
	}
	if later.Before(earlier) {
		t.Error("later.Before(earlier) = true")
	}
	if earlier.Before(earlier) {
		t.Error("a date is not before itself")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if d.String() != "2026-03-03" {
		t.Errorf("got %s, want 2026-03-03", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
