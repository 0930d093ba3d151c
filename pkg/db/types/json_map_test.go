package types

import "testing"

func TestJSONMapValueAndScan(t *testing.T) {
	payload := JSONMap{"headline": "Back to school", "max_banner_count": float64(3)}

	val, err := payload.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded JSONMap
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if decoded["headline"] != "Back to school" {
		t.Fatalf("unexpected headline %v", decoded["headline"])
	}
	if decoded["max_banner_count"] != float64(3) {
		t.Fatalf("unexpected count %v", decoded["max_banner_count"])
	}
}

func TestJSONMapScanNil(t *testing.T) {
	var m JSONMap
	if err := m.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil map, got %#v", m)
	}
}

func TestJSONMapNilValueEncodesEmptyObject(t *testing.T) {
	var m JSONMap
	val, err := m.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(val.([]byte)) != "{}" {
		t.Fatalf("expected empty object, got %s", val)
	}
}
