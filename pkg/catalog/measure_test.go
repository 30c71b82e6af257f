package catalog

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseMM(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		present bool
	}{
		{"42", 42, true},
		{" 48.5 ", 48.5, true},
		{"0", 0, true},
		{"1e1", 10, true},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"42mm", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMM(tt.in).Get()
			if ok != tt.present || got != tt.want {
				t.Errorf("ParseMM(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.present)
			}
		})
	}
}

func TestMillimetersPositive(t *testing.T) {
	if MM(0).Positive() {
		t.Error("MM(0).Positive() = true, want false")
	}
	if !MM(0).Present() {
		t.Error("MM(0).Present() = false, want true")
	}
	if (Millimeters{}).Present() {
		t.Error("zero value Present() = true, want false")
	}
	if MM(math.NaN()).Present() {
		t.Error("MM(NaN).Present() = true, want false")
	}
}

func TestMillimetersString(t *testing.T) {
	tests := []struct {
		m    Millimeters
		want string
	}{
		{MM(50), "50"},
		{MM(48.5), "48.5"},
		{MM(12.25), "12.25"},
		{Millimeters{}, ""},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMillimetersJSON(t *testing.T) {
	type doc struct {
		A Millimeters `json:"a"`
		B Millimeters `json:"b"`
		C Millimeters `json:"c"`
	}

	data, err := json.Marshal(doc{A: MM(42), B: Millimeters{}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if got, want := string(data), `{"a":42,"b":null,"c":null}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var d doc
	if err := json.Unmarshal([]byte(`{"a":"48.5","b":null,"c":"oops"}`), &d); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if v, ok := d.A.Get(); !ok || v != 48.5 {
		t.Errorf("A = %v, %v; want 48.5, true", v, ok)
	}
	if d.B.Present() || d.C.Present() {
		t.Error("null and unparseable values should be absent")
	}
}
