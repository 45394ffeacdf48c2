package bento

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Size
		wantErr bool
	}{
		{"fixed", "120", Fixed(120), false},
		{"fixed px suffix", "120px", Fixed(120), false},
		{"fixed zero", "0", Fixed(0), false},
		{"fixed fractional", "12.5", Fixed(12.5), false},
		{"percent", "50%", Percent(50), false},
		{"percent over hundred", "150%", Percent(150), false},
		{"stretch default weight", "s", Stretch(1), false},
		{"stretch weighted", "2s", Stretch(2), false},
		{"stretch fractional weight", "0.5s", Stretch(0.5), false},
		{"hug", "hug", Hug(), false},
		{"whitespace tolerated", "  25%  ", Percent(25), false},
		{"negative fixed", "-10", Size{}, true},
		{"negative percent", "-5%", Size{}, true},
		{"zero stretch weight", "0s", Size{}, true},
		{"negative stretch weight", "-1s", Size{}, true},
		{"garbage", "banana", Size{}, true},
		{"percent without number", "%", Size{}, true},
		{"empty", "", Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSize(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidSizeSpec) {
					t.Errorf("ParseSize(%q) error = %v, want ErrInvalidSizeSpec", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSizeWeightDefault(t *testing.T) {
	if w := (Size{}).weight(); w != 1 {
		t.Errorf("zero Size weight = %v, want 1", w)
	}
	if w := Stretch(3).weight(); w != 3 {
		t.Errorf("Stretch(3) weight = %v, want 3", w)
	}
}

func TestAxisSpecClamp(t *testing.T) {
	tests := []struct {
		name string
		spec AxisSpec
		in   float32
		want float32
	}{
		{"no clamps", AxisSpec{}, 42, 42},
		{"min raises", AxisSpec{Min: 50}, 42, 50},
		{"max lowers", AxisSpec{Max: 20}, 42, 20},
		{"zero max means unbounded", AxisSpec{Max: 0}, 9999, 9999},
		{"negative floors at zero", AxisSpec{}, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.clamp(tt.in); got != tt.want {
				t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
