package pricerange

import "testing"

func floatPtr(f float64) *float64 { return &f }

func TestNew_NoBounds(t *testing.T) {
	if _, ok := New(nil, nil); ok {
		t.Fatal("expected no range without bounds")
	}
}

func TestNew_CopiesBounds(t *testing.T) {
	lo := 10.0
	r, ok := New(&lo, nil)
	if !ok {
		t.Fatal("expected range")
	}
	lo = 99
	if v, _ := r.Min(); v != 10 {
		t.Errorf("Min() = %v, want 10", v)
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		price float64
		want  bool
	}{
		{"under inside", AtMost(500), 499.99, true},
		{"under boundary", AtMost(500), 500, true},
		{"under outside", AtMost(500), 500.01, false},
		{"over boundary", AtLeast(100), 100, true},
		{"over outside", AtLeast(100), 99, false},
		{"between inside", Between(100, 200), 150, true},
		{"between low", Between(100, 200), 50, false},
		{"between high", Between(100, 200), 250, false},
		{"inverted contains nothing", Between(200, 100), 150, false},
		{"degenerate", Between(100, 100), 100, true},
		{"zero max", AtMost(0), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.price); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestAnnotation(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{AtLeast(500), "Over $500"},
		{AtMost(1000), "Under $1000"},
		{Between(500, 1000), "Over $500 Under $1000"},
		{AtMost(0), "Under $0"},
		{AtMost(19.5), "Under $19.5"},
	}
	for _, tt := range tests {
		if got := tt.r.Annotation(); got != tt.want {
			t.Errorf("Annotation() = %q, want %q", got, tt.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{AtMost(500), `{"max":500}`},
		{AtLeast(20), `{"min":20}`},
		{Between(1, 2), `{"min":1,"max":2}`},
	}
	for _, tt := range tests {
		b, err := tt.r.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON: %v", err)
		}
		if string(b) != tt.want {
			t.Errorf("MarshalJSON() = %s, want %s", b, tt.want)
		}
	}
}
