package tui

import "testing"

func TestShouldUpdateSize(t *testing.T) {
	type tc struct {
		newSize Size
		axis    Axis
		want    bool
	}

	old := Size{Height: 100, Width: 100}

	tests := map[string]tc{
		"height axis same values":      {newSize: old, axis: AxisHeight, want: false},
		"width axis same values":       {newSize: old, axis: AxisWidth, want: false},
		"both axes same values":        {newSize: old, axis: AxisBoth, want: false},
		"height axis height changed":   {newSize: Size{Height: 200, Width: 100}, axis: AxisHeight, want: true},
		"width axis width changed":     {newSize: Size{Height: 100, Width: 200}, axis: AxisWidth, want: true},
		"both axes width changed":      {newSize: Size{Height: 100, Width: 200}, axis: AxisBoth, want: true},
		"both axes height changed":     {newSize: Size{Height: 200, Width: 100}, axis: AxisBoth, want: true},
		"height axis only width moved": {newSize: Size{Height: 100, Width: 200}, axis: AxisHeight, want: false},
		"width axis only height moved": {newSize: Size{Height: 200, Width: 100}, axis: AxisWidth, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ShouldUpdateSize(old, tt.newSize, tt.axis); got != tt.want {
				t.Errorf("ShouldUpdateSize(%v, %v, %v) = %v, want %v", old, tt.newSize, tt.axis, got, tt.want)
			}
		})
	}
}

func TestShouldUpdateSize_BothAxesMatchesFieldInequality(t *testing.T) {
	values := []int{0, 1, 80, 150}
	for _, h1 := range values {
		for _, w1 := range values {
			for _, h2 := range values {
				for _, w2 := range values {
					a, b := Size{Height: h1, Width: w1}, Size{Height: h2, Width: w2}
					want := h1 != h2 || w1 != w2
					if got := ShouldUpdateSize(a, b, AxisBoth); got != want {
						t.Fatalf("ShouldUpdateSize(%v, %v) = %v, want %v", a, b, got, want)
					}
				}
			}
		}
	}
}

func TestProjectSize(t *testing.T) {
	type tc struct {
		axis Axis
		want Size
	}

	in := Size{Height: 200, Width: 100}

	tests := map[string]tc{
		"height keeps height and zeroes width": {axis: AxisHeight, want: Size{Height: 200}},
		"width keeps width and zeroes height":  {axis: AxisWidth, want: Size{Width: 100}},
		"both passes through":                  {axis: AxisBoth, want: in},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ProjectSize(in, tt.axis); got != tt.want {
				t.Errorf("ProjectSize(%v, %v) = %v, want %v", in, tt.axis, got, tt.want)
			}
		})
	}
}
