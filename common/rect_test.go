package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"full_overlap", Rect{X: 15, Y: 15, Width: 5, Height: 5}, true},
		{"partial_overlap", Rect{X: 25, Y: 25, Width: 20, Height: 20}, true},
		{"disjoint", Rect{X: 100, Y: 100, Width: 5, Height: 5}, false},
		{"touching_right_edge", Rect{X: 30, Y: 10, Width: 10, Height: 10}, false},
		{"touching_bottom_edge", Rect{X: 10, Y: 30, Width: 10, Height: 10}, false},
		{"one_pixel_in", Rect{X: 29, Y: 29, Width: 10, Height: 10}, true},
		{"contains_base", Rect{X: 0, Y: 0, Width: 100, Height: 100}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("symmetric Intersects(%+v) = %v, want %v", base, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1,0,10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11,0,10) = %v", got)
	}
}
