package mandel

import "testing"

func TestNewPlaneClassic(t *testing.T) {
	p := NewPlane(Classic, Width)

	if p.Width != 12288 {
		t.Errorf("Width = %d, want 12288", p.Width)
	}
	if p.Resolution != 4096 {
		t.Errorf("Resolution = %v, want 4096", p.Resolution)
	}
	if p.Height != 8192 {
		t.Errorf("Height = %d, want 8192", p.Height)
	}
}

func TestPlanePoint(t *testing.T) {
	p := NewPlane(Classic, 6)

	tests := []struct {
		x, y int
		want complex128
	}{
		{0, 0, complex(-2, -1)},
		{2, 0, complex(-1, -1)},
		{5, 3, complex(0.5, 0.5)},
		{4, 2, complex(0, 0)},
	}
	for _, tt := range tests {
		if got := p.Point(tt.x, tt.y); got != tt.want {
			t.Errorf("Point(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if p.Height != 4 {
		t.Errorf("Height = %d, want 4", p.Height)
	}
}
