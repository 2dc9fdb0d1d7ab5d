package retro

import "testing"

func TestResolveDisplayScale(t *testing.T) {
	tests := []struct {
		name               string
		displayW, displayH int
		width, height      int
		ratio              float64
		want               int
	}{
		{"fits height", 1920, 1080, 200, 150, 0.9, 6},
		{"default ratio", 1920, 1080, 160, 120, DisplayRatio, 6},
		{"fits width", 1000, 2000, 100, 100, 1, 10},
		{"exact", 800, 600, 400, 300, 1, 2},
		{"floor", 800, 600, 400, 300, 0.99, 1},
		{"canvas larger than display", 640, 480, 1280, 960, 0.75, 1},
		{"tiny ratio", 1920, 1080, 16, 16, 0.01, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDisplayScale(tt.displayW, tt.displayH, tt.width, tt.height, tt.ratio)
			if got != tt.want {
				t.Errorf("ResolveDisplayScale(%d, %d, %d, %d, %v) = %d, want %d",
					tt.displayW, tt.displayH, tt.width, tt.height, tt.ratio, got, tt.want)
			}
		})
	}
}

// TestResolveDisplayScaleBounds checks the scale is at least 1 and the
// window never exceeds ratio of the display unless the floor of 1 applies.
func TestResolveDisplayScaleBounds(t *testing.T) {
	const displayW, displayH = 1366, 768
	for _, ratio := range []float64{0.1, 0.5, DisplayRatio, 1} {
		for w := 1; w <= 2048; w += 37 {
			for h := 1; h <= 2048; h += 53 {
				s := ResolveDisplayScale(displayW, displayH, w, h, ratio)
				if s < 1 {
					t.Fatalf("scale %d < 1 for %dx%d ratio %v", s, w, h, ratio)
				}
				maxW, maxH := float64(displayW)*ratio+1e-9, float64(displayH)*ratio+1e-9
				if s > 1 && (float64(w*s) > maxW || float64(h*s) > maxH) {
					t.Fatalf("window %dx%d exceeds ratio %v of display", w*s, h*s, ratio)
				}
			}
		}
	}
}
