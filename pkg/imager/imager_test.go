/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package imager

/*****************************************************************************************************************/

import (
	"testing"
)

/*****************************************************************************************************************/

// blankFrame returns a width x width frame filled with black (0, 0, 0) BGR pixels.
func blankFrame(width int) *Frame {
	data := make([]byte, width*width*3)
	f, _ := NewFrame(width, width, data)
	return f
}

/*****************************************************************************************************************/

// paintBlob sets n pixels starting at (x, y) to bright white, filling row y rightwards to the
// frame's edge and continuing on the next row, simulating a small star blob of area n.
func paintBlob(f *Frame, x, y, n int) {
	set := func(px, py int) {
		i := (py*f.Width + px) * 3
		f.Data[i], f.Data[i+1], f.Data[i+2] = 255, 255, 255
	}
	placed := 0
	for dy := 0; y+dy < f.Height && placed < n; dy++ {
		for dx := 0; x+dx < f.Width && placed < n; dx++ {
			set(x+dx, y+dy)
			placed++
		}
	}
}

/*****************************************************************************************************************/

func TestExtractRejectsBlobsOutsideAreaBounds(t *testing.T) {
	f := blankFrame(100)
	paintBlob(f, 50, 50, 3)   // within [1, 20]
	paintBlob(f, 10, 10, 25)  // too large, should be rejected

	stars, err := Extract(f, DefaultThreshold, AreaBounds{Min: 1, Max: 20})
	if err == nil {
		t.Fatalf("expected ErrInsufficientStars with only one viable blob, got nil (stars=%+v)", stars)
	}

	for _, s := range stars {
		if s.PixelCount > 20 {
			t.Errorf("star %+v exceeds max area bound", s)
		}
	}
}

/*****************************************************************************************************************/

// Scenario S4: five 3-pixel blobs, three inside the inscribed circle, two outside - exactly three
// ObservedStars should survive.
func TestExtractFiltersBlobsOutsideFieldOfViewMask(t *testing.T) {
	const width = 100
	f := blankFrame(width)

	// Inside the inscribed circle (centered at (50, 50), radius 50):
	paintBlob(f, 50, 50, 3)
	paintBlob(f, 40, 60, 3)
	paintBlob(f, 60, 40, 3)

	// Outside the inscribed circle (corners are outside the circle inscribed in the square):
	paintBlob(f, 2, 2, 3)
	paintBlob(f, 96, 96, 3)

	// Only 3 stars survive the field-of-view mask, which is itself below the viable-star floor,
	// so Extract also reports ErrInsufficientStars alongside the filtered slice.
	stars, err := Extract(f, DefaultThreshold, DefaultAreaBounds)
	if err != ErrInsufficientStars {
		t.Fatalf("Extract() error = %v; want ErrInsufficientStars", err)
	}

	if len(stars) != 3 {
		t.Fatalf("Extract() returned %d stars; want 3", len(stars))
	}
}

/*****************************************************************************************************************/

func TestExtractSortsDescendingByPixelCount(t *testing.T) {
	f := blankFrame(100)
	paintBlob(f, 20, 20, 2)
	paintBlob(f, 30, 30, 10)
	paintBlob(f, 50, 50, 5)
	paintBlob(f, 70, 70, 15)

	stars, err := Extract(f, DefaultThreshold, DefaultAreaBounds)
	if err != nil {
		t.Fatalf("Extract() returned unexpected error: %v", err)
	}

	for i := 1; i < len(stars); i++ {
		if stars[i-1].PixelCount < stars[i].PixelCount {
			t.Fatalf("stars not sorted descending at index %d: %+v", i, stars)
		}
	}
}

/*****************************************************************************************************************/

func TestExtractReturnsInsufficientStarsBelowFour(t *testing.T) {
	f := blankFrame(100)
	paintBlob(f, 10, 10, 3)
	paintBlob(f, 30, 30, 3)
	paintBlob(f, 50, 50, 3)

	_, err := Extract(f, DefaultThreshold, DefaultAreaBounds)
	if err != ErrInsufficientStars {
		t.Fatalf("Extract() error = %v; want ErrInsufficientStars", err)
	}
}

/*****************************************************************************************************************/

func TestNewFrameRejectsMismatchedDimensions(t *testing.T) {
	if _, err := NewFrame(10, 20, make([]byte, 10*20*3)); err == nil {
		t.Fatal("expected error for non-square frame")
	}
	if _, err := NewFrame(10, 10, make([]byte, 5)); err == nil {
		t.Fatal("expected error for mismatched data length")
	}
}

/*****************************************************************************************************************/
