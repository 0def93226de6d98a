/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package imager thresholds a captured night-sky frame and extracts the observed-star centroids
// described in §4.3: grayscale conversion, fixed-luminance threshold, 8-connectivity connected
// component labeling, field-of-view masking, and brightness ordering.
package imager

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"
	"sort"
)

/*****************************************************************************************************************/

// ErrInsufficientStars is returned when fewer than 4 viable observed stars survive extraction;
// the caller should move the camera to a new frame (§7).
var ErrInsufficientStars = errors.New("imager: fewer than 4 viable stars in frame")

/*****************************************************************************************************************/

// Frame is an 8-bit BGR image of fixed square resolution, row-major, 3 bytes per pixel
// (channel order B, G, R), matching the byte layout a captured camera frame is delivered in.
type Frame struct {
	Width  int
	Height int
	Data   []byte
}

/*****************************************************************************************************************/

// NewFrame validates that data has exactly width*height*3 bytes and width == height.
func NewFrame(width, height int, data []byte) (*Frame, error) {
	if width != height {
		return nil, fmt.Errorf("imager: frame must be square, got %dx%d", width, height)
	}
	if len(data) != width*height*3 {
		return nil, fmt.Errorf("imager: frame data length %d does not match %dx%dx3", len(data), width, height)
	}
	return &Frame{Width: width, Height: height, Data: data}, nil
}

/*****************************************************************************************************************/

// at returns the (B, G, R) byte triple at pixel (x, y).
func (f *Frame) at(x, y int) (b, g, r byte) {
	i := (y*f.Width + x) * 3
	return f.Data[i], f.Data[i+1], f.Data[i+2]
}

/*****************************************************************************************************************/

// luminance converts a BGR frame to single-channel 8-bit luminance using the standard
// BT.601 coefficients.
func (f *Frame) luminance() []byte {
	gray := make([]byte, f.Width*f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			b, g, r := f.at(x, y)
			y601 := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			gray[y*f.Width+x] = byte(y601 + 0.5)
		}
	}
	return gray
}

/*****************************************************************************************************************/

// threshold produces a binary mask, true standing for 255 (foreground) and false for 0: pixels
// strictly brighter than t are foreground.
func threshold(gray []byte, t byte) []bool {
	mask := make([]bool, len(gray))
	for i, v := range gray {
		mask[i] = v > t
	}
	return mask
}

/*****************************************************************************************************************/

// component is one connected foreground blob: its area and the sums of its pixels' x and y
// coordinates, from which Extract derives its centroid.
type component struct {
	area   int
	sumX   int
	sumY   int
}

/*****************************************************************************************************************/

// connectedComponents performs 8-connectivity labeling over mask (width x height), returning one
// component per connected foreground region.
func connectedComponents(mask []bool, width, height int) []component {
	visited := make([]bool, len(mask))
	var components []component

	neighborOffsets := [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	stack := make([]int, 0, 64)

	for start := 0; start < len(mask); start++ {
		if !mask[start] || visited[start] {
			continue
		}

		visited[start] = true
		stack = append(stack[:0], start)

		c := component{}

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x, y := idx%width, idx/width

			c.area++
			c.sumX += x
			c.sumY += y

			for _, off := range neighborOffsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				nidx := ny*width + nx
				if mask[nidx] && !visited[nidx] {
					visited[nidx] = true
					stack = append(stack, nidx)
				}
			}
		}

		components = append(components, c)
	}

	return components
}

/*****************************************************************************************************************/

// ObservedStar is a single extracted star: its component area (used as a brightness proxy) and
// its centroid position in pixel coordinates.
type ObservedStar struct {
	PixelCount int
	X          float64
	Y          float64
}

/*****************************************************************************************************************/

// AreaBounds is the inclusive [min, max] connected-component area a blob must fall within to be
// retained as a candidate star (§4.3 step 3).
type AreaBounds struct {
	Min int
	Max int
}

/*****************************************************************************************************************/

// DefaultAreaBounds matches the reference implementation's tuning.
var DefaultAreaBounds = AreaBounds{Min: 1, Max: 20}

/*****************************************************************************************************************/

// DefaultThreshold matches the reference implementation's tuning.
const DefaultThreshold = 68

/*****************************************************************************************************************/

// insideInscribedCircle reports whether (x, y) lies within the inscribed circle of radius W/2
// centered at (W/2, W/2), the field-of-view mask (§4.3 step 4).
func insideInscribedCircle(x, y float64, width int) bool {
	center := float64(width) / 2
	radius := center
	dx, dy := x-center, y-center
	return dx*dx+dy*dy <= radius*radius
}

/*****************************************************************************************************************/

// Extract thresholds frame at luminance t, runs 8-connectivity connected-component labeling,
// retains components within areaBounds whose centroid lies inside the field-of-view mask, and
// returns them sorted descending by pixel count (brightness proxy). Returns ErrInsufficientStars
// if fewer than 4 stars survive.
func Extract(frame *Frame, t byte, areaBounds AreaBounds) ([]ObservedStar, error) {
	gray := frame.luminance()
	mask := threshold(gray, t)
	components := connectedComponents(mask, frame.Width, frame.Height)

	stars := make([]ObservedStar, 0, len(components))

	for _, c := range components {
		if c.area < areaBounds.Min || c.area > areaBounds.Max {
			continue
		}

		cx := float64(c.sumX) / float64(c.area)
		cy := float64(c.sumY) / float64(c.area)

		if !insideInscribedCircle(cx, cy, frame.Width) {
			continue
		}

		stars = append(stars, ObservedStar{PixelCount: c.area, X: cx, Y: cy})
	}

	sort.Slice(stars, func(i, j int) bool {
		return stars[i].PixelCount > stars[j].PixelCount
	})

	if len(stars) < 4 {
		return stars, ErrInsufficientStars
	}

	return stars, nil
}

/*****************************************************************************************************************/
