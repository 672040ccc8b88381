// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"image"
	"math"
	"sync"

	"tracer/r2"
)

// filterLUTSize is the resolution of the precomputed, per-axis filter
// weight lookup table; 16 samples per pixel-offset unit is enough to make
// the LUT indistinguishable from evaluating ReconFilter.Eval directly,
// while avoiding a transcendental/polynomial evaluation per splat.
const filterLUTSize = 16

// RenderTarget accumulates samples by splatting each one, weighted by a
// reconstruction filter, into every pixel within the filter's support --
// rather than averaging independent per-pixel samples as the teacher's
// renderTile/renderPixel did. This is what lets a Mitchell-Netravali or
// Gaussian filter actually widen or sharpen the reconstructed image
// instead of only ever box-filtering each pixel's own samples.
type RenderTarget struct {
	Dx, Dy int
	filter ReconFilter
	lutX   []float64
	pixels []filmPixel
	rowMu  []sync.Mutex
}

type filmPixel struct {
	r, g, b, weight float64
}

// NewRenderTarget builds a target of the given resolution using filter as
// the reconstruction kernel.
func NewRenderTarget(dx, dy int, filter ReconFilter) *RenderTarget {
	rt := &RenderTarget{
		Dx:     dx,
		Dy:     dy,
		filter: filter,
		pixels: make([]filmPixel, dx*dy),
		rowMu:  make([]sync.Mutex, dy),
	}
	rt.lutX = make([]float64, filterLUTSize+1)
	for i := range rt.lutX {
		x := filter.Radius * float64(i) / float64(filterLUTSize)
		rt.lutX[i] = filter.Eval(x)
	}
	return rt
}

func (rt *RenderTarget) weight(offset float64) float64 {
	offset = math.Abs(offset)
	if offset >= rt.filter.Radius {
		return 0
	}
	idx := offset / rt.filter.Radius * filterLUTSize
	i0 := int(idx)
	i1 := i0 + 1
	if i1 >= len(rt.lutX) {
		i1 = len(rt.lutX) - 1
	}
	frac := idx - float64(i0)
	return rt.lutX[i0]*(1-frac) + rt.lutX[i1]*frac
}

// AddSample splats radiance at a continuous raster-space position (px, py)
// (pixel centers at integer + 0.5) into every pixel within the filter's
// radius. Safe for concurrent callers splatting into disjoint or
// overlapping tiles.
func (rt *RenderTarget) AddSample(px, py float64, radiance Spectrum) {
	r := rt.filter.Radius
	x0 := int(math.Ceil(px - r - 0.5))
	x1 := int(math.Floor(px + r - 0.5))
	y0 := int(math.Ceil(py - r - 0.5))
	y1 := int(math.Floor(py + r - 0.5))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > rt.Dx-1 {
		x1 = rt.Dx - 1
	}
	if y1 > rt.Dy-1 {
		y1 = rt.Dy - 1
	}
	for y := y0; y <= y1; y++ {
		wy := rt.weight(py - (float64(y) + 0.5))
		if wy == 0 {
			continue
		}
		rt.rowMu[y].Lock()
		for x := x0; x <= x1; x++ {
			wx := rt.weight(px - (float64(x) + 0.5))
			w := wx * wy
			if w == 0 {
				continue
			}
			p := &rt.pixels[y*rt.Dx+x]
			p.r += radiance.X * w
			p.g += radiance.Y * w
			p.b += radiance.Z * w
			p.weight += w
		}
		rt.rowMu[y].Unlock()
	}
}

// SamplePosition returns the raster-space position for the u-th low
// discrepancy sample of pixel (x, y).
func SamplePosition(x, y int, jitter r2.Point) (float64, float64) {
	return float64(x) + jitter.X, float64(y) + jitter.Y
}

// Develop resolves the accumulated splats into a displayable sRGB image,
// normalizing each pixel by its accumulated filter weight.
func (rt *RenderTarget) Develop() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.Dx, rt.Dy))
	for y := 0; y < rt.Dy; y++ {
		for x := 0; x < rt.Dx; x++ {
			p := rt.pixels[y*rt.Dx+x]
			var s Spectrum
			if p.weight > 0 {
				s = Spectrum{X: p.r / p.weight, Y: p.g / p.weight, Z: p.b / p.weight}
			}
			// Flip to image (top-left origin) from raster (bottom-left y-up) space.
			img.Set(x, rt.Dy-1-y, s.ToColor())
		}
	}
	return img
}
