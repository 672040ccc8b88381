// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundedSPPRoundsUpToPowerOfTwo(t *testing.T) {
	cases := []struct {
		spp  int
		want int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {16, 16}, {17, 32}, {100, 128},
	}
	for _, c := range cases {
		s := LowDiscrepancySampler{SamplesPerPixel: c.spp}
		assert.Equal(t, c.want, s.RoundedSPP())
	}
}

func TestSampleIsWithinUnitSquare(t *testing.T) {
	s := LowDiscrepancySampler{SamplesPerPixel: 64}
	for i := uint32(0); i < 64; i++ {
		p := s.Sample(i, 12345, 67890)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 1.0)
	}
}

func TestSample2DIsDeterministicPerDimension(t *testing.T) {
	s := LowDiscrepancySampler{SamplesPerPixel: 16}
	a := s.Sample2D(3, 0, 111, 222)
	b := s.Sample2D(3, 0, 111, 222)
	assert.Equal(t, a, b)
}

func TestSample2DDimensionsAreIndependentStreams(t *testing.T) {
	s := LowDiscrepancySampler{SamplesPerPixel: 16}
	// Successive dimensions at the same sample index i must not collapse to
	// the same point; each path dimension needs its own well-distributed
	// stream rather than repeating the camera-jitter sample.
	dim0 := s.Sample2D(5, 0, 42, 99)
	dim1 := s.Sample2D(5, 1, 42, 99)
	dim2 := s.Sample2D(5, 2, 42, 99)
	assert.NotEqual(t, dim0, dim1)
	assert.NotEqual(t, dim1, dim2)
	assert.NotEqual(t, dim0, dim2)
}

func TestSample1DIsWithinUnitInterval(t *testing.T) {
	s := LowDiscrepancySampler{SamplesPerPixel: 16}
	for dim := uint32(0); dim < 8; dim++ {
		v := s.Sample1D(7, dim, 555)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSampleStreamAdvancesDimensionsWithoutRepeating(t *testing.T) {
	sampler := LowDiscrepancySampler{SamplesPerPixel: 16}
	stream := newSampleStream(sampler, 2, 11, 22)
	p0 := stream.Next2D()
	p1 := stream.Next2D()
	f0 := stream.Next1D()
	f1 := stream.Next1D()
	assert.NotEqual(t, p0, p1)
	assert.NotEqual(t, f0, f1)

	// Two independently constructed streams for the same pixel sample must
	// reproduce the identical sequence (determinism is required for
	// checkpoint/resume and for reproducible renders at a given seed).
	replay := newSampleStream(sampler, 2, 11, 22)
	assert.Equal(t, p0, replay.Next2D())
	assert.Equal(t, p1, replay.Next2D())
	assert.Equal(t, f0, replay.Next1D())
	assert.Equal(t, f1, replay.Next1D())
}

func TestMortonEncode2DIsSpatiallyLocalZOrder(t *testing.T) {
	// Basic Z-order properties: encode(0,0) is zero, the minimum, and setting
	// a low bit in either coordinate increases the code.
	assert.Equal(t, uint64(0), mortonEncode2D(0, 0))
	assert.Less(t, mortonEncode2D(0, 0), mortonEncode2D(1, 0))
	assert.Less(t, mortonEncode2D(0, 0), mortonEncode2D(0, 1))
	assert.Less(t, mortonEncode2D(1, 0), mortonEncode2D(1, 1))
}

func TestBlockQueueOrdersTilesByNondecreasingMortonIndex(t *testing.T) {
	q := NewBlockQueue(256, 256, 32)
	if q.Len() == 0 {
		t.Fatalf("expected at least one tile")
	}

	var prev uint64
	first := true
	for {
		tl, ok := q.Next()
		if !ok {
			break
		}
		tx := tl.x0 / 32
		ty := tl.y0 / 32
		m := mortonEncode2D(uint32(tx), uint32(ty))
		if !first {
			assert.GreaterOrEqual(t, m, prev, "tiles must be claimed in nondecreasing Morton order")
		}
		prev = m
		first = false
	}
}

func TestBlockQueueCoversEveryPixelExactlyOnce(t *testing.T) {
	const dx, dy, tileSize = 100, 70, 32
	q := NewBlockQueue(dx, dy, tileSize)
	covered := make([][]bool, dy)
	for y := range covered {
		covered[y] = make([]bool, dx)
	}
	for {
		tl, ok := q.Next()
		if !ok {
			break
		}
		for y := tl.y0; y < tl.y1; y++ {
			for x := tl.x0; x < tl.x1; x++ {
				assert.False(t, covered[y][x], "pixel (%d,%d) covered by more than one tile", x, y)
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			assert.True(t, covered[y][x], "pixel (%d,%d) was never covered by any tile", x, y)
		}
	}
}

func TestBlockQueueExhaustionReturnsFalse(t *testing.T) {
	q := NewBlockQueue(10, 10, 32)
	_, ok := q.Next()
	assert.True(t, ok)
	_, ok = q.Next()
	assert.False(t, ok)
}
