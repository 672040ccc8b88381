// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"image/color"
	"math"

	"tracer/r3"
)

// Spectrum represents a sampled spectrum of light with discrete bands.
// The spectrum is discretely sampled and stored as three RGB channel values
// in the X, Y and Z fields.
// The underlying type may change as this type evolves.
// For convenience, has method to convert to color.Color for image display.
type Spectrum r3.Vec

// Add returns the sum of two spectra.
func (s Spectrum) Add(other Spectrum) Spectrum {
	return Spectrum(r3.Vec(s).Add(r3.Vec(other)))
}

// Sub returns the difference of two spectra.
func (s Spectrum) Sub(other Spectrum) Spectrum {
	return Spectrum(r3.Vec(s).Sub(r3.Vec(other)))
}

// Luminance returns the relative luminance of the spectrum interpreted as
// linear BT.709 RGB.
func (s Spectrum) Luminance() float64 {
	return 0.2126*s.X + 0.7152*s.Y + 0.0722*s.Z
}

// IsBlack reports whether every channel is exactly zero.
func (s Spectrum) IsBlack() bool {
	return s.X == 0 && s.Y == 0 && s.Z == 0
}

// Mul returns the element-wise product of two spectra.
func (s Spectrum) Mul(other Spectrum) Spectrum {
	return Spectrum(r3.Vec(s).Mul(r3.Vec(other)))
}

// Muls returns the spectrum multiplied by a scalar.
func (s Spectrum) Muls(t float64) Spectrum {
	return Spectrum(r3.Vec(s).Muls(t))
}

// Divs returns the spectrum divided by a scalar.
func (s Spectrum) Divs(t float64) Spectrum {
	return Spectrum(r3.Vec(s).Divs(t))
}

// Clip returns the spectrum with each component clipped to the range [min, max].
func (s Spectrum) Clip(min, max float64) Spectrum {
	return Spectrum(r3.Vec(s).Clip(min, max))
}

// ToColor converts the spectrum, assumed linear light, to a display-encoded
// color.Color via the sRGB transfer function.
func (s Spectrum) ToColor() color.Color {
	c := s.Clip(0, 1)
	return color.RGBA{
		R: uint8(srgbEncode(c.X) * 255),
		G: uint8(srgbEncode(c.Y) * 255),
		B: uint8(srgbEncode(c.Z) * 255),
		A: 255,
	}
}

// srgbEncode applies the IEC 61966-2-1 sRGB transfer function to a single
// linear channel value in [0, 1].
func srgbEncode(c float64) float64 {
	const a = 0.055
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return (1+a)*math.Pow(c, 1/2.4) - a
}

// String returns a string representation of the spectrum.
func (s Spectrum) String() string {
	return r3.Vec(s).String()
}
