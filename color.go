package meshssim

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// Color is a linear RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// HexColor parses "rgb", "rrggbb" or "rrggbbaa", with or without a leading #.
func HexColor(x string) (Color, error) {
	x = strings.TrimPrefix(x, "#")
	if len(x) == 3 {
		x = string([]byte{x[0], x[0], x[1], x[1], x[2], x[2]})
	}
	if len(x) == 6 {
		x += "ff"
	}
	if len(x) != 8 {
		return Color{}, fmt.Errorf("meshssim: invalid hex color %q", x)
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("meshssim: invalid hex color %q: %v", x, err)
	}
	const d = 255
	return Color{
		R: float64(v>>24&0xff) / d,
		G: float64(v>>16&0xff) / d,
		B: float64(v>>8&0xff) / d,
		A: float64(v&0xff) / d,
	}, nil
}

// MustHexColor is HexColor for constants known to be valid.
func MustHexColor(x string) Color {
	c, err := HexColor(x)
	if err != nil {
		panic(err)
	}
	return c
}

func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

func (c Color) NRGBA() color.NRGBA {
	const d = 0xff
	r := Clamp(c.R, 0, 1)
	g := Clamp(c.G, 0, 1)
	b := Clamp(c.B, 0, 1)
	a := Clamp(c.A, 0, 1)
	return color.NRGBA{uint8(r*d + 0.5), uint8(g*d + 0.5), uint8(b*d + 0.5), uint8(a*d + 0.5)}
}

func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("%02x%02x%02x", n.R, n.G, n.B)
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B, c.A + b.A}
}

func (c Color) Sub(b Color) Color {
	return Color{c.R - b.R, c.G - b.G, c.B - b.B, c.A - b.A}
}

func (c Color) Mul(b Color) Color {
	return Color{c.R * b.R, c.G * b.G, c.B * b.B, c.A * b.A}
}

func (c Color) MulScalar(b float64) Color {
	return Color{c.R * b, c.G * b, c.B * b, c.A * b}
}

func (c Color) Min(b Color) Color {
	return Color{math.Min(c.R, b.R), math.Min(c.G, b.G), math.Min(c.B, b.B), math.Min(c.A, b.A)}
}

func (c Color) Alpha(a float64) Color {
	return Color{c.R, c.G, c.B, a}
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
