package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var defaultMaterialColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// ParseColor accepts #rrggbb, #rrggbbaa (straight alpha) or an SVG colour
// name such as "darkolivegreen". The result is premultiplied.
func ParseColor(v string) (color.RGBA, error) {
	s := strings.TrimSpace(v)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", v)
	}
	s = s[1:]
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA), nil
}

// Shade scales the colour channels of c by f, keeping alpha.
func Shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		x := float64(v) * f
		if x > float64(c.A) {
			x = float64(c.A)
		}
		if x < 0 {
			x = 0
		}
		return uint8(x)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
