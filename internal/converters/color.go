package converters

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// rebeccaPurple is CSS Color Level 4 and absent from the SVG 1.1 set.
var rebeccaPurple = color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff}

// NormalizeColor converts a color given as hex (#rgb, #rgba, #rrggbb,
// #rrggbbaa, with or without '#'), rgb()/rgba() or a CSS color name into a
// lowercase 6-digit hex string. Alpha is discarded. Empty or unparsable
// input yields fallback.
func NormalizeColor(input, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return fallback
	}

	if c, ok := namedColor(s); ok {
		return c.Hex()
	}

	if strings.HasPrefix(s, "rgb") {
		if c, ok := parseRGBFunc(s); ok {
			return c.Hex()
		}
		return fallback
	}

	if c, ok := parseHex(s); ok {
		return c.Hex()
	}
	return fallback
}

// namedColor resolves a lowercase CSS color keyword.
func namedColor(s string) (colorful.Color, bool) {
	rgba, ok := colornames.Map[s]
	if !ok && s == "rebeccapurple" {
		rgba, ok = rebeccaPurple, true
	}
	if !ok {
		return colorful.Color{}, false
	}
	c, _ := colorful.MakeColor(rgba)
	return c, true
}

func parseHex(s string) (colorful.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	case 8:
		s = s[:6]
	default:
		return colorful.Color{}, false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// parseRGBFunc handles rgb(r, g, b) and rgba(r, g, b, a) with integer or
// percentage channels, comma or space separated.
func parseRGBFunc(s string) (colorful.Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return colorful.Color{}, false
	}
	body := s[open+1 : len(s)-1]
	body = strings.ReplaceAll(body, "/", " ")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) < 3 || len(fields) > 4 {
		return colorful.Color{}, false
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, ok := parseChannel(fields[i])
		if !ok {
			return colorful.Color{}, false
		}
		ch[i] = v
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Clamped(), true
}

// parseChannel returns a channel value in [0,1]
func parseChannel(f string) (float64, bool) {
	if pct, ok := strings.CutSuffix(f, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return v / 100, true
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, false
	}
	return v / 255, true
}
