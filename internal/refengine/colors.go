package refengine

import (
	"strconv"
	"strings"

	"github.com/htmlkit/htmlbridge/engine"
)

// namedColors is the CSS basic color keyword set plus the handful of
// extended names the fixture's tests and demo pages use.
var namedColors = map[string]engine.WebColor{
	"black":   {Red: 0, Green: 0, Blue: 0, Alpha: 255},
	"silver":  {Red: 192, Green: 192, Blue: 192, Alpha: 255},
	"gray":    {Red: 128, Green: 128, Blue: 128, Alpha: 255},
	"grey":    {Red: 128, Green: 128, Blue: 128, Alpha: 255},
	"white":   {Red: 255, Green: 255, Blue: 255, Alpha: 255},
	"maroon":  {Red: 128, Green: 0, Blue: 0, Alpha: 255},
	"red":     {Red: 255, Green: 0, Blue: 0, Alpha: 255},
	"purple":  {Red: 128, Green: 0, Blue: 128, Alpha: 255},
	"fuchsia": {Red: 255, Green: 0, Blue: 255, Alpha: 255},
	"green":   {Red: 0, Green: 128, Blue: 0, Alpha: 255},
	"lime":    {Red: 0, Green: 255, Blue: 0, Alpha: 255},
	"olive":   {Red: 128, Green: 128, Blue: 0, Alpha: 255},
	"yellow":  {Red: 255, Green: 255, Blue: 0, Alpha: 255},
	"navy":    {Red: 0, Green: 0, Blue: 128, Alpha: 255},
	"blue":    {Red: 0, Green: 0, Blue: 255, Alpha: 255},
	"teal":    {Red: 0, Green: 128, Blue: 128, Alpha: 255},
	"aqua":    {Red: 0, Green: 255, Blue: 255, Alpha: 255},
	"orange":  {Red: 255, Green: 165, Blue: 0, Alpha: 255},
	"rebeccapurple": {Red: 102, Green: 51, Blue: 153, Alpha: 255},
	"transparent":   {},
}

// parseColor resolves a CSS color value. ok is false for values the fixture
// does not understand.
func parseColor(v string) (engine.WebColor, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return engine.WebColor{}, false
	}
	if v == "currentcolor" {
		return engine.WebColor{IsCurrentColor: true}, true
	}
	if c, ok := namedColors[v]; ok {
		return c, true
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		return parseRGBColor(v)
	}
	return engine.WebColor{}, false
}

func parseHexColor(hex string) (engine.WebColor, bool) {
	expand := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	switch len(hex) {
	case 3, 4:
		hex = expand(hex)
	case 6, 8:
	default:
		return engine.WebColor{}, false
	}
	raw, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return engine.WebColor{}, false
	}
	if len(hex) == 6 {
		return engine.WebColor{
			Red:   uint8(raw >> 16),
			Green: uint8(raw >> 8),
			Blue:  uint8(raw),
			Alpha: 255,
		}, true
	}
	return engine.WebColor{
		Red:   uint8(raw >> 24),
		Green: uint8(raw >> 16),
		Blue:  uint8(raw >> 8),
		Alpha: uint8(raw),
	}, true
}

func parseRGBColor(v string) (engine.WebColor, bool) {
	open := strings.IndexByte(v, '(')
	end := strings.IndexByte(v, ')')
	if open < 0 || end < open {
		return engine.WebColor{}, false
	}
	body := strings.ReplaceAll(v[open+1:end], "/", ",")
	parts := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) < 3 {
		return engine.WebColor{}, false
	}
	channel := func(s string) (uint8, bool) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		if f < 0 {
			f = 0
		}
		if f > 255 {
			f = 255
		}
		return uint8(f), true
	}
	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return engine.WebColor{}, false
	}
	c := engine.WebColor{Red: r, Green: g, Blue: b, Alpha: 255}
	if len(parts) >= 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return engine.WebColor{}, false
		}
		if a <= 1 {
			a *= 255
		}
		if a < 0 {
			a = 0
		}
		if a > 255 {
			a = 255
		}
		c.Alpha = uint8(a)
	}
	return c, true
}
