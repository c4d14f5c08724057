package refengine

import (
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/engine"
	"github.com/htmlkit/htmlbridge/errors"
)

type display int

const (
	displayBlock display = iota
	displayInline
	displayNone
)

// computedStyle is the subset of CSS the fixture resolves. Inherited
// properties default from the parent; the rest from initial values.
type computedStyle struct {
	color         engine.WebColor
	background    engine.WebColor
	hasBackground bool
	fontFamily    string
	fontSize      float32
	fontWeight    int
	fontStyle     engine.FontStyle
	textAlign     engine.TextAlign
	textTransform engine.TextTransform
	lineHeight    float32 // 0 means normal (derived from metrics)
	display       display
	cursor        string
}

// styleRule is one qualified rule, compiled for matching. Cascade order is
// document order; the last matching declaration wins.
type styleRule struct {
	matcher      cascadia.Selector
	declarations []*css.Declaration
}

// addSheet parses a stylesheet and appends its rules. media, when
// non-empty, gates the whole sheet against the cached media features.
func (d *document) addSheet(text, baseURL, media string) error {
	if media != "" && !d.mediaMatches(media) {
		return nil
	}
	sheet, err := parser.Parse(text)
	if err != nil {
		return errors.InvalidCSS(errors.PhaseStyle, err)
	}
	d.appendRules(sheet.Rules, baseURL)
	return nil
}

func (d *document) appendRules(rules []*css.Rule, baseURL string) {
	for _, rule := range rules {
		switch rule.Kind {
		case css.QualifiedRule:
			for _, sel := range rule.Selectors {
				matcher, err := cascadia.Compile(sel)
				if err != nil {
					continue // unknown selector syntax, skip the rule
				}
				d.rules = append(d.rules, styleRule{
					matcher:      matcher,
					declarations: rule.Declarations,
				})
			}
		case css.AtRule:
			switch strings.ToLower(rule.Name) {
			case "@media":
				if d.mediaMatches(rule.Prelude) {
					d.appendRules(rule.Rules, baseURL)
				}
			case "@import":
				url := importURL(rule.Prelude)
				if url == "" {
					continue
				}
				if text := d.cont.ImportCSS(url, baseURL); text != "" {
					_ = d.addSheet(text, url, "")
				}
			}
		}
	}
}

// mediaMatches is a coarse media-query check: the type keyword must be
// absent, "all", or equal to the cached media type. Feature expressions
// are not evaluated.
func (d *document) mediaMatches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(q, "print") {
		return d.media.Type == engine.MediaTypePrint
	}
	if strings.Contains(q, "screen") {
		return d.media.Type == engine.MediaTypeScreen || d.media.Type == engine.MediaTypeNone
	}
	return true
}

// importURL strips url(...) and quotes from an @import prelude.
func importURL(prelude string) string {
	s := strings.TrimSpace(prelude)
	if i := strings.Index(strings.ToLower(s), "url("); i >= 0 {
		s = s[i+4:]
		if j := strings.IndexByte(s, ')'); j >= 0 {
			s = s[:j]
		}
	}
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

// computeStyles resolves the computed style of every element node and
// realizes its font. Safe to re-run after stylesheet or tree mutation.
func (d *document) computeStyles() {
	d.resolveNode(d.root, nil)
}

func (d *document) resolveNode(n *node, parent *computedStyle) {
	if n == nil {
		return
	}
	if n.isText {
		// Text inherits everything from its parent element; the parent
		// owns the background paint.
		if parent != nil {
			n.style = *parent
			n.style.background = engine.WebColor{}
			n.style.hasBackground = false
		}
		n.font = d.realizeFont(&n.style)
		return
	}

	s := initialStyle(d.cont, parent)
	for _, rule := range d.rules {
		if rule.matcher.Match(n.htmlNode) {
			for _, decl := range rule.declarations {
				d.applyDeclaration(&s, decl.Property, decl.Value)
			}
		}
	}
	if inline := attr(n.htmlNode, "style"); inline != "" {
		if decls, err := parser.ParseDeclarations(inline); err == nil {
			for _, decl := range decls {
				d.applyDeclaration(&s, decl.Property, decl.Value)
			}
		}
	}
	if s.display != displayNone && isInlineTag(n.htmlNode) && !hasDisplayOverride(n) {
		s.display = displayInline
	}

	n.style = s
	n.font = d.realizeFont(&s)
	for _, c := range n.children {
		d.resolveNode(c, &s)
	}
}

func initialStyle(cont engine.DocumentContainer, parent *computedStyle) computedStyle {
	if parent != nil {
		s := *parent
		// Non-inherited properties reset per element.
		s.background = engine.WebColor{}
		s.hasBackground = false
		s.display = displayBlock
		return s
	}
	return computedStyle{
		color:      engine.WebColor{Alpha: 255},
		fontFamily: cont.DefaultFontName(),
		fontSize:   cont.DefaultFontSize(),
		fontWeight: 400,
		display:    displayBlock,
	}
}

func (d *document) applyDeclaration(s *computedStyle, property, value string) {
	v := strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(property)) {
	case "color":
		if c, ok := parseColor(v); ok {
			s.color = c
		}
	case "background-color", "background":
		if c, ok := parseColor(v); ok {
			s.background = c
			s.hasBackground = true
		}
	case "font-family":
		s.fontFamily = strings.Trim(strings.TrimSpace(strings.Split(v, ",")[0]), `"'`)
	case "font-size":
		if px, ok := d.parseLength(v, s.fontSize); ok && px > 0 {
			s.fontSize = px
		}
	case "font-weight":
		s.fontWeight = parseFontWeight(v, s.fontWeight)
	case "font-style":
		switch strings.ToLower(v) {
		case "italic":
			s.fontStyle = engine.FontStyleItalic
		case "oblique":
			s.fontStyle = engine.FontStyleOblique
		case "normal":
			s.fontStyle = engine.FontStyleNormal
		}
	case "text-align":
		switch strings.ToLower(v) {
		case "left":
			s.textAlign = engine.TextAlignLeft
		case "right":
			s.textAlign = engine.TextAlignRight
		case "center":
			s.textAlign = engine.TextAlignCenter
		case "justify":
			s.textAlign = engine.TextAlignJustify
		}
	case "text-transform":
		switch strings.ToLower(v) {
		case "none":
			s.textTransform = engine.TextTransformNone
		case "capitalize":
			s.textTransform = engine.TextTransformCapitalize
		case "uppercase":
			s.textTransform = engine.TextTransformUppercase
		case "lowercase":
			s.textTransform = engine.TextTransformLowercase
		}
	case "line-height":
		if lh, ok := d.parseLineHeight(v, s.fontSize); ok {
			s.lineHeight = lh
		}
	case "display":
		switch strings.ToLower(v) {
		case "none":
			s.display = displayNone
		case "inline":
			s.display = displayInline
		case "block":
			s.display = displayBlock
		}
	case "cursor":
		s.cursor = strings.ToLower(v)
	}
}

// parseLength resolves px, pt (through the container) and em lengths.
// A bare number is taken as pixels.
func (d *document) parseLength(v string, fontSize float32) (float32, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	unit := ""
	num := v
	for _, u := range []string{"px", "pt", "em"} {
		if strings.HasSuffix(v, u) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(v, u))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case "pt":
		return d.cont.PtToPx(float32(f)), true
	case "em":
		return float32(f) * fontSize, true
	default:
		return float32(f), true
	}
}

// parseLineHeight treats a bare number as a font-size multiplier, per CSS.
func (d *document) parseLineHeight(v string, fontSize float32) (float32, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "normal" {
		return 0, true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return float32(f) * fontSize, true
	}
	return d.parseLength(v, fontSize)
}

func parseFontWeight(v string, current int) int {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "normal":
		return 400
	case "bold":
		return 700
	case "bolder":
		return current + 300
	case "lighter":
		return current - 300
	}
	if w, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		return w
	}
	return current
}

func isInlineTag(n *html.Node) bool {
	switch n.Data {
	case "a", "span", "b", "strong", "i", "em", "u", "small", "code", "sub", "sup":
		return true
	}
	return false
}

// hasDisplayOverride reports whether any matching declaration or inline
// style sets display explicitly, in which case the tag default is ignored.
func hasDisplayOverride(n *node) bool {
	for _, rule := range n.doc.rules {
		if !rule.matcher.Match(n.htmlNode) {
			continue
		}
		for _, decl := range rule.declarations {
			if strings.EqualFold(strings.TrimSpace(decl.Property), "display") {
				return true
			}
		}
	}
	return strings.Contains(strings.ToLower(attr(n.htmlNode, "style")), "display")
}

type fontKey struct {
	family string
	size   float32
	weight int
	style  engine.FontStyle
}

type fontEntry struct {
	handle  htmlbridge.FontHandle
	metrics engine.FontMetrics
}

// realizeFont creates the font for a computed style through the container,
// caching by (family, size, weight, style). Every cached handle is released
// exactly once at Close.
func (d *document) realizeFont(s *computedStyle) htmlbridge.FontHandle {
	key := fontKey{family: s.fontFamily, size: s.fontSize, weight: s.fontWeight, style: s.fontStyle}
	if entry, ok := d.fonts[key]; ok {
		return entry.handle
	}
	handle, metrics := d.cont.CreateFont(&engine.FontDescription{
		Family: s.fontFamily,
		Size:   s.fontSize,
		Style:  s.fontStyle,
		Weight: s.fontWeight,

		DecorationThicknessIsPredefined: true,
	})
	d.fonts[key] = fontEntry{handle: handle, metrics: metrics}
	return handle
}

func (d *document) fontMetrics(font htmlbridge.FontHandle) engine.FontMetrics {
	for _, entry := range d.fonts {
		if entry.handle == font {
			return entry.metrics
		}
	}
	return engine.FontMetrics{}
}
