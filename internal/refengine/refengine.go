package refengine

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/htmlkit/htmlbridge/engine"
	"github.com/htmlkit/htmlbridge/errors"
)

// Engine implements engine.Engine.
type Engine struct{}

// New returns a ready-to-use engine. The zero value is also usable.
func New() *Engine { return &Engine{} }

// CreateDocumentFromString parses markup into a document bound to cont.
// masterCSS replaces the (empty) built-in user-agent stylesheet; userCSS is
// applied after every document stylesheet.
func (e *Engine) CreateDocumentFromString(markup string, cont engine.DocumentContainer, masterCSS, userCSS string) (engine.Document, error) {
	if cont == nil {
		return nil, errors.NilHandle(errors.PhaseParse, "container")
	}

	parsed, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, errors.InvalidMarkup(errors.PhaseParse, err)
	}

	d := &document{
		cont:  cont,
		fonts: make(map[fontKey]fontEntry),
	}
	d.media = cont.GetMediaFeatures()

	if masterCSS != "" {
		if err := d.addSheet(masterCSS, "", ""); err != nil {
			return nil, err
		}
	}

	d.scanMetadata(parsed)

	htmlEl := findElement(parsed, atom.Html)
	if htmlEl == nil {
		return nil, errors.InvalidMarkup(errors.PhaseParse, nil)
	}
	d.root = d.buildTree(htmlEl, nil)

	if userCSS != "" {
		if err := d.addSheet(userCSS, d.baseURL, ""); err != nil {
			return nil, err
		}
	}
	d.computeStyles()

	Logger().Debug("document parsed",
		zap.Int("rules", len(d.rules)),
		zap.Int("markup_bytes", len(markup)))
	return d, nil
}

// scanMetadata walks the parse tree for document-level signals: title,
// base URL, embedded <style> sheets and <link rel=stylesheet> references.
func (d *document) scanMetadata(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Title:
			d.cont.SetCaption(nodeText(n))
		case atom.Base:
			if href := attr(n, "href"); href != "" {
				d.baseURL = href
				d.cont.SetBaseURL(href)
			}
		case atom.Style:
			// Embedded sheet errors are tolerated; the rest of the
			// document still styles.
			_ = d.addSheet(nodeText(n), d.baseURL, attr(n, "media"))
		case atom.Link:
			d.cont.Link()
			if strings.EqualFold(attr(n, "rel"), "stylesheet") {
				if href := attr(n, "href"); href != "" {
					if text := d.cont.ImportCSS(href, d.baseURL); text != "" {
						_ = d.addSheet(text, href, attr(n, "media"))
					}
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.scanMetadata(c)
	}
}

// buildTree mirrors the parse tree into render nodes, dropping metadata
// subtrees and whitespace-only text.
func (d *document) buildTree(hn *html.Node, parent *node) *node {
	n := &node{doc: d, htmlNode: hn, parent: parent}
	switch hn.Type {
	case html.TextNode:
		n.isText = true
		n.text = collapseSpace(hn.Data)
	case html.ElementNode:
		// The host may veto default construction with a custom element;
		// the fixture acknowledges the protocol but always builds its own.
		d.cont.CreateElement(hn.Data, attrMap(hn))
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if skipSubtree(c) {
			continue
		}
		if c.Type == html.TextNode && collapseSpace(c.Data) == "" {
			continue
		}
		if c.Type != html.TextNode && c.Type != html.ElementNode {
			continue
		}
		n.children = append(n.children, d.buildTree(c, n))
	}
	return n
}

func skipSubtree(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Head, atom.Style, atom.Script, atom.Title, atom.Base, atom.Link, atom.Meta:
		return true
	}
	return false
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func attrMap(n *html.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	m := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		m[a.Key] = a.Val
	}
	return m
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// collapseSpace folds runs of whitespace into single spaces, trimming the
// ends. HTML inline whitespace handling, minus the cross-node cases.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
