package refengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/container"
	"github.com/htmlkit/htmlbridge/document"
	"github.com/htmlkit/htmlbridge/internal/refengine"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fontHost is a trackable font subsystem for end-to-end tests.
type fontHost struct {
	next    htmlbridge.FontHandle
	created []htmlbridge.FontHandle
	deleted []htmlbridge.FontHandle
}

func (h *fontHost) table() *container.Table {
	return &container.Table{
		UserData: h,
		CreateFont: func(ud any, descr *container.FontDescriptionRef, metrics *abi.FontMetrics) htmlbridge.FontHandle {
			host := ud.(*fontHost)
			host.next++
			host.created = append(host.created, host.next)
			metrics.FontSize = descr.Size()
			metrics.Height = descr.Size() * 1.25
			metrics.Ascent = descr.Size() * 0.8
			metrics.Descent = descr.Size() * 0.2
			return host.next
		},
		DeleteFont: func(ud any, font htmlbridge.FontHandle) {
			host := ud.(*fontHost)
			host.deleted = append(host.deleted, font)
		},
		TextWidth: func(ud any, text string, font htmlbridge.FontHandle) float32 {
			return float32(len(text)) * 8
		},
	}
}

func TestCreateRenderDestroy(t *testing.T) {
	host := &fontHost{}
	doc, err := document.Create(refengine.New(), "<html><body>Hi</body></html>", host.table(), document.CreateOptions{})
	require.NoError(t, err)
	require.NotNil(t, doc)

	height := doc.Render(800)
	require.Greater(t, height, float32(0))

	doc.Destroy()
	require.Equal(t, host.created, host.deleted, "every font released exactly once")
}

func TestStylesheetReachesDrawText(t *testing.T) {
	host := &fontHost{}
	table := host.table()

	var drawnColors []abi.WebColor
	table.DrawText = func(ud any, dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color abi.WebColor, pos abi.Position) {
		drawnColors = append(drawnColors, color)
	}

	doc, err := document.Create(refengine.New(), "<html><body>Hi</body></html>", table, document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	require.NoError(t, doc.AddStylesheet("body{color:red}", "", ""))
	doc.Render(800)
	doc.Draw(1, 0, 0, nil)

	require.NotEmpty(t, drawnColors)
	want := abi.WebColor{Red: 255, Alpha: 255}
	require.Equal(t, want, drawnColors[0])
}

func TestReplaceChildren(t *testing.T) {
	host := &fontHost{}
	doc, err := document.Create(refengine.New(), "<html><head></head><body>old</body></html>", host.table(), document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	root := doc.Root()
	require.NotNil(t, root)

	require.NoError(t, doc.AppendChildrenFromString(root, "<p>New</p>", true))
	require.Equal(t, 1, root.ChildrenCount())

	var text string
	root.ChildAt(0).Text(func(s string) { text = s })
	require.Equal(t, "New", text)
}

func TestHitTestReturnsDeepest(t *testing.T) {
	host := &fontHost{}
	markup := `<html><body>
		<div id="outer"><div id="inner">target text</div></div>
	</body></html>`
	doc, err := document.Create(refengine.New(), markup, host.table(), document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	doc.Render(800)

	hit := doc.ElementByPoint(10, 5, 10, 5)
	require.NotNil(t, hit)

	// The nested box overlaps its parent everywhere; the deepest element
	// containing the point must win. Its placement is contained in every
	// ancestor's placement and it should be a leaf element here.
	require.Equal(t, 1, hit.ChildrenCount(), "deepest element wraps only the text run")
	var text string
	hit.Text(func(s string) { text = s })
	require.Equal(t, "target text", text)
}

func TestSparseTableUsesDefaults(t *testing.T) {
	// Only create-font/delete-font populated; everything else falls back.
	var created, deleted int
	var family string
	var size float32
	table := &container.Table{
		CreateFont: func(ud any, descr *container.FontDescriptionRef, metrics *abi.FontMetrics) htmlbridge.FontHandle {
			created++
			family = descr.Family()
			size = descr.Size()
			return htmlbridge.FontHandle(created)
		},
		DeleteFont: func(ud any, font htmlbridge.FontHandle) { deleted++ },
	}

	doc, err := document.Create(refengine.New(), "<html><body>Hi there</body></html>", table, document.CreateOptions{})
	require.NoError(t, err)

	require.Greater(t, doc.Render(640), float32(0))
	doc.Draw(0, 0, 0, &abi.Position{Width: 640, Height: 480})

	require.Equal(t, container.DefaultFontName, family)
	require.Equal(t, container.DefaultFontSize, size)

	doc.Destroy()
	require.Equal(t, created, deleted)
}

func TestAllNilTableFullCycle(t *testing.T) {
	doc, err := document.Create(refengine.New(), "<html><body><p>a b c</p></body></html>", &container.Table{}, document.CreateOptions{})
	require.NoError(t, err)

	require.Greater(t, doc.Render(320), float32(0))
	doc.Draw(0, 0, 0, nil)
	require.NotNil(t, doc.Root())
	doc.Destroy()
}

func TestCaptionBaseAndImport(t *testing.T) {
	host := &fontHost{}
	table := host.table()

	var caption, base string
	var importedURL string
	var drawn []abi.WebColor
	table.SetCaption = func(ud any, c string) { caption = c }
	table.SetBaseURL = func(ud any, b string) { base = b }
	table.ImportCSS = func(ud any, url, baseURL string, setResult container.SetString) {
		importedURL = url
		setResult("p{color:blue}")
	}
	table.DrawText = func(ud any, dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color abi.WebColor, pos abi.Position) {
		drawn = append(drawn, color)
	}

	markup := `<html><head>
		<title>Fixture</title>
		<base href="https://example.com/a/">
		<style>@import url("extra.css");</style>
	</head><body><p>x</p></body></html>`

	doc, err := document.Create(refengine.New(), markup, table, document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	require.Equal(t, "Fixture", caption)
	require.Equal(t, "https://example.com/a/", base)
	require.Equal(t, "extra.css", importedURL)

	doc.Render(800)
	doc.Draw(0, 0, 0, nil)
	require.NotEmpty(t, drawn)
	require.Equal(t, abi.WebColor{Blue: 255, Alpha: 255}, drawn[0])
}

func TestAnchorClickAndHover(t *testing.T) {
	host := &fontHost{}
	table := host.table()

	var clicked string
	var cursor string
	table.OnAnchorClick = func(ud any, url string) { clicked = url }
	table.SetCursor = func(ud any, c string) { cursor = c }

	markup := `<html><body><a href="https://example.com">link text</a></body></html>`
	doc, err := document.Create(refengine.New(), markup, table, document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	doc.Render(800)

	link := doc.ElementByPoint(4, 4, 4, 4)
	require.NotNil(t, link)

	require.True(t, doc.OnMouseOver(4, 4, 4, 4), "first hover changes state")
	require.Equal(t, "pointer", cursor)
	require.False(t, doc.OnMouseOver(4, 4, 4, 4), "same target, no change")

	doc.OnLButtonDown(4, 4, 4, 4)
	doc.OnLButtonUp(4, 4, 4, 4)
	require.Equal(t, "https://example.com", clicked)

	require.True(t, doc.OnMouseLeave())
	require.False(t, doc.OnMouseLeave(), "leave is idempotent")
}

func TestMediaChanged(t *testing.T) {
	host := &fontHost{}
	table := host.table()

	width := float32(800)
	table.MediaFeatures = func(ud any, media *abi.MediaFeatures) {
		media.Type = 2 // screen
		media.Width = width
		media.Height = 600
	}

	doc, err := document.Create(refengine.New(), "<html><body>x</body></html>", table, document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	require.False(t, doc.MediaChanged(), "unchanged features")
	width = 400
	require.True(t, doc.MediaChanged(), "width change invalidates")
	require.False(t, doc.MediaChanged(), "second query settles")
}

func TestInlineBoxesLieWithinPlacement(t *testing.T) {
	host := &fontHost{}
	markup := `<html><body><div><p>one two three four five six seven eight nine ten</p></div></body></html>`
	doc, err := document.Create(refengine.New(), markup, host.table(), document.CreateOptions{})
	require.NoError(t, err)
	defer doc.Destroy()

	doc.Render(160) // narrow: forces multiple lines at 8px/char

	text := findTextElement(doc.Root())
	require.NotNil(t, text)
	require.Greater(t, text.InlineBoxesCount(), 1, "narrow width must wrap")

	placement := text.Placement()
	text.InlineBoxes(func(box abi.Position) {
		require.GreaterOrEqual(t, box.X, placement.X)
		require.GreaterOrEqual(t, box.Y, placement.Y)
		require.LessOrEqual(t, box.Y+box.Height, placement.Y+placement.Height)
	})
}

func findTextElement(el *document.Element) *document.Element {
	if el == nil {
		return nil
	}
	if el.IsText() {
		return el
	}
	for i := 0; i < el.ChildrenCount(); i++ {
		if found := findTextElement(el.ChildAt(i)); found != nil {
			return found
		}
	}
	return nil
}
