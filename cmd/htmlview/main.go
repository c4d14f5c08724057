package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/container"
	"github.com/htmlkit/htmlbridge/document"
	"github.com/htmlkit/htmlbridge/fonts"
	"github.com/htmlkit/htmlbridge/internal/refengine"
)

func main() {
	var (
		htmlFile    = flag.String("html", "", "Path to HTML file")
		cssFile     = flag.String("css", "", "Extra stylesheet to apply")
		width       = flag.Float64("width", 0, "Layout width in px (0 = from terminal)")
		probe       = flag.String("probe", "", "Hit-test a point, as x,y")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose bridge logging to stderr")
	)
	flag.Parse()

	if *htmlFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: htmlview -html <file.html> [-css file] [-width px] [-probe x,y]")
		fmt.Fprintln(os.Stderr, "       htmlview -html <file.html> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		container.SetLogger(log)
		document.SetLogger(log)
		refengine.SetLogger(log)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*htmlFile, *cssFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*htmlFile, *cssFile, float32(*width), *probe); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(htmlFile, cssFile string, width float32, probe string) error {
	markup, err := os.ReadFile(htmlFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	host := newTermHost()
	doc, err := document.Create(refengine.New(), string(markup), host.table(), document.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer doc.Destroy()

	if cssFile != "" {
		css, err := os.ReadFile(cssFile)
		if err != nil {
			return fmt.Errorf("read stylesheet: %w", err)
		}
		if err := doc.AddStylesheet(string(css), cssFile, ""); err != nil {
			return fmt.Errorf("apply stylesheet: %w", err)
		}
	}

	if width <= 0 {
		width = terminalWidth()
	}
	height := doc.Render(width)

	fmt.Printf("Document: %s\n", htmlFile)
	if host.caption != "" {
		fmt.Printf("Caption: %s\n", host.caption)
	}
	fmt.Printf("Layout: %.0fx%.0f (rendered at width %.0f)\n", doc.Width(), height, width)

	fmt.Printf("\nRender tree:\n")
	printTree(doc.Root(), 0)

	if probe != "" {
		x, y, err := parsePoint(probe)
		if err != nil {
			return err
		}
		hit := doc.ElementByPoint(x, y, x, y)
		if hit == nil {
			fmt.Printf("\nProbe (%.0f, %.0f): no element\n", x, y)
		} else {
			fmt.Printf("\nProbe (%.0f, %.0f): %s\n", x, y, describeElement(hit))
		}
	}

	doc.Draw(0, 0, 0, nil)
	if len(host.paints) > 0 {
		fmt.Printf("\nPaint log:\n")
		for _, p := range host.paints {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

func printTree(el *document.Element, depth int) {
	if el == nil {
		return
	}
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth+1), describeElement(el))
	for i := 0; i < el.ChildrenCount(); i++ {
		printTree(el.ChildAt(i), depth+1)
	}
}

func describeElement(el *document.Element) string {
	var b strings.Builder
	if el.IsText() {
		var text string
		el.Text(func(s string) { text = s })
		fmt.Fprintf(&b, "text %q", truncate(text, 40))
	} else {
		fmt.Fprintf(&b, "element[%d children]", el.ChildrenCount())
	}
	p := el.Placement()
	fmt.Fprintf(&b, " @(%.0f,%.0f %.0fx%.0f)", p.X, p.Y, p.Width, p.Height)
	fmt.Fprintf(&b, " font=%d size=%.0f align=%s lh=%.1f",
		el.Font(), el.FontSize(), alignName(el.TextAlign()), el.LineHeight())
	if n := el.InlineBoxesCount(); n > 0 {
		fmt.Fprintf(&b, " lines=%d", n)
	}
	return b.String()
}

func alignName(a int32) string {
	switch a {
	case 1:
		return "right"
	case 2:
		return "center"
	case 3:
		return "justify"
	default:
		return "left"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func parsePoint(s string) (float32, float32, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("probe: want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("probe x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("probe y: %w", err)
	}
	return float32(x), float32(y), nil
}

// terminalWidth maps terminal columns to layout pixels at 8px per column,
// with a sane default when stdout is not a terminal.
func terminalWidth() float32 {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
			return float32(cols) * 8
		}
	}
	return 800
}

// termFace is the viewer's font face: a monospace character model sized
// from the requested font.
type termFace struct {
	family string
	size   float32
}

// termHost is the viewer's font and paint subsystem, backed by the shared
// font handle registry.
type termHost struct {
	registry *fonts.Registry
	paints   []string
	caption  string
}

func newTermHost() *termHost {
	return &termHost{registry: fonts.NewRegistry()}
}

func (h *termHost) table() *container.Table {
	return &container.Table{
		UserData: h,
		CreateFont: func(ud any, descr *container.FontDescriptionRef, metrics *abi.FontMetrics) htmlbridge.FontHandle {
			host := ud.(*termHost)
			metrics.FontSize = descr.Size()
			metrics.Height = descr.Size() * 1.25
			metrics.Ascent = descr.Size()
			return host.registry.Create(&termFace{family: descr.Family(), size: descr.Size()})
		},
		DeleteFont: func(ud any, font htmlbridge.FontHandle) {
			ud.(*termHost).registry.Release(font)
		},
		TextWidth: func(ud any, text string, font htmlbridge.FontHandle) float32 {
			host := ud.(*termHost)
			size := float32(container.DefaultFontSize)
			if face, ok := host.registry.Get(font); ok {
				size = face.(*termFace).size
			}
			return float32(len(text)) * size * 0.6
		},
		DrawText: func(ud any, dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color abi.WebColor, pos abi.Position) {
			host := ud.(*termHost)
			host.paints = append(host.paints, fmt.Sprintf(
				"text %q at (%.0f,%.0f) #%02x%02x%02x", truncate(text, 30), pos.X, pos.Y,
				color.Red, color.Green, color.Blue))
		},
		DrawSolidFill: func(ud any, dc htmlbridge.DeviceContext, layer *container.BackgroundLayerRef, color abi.WebColor) {
			host := ud.(*termHost)
			box := layer.BorderBox()
			host.paints = append(host.paints, fmt.Sprintf(
				"fill (%.0f,%.0f %.0fx%.0f) #%02x%02x%02x", box.X, box.Y, box.Width, box.Height,
				color.Red, color.Green, color.Blue))
		},
		SetCaption: func(ud any, caption string) {
			ud.(*termHost).caption = caption
		},
	}
}
