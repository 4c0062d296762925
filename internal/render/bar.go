// Package render draws a preview of the status bar into an image.
//
// Widgets are laid out left to right with the configured padding. Text is
// drawn with basicfont.Face7x13, so anything outside ASCII is dropped from
// labels. WindowName takes whatever width is left over.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"slices"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/tilerc/internal/model"
)

const (
	glyphWidth  = 7
	glyphHeight = 13
	systrayIcon = 16
)

// State supplies the live values the widgets would show.
type State struct {
	Layout      string
	ActiveGroup string
	Occupied    []string // groups holding windows
	WindowName  string
	Brightness  int // percent
	Volume      int // percent
	Battery     int // percent
	Charging    bool
	Now         time.Time
	TrayIcons   int
}

// Options control a render.
type Options struct {
	Width   int
	Padding int
	Groups  []model.Group
	State   State
}

// Box is the horizontal extent a widget was given.
type Box struct {
	Kind  string
	Label string
	X     int
	Width int
}

// Layout computes the widget boxes for bar at opts.Width without drawing.
func Layout(bar *model.Bar, opts Options) []Box {
	boxes := make([]Box, len(bar.Widgets))
	stretch := -1
	used := 0
	for i, w := range bar.Widgets {
		label := Label(w, opts.Groups, opts.State)
		width := widgetWidth(w, label, opts)
		if w.Kind == "WindowName" && stretch < 0 {
			stretch = i
			width = 0
		}
		boxes[i] = Box{Kind: w.Kind, Label: label, Width: width}
		used += width
	}
	if stretch >= 0 && opts.Width > used {
		boxes[stretch].Width = opts.Width - used
	}
	x := 0
	for i := range boxes {
		boxes[i].X = x
		x += boxes[i].Width
	}
	return boxes
}

func widgetWidth(w model.Widget, label string, opts Options) int {
	switch {
	case w.Kind == "Systray":
		return max(opts.State.TrayIcons, 0) * (systrayIcon + opts.Padding)
	case w.Kind == "GroupBox":
		return len(opts.Groups) * (glyphWidth + 2*opts.Padding)
	case label == "":
		return 0
	default:
		return len(label)*glyphWidth + 2*opts.Padding
	}
}

// Bar draws bar at opts.Width by bar.Height pixels.
func Bar(bar *model.Bar, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 {
		return nil, fmt.Errorf("invalid width %d", opts.Width)
	}
	if bar.Height <= 0 {
		return nil, fmt.Errorf("invalid bar height %d", bar.Height)
	}
	bg, err := ParseColor(bar.Background)
	if err != nil {
		return nil, fmt.Errorf("bar background: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, bar.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i, box := range Layout(bar, opts) {
		w := bar.Widgets[i]
		fg := optionColor(w, "foreground", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		switch w.Kind {
		case "GroupBox":
			drawGroups(img, box, w, opts)
		case "Systray":
			for n := 0; n < opts.State.TrayIcons; n++ {
				x := box.X + n*(systrayIcon+opts.Padding)
				y := (bar.Height - systrayIcon) / 2
				fillRect(img, image.Rect(x, y, x+systrayIcon, y+systrayIcon), fg)
			}
		default:
			drawText(img, box.Label, box.X+opts.Padding, baseline(bar.Height), fg)
		}
	}
	return img, nil
}

func drawGroups(img *image.RGBA, box Box, w model.Widget, opts Options) {
	cell := glyphWidth + 2*opts.Padding
	active := optionColor(w, "active", color.RGBA{A: 0xff})
	inactive := optionColor(w, "inactive", color.RGBA{A: 0xff})
	highlight := optionColor(w, "this_current_screen_border", active)
	selectedText := optionColor(w, "block_highlight_text_color", active)
	h := img.Bounds().Dy()

	for i, g := range opts.Groups {
		x := box.X + i*cell
		textColor := inactive
		switch {
		case g.Name == opts.State.ActiveGroup:
			fillRect(img, image.Rect(x, 0, x+cell, h), highlight)
			textColor = selectedText
		case slices.Contains(opts.State.Occupied, g.Name):
			textColor = active
		}
		drawText(img, ascii(g.Name), x+opts.Padding, baseline(h), textColor)
	}
}

// Label returns the ASCII text a widget shows for state.
func Label(w model.Widget, groups []model.Group, s State) string {
	switch w.Kind {
	case "CurrentLayout":
		return s.Layout
	case "GroupBox":
		names := make([]string, len(groups))
		for i, g := range groups {
			names[i] = g.Name
		}
		return strings.Join(names, " ")
	case "WindowName":
		return ascii(s.WindowName)
	case "TextBox":
		return ascii(w.Text)
	case "Backlight":
		return fmt.Sprintf("%d%%", s.Brightness)
	case "PulseVolume":
		return fmt.Sprintf("%d%%", s.Volume)
	case "Battery":
		sign := "-"
		if s.Charging {
			sign = "+"
		}
		return fmt.Sprintf("%s %d%%", sign, s.Battery)
	case "Clock":
		format := w.Option("format")
		if format == "" {
			format = "%H:%M"
		}
		return ascii(Strftime(format, s.Now))
	default:
		return ""
	}
}

// ascii drops every rune basicfont cannot draw and trims the result.
func ascii(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r < 0x7f {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func baseline(height int) int {
	return (height-glyphHeight)/2 + basicfont.Face7x13.Ascent
}

func drawText(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func optionColor(w model.Widget, name string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(w.Option(name))
	if err != nil {
		return fallback
	}
	return c
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
