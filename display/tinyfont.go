package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// TinyfontDisplay renders through a drivers.Displayer with a tinyfont
// face, for real hardware panels.
type TinyfontDisplay struct {
	dev    drivers.Displayer
	font   tinyfont.Fonter
	fg, bg color.RGBA
	ascent int16
}

// NewTinyfontDisplay wraps dev with the given font and colors.
func NewTinyfontDisplay(dev drivers.Displayer, font tinyfont.Fonter, fg, bg color.RGBA) *TinyfontDisplay {
	// Glyph anchors sit on the baseline; offset draws by the cap height
	// so DrawText coordinates are top-left like the rest of the package.
	_, h := tinyfont.LineWidth(font, "0")
	return &TinyfontDisplay{dev: dev, font: font, fg: fg, bg: bg, ascent: int16(h)}
}

func (d *TinyfontDisplay) Measure(text string) int {
	_, outbox := tinyfont.LineWidth(d.font, text)
	return int(outbox)
}

func (d *TinyfontDisplay) DrawText(text string, x, y int) {
	tinyfont.WriteLine(d.dev, d.font, int16(x), int16(y)+d.ascent, text, d.fg)
}

func (d *TinyfontDisplay) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.dev.SetPixel(int16(px), int16(py), d.bg)
		}
	}
}

func (d *TinyfontDisplay) Size() (int, int) {
	w, h := d.dev.Size()
	return int(w), int(h)
}

func (d *TinyfontDisplay) Flush() error {
	return d.dev.Display()
}
