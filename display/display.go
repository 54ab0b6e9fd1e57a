// Package display abstracts the drawing primitives the board needs:
// text width measurement, text and rectangle drawing, and screen size.
package display

// Display is the rendering collaborator. The layout and presentation code
// depends only on these primitives, not on a specific backend.
type Display interface {
	// Measure returns the rendered pixel width of text.
	Measure(text string) int
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y int)
	// FillRect fills the given rectangle with the background color.
	FillRect(x, y, w, h int)
	// Size returns the screen dimensions in pixels.
	Size() (width, height int)
	// Flush pushes the frame to the hardware, if the backend buffers.
	Flush() error
}
