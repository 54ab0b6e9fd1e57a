package display

// Virtual is an in-memory Display for tests and headless debugging. Text
// width is a fixed number of pixels per rune; draw calls are recorded.
type Virtual struct {
	W, H      int
	RuneWidth int

	Texts []TextOp
	Rects []RectOp
}

// TextOp records one DrawText call.
type TextOp struct {
	Text string
	X, Y int
}

// RectOp records one FillRect call.
type RectOp struct {
	X, Y, W, H int
}

// NewVirtual creates a virtual display of the given size with a
// fixed-width fake font.
func NewVirtual(w, h, runeWidth int) *Virtual {
	return &Virtual{W: w, H: h, RuneWidth: runeWidth}
}

func (v *Virtual) Measure(text string) int {
	return len([]rune(text)) * v.RuneWidth
}

func (v *Virtual) DrawText(text string, x, y int) {
	v.Texts = append(v.Texts, TextOp{Text: text, X: x, Y: y})
}

func (v *Virtual) FillRect(x, y, w, h int) {
	v.Rects = append(v.Rects, RectOp{X: x, Y: y, W: w, H: h})
}

func (v *Virtual) Size() (int, int) { return v.W, v.H }

// Flush clears nothing; recorded ops stay until Reset.
func (v *Virtual) Flush() error { return nil }

// Reset drops the recorded operations of the previous frame.
func (v *Virtual) Reset() {
	v.Texts = v.Texts[:0]
	v.Rects = v.Rects[:0]
}
