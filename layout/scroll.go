package layout

// ScrollStep is how many pixels a scrolling row moves left per render tick.
const ScrollStep = 1

// ScrollState is one row's horizontal scroll position. A fresh row is not
// "kicked off": it holds still until its first Advance tick marks it, so
// rows never all start mid-scroll at once after a data change.
type ScrollState struct {
	X      int
	kicked bool
	text   string
}

// Scroller holds scroll state per (display-line, sub-line) pair. It is
// owned exclusively by the render goroutine.
type Scroller struct {
	rows map[rowKey]*ScrollState
}

type rowKey struct {
	line, row int
}

// NewScroller creates an empty scroller.
func NewScroller() *Scroller {
	return &Scroller{rows: map[rowKey]*ScrollState{}}
}

func (s *Scroller) state(line, row int) *ScrollState {
	k := rowKey{line, row}
	st, ok := s.rows[k]
	if !ok {
		st = &ScrollState{}
		s.rows[k] = st
	}
	return st
}

// ResetAll clears every row's offset and kick-off flag. Used on data
// updates, where continuity has no value.
func (s *Scroller) ResetAll() {
	s.rows = map[rowKey]*ScrollState{}
}

// Observe records the text a row is about to show. When the content
// changed since the previous frame the row's scroll state resets;
// unchanged rows keep scrolling smoothly across presentation toggles.
func (s *Scroller) Observe(line, row int, text string) {
	st := s.state(line, row)
	if st.text != text {
		st.text = text
		st.X = 0
		st.kicked = false
	}
}

// Advance runs one scroll tick for a row and returns the x offset to draw
// at. Text that fits stays parked at zero with the kick-off flag cleared.
// Overflowing text is kicked off on its first tick and then moves
// ScrollStep per tick, wrapping from beyond -textWidth back to
// spriteWidth for an infinite leftward scroll.
func (s *Scroller) Advance(line, row, textWidth, availWidth, spriteWidth int) int {
	st := s.state(line, row)
	if textWidth <= availWidth {
		st.X = 0
		st.kicked = false
		return 0
	}
	if !st.kicked {
		st.kicked = true
		return st.X
	}
	st.X -= ScrollStep
	if st.X < -textWidth {
		st.X = spriteWidth
	}
	return st.X
}
