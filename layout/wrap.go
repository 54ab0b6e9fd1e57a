package layout

// MaxRows is how many wrapped sub-lines one display line may use.
const MaxRows = 2

const (
	// retentionThreshold is the minimum fraction of input characters the
	// wrapped rows must keep before the prefix fallback takes over.
	retentionThreshold = 0.5
	// prefixTrim is how many trailing characters the fallback prefix loses.
	prefixTrim = 2
)

// Measurer reports the rendered pixel width of a text.
type Measurer interface {
	Measure(text string) int
}

// Engine wraps destination text to the width currently available for the
// middle column. Wrap results are cached per input text; the cache is
// dropped whole whenever the available width changes, since every cached
// result depends on it.
type Engine struct {
	measurer Measurer
	width    int
	cache    map[string][]string
}

// NewEngine creates a wrap engine using m for width measurement.
func NewEngine(m Measurer) *Engine {
	return &Engine{measurer: m, cache: map[string][]string{}}
}

// SetWidth sets the available width in pixels, invalidating the wrap
// cache when it changed.
func (e *Engine) SetWidth(w int) {
	if w != e.width {
		e.width = w
		e.cache = map[string][]string{}
	}
}

// Width returns the current available width.
func (e *Engine) Width() int { return e.width }

// Wrap lays text out into at most MaxRows sub-lines.
func (e *Engine) Wrap(text string) []string {
	if rows, ok := e.cache[text]; ok {
		return rows
	}
	rows := e.wrap(text)
	e.cache[text] = rows
	return rows
}

// splitWords splits on space and hyphen, keeping the delimiter attached
// to the preceding word so re-joined widths stay exact.
func splitWords(text string) []string {
	var words []string
	start := 0
	runes := []rune(text)
	for i, r := range runes {
		if r == ' ' || r == '-' {
			if i+1 > start {
				words = append(words, string(runes[start:i+1]))
			}
			start = i + 1
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func (e *Engine) wrap(text string) []string {
	var words []string
	for _, w := range splitWords(text) {
		// A word wider than the whole column can never fit on any row.
		if e.measurer.Measure(w) > e.width {
			continue
		}
		words = append(words, w)
	}

	var rows []string
	cur := ""
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if e.measurer.Measure(cur+w) <= e.width {
			cur += w
		} else {
			rows = append(rows, cur)
			cur = w
		}
	}
	if cur != "" {
		rows = append(rows, cur)
	}
	// Every closed row still carries its last word's trailing delimiter;
	// drop it. The final row ends on the text itself and keeps its last
	// character.
	for i := 0; i < len(rows)-1; i++ {
		rows[i] = trimLastRune(rows[i])
	}

	// Wrapping a long unbroken name can shed most of the text into rows
	// that never show. Below the retention threshold a truncated but
	// legible prefix wins.
	total := len([]rune(text))
	kept := 0
	for i, row := range rows {
		if i >= MaxRows {
			break
		}
		kept += len([]rune(row))
	}
	if total > 0 && float64(kept)/float64(total) < retentionThreshold {
		return []string{e.fitPrefix(text)}
	}

	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	return rows
}

// fitPrefix finds the longest prefix of text that fits the available
// width, then trims prefixTrim trailing characters.
func (e *Engine) fitPrefix(text string) string {
	r := []rune(text)
	n := 0
	for n < len(r) && e.measurer.Measure(string(r[:n+1])) <= e.width {
		n++
	}
	n -= prefixTrim
	if n < 0 {
		n = 0
	}
	return string(r[:n])
}
