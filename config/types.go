package config

// DefaultLineCount is used whenever the persisted line count is outside [1,3].
const DefaultLineCount = 2

// MaxLines is the number of display lines the hardware can show.
const MaxLines = 3

// Settings is the persisted display configuration.
//
// A Settings value is loaded once at startup, held process-wide and only
// ever replaced wholesale when a configuration session completes with
// changed values.
type Settings struct {
	// StopID identifies the main stop to poll.
	StopID string `yaml:"stopID" validate:"omitempty"`
	// LineCount is the number of display lines in [1,3].
	LineCount int `yaml:"lineCount"`
	// RouteFilter is a comma-separated route whitelist; empty means no filtering.
	RouteFilter string `yaml:"routeFilter"`
	// Line1Name..Line3Name pin a display line to one route; empty means
	// "show best available".
	Line1Name string `yaml:"line1Name"`
	Line2Name string `yaml:"line2Name"`
	Line3Name string `yaml:"line3Name"`
	// Line3StopID and Line3Filter override the third line's data source.
	// They only apply when LineCount is 3.
	Line3StopID string `yaml:"line3StopID"`
	Line3Filter string `yaml:"line3Filter"`
	// APIBaseURL overrides the realtime monitor endpoint.
	APIBaseURL string `yaml:"apiBaseURL" validate:"omitempty,url"`
}

// Default returns the in-memory defaults used when no persisted record exists.
func Default() Settings {
	return Settings{LineCount: DefaultLineCount}
}

// Normalize corrects out-of-range values in place. Bad persisted data is
// corrected, never rejected.
func (s *Settings) Normalize() {
	if s.LineCount < 1 || s.LineCount > MaxLines {
		s.LineCount = DefaultLineCount
	}
}

// LineName returns the route pin for display line n (1-based); empty when
// the line is unpinned.
func (s Settings) LineName(n int) string {
	switch n {
	case 1:
		return s.Line1Name
	case 2:
		return s.Line2Name
	case 3:
		return s.Line3Name
	}
	return ""
}

// UsesAltStop reports whether the third line is fed from an independently
// configured stop. A Line3StopID equal to the main stop is treated as
// unset: the second fetch would return the same cached payload anyway, so
// the main parse result is reused instead.
func (s Settings) UsesAltStop() bool {
	return s.LineCount == 3 && s.Line3StopID != "" && s.Line3StopID != s.StopID
}
