package board

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/departure-display/monitor"
)

const (
	// toggleInterval is how long each of the first/second countdown views
	// stays on screen.
	toggleInterval = 4 * time.Second

	// BlinkEven and BlinkOdd replace a zero countdown, alternating on
	// wall-clock seconds parity (a 1s blink for imminent departures).
	BlinkEven = "*"
	BlinkOdd  = "!"

	// Placeholder is shown instead of a countdown when a pinned route has
	// no departures, and per line at cold start.
	Placeholder = "-"
)

// LineView is what one display line shows right now.
type LineView struct {
	RouteName     string
	Countdown     string
	DirectionText string
	AlertText     string
	// Empty marks an unpinned line with no data; nothing is drawn.
	Empty bool
}

// Selector is the presentation toggle shared across all display lines:
// it flips between the first and second upcoming departure every
// toggleInterval and drives the zero-countdown blink.
type Selector struct {
	showFirst  bool
	lastToggle time.Time

	now func() time.Time
}

// NewSelector creates a selector starting on the first departure.
func NewSelector() *Selector {
	s := &Selector{showFirst: true, now: time.Now}
	s.lastToggle = s.now()
	return s
}

// OnDataUpdate resets the toggle after a successful acquisition: back to
// the first departure, interval restarted. The caller clears all scroll
// state alongside.
func (s *Selector) OnDataUpdate() {
	s.showFirst = true
	s.lastToggle = s.now()
}

// Tick advances the toggle and reports whether it flipped this tick.
func (s *Selector) Tick() bool {
	if s.now().Sub(s.lastToggle) >= toggleInterval {
		s.showFirst = !s.showFirst
		s.lastToggle = s.now()
		return true
	}
	return false
}

// ShowFirst reports which departure of each group is currently selected.
func (s *Selector) ShowFirst() bool { return s.showFirst }

// Line picks what a display line shows from its bucket. pinned is the
// line's configured route pin; a pinned line with no departures shows the
// route name with a placeholder instead of going blank.
func (s *Selector) Line(bucket []*monitor.DepartureGroup, pinned string) LineView {
	if len(bucket) == 0 {
		if pinned != "" {
			return LineView{RouteName: pinned, Countdown: Placeholder}
		}
		return LineView{Empty: true}
	}

	g := bucket[0]
	countdown := Placeholder
	if len(g.Countdowns) > 0 {
		v := g.Countdowns[0]
		if !s.showFirst && len(g.Countdowns) > 1 {
			v = g.Countdowns[1]
		}
		if v == 0 {
			countdown = BlinkOdd
			if s.now().Unix()%2 == 0 {
				countdown = BlinkEven
			}
		} else {
			countdown = strconv.Itoa(v)
		}
	}
	return LineView{
		RouteName:     g.RouteName,
		Countdown:     countdown,
		DirectionText: g.DirectionText,
		AlertText:     g.AlertText,
	}
}
