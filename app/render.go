package app

import (
	"context"
	"time"

	"github.com/theoremus-urban-solutions/departure-display/board"
	"github.com/theoremus-urban-solutions/departure-display/layout"
)

func (a *App) renderLoop(ctx context.Context) {
	for {
		a.renderFrame()
		select {
		case <-ctx.Done():
			return
		case <-time.After(renderTick):
		}
	}
}

// renderFrame draws one frame. The mutex is held for the whole frame:
// selection and layout read the shared buckets, and a frame takes far
// less than the acquisition interval.
func (a *App) renderFrame() {
	a.mu.Lock()
	defer a.mu.Unlock()

	screenW, screenH := a.disp.Size()
	a.disp.FillRect(0, 0, screenW, screenH)

	if !a.haveData {
		a.drawPlaceholder(screenH)
		_ = a.disp.Flush()
		return
	}

	if a.version != a.seenVersion {
		a.seenVersion = a.version
		a.selector.OnDataUpdate()
		a.scroller.ResetAll()
	}
	a.selector.Tick()

	views := make([]board.LineView, len(a.buckets))
	for i := range a.buckets {
		views[i] = a.selector.Line(a.buckets[i], a.settings.LineName(i+1))
	}

	// The destination column gets whatever the widest route name and
	// countdown leave over; when either changes, the wrap cache resets
	// with the new width.
	routeW, countdownW := 0, 0
	for _, v := range views {
		if v.Empty {
			continue
		}
		if w := a.disp.Measure(v.RouteName); w > routeW {
			routeW = w
		}
		if w := a.disp.Measure(v.Countdown); w > countdownW {
			countdownW = w
		}
	}
	avail := screenW - routeW - countdownW - 2*colGap
	a.engine.SetWidth(avail)

	lineH := screenH / len(views)
	rowH := lineH / layout.MaxRows
	for i, v := range views {
		if v.Empty {
			continue
		}
		lineY := i * lineH
		a.disp.DrawText(v.RouteName, 0, lineY)
		a.disp.DrawText(v.Countdown, screenW-a.disp.Measure(v.Countdown), lineY)

		var rows [layout.MaxRows]string
		copy(rows[:], a.engine.Wrap(v.DirectionText))
		if v.AlertText != "" {
			rows[1] = v.AlertText
		}
		for r, text := range rows {
			if text == "" {
				continue
			}
			a.scroller.Observe(i, r, text)
			x := a.scroller.Advance(i, r, a.disp.Measure(text), avail, screenW)
			a.disp.DrawText(text, routeW+colGap+x, lineY+r*rowH)
		}
	}
	_ = a.disp.Flush()
}

// drawPlaceholder renders the cold-start frame: one dash per configured
// line, so the display shows structure instead of an error screen.
func (a *App) drawPlaceholder(screenH int) {
	lineH := screenH / a.settings.LineCount
	for i := 0; i < a.settings.LineCount; i++ {
		a.disp.DrawText(board.Placeholder, 0, i*lineH)
	}
}
