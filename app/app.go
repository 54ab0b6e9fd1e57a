package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/departure-display/board"
	"github.com/theoremus-urban-solutions/departure-display/config"
	"github.com/theoremus-urban-solutions/departure-display/display"
	"github.com/theoremus-urban-solutions/departure-display/layout"
	"github.com/theoremus-urban-solutions/departure-display/monitor"
)

const (
	// fetchInterval is the planned spacing between successful acquisitions.
	fetchInterval = 60 * time.Second
	// renderTick is the render loop period.
	renderTick = 10 * time.Millisecond
	// colGap separates the route, destination and countdown columns.
	colGap = 4
)

// retrySchedule is the bounded ascending backoff applied after failed
// acquisitions; once exhausted the normal fetchInterval resumes
// unconditionally.
var retrySchedule = []time.Duration{
	5 * time.Second,
	10 * time.Second,
	15 * time.Second,
	20 * time.Second,
	40 * time.Second,
}

// App owns the two long-lived activities and their shared state. Both
// goroutines hold non-owning references to the same display and cache for
// the process lifetime; nothing is allocated or torn down at steady state.
type App struct {
	settings config.Settings
	cache    *monitor.FetchCache
	disp     display.Display

	// Shared between acquisition and render, guarded by mu. buckets is
	// replaced whole under the lock, never mutated in place; version
	// signals the render activity to reset its presentation state.
	mu       sync.Mutex
	buckets  board.LineBuckets
	version  uint64
	haveData bool

	// Render-owned; never touched by the acquisition goroutine.
	selector    *board.Selector
	engine      *layout.Engine
	scroller    *layout.Scroller
	seenVersion uint64

	log zerolog.Logger
}

// New assembles the pipeline around a fetch cache and a display backend.
func New(settings config.Settings, cache *monitor.FetchCache, disp display.Display) *App {
	settings.Normalize()
	return &App{
		settings: settings,
		cache:    cache,
		disp:     disp,
		selector: board.NewSelector(),
		engine:   layout.NewEngine(disp),
		scroller: layout.NewScroller(),
		log:      log.With().Str("component", "app").Logger(),
	}
}

// Settings returns the configuration the app is running with.
func (a *App) Settings() config.Settings { return a.settings }

// Run starts the acquisition and render activities and blocks until ctx
// is cancelled.
func (a *App) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.acquireLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		a.renderLoop(ctx)
	}()
	wg.Wait()
}
