// Package app wires the pipeline together and runs its two periodic
// activities: acquisition (fetch, parse, assign, install) and rendering
// (select, lay out, draw). The activities share one mutex-guarded value,
// the per-line buckets; everything else is owned by exactly one of them.
package app
