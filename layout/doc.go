// Package layout places destination text on the display: a greedy
// word-wrap constrained by measured pixel width, with a truncated-prefix
// fallback for long unbroken names, plus the per-row horizontal scroll
// state machine for text that does not fit.
//
// The wrap thresholds (50% retention, trim by 2) are tuned constants; the
// visual output they produce is the contract, so they are not derived.
package layout
