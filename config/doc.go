// Package config handles the persisted display configuration.
//
// Settings are stored as a flat YAML record on stable storage and validated
// using struct tags. Out-of-range values are corrected to defaults rather
// than rejected: the display must never refuse to run because of a bad
// persisted record. Saves are best-effort and retried in the background.
package config
