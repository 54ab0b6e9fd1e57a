// Package board turns parsed departure groups into what each display line
// shows right now: bucketing and ordering per the configuration, plus the
// periodic first/second-departure toggle and the zero-countdown blink.
package board
